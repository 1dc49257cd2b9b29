package speech

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"krishi-sakhi/internal/langtag"
)

// recognitionLocales maps reply language codes to the regional locales the
// recognition service expects.
var recognitionLocales = map[langtag.Lang]string{
	langtag.English:   "en-IN",
	langtag.Malayalam: "ml-IN",
}

// GoogleRecognizer calls the Google Cloud Speech recognize endpoint with the
// same API key the generation client uses.
type GoogleRecognizer struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

const defaultSpeechURL = "https://speech.googleapis.com/v1/speech:recognize"

func NewGoogleRecognizer(apiKey, baseURL string) *GoogleRecognizer {
	if baseURL == "" {
		baseURL = defaultSpeechURL
	}
	return &GoogleRecognizer{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type recognizeRequest struct {
	Config recognizeConfig `json:"config"`
	Audio  recognizeAudio  `json:"audio"`
}

type recognizeConfig struct {
	Encoding        string `json:"encoding"`
	SampleRateHertz int    `json:"sampleRateHertz"`
	LanguageCode    string `json:"languageCode"`
}

type recognizeAudio struct {
	Content string `json:"content"`
}

type recognizeResponse struct {
	Results []struct {
		Alternatives []struct {
			Transcript string `json:"transcript"`
		} `json:"alternatives"`
	} `json:"results"`
}

// Recognize sends one best-effort recognition request. An answer with no
// results means the service could not understand the audio in this language
// and maps to ErrNoSpeech.
func (r *GoogleRecognizer) Recognize(ctx context.Context, audio Audio, lang langtag.Lang) (string, error) {
	locale, ok := recognitionLocales[lang]
	if !ok {
		return "", fmt.Errorf("speech: unsupported language %q", lang)
	}

	reqBody := recognizeRequest{
		Config: recognizeConfig{
			Encoding:        "LINEAR16",
			SampleRateHertz: audio.SampleRate,
			LanguageCode:    locale,
		},
		Audio: recognizeAudio{Content: base64.StdEncoding.EncodeToString(audio.PCM)},
	}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"?key="+r.apiKey, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling speech service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("speech service returned status %d", resp.StatusCode)
	}

	var recResp recognizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&recResp); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if len(recResp.Results) == 0 || len(recResp.Results[0].Alternatives) == 0 {
		return "", ErrNoSpeech
	}
	return recResp.Results[0].Alternatives[0].Transcript, nil
}
