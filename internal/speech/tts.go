package speech

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"krishi-sakhi/internal/langtag"
)

// TranslateTTS fetches MP3 speech from the Google Translate TTS endpoint.
// The endpoint is keyless and voice selection is purely by language code.
type TranslateTTS struct {
	baseURL string
	client  *http.Client
}

const defaultTTSURL = "https://translate.google.com/translate_tts"

func NewTranslateTTS(baseURL string) *TranslateTTS {
	if baseURL == "" {
		baseURL = defaultTTSURL
	}
	return &TranslateTTS{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (t *TranslateTTS) Synthesize(ctx context.Context, text string, lang langtag.Lang) ([]byte, error) {
	if text == "" {
		return nil, fmt.Errorf("empty text for synthesis")
	}

	params := url.Values{
		"ie":     {"UTF-8"},
		"client": {"tw-ob"},
		"tl":     {string(lang)},
		"q":      {text},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling tts service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tts service returned status %d", resp.StatusCode)
	}
	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading audio: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("tts service returned no audio")
	}
	return audio, nil
}
