package speech

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"krishi-sakhi/internal/langtag"
)

func TestListenMalayalamFirst(t *testing.T) {
	capturer := new(MockCapturer)
	recognizer := new(MockRecognizer)
	audio := Audio{PCM: []byte{1, 2}, SampleRate: 16000}

	capturer.On("Capture", mock.Anything).Return(audio, nil).Once()
	recognizer.On("Recognize", mock.Anything, audio, langtag.Malayalam).
		Return("വാഴ എങ്ങനെ നടാം", nil).Once()

	text, lang, err := Listen(context.Background(), capturer, recognizer)
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	if lang != langtag.Malayalam {
		t.Errorf("expected ml, got %q", lang)
	}
	if text == "" {
		t.Error("expected transcript")
	}
	recognizer.AssertNotCalled(t, "Recognize", mock.Anything, mock.Anything, langtag.English)
}

func TestListenFallsBackToEnglish(t *testing.T) {
	capturer := new(MockCapturer)
	recognizer := new(MockRecognizer)
	audio := Audio{PCM: []byte{1}, SampleRate: 16000}

	capturer.On("Capture", mock.Anything).Return(audio, nil).Once()
	recognizer.On("Recognize", mock.Anything, audio, langtag.Malayalam).
		Return("", ErrNoSpeech).Once()
	recognizer.On("Recognize", mock.Anything, audio, langtag.English).
		Return("how to plant banana", nil).Once()

	text, lang, err := Listen(context.Background(), capturer, recognizer)
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	if lang != langtag.English || text != "how to plant banana" {
		t.Errorf("unexpected result %q %q", text, lang)
	}
}

func TestListenBothLanguagesFail(t *testing.T) {
	capturer := new(MockCapturer)
	recognizer := new(MockRecognizer)

	capturer.On("Capture", mock.Anything).Return(Audio{PCM: []byte{1}}, nil).Once()
	recognizer.On("Recognize", mock.Anything, mock.Anything, mock.Anything).
		Return("", ErrNoSpeech).Twice()

	_, _, err := Listen(context.Background(), capturer, recognizer)
	if !errors.Is(err, ErrNoSpeech) {
		t.Errorf("expected ErrNoSpeech, got %v", err)
	}
}

func TestListenCaptureFailure(t *testing.T) {
	capturer := new(MockCapturer)
	recognizer := new(MockRecognizer)

	capturer.On("Capture", mock.Anything).Return(Audio{}, errors.New("no microphone")).Once()

	_, _, err := Listen(context.Background(), capturer, recognizer)
	if err == nil {
		t.Error("expected capture error")
	}
	recognizer.AssertNotCalled(t, "Recognize", mock.Anything, mock.Anything, mock.Anything)
}

func TestGoogleRecognizer(t *testing.T) {
	var gotReq recognizeRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("expected api key in query, got %q", r.URL.RawQuery)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		_, _ = w.Write([]byte(`{"results":[{"alternatives":[{"transcript":"hello farm"}]}]}`))
	}))
	defer srv.Close()

	rec := NewGoogleRecognizer("test-key", srv.URL)
	text, err := rec.Recognize(context.Background(), Audio{PCM: []byte("pcm"), SampleRate: 16000}, langtag.English)
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if text != "hello farm" {
		t.Errorf("unexpected transcript %q", text)
	}
	if gotReq.Config.LanguageCode != "en-IN" {
		t.Errorf("expected en-IN locale, got %q", gotReq.Config.LanguageCode)
	}
	if gotReq.Config.Encoding != "LINEAR16" || gotReq.Config.SampleRateHertz != 16000 {
		t.Errorf("unexpected audio config %+v", gotReq.Config)
	}
}

func TestGoogleRecognizerNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	rec := NewGoogleRecognizer("test-key", srv.URL)
	_, err := rec.Recognize(context.Background(), Audio{PCM: []byte("pcm"), SampleRate: 16000}, langtag.Malayalam)
	if !errors.Is(err, ErrNoSpeech) {
		t.Errorf("expected ErrNoSpeech, got %v", err)
	}
}

func TestTranslateTTS(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("tl"); got != "ml" {
			t.Errorf("expected tl=ml, got %q", got)
		}
		if got := r.URL.Query().Get("q"); got != "നന്ദി" {
			t.Errorf("expected query text, got %q", got)
		}
		_, _ = w.Write([]byte("mp3-bytes"))
	}))
	defer srv.Close()

	tts := NewTranslateTTS(srv.URL)
	audio, err := tts.Synthesize(context.Background(), "നന്ദി", langtag.Malayalam)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if string(audio) != "mp3-bytes" {
		t.Errorf("unexpected audio %q", audio)
	}
}

func TestTranslateTTSEmptyText(t *testing.T) {
	tts := NewTranslateTTS("http://unused")
	if _, err := tts.Synthesize(context.Background(), "", langtag.English); err == nil {
		t.Error("expected error for empty text")
	}
}
