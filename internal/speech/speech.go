// Package speech bridges the terminal client to speech recognition and
// text-to-speech services. Recognition and synthesis are remote calls;
// microphone capture and playback are delegated to system audio tools.
package speech

import (
	"context"
	"errors"

	"krishi-sakhi/internal/langtag"
)

// ErrNoSpeech is returned when the service produced no transcript for the
// captured audio. Callers use it to fall back to another language before
// giving up on the turn.
var ErrNoSpeech = errors.New("speech: no transcript recognized")

// Audio is captured microphone input ready for recognition.
type Audio struct {
	PCM        []byte // 16-bit little-endian mono samples
	SampleRate int
}

// Recognizer converts captured audio to text in one language.
type Recognizer interface {
	Recognize(ctx context.Context, audio Audio, lang langtag.Lang) (string, error)
}

// Synthesizer converts reply text to playable audio bytes.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, lang langtag.Lang) ([]byte, error)
}

// Capturer records one utterance from the microphone.
type Capturer interface {
	Capture(ctx context.Context) (Audio, error)
}

// Player plays synthesized audio aloud.
type Player interface {
	Play(ctx context.Context, audio []byte) error
}

// Listen captures one utterance and recognizes it Malayalam-first, falling
// back to English. Both attempts failing maps to ErrNoSpeech.
func Listen(ctx context.Context, c Capturer, r Recognizer) (string, langtag.Lang, error) {
	audio, err := c.Capture(ctx)
	if err != nil {
		return "", "", err
	}
	if text, err := r.Recognize(ctx, audio, langtag.Malayalam); err == nil {
		return text, langtag.Malayalam, nil
	}
	text, err := r.Recognize(ctx, audio, langtag.English)
	if err != nil {
		return "", "", ErrNoSpeech
	}
	return text, langtag.English, nil
}
