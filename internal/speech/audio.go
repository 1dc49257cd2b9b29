package speech

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

const captureSampleRate = 16000

// wavHeaderSize is the canonical 44-byte RIFF header arecord writes before
// the PCM samples the recognition service wants.
const wavHeaderSize = 44

// MicCapturer records a fixed-duration utterance with arecord.
type MicCapturer struct {
	Seconds int
}

func NewMicCapturer(seconds int) *MicCapturer {
	if seconds <= 0 {
		seconds = 5
	}
	return &MicCapturer{Seconds: seconds}
}

func (m *MicCapturer) Capture(ctx context.Context) (Audio, error) {
	tmp, err := os.CreateTemp("", "krishi-capture-*.wav")
	if err != nil {
		return Audio{}, fmt.Errorf("creating capture file: %w", err)
	}
	tmp.Close()
	defer os.Remove(tmp.Name())

	cmd := exec.CommandContext(ctx, "arecord",
		"-q",
		"-d", fmt.Sprintf("%d", m.Seconds),
		"-f", "S16_LE",
		"-r", fmt.Sprintf("%d", captureSampleRate),
		"-c", "1",
		tmp.Name(),
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return Audio{}, fmt.Errorf("recording audio: %w (%s)", err, out)
	}

	data, err := os.ReadFile(tmp.Name())
	if err != nil {
		return Audio{}, fmt.Errorf("reading capture: %w", err)
	}
	if len(data) <= wavHeaderSize {
		return Audio{}, fmt.Errorf("capture produced no samples")
	}
	return Audio{PCM: data[wavHeaderSize:], SampleRate: captureSampleRate}, nil
}

// players are tried in order until one exists on PATH.
var players = []string{"mpg123", "ffplay", "mpv", "afplay"}

// FilePlayer writes audio to a temporary file on disk and plays it with the
// first available system player.
type FilePlayer struct{}

func NewFilePlayer() *FilePlayer {
	return &FilePlayer{}
}

func (p *FilePlayer) Play(ctx context.Context, audio []byte) error {
	player, err := findPlayer()
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp("", "krishi-response-*.mp3")
	if err != nil {
		return fmt.Errorf("creating audio file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(audio); err != nil {
		tmp.Close()
		return fmt.Errorf("writing audio file: %w", err)
	}
	tmp.Close()

	args := []string{tmp.Name()}
	if player == "ffplay" {
		args = []string{"-nodisp", "-autoexit", "-loglevel", "quiet", tmp.Name()}
	}
	cmd := exec.CommandContext(ctx, player, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("playing audio: %w (%s)", err, out)
	}
	return nil
}

func findPlayer() (string, error) {
	for _, p := range players {
		if _, err := exec.LookPath(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("no audio player found (tried %v)", players)
}
