package speech

import (
	"context"

	"github.com/stretchr/testify/mock"

	"krishi-sakhi/internal/langtag"
)

// MockRecognizer is a mock implementation of Recognizer using testify/mock.
type MockRecognizer struct {
	mock.Mock
}

func (m *MockRecognizer) Recognize(ctx context.Context, audio Audio, lang langtag.Lang) (string, error) {
	args := m.Called(ctx, audio, lang)
	return args.String(0), args.Error(1)
}

// MockSynthesizer is a mock implementation of Synthesizer using testify/mock.
type MockSynthesizer struct {
	mock.Mock
}

func (m *MockSynthesizer) Synthesize(ctx context.Context, text string, lang langtag.Lang) ([]byte, error) {
	args := m.Called(ctx, text, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockCapturer is a mock implementation of Capturer using testify/mock.
type MockCapturer struct {
	mock.Mock
}

func (m *MockCapturer) Capture(ctx context.Context) (Audio, error) {
	args := m.Called(ctx)
	return args.Get(0).(Audio), args.Error(1)
}

// MockPlayer is a mock implementation of Player using testify/mock.
type MockPlayer struct {
	mock.Mock
}

func (m *MockPlayer) Play(ctx context.Context, audio []byte) error {
	args := m.Called(ctx, audio)
	return args.Error(0)
}
