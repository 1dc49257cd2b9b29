package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// NoOpStore discards transcripts. Used when DB_URL is not configured; the
// assistant runs fine without a history trail.
type NoOpStore struct{}

func NewNoOpStore() *NoOpStore {
	return &NoOpStore{}
}

func (s *NoOpStore) SaveTranscript(ctx context.Context, t Transcript) (Transcript, error) {
	t.ID = uuid.New()
	t.CreatedAt = time.Now()
	return t, nil
}

func (s *NoOpStore) RecentTranscripts(ctx context.Context, limit int) ([]Transcript, error) {
	return nil, nil
}

func (s *NoOpStore) Close() error {
	return nil
}
