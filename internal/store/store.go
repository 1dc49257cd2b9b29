package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Source identifies which driver produced a transcript entry.
type Source string

const (
	SourceWeb      Source = "web"
	SourceTerminal Source = "terminal"
)

// Transcript is one question/answer turn.
type Transcript struct {
	ID             uuid.UUID
	Source         Source
	Question       string
	Answer         string
	Lang           string
	KnowledgeFiles []string // documents that grounded the answer
	CreatedAt      time.Time
}

// Store defines the transcript persistence contract. Persistence is an
// audit trail only; no request reads its own or another request's history.
type Store interface {
	SaveTranscript(ctx context.Context, t Transcript) (Transcript, error)
	RecentTranscripts(ctx context.Context, limit int) ([]Transcript, error)
	Close() error
}
