package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/lib/pq"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	s := &PostgresStore{db: db}
	if err := s.migrate(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS transcripts (
			id UUID PRIMARY KEY,
			source TEXT,
			question TEXT,
			answer TEXT,
			lang TEXT,
			knowledge_files TEXT[],
			created_at TIMESTAMPTZ DEFAULT now()
		);`)
	return err
}

func (s *PostgresStore) SaveTranscript(ctx context.Context, t Transcript) (Transcript, error) {
	t.ID = uuid.New()
	t.CreatedAt = time.Now()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO transcripts(id, source, question, answer, lang, knowledge_files, created_at)
		VALUES($1,$2,$3,$4,$5,$6,$7)`,
		t.ID, t.Source, t.Question, t.Answer, t.Lang, pq.Array(t.KnowledgeFiles), t.CreatedAt)
	if err != nil {
		return Transcript{}, err
	}
	return t, nil
}

func (s *PostgresStore) RecentTranscripts(ctx context.Context, limit int) ([]Transcript, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source, question, answer, lang, knowledge_files, created_at
		FROM transcripts ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Transcript
	for rows.Next() {
		var t Transcript
		if err := rows.Scan(&t.ID, &t.Source, &t.Question, &t.Answer, &t.Lang,
			pq.Array(&t.KnowledgeFiles), &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
