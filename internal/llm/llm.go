package llm

import "context"

// Client is a minimal generation interface to allow pluggable providers.
type Client interface {
	// Generate sends one composed prompt and returns the raw reply text.
	Generate(ctx context.Context, system, user string) (string, error)
}
