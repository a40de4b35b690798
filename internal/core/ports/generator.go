package ports

import "context"

// Generator sends one instruction to a generative text service and returns
// its raw reply. Implementations make a single attempt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
