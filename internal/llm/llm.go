package llm

import "context"

// TextGenerator is the external text-generation collaborator. Failures are
// propagated to the caller; retry policy belongs to the hosting layer.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
