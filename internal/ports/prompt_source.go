package ports

import "context"

type PromptSource interface {
	Prompts(ctx context.Context) ([]string, error)
}
