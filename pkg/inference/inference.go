// Package inference wraps the outbound chat-completion call. Each backend
// performs exactly one request per Infer call; retry policy, timeout
// budget, and failure handling belong to the caller.
package inference

import (
	"context"

	"github.com/openai/openai-go/v3"
)

// Inferencer runs a single chat completion and returns the raw text of
// the first choice.
type Inferencer interface {
	Infer(ctx context.Context, params *openai.ChatCompletionNewParams, system, user string) (string, error)
	Name() string
}
