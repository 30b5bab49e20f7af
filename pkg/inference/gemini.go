package inference

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"google.golang.org/genai"
)

// GeminiInferencer implements Inferencer against the Gemini API. It shares
// the genai client type with the speech synthesizer, so a deployment with
// only a Gemini key can run completion and TTS off one credential.
type GeminiInferencer struct {
	client *genai.Client
	apiKey string
	model  string
}

func NewGeminiInferencer(apiKey string, model string) (*GeminiInferencer, error) {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, err
	}
	return &GeminiInferencer{
		client: client,
		apiKey: apiKey,
		model:  model,
	}, nil
}

func (o *GeminiInferencer) Name() string { return "gemini" }

// Infer accepts the same openai params shape the interface defines and
// maps the sampling knobs onto a GenerateContent call.
func (o *GeminiInferencer) Infer(ctx context.Context, params *openai.ChatCompletionNewParams, system, user string) (string, error) {
	if params == nil {
		params = new(openai.ChatCompletionNewParams)
	}
	temp := float32(cmp.Or(params.Temperature.Value, 0.2))
	topP := float32(cmp.Or(params.TopP.Value, 0.9))
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleModel),
		Temperature:       &temp,
		TopP:              &topP,
		MaxOutputTokens:   int32(cmp.Or(params.MaxCompletionTokens.Value, 400)),
	}
	if params.ResponseFormat.OfJSONSchema != nil {
		config.ResponseMIMEType = "application/json"
	}

	result, err := o.client.Models.GenerateContent(
		ctx,
		cmp.Or(params.Model, o.model),
		genai.Text(user),
		config,
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", errors.New("empty completion content")
	}
	return text, nil
}
