// Package schema defines the constrained-generation response format used
// when STRUCTURED_OUTPUT is enabled: the model is asked for a strict JSON
// object with a single answer field instead of free-form prose. The
// heuristic sanitizer and validator still run on the unwrapped answer.
package schema

import (
	"encoding/json"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go/v3"
)

func generateSchema[T any]() any {
	r := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return r.Reflect(v)
}

// Reply is the constrained completion shape.
type Reply struct {
	Answer string `json:"answer" jsonschema_description:"The complete response paragraph, plain prose with no markdown"`
}

var ReplySchema = generateSchema[Reply]()

func StructuredOutputsResponseFormat() openai.ChatCompletionNewParamsResponseFormatUnion {
	p := openai.ResponseFormatJSONSchemaJSONSchemaParam{
		Name:        "health_reply",
		Description: openai.String("A single plain-prose health education response"),
		Schema:      ReplySchema,
		Strict:      openai.Bool(true),
	}
	return openai.ChatCompletionNewParamsResponseFormatUnion{
		OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{JSONSchema: p},
	}
}

// UnwrapAnswer extracts the answer field from a structured completion.
// Anything that does not parse as a Reply is returned unchanged so the
// downstream validator decides its fate.
func UnwrapAnswer(raw string) string {
	s := stripFences(strings.TrimSpace(raw))
	var r Reply
	if err := json.Unmarshal([]byte(s), &r); err != nil || strings.TrimSpace(r.Answer) == "" {
		return raw
	}
	return r.Answer
}

// stripFences removes a surrounding markdown code block, if any.
func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) < 2 {
		return s
	}
	lines = lines[1:]
	if strings.HasPrefix(lines[len(lines)-1], "```") {
		lines = lines[:len(lines)-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
