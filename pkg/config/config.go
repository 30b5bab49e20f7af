package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Completion provider
	OpenAIKey     string `env:"OPENAI_API_KEY,required,notEmpty"`
	OpenAIModel   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`

	// Speech provider. Gemini also serves as the alternate completion backend.
	GeminiKey      string `env:"GEMINI_API_KEY,required,notEmpty"`
	GeminiModel    string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	GeminiTTSModel string `env:"GEMINI_TTS_MODEL" envDefault:"gemini-2.5-flash-preview-tts"`

	Provider string `env:"COMPLETION_PROVIDER" envDefault:"openai"`

	// Sampling knobs. Low temperature and top_p bias the model toward the
	// rule-following output the validator expects.
	Temperature      float64 `env:"COMPLETION_TEMPERATURE" envDefault:"0.2"`
	TopP             float64 `env:"COMPLETION_TOP_P" envDefault:"0.9"`
	FrequencyPenalty float64 `env:"COMPLETION_FREQUENCY_PENALTY" envDefault:"0.3"`
	PresencePenalty  float64 `env:"COMPLETION_PRESENCE_PENALTY" envDefault:"0.2"`
	MaxOutputTokens  int64   `env:"COMPLETION_MAX_TOKENS" envDefault:"400"`

	// Requesting a fixed JSON field instead of free-form prose. The
	// heuristic validator still runs on the unwrapped answer.
	StructuredOutput bool `env:"STRUCTURED_OUTPUT" envDefault:"false"`

	CompletionTimeout time.Duration `env:"COMPLETION_TIMEOUT" envDefault:"90s"`
	SpeechTimeout     time.Duration `env:"SPEECH_TIMEOUT" envDefault:"60s"`

	// Server
	Port      int    `env:"PORT" envDefault:"8080"`
	PublicDir string `env:"PUBLIC_DIR" envDefault:"public"`

	// Optional JSON file overriding the built-in system prompts and
	// fallback texts.
	PromptsFile string `env:"PROMPTS_FILE"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
