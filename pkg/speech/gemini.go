package speech

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"google.golang.org/genai"

	"shenurtures/pkg/utils"
)

// GeminiSynthesizer implements Synthesizer using the Gemini TTS models.
type GeminiSynthesizer struct {
	client *genai.Client
	apiKey string
	model  string
}

func NewGeminiSynthesizer(apiKey string, model string) (*GeminiSynthesizer, error) {
	if model == "" {
		model = "gemini-2.5-flash-preview-tts"
	}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, err
	}
	return &GeminiSynthesizer{
		client: client,
		apiKey: apiKey,
		model:  model,
	}, nil
}

func (g *GeminiSynthesizer) Ready() bool {
	return g.apiKey != "" && g.client != nil
}

// Synthesize performs exactly one TTS request and wraps the returned PCM
// stream into a WAV container. Empty input is an error; oversized input
// is truncated to MaxInputRunes.
func (g *GeminiSynthesizer) Synthesize(ctx context.Context, text string, profile Profile) (*Result, error) {
	text = utils.TruncateRunes(strings.TrimSpace(text), MaxInputRunes)
	if text == "" {
		return nil, errors.New("empty synthesis input")
	}

	prompt := fmt.Sprintf("Read the following in the voice of %s:\n\n%s", profile.Style, text)

	temperature := float32(1)
	resp, err := g.client.Models.GenerateContent(ctx,
		g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:        &temperature,
			ResponseModalities: []string{"audio"},
			SpeechConfig: &genai.SpeechConfig{
				VoiceConfig: &genai.VoiceConfig{
					PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{
						VoiceName: profile.Voice,
					},
				},
			},
		})
	if err != nil {
		return nil, fmt.Errorf("speech generation error: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 ||
		resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 ||
		resp.Candidates[0].Content.Parts[0].InlineData == nil {
		return nil, errors.New("empty speech response")
	}

	pcm := resp.Candidates[0].Content.Parts[0].InlineData.Data
	if len(pcm) == 0 {
		return nil, errors.New("empty audio payload")
	}

	wav := pcmToWAV(pcm)
	log.Debug("synthesized speech", "voice", profile.Voice, "pcm_bytes", len(pcm), "wav_bytes", len(wav))

	return &Result{
		Audio:    wav,
		MimeType: "audio/wav",
		Voice:    profile.Name,
	}, nil
}
