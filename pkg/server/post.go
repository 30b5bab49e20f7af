package server

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/openai/openai-go/v3"
	"github.com/segmentio/ksuid"

	"shenurtures/pkg/catalog"
	"shenurtures/pkg/prompt"
	"shenurtures/pkg/response"
	"shenurtures/pkg/schema"
	"shenurtures/pkg/speech"
	"shenurtures/pkg/utils"
)

type chatReq struct {
	Text string `json:"text"`
}

type symptomReq struct {
	Symptoms []string `json:"symptoms"`
}

// replyData is the per-request payload under "data" in the envelope.
// IsFallback signals that no audio accompanies the text; the text itself
// is always populated.
type replyData struct {
	ID               string   `json:"id"`
	Text             string   `json:"text"`
	AudioData        *string  `json:"audioData"`
	IsFallback       bool     `json:"isFallback"`
	VoiceName        string   `json:"voiceName,omitempty"`
	MimeType         string   `json:"mimeType,omitempty"`
	WordCount        int      `json:"wordCount"`
	AnalyzedSymptoms []string `json:"analyzedSymptoms,omitempty"`
}

// POST /api/chat
func (s *Server) handlePostChat(c echo.Context) error {
	var req chatReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}
	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "text is required")
	}

	system, user := prompt.General(req.Text)
	data := s.respond(c, response.General, system, user)

	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": data})
}

// POST /api/symptom-check
func (s *Server) handlePostSymptomCheck(c echo.Context) error {
	var req symptomReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}
	if len(req.Symptoms) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "symptoms are required")
	}
	codes := catalog.Filter(req.Symptoms)
	if len(codes) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "no recognized symptoms selected")
	}

	system, user := prompt.Symptoms(catalog.Labels(codes))
	data := s.respond(c, response.Symptom, system, user)
	data.AnalyzedSymptoms = codes

	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": data})
}

// respond runs the pipeline shared by both modes: infer, sanitize,
// validate, substitute the fallback where needed, then synthesize
// speech. Downstream failures degrade the payload, never the request;
// each external call is attempted exactly once.
func (s *Server) respond(c echo.Context, mode response.Mode, system, user string) replyData {
	id := ksuid.New().String()
	data := replyData{ID: id}

	params := &openai.ChatCompletionNewParams{
		Temperature:         openai.Float(s.Cfg.Temperature),
		TopP:                openai.Float(s.Cfg.TopP),
		FrequencyPenalty:    openai.Float(s.Cfg.FrequencyPenalty),
		PresencePenalty:     openai.Float(s.Cfg.PresencePenalty),
		MaxCompletionTokens: openai.Int(s.Cfg.MaxOutputTokens),
	}
	if s.Cfg.StructuredOutput {
		params.ResponseFormat = schema.StructuredOutputsResponseFormat()
	}

	inferCtx, cancelInfer := s.timeout(c, s.Cfg.CompletionTimeout)
	raw, err := s.Inferencer.Infer(inferCtx, params, system, user)
	cancelInfer()

	switch {
	case err != nil:
		log.Warn("completion failed, using fallback text", "id", id, "mode", mode, "error", err)
		data.Text = response.Fallback(mode)
	default:
		if s.Cfg.StructuredOutput {
			raw = schema.UnwrapAnswer(raw)
		}
		clean, report := response.Check(raw, mode)
		if removed := utils.RemovedWords(raw, clean); len(removed) > 0 {
			log.Debug("sanitizer stripped tokens", "id", id, "removed", removed)
		}
		if !report.Valid() {
			log.Warn("generated text failed validation, using fallback text",
				"id", id, "mode", mode, "failed", report.Failed, "words", report.WordCount)
			data.Text = response.Fallback(mode)
		} else {
			data.Text = clean
		}
	}
	data.WordCount = response.WordCount(data.Text)

	if cancelled(c) {
		// Browser is gone; skip synthesis, the payload will be discarded.
		data.IsFallback = true
		return data
	}

	profile := speech.ProfileFor(mode)
	speechCtx, cancelSpeech := s.timeout(c, s.Cfg.SpeechTimeout)
	audio, err := s.Synth.Synthesize(speechCtx, data.Text, profile)
	cancelSpeech()
	if err != nil || audio == nil || len(audio.Audio) == 0 {
		log.Warn("speech synthesis unavailable, responding text-only", "id", id, "mode", mode, "error", err)
		data.IsFallback = true
		return data
	}

	encoded := base64.StdEncoding.EncodeToString(audio.Audio)
	data.AudioData = &encoded
	data.VoiceName = audio.Voice
	data.MimeType = audio.MimeType
	return data
}

func cancelled(c echo.Context) bool {
	select {
	case <-c.Request().Context().Done():
		return true
	default:
		return false
	}
}
