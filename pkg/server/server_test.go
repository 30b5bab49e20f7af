package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shenurtures/pkg/config"
	"shenurtures/pkg/response"
	"shenurtures/pkg/speech"
)

type stubInferencer struct {
	out      string
	err      error
	lastUser string
}

func (s *stubInferencer) Infer(_ context.Context, _ *openai.ChatCompletionNewParams, _, user string) (string, error) {
	s.lastUser = user
	return s.out, s.err
}

func (s *stubInferencer) Name() string { return "stub" }

type stubSynth struct {
	audio []byte
	err   error
	ready bool
}

func (s *stubSynth) Synthesize(_ context.Context, _ string, profile speech.Profile) (*speech.Result, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &speech.Result{Audio: s.audio, MimeType: "audio/wav", Voice: profile.Name}, nil
}

func (s *stubSynth) Ready() bool { return s.ready }

func newTestServer(t *testing.T, inf *stubInferencer, synth *stubSynth) *Server {
	t.Helper()
	cfg := &config.Config{
		Temperature:       0.2,
		TopP:              0.9,
		MaxOutputTokens:   400,
		CompletionTimeout: 5 * time.Second,
		SpeechTimeout:     5 * time.Second,
		PublicDir:         t.TempDir(),
	}
	return NewServer(cfg, inf, synth)
}

type envelope struct {
	Success    bool      `json:"success"`
	Error      string    `json:"error"`
	Data       replyData `json:"data"`
	Categories []struct {
		ID       string `json:"id"`
		Symptoms []struct {
			Code string `json:"code"`
		} `json:"symptoms"`
	} `json:"categories"`
}

func do(t *testing.T, srv *Server, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	srv.Echo.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	return w, env
}

// compliantText builds model output that passes every rule for the mode.
func compliantText(t *testing.T, mode response.Mode) string {
	t.Helper()
	rules := response.RulesFor(mode)
	words := strings.Fields(rules.Opening)
	for len(words) < rules.MinWords+10 {
		words = append(words, "hormones")
	}
	words = append(words, "Please", "see", "a", "healthcare", "provider.")
	text := strings.Join(words, " ")
	require.True(t, response.Validate(text, rules).Valid())
	return text
}

func TestChatReturnsAudioForCompliantCompletion(t *testing.T) {
	inf := &stubInferencer{out: compliantText(t, response.General)}
	synth := &stubSynth{audio: []byte("RIFFaudio"), ready: true}
	srv := newTestServer(t, inf, synth)

	w, env := do(t, srv, http.MethodPost, "/api/chat", `{"text":"What is PCOS?"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.False(t, env.Data.IsFallback)
	require.NotNil(t, env.Data.AudioData)
	decoded, err := base64.StdEncoding.DecodeString(*env.Data.AudioData)
	require.NoError(t, err)
	assert.Equal(t, []byte("RIFFaudio"), decoded)
	assert.Equal(t, "audio/wav", env.Data.MimeType)
	assert.Equal(t, "Nurture", env.Data.VoiceName)
	assert.Equal(t, inf.out, env.Data.Text)
	assert.NotEmpty(t, env.Data.ID)
}

func TestChatMissingClosingPhraseSubstitutesFallback(t *testing.T) {
	text := compliantText(t, response.General)
	noReferral := strings.NewReplacer("healthcare", "hormone", "provider.", "balance.").Replace(text)
	inf := &stubInferencer{out: noReferral}
	srv := newTestServer(t, inf, &stubSynth{audio: []byte("a"), ready: true})

	w, env := do(t, srv, http.MethodPost, "/api/chat", `{"text":"What is PCOS?"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, response.Fallback(response.General), env.Data.Text)
}

func TestChatCompletionErrorSubstitutesFallback(t *testing.T) {
	inf := &stubInferencer{err: errors.New("upstream exploded")}
	srv := newTestServer(t, inf, &stubSynth{audio: []byte("a"), ready: true})

	w, env := do(t, srv, http.MethodPost, "/api/chat", `{"text":"What is PCOS?"}`)

	require.Equal(t, http.StatusOK, w.Code, "upstream failure must not fail the request")
	assert.True(t, env.Success)
	assert.Equal(t, response.Fallback(response.General), env.Data.Text)
}

func TestChatTruncatesLongInput(t *testing.T) {
	inf := &stubInferencer{out: compliantText(t, response.General)}
	srv := newTestServer(t, inf, &stubSynth{audio: []byte("a"), ready: true})

	long := strings.Repeat("q", 600)
	do(t, srv, http.MethodPost, "/api/chat", `{"text":"`+long+`"}`)

	assert.Len(t, inf.lastUser, 500)
}

func TestChatRejectsMissingText(t *testing.T) {
	srv := newTestServer(t, &stubInferencer{}, &stubSynth{})

	w, env := do(t, srv, http.MethodPost, "/api/chat", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Error)

	w, env = do(t, srv, http.MethodPost, "/api/chat", `{"text":"   "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
}

func TestSymptomCheckSpeechFailureDegradesToTextOnly(t *testing.T) {
	inf := &stubInferencer{out: compliantText(t, response.Symptom)}
	synth := &stubSynth{err: errors.New("tts down"), ready: true}
	srv := newTestServer(t, inf, synth)

	w, env := do(t, srv, http.MethodPost, "/api/symptom-check", `{"symptoms":["acne","weight_gain"]}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Nil(t, env.Data.AudioData)
	assert.True(t, env.Data.IsFallback)
	assert.NotEmpty(t, env.Data.Text)
	assert.Equal(t, []string{"acne", "weight_gain"}, env.Data.AnalyzedSymptoms)
}

func TestSymptomCheckFiltersUnknownCodes(t *testing.T) {
	inf := &stubInferencer{out: compliantText(t, response.Symptom)}
	srv := newTestServer(t, inf, &stubSynth{audio: []byte("a"), ready: true})

	_, env := do(t, srv, http.MethodPost, "/api/symptom-check", `{"symptoms":["acne","made_up","weight_gain"]}`)

	assert.Equal(t, []string{"acne", "weight_gain"}, env.Data.AnalyzedSymptoms)
	assert.Contains(t, inf.lastUser, "persistent acne")
	assert.Contains(t, inf.lastUser, "unexplained weight gain")
	assert.NotContains(t, inf.lastUser, "made_up")
}

func TestSymptomCheckRejectsAllUnknownCodes(t *testing.T) {
	srv := newTestServer(t, &stubInferencer{}, &stubSynth{})

	w, env := do(t, srv, http.MethodPost, "/api/symptom-check", `{"symptoms":["bogus","fake"]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)

	w, env = do(t, srv, http.MethodPost, "/api/symptom-check", `{"symptoms":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
}

func TestSymptomCheckUsesSymptomVoice(t *testing.T) {
	inf := &stubInferencer{out: compliantText(t, response.Symptom)}
	srv := newTestServer(t, inf, &stubSynth{audio: []byte("a"), ready: true})

	_, env := do(t, srv, http.MethodPost, "/api/symptom-check", `{"symptoms":["fatigue"]}`)
	assert.Equal(t, "Care", env.Data.VoiceName)
}

func TestGetSymptomsReturnsGroupedCatalog(t *testing.T) {
	srv := newTestServer(t, &stubInferencer{}, &stubSynth{})

	w, env := do(t, srv, http.MethodGet, "/api/symptoms", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	require.Len(t, env.Categories, 4)
	assert.Equal(t, "menstrual", env.Categories[0].ID)
	assert.NotEmpty(t, env.Categories[0].Symptoms)
}

func TestHealthReportsSpeechReadiness(t *testing.T) {
	srv := newTestServer(t, &stubInferencer{}, &stubSynth{ready: true})
	w := httptest.NewRecorder()
	srv.Echo.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)

	degraded := newTestServer(t, &stubInferencer{}, &stubSynth{ready: false})
	w = httptest.NewRecorder()
	degraded.Echo.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"degraded"`)
}

func TestUnknownAPIRouteReturnsJSONEnvelope(t *testing.T) {
	srv := newTestServer(t, &stubInferencer{}, &stubSynth{})

	w := httptest.NewRecorder()
	srv.Echo.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.Contains(t, w.Body.String(), "/api/chat")
}

func TestInvalidJSONBodyReturns400(t *testing.T) {
	srv := newTestServer(t, &stubInferencer{}, &stubSynth{})

	w, env := do(t, srv, http.MethodPost, "/api/chat", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
}
