package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"canvas_chat/internal/ai"
	"canvas_chat/internal/canvas"
	"canvas_chat/internal/config"
	"canvas_chat/internal/memory"
	"canvas_chat/internal/visual"
)

const (
	emptyResponseText = "(empty response)"

	missingKeyText     = "Server is missing GEMINI_API_KEY. Please set it in .env."
	missingKeyHTML     = "<p><strong>Server is missing GEMINI_API_KEY.</strong> Please set it in .env.</p>"
	missingKeyMarkdown = "**Server is missing GEMINI_API_KEY.** Please set it in .env."
)

// Generator is the external model call. *ai.Runner satisfies it; tests
// substitute their own.
type Generator interface {
	Generate(ctx context.Context, model string, prompt string) (string, error)
}

type Service struct {
	store  *memory.Store
	runner Generator
	cfg    config.Config
}

type Turn = memory.Turn

type ChatRequest struct {
	Message    string `json:"message"`
	SessionID  string `json:"session_id"`
	MemorySize int    `json:"memory_size"`
	System     string `json:"system"`
}

type ChatResponse struct {
	Response     string           `json:"response"`
	Model        string           `json:"model"`
	HTML         string           `json:"html"`
	Markdown     string           `json:"markdown"`
	Segments     []visual.Segment `json:"segments"`
	Timestamp    string           `json:"timestamp"`
	SessionID    string           `json:"session_id"`
	CanvasScript string           `json:"canvas_script"`
}

func NewService(store *memory.Store, runner Generator, cfg config.Config) *Service {
	return &Service{store: store, runner: runner, cfg: cfg}
}

func (s *Service) DefaultModel() string {
	return s.cfg.Model
}

func (s *Service) Models() []string {
	return ai.AllowedModels
}

// Chat runs one request through the store and the model. It always returns
// a well-formed response; model failures ride inside the transcript.
func (s *Service) Chat(ctx context.Context, req ChatRequest) ChatResponse {
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = fmt.Sprintf("session-%d", time.Now().UTC().UnixMilli())
	}

	memorySize := req.MemorySize
	if memorySize <= 0 {
		memorySize = s.cfg.MemorySize
	}

	if req.System != "" {
		s.store.AddMessage(sessionID, memory.RoleSystem, req.System)
	}

	if !s.cfg.HasAPIKey() {
		return s.missingKeyResponse(sessionID)
	}

	s.store.AddMessage(sessionID, memory.RoleUser, req.Message)
	prompt := s.BuildPrompt(sessionID, req.Message, memorySize)

	text, err := s.runner.Generate(ctx, s.cfg.Model, prompt)
	if err != nil {
		return s.errorResponse(sessionID, err)
	}
	if strings.TrimSpace(text) == "" {
		text = emptyResponseText
	}
	s.store.AddMessage(sessionID, memory.RoleAssistant, text)

	payload := visual.Build(text)
	return ChatResponse{
		Response:     text,
		Model:        s.cfg.Model,
		HTML:         payload.HTML,
		Markdown:     payload.Markdown,
		Segments:     payload.Segments,
		Timestamp:    nowUTC(),
		SessionID:    sessionID,
		CanvasScript: canvas.BuildScript(replyScriptConfig()),
	}
}

// missingKeyResponse is the degraded-mode reply. The user message is not
// stored and no model call happens.
func (s *Service) missingKeyResponse(sessionID string) ChatResponse {
	return ChatResponse{
		Response: missingKeyText,
		Model:    s.cfg.Model,
		HTML:     missingKeyHTML,
		Markdown: missingKeyMarkdown,
		Segments: []visual.Segment{
			{Type: visual.SegmentError, Text: missingKeyText},
		},
		Timestamp:    nowUTC(),
		SessionID:    sessionID,
		CanvasScript: canvas.BuildScript(missingKeyScriptConfig()),
	}
}

// errorResponse records the failure as an assistant turn so later prompts
// carry it, then formats it like any other reply.
func (s *Service) errorResponse(sessionID string, cause error) ChatResponse {
	errText := fmt.Sprintf("Error communicating with Gemini API: %v", cause)
	s.store.AddMessage(sessionID, memory.RoleAssistant, errText)

	payload := visual.Build(errText)
	return ChatResponse{
		Response:     errText,
		Model:        s.cfg.Model,
		HTML:         payload.HTML,
		Markdown:     payload.Markdown,
		Segments:     payload.Segments,
		Timestamp:    nowUTC(),
		SessionID:    sessionID,
		CanvasScript: canvas.BuildScript(errorScriptConfig()),
	}
}

func (s *Service) History(sessionID string) []Turn {
	return s.store.GetAll(sessionID)
}

func (s *Service) ClearSession(sessionID string) {
	s.store.Clear(sessionID)
}

func (s *Service) SessionIDs() []string {
	return s.store.Sessions()
}

func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func replyScriptConfig() canvas.ScriptConfig {
	cfg := canvas.DefaultScriptConfig()
	cfg.Width = 520
	cfg.Height = 180
	cfg.Font = "16px Inter, Arial"
	cfg.LineHeight = 20
	cfg.TypingSpeed = 45
	return cfg
}

func missingKeyScriptConfig() canvas.ScriptConfig {
	cfg := canvas.DefaultScriptConfig()
	cfg.Width = 520
	cfg.Height = 140
	cfg.Bubble = "#fff3f0"
	cfg.TextColor = "#6b2800"
	cfg.Author = "Server"
	return cfg
}

func errorScriptConfig() canvas.ScriptConfig {
	cfg := canvas.DefaultScriptConfig()
	cfg.Width = 520
	cfg.Height = 140
	cfg.Bubble = "#fff7f7"
	cfg.TextColor = "#7a1f1f"
	return cfg
}
