package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"learnhub/pkg/ai"
	"learnhub/pkg/claims"
	"learnhub/pkg/realtime"
)

// Generator is what the AI handlers need from the provider client.
type Generator interface {
	Explain(ctx context.Context, topic, level string) (string, error)
	GenerateQuiz(ctx context.Context, topic string, n int) (*ai.GeneratedQuiz, error)
}

type ExplainForm struct {
	Prompt string `json:"prompt"`
	Level  string `json:"level"`
}

type GenerateQuizForm struct {
	Topic        string `json:"topic"`
	NumQuestions *int   `json:"numQuestions"`
}

type AIHandler struct {
	Generator Generator
	Hub       *realtime.Hub
	Logger    *slog.Logger
}

func NewAIHandler(generator Generator, hub *realtime.Hub, logger *slog.Logger) *AIHandler {
	return &AIHandler{
		Generator: generator,
		Hub:       hub,
		Logger:    logger,
	}
}

func (h *AIHandler) Explain(w http.ResponseWriter, r *http.Request) {
	var req ExplainForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}

	if strings.TrimSpace(req.Prompt) == "" {
		writeError(w, http.StatusBadRequest, typeError, "prompt is required")
		return
	}

	var c claims.Claims
	if ok := getClaimsFromContext(w, r, &c); !ok {
		return
	}

	explanation, err := h.Generator.Explain(r.Context(), req.Prompt, req.Level)
	if err != nil {
		h.Logger.Error("explain", "error", err, "user", c.User.ID)
		writeError(w, http.StatusBadGateway, typeError, "unable to generate explanation at this time")
		return
	}

	if ok := writeJSON(w, h.Logger, map[string]string{"explanation": explanation}); ok {
		h.Logger.Info("explanation generated", "user", c.User.ID)
	}

	h.Hub.Notify(c.User.ID, "ai_response", map[string]string{"explanation": explanation})
}

func (h *AIHandler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	var req GenerateQuizForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}

	if strings.TrimSpace(req.Topic) == "" {
		writeError(w, http.StatusBadRequest, typeError, "topic is required")
		return
	}

	n := ai.DefaultQuestionCount()
	if req.NumQuestions != nil {
		n = *req.NumQuestions
	}

	var c claims.Claims
	if ok := getClaimsFromContext(w, r, &c); !ok {
		return
	}

	generated, err := h.Generator.GenerateQuiz(r.Context(), req.Topic, n)
	if err != nil {
		h.Logger.Error("generate quiz", "error", err, "user", c.User.ID)
		if errors.Is(err, ai.ErrMalformedResponse) {
			writeError(w, http.StatusBadGateway, typeError, err.Error())
			return
		}
		writeError(w, http.StatusBadGateway, typeError, "unable to generate quiz at this time")
		return
	}

	if ok := writeJSON(w, h.Logger, map[string]any{"quiz": generated}); ok {
		h.Logger.Info("quiz generated", "user", c.User.ID, "questions", len(generated.Questions))
	}

	h.Hub.Notify(c.User.ID, "ai_response", map[string]any{"quiz": generated})
}
