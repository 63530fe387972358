package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"learnhub/pkg/claims"
	"learnhub/pkg/quiz"
)

type SubmitForm struct {
	Answers []string `json:"answers"`
}

type QuizHandler struct {
	Service quiz.ServiceInterface
	Logger  *slog.Logger
}

func NewQuizHandler(service quiz.ServiceInterface, logger *slog.Logger) *QuizHandler {
	return &QuizHandler{
		Service: service,
		Logger:  logger,
	}
}

func (h *QuizHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var newQuiz quiz.Quiz
	if err := json.NewDecoder(r.Body).Decode(&newQuiz); err != nil {
		h.Logger.Error("invalid json", "error", err)
		writeError(w, http.StatusBadRequest, typeError, "invalid JSON payload")
		return
	}

	var c claims.Claims
	if ok := getClaimsFromContext(w, r, &c); !ok {
		return
	}

	if err := h.Service.Create(&newQuiz, c.User.ID); err != nil {
		if errors.Is(err, quiz.ErrMissingFields) {
			writeError(w, http.StatusBadRequest, typeError, err.Error())
			return
		}
		h.Logger.Error("quiz create", "error", err)
		writeError(w, http.StatusInternalServerError, typeError, "failed to create quiz")
		return
	}

	if ok := writeJSONStatus(w, h.Logger, newQuiz, http.StatusCreated); ok {
		h.Logger.Info("new quiz created", "user", c.User.ID, "quiz", newQuiz.ID)
	}
}

func (h *QuizHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Logger, h.Service.GetAll())
}

func (h *QuizHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	quizID, ok := vars[muxVarQuiz]
	if !ok {
		writeError(w, http.StatusBadRequest, typeMessage, "invalid quiz id")
		return
	}

	q, err := h.Service.GetByID(quizID)
	if err != nil {
		writeError(w, http.StatusNotFound, typeMessage, "quiz not found")
		return
	}

	writeJSON(w, h.Logger, q)
}

func (h *QuizHandler) Submit(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	vars := mux.Vars(r)

	quizID, ok := vars[muxVarQuiz]
	if !ok {
		writeError(w, http.StatusBadRequest, typeMessage, "invalid quiz id")
		return
	}

	var req SubmitForm
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("invalid json", "error", err)
		writeError(w, http.StatusBadRequest, typeError, "invalid JSON payload")
		return
	}

	var c claims.Claims
	if ok := getClaimsFromContext(w, r, &c); !ok {
		return
	}

	result, err := h.Service.Submit(quizID, req.Answers)
	if err != nil {
		if errors.Is(err, quiz.ErrNotFound) {
			writeError(w, http.StatusNotFound, typeMessage, "quiz not found")
			return
		}
		h.Logger.Error("quiz submit", "error", err)
		writeError(w, http.StatusInternalServerError, typeError, "failed to score quiz")
		return
	}

	if ok := writeJSON(w, h.Logger, map[string]any{
		"message":        "Quiz submitted",
		"totalQuestions": result.TotalQuestions,
		"score":          result.Score,
	}); ok {
		h.Logger.Info("quiz submitted", "user", c.User.ID, muxVarQuiz, quizID, "score", result.Score)
	}
}
