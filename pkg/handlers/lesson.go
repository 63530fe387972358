package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"learnhub/pkg/claims"
	"learnhub/pkg/lesson"
)

const (
	typeError    string = "error"
	typeMessage  string = "message"
	muxVarLesson string = "lesson_id"
	muxVarQuiz   string = "quiz_id"
)

type LessonHandler struct {
	Service lesson.ServiceInterface
	Logger  *slog.Logger
}

func NewLessonHandler(service lesson.ServiceInterface, logger *slog.Logger) *LessonHandler {
	return &LessonHandler{
		Service: service,
		Logger:  logger,
	}
}

func (h *LessonHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var newLesson lesson.Lesson
	if err := json.NewDecoder(r.Body).Decode(&newLesson); err != nil {
		h.Logger.Error("invalid json", "error", err)
		writeError(w, http.StatusBadRequest, typeError, "invalid JSON payload")
		return
	}

	var c claims.Claims
	if ok := getClaimsFromContext(w, r, &c); !ok {
		return
	}

	if err := h.Service.Create(&newLesson, c.User.ID); err != nil {
		if errors.Is(err, lesson.ErrMissingFields) {
			writeError(w, http.StatusBadRequest, typeError, err.Error())
			return
		}
		h.Logger.Error("lesson create", "error", err)
		writeError(w, http.StatusInternalServerError, typeError, "failed to create lesson")
		return
	}

	if ok := writeJSONStatus(w, h.Logger, newLesson, http.StatusCreated); ok {
		h.Logger.Info("new lesson created", "user", c.User.ID, "lesson", newLesson.ID)
	}
}

func (h *LessonHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Logger, h.Service.GetAll())
}

func (h *LessonHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	lessonID, ok := vars[muxVarLesson]
	if !ok {
		writeError(w, http.StatusBadRequest, typeMessage, "invalid lesson id")
		return
	}

	l, err := h.Service.GetByID(lessonID)
	if err != nil {
		writeError(w, http.StatusNotFound, typeMessage, "lesson not found")
		return
	}

	writeJSON(w, h.Logger, l)
}

func (h *LessonHandler) Update(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	vars := mux.Vars(r)

	lessonID, ok := vars[muxVarLesson]
	if !ok {
		writeError(w, http.StatusBadRequest, typeMessage, "invalid lesson id")
		return
	}

	var upd lesson.Update
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		h.Logger.Error("invalid json", "error", err)
		writeError(w, http.StatusBadRequest, typeError, "invalid JSON payload")
		return
	}

	l, err := h.Service.Update(lessonID, upd)
	if err != nil {
		if errors.Is(err, lesson.ErrNotFound) {
			writeError(w, http.StatusNotFound, typeMessage, "lesson not found")
			return
		}
		h.Logger.Error("lesson update", "error", err)
		writeError(w, http.StatusInternalServerError, typeError, "failed to update lesson")
		return
	}

	if ok := writeJSON(w, h.Logger, l); ok {
		h.Logger.Info("lesson updated", muxVarLesson, lessonID)
	}
}

func (h *LessonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	lessonID, ok := vars[muxVarLesson]
	if !ok {
		writeError(w, http.StatusBadRequest, typeMessage, "invalid lesson id")
		return
	}

	if err := h.Service.Delete(lessonID); err != nil {
		writeError(w, http.StatusNotFound, typeMessage, "lesson not found")
		return
	}

	if ok := writeJSON(w, h.Logger, map[string]string{"message": "lesson deleted"}); ok {
		h.Logger.Info("lesson deleted", muxVarLesson, lessonID)
	}
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, data any) bool {
	resp, err := json.Marshal(data)
	if err != nil {
		logger.Error("Failed to serialize JSON response", "error", err)
		writeError(w, http.StatusInternalServerError, typeError, "failed json marshal")
		return false
	}

	w.Header().Set("Content-Type", "application/json")

	if _, err := w.Write(resp); err != nil {
		logger.Error("Failed to write response to client", "error", err)
		return false
	}
	return true
}

func writeJSONStatus(w http.ResponseWriter, logger *slog.Logger, data any, status int) bool {
	resp, err := json.Marshal(data)
	if err != nil {
		logger.Error("Failed to serialize JSON response", "error", err)
		writeError(w, http.StatusInternalServerError, typeError, "failed json marshal")
		return false
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err := w.Write(resp); err != nil {
		logger.Error("Failed to write response to client", "error", err)
		return false
	}
	return true
}

func getClaimsFromContext(w http.ResponseWriter, r *http.Request, c *claims.Claims) bool {
	val, ok := r.Context().Value(claims.TokenContextKey).(*claims.Claims)
	if !ok || val == nil || val.User.ID == "" {
		writeError(w, http.StatusUnauthorized, typeMessage, "unauthorized")
		return false
	}
	*c = *val
	return true
}

func writeError(w http.ResponseWriter, status int, field, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{field: msg}); err != nil {
		return
	}
}
