package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"learnhub/pkg/claims"
	"learnhub/pkg/token"
	"learnhub/pkg/user"
)

type RegisterForm struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type FieldError struct {
	Location string `json:"location"`
	Param    string `json:"param"`
	Value    string `json:"value"`
	Msg      string `json:"msg"`
}

type UserHandler struct {
	Service user.ServiceInterface
	Logger  *slog.Logger
}

func NewUserHandler(service user.ServiceInterface, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		Service: service,
		Logger:  logger,
	}
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}

	u, err := h.Service.Register(req.Name, req.Email, req.Password)
	if err != nil {
		var vErr *user.ValidationError
		switch {
		case errors.As(err, &vErr):
			WriteResp(w, h.Logger, map[string]any{
				"errors": []FieldError{
					{
						Location: "body",
						Param:    vErr.Field,
						Msg:      vErr.Reason,
					},
				},
			}, http.StatusBadRequest)
		case errors.Is(err, user.ErrDuplicateEmail):
			WriteResp(w, h.Logger, map[string]any{
				"errors": []FieldError{
					{
						Location: "body",
						Param:    "email",
						Value:    req.Email,
						Msg:      "already registered",
					},
				},
			}, http.StatusConflict)
		default:
			h.Logger.Error("register", "error", err.Error())
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	h.issueToken(w, u, http.StatusCreated, "register")
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}

	u, err := h.Service.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			// Same response for unknown email and wrong password.
			if ok := WriteResp(w, h.Logger, map[string]any{"message": "invalid credentials"}, http.StatusBadRequest); ok {
				h.Logger.Info("login rejected")
			}
			return
		}
		h.Logger.Error("login", "error", err.Error())
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.issueToken(w, u, http.StatusOK, "login")
}

func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	var c claims.Claims
	if ok := getClaimsFromContext(w, r, &c); !ok {
		return
	}

	u, err := h.Service.Profile(c.User.ID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			writeError(w, http.StatusNotFound, typeMessage, "user not found")
			return
		}
		h.Logger.Error("profile", "error", err.Error())
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.Logger, map[string]string{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
	})
}

func (h *UserHandler) issueToken(w http.ResponseWriter, u *user.User, status int, action string) {
	tokenString, err := token.Issue(u.ID, u.Name)
	if err != nil {
		h.Logger.Error("token signing", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if ok := WriteResp(w, h.Logger, map[string]any{"id": u.ID, "token": tokenString}, status); ok {
		h.Logger.Info(action, "user", u.ID)
	}
}

func DecodeJSONBody(w http.ResponseWriter, r *http.Request, req any) bool {
	if r.Header.Get("Content-Type") != "application/json" {
		writeError(w, http.StatusBadRequest, typeError, "invalid Content-Type")
		return false
	}

	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeError(w, http.StatusBadRequest, typeError, "bad json")
		return false
	}

	return true
}

func WriteResp(w http.ResponseWriter, logger *slog.Logger, body map[string]any, status int) bool {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to write JSON response", slog.Any("err", err))
		return false
	}
	return true
}
