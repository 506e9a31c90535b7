package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"todoapi/internal/core"
	"todoapi/internal/http/handler/middleware"

	"go.uber.org/zap"
)

var (
	Register   = "POST /auth/register"
	Login      = "POST /auth/login"
	CreateTodo = "POST /todos/{$}"
	ListTodos  = "GET /todos/{$}"
	GetTodo    = "GET /todos/{id}"
	UpdateTodo = "PUT /todos/{id}"
	DeleteTodo = "DELETE /todos/{id}"
)

type TodoHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	auth             AuthService
	todos            TodoService
}

func NewTodoHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, authService AuthService, todoService TodoService) *TodoHandler {
	return &TodoHandler{
		logs:             logger,
		requestValidator: requestValidator,
		auth:             authService,
		todos:            todoService,
	}
}

// Routes registers every endpoint on mux.
func (h *TodoHandler) Routes(mux *http.ServeMux) {
	mux.HandleFunc(Register, h.HandleRegister)
	mux.HandleFunc(Login, h.HandleLogin)
	mux.HandleFunc(CreateTodo, h.HandleCreateTodo)
	mux.HandleFunc(ListTodos, h.HandleListTodos)
	mux.HandleFunc(GetTodo, h.HandleGetTodo)
	mux.HandleFunc(UpdateTodo, h.HandleUpdateTodo)
	mux.HandleFunc(DeleteTodo, h.HandleDeleteTodo)
}

// currentUser resolves the bearer token of r. When it returns false the 401 has already been
// written.
func (h *TodoHandler) currentUser(w http.ResponseWriter, r *http.Request, route, requestId string) (core.User, bool) {
	token, ok := bearerToken(r)
	if !ok {
		h.fail(w, http.StatusUnauthorized, msgNotAuthenticated, requestId)
		h.logs.Infow("missing bearer token",
			"handler", route,
			"request_id", requestId)
		return core.User{}, false
	}

	user, err := h.auth.Authenticate(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrExpiredToken):
			h.fail(w, http.StatusUnauthorized, msgTokenExpired, requestId)
		case errors.Is(err, core.ErrInvalidToken), errors.Is(err, core.ErrUnknownSubject):
			h.fail(w, http.StatusUnauthorized, msgInvalidCredentials, requestId)
		default:
			h.fail(w, http.StatusInternalServerError, msgInternal, requestId)
			h.logs.Errorw("failed to authenticate request",
				"error", err,
				"handler", route,
				"request_id", requestId)
			return core.User{}, false
		}

		h.logs.Infow("bearer token rejected",
			"error", err,
			"handler", route,
			"request_id", requestId)
		return core.User{}, false
	}

	return user, true
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}

func todoID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func requestID(r *http.Request) string {
	if id, ok := r.Context().Value(middleware.RequestIDKey).(string); ok {
		return id
	}
	return ""
}

func (h *TodoHandler) fail(w http.ResponseWriter, code int, detail, requestId string) {
	if code == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	h.respond(w, Response{Detail: detail}, code, requestId)
}

func (h *TodoHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
