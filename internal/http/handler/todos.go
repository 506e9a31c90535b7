package handler

import (
	"errors"
	"net/http"

	"todoapi/internal/core"
	"todoapi/internal/http/payload"
)

func (h *TodoHandler) HandleCreateTodo(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	user, ok := h.currentUser(w, r, CreateTodo, requestId)
	if !ok {
		return
	}

	var req payload.CreateTodoRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.fail(w, http.StatusBadRequest, msgInvalidPayload, requestId)
		h.logs.Infow("failed to decode and validate request payload",
			"error", err,
			"handler", CreateTodo,
			"request_id", requestId)
		return
	}

	todo, err := h.todos.Create(r.Context(), user, req.ToDraft())
	if err != nil {
		h.todoFailed(w, err, CreateTodo, requestId)
		return
	}

	h.logs.Infow("todo created",
		"todo_id", todo.ID,
		"user_id", user.ID,
		"handler", CreateTodo,
		"request_id", requestId)

	h.respond(w, payload.NewTodoResponse(todo), http.StatusOK, requestId)
}

func (h *TodoHandler) HandleListTodos(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	user, ok := h.currentUser(w, r, ListTodos, requestId)
	if !ok {
		return
	}

	todos, err := h.todos.List(r.Context(), user)
	if err != nil {
		h.todoFailed(w, err, ListTodos, requestId)
		return
	}

	h.respond(w, payload.NewTodoListResponse(todos), http.StatusOK, requestId)
}

func (h *TodoHandler) HandleGetTodo(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	user, ok := h.currentUser(w, r, GetTodo, requestId)
	if !ok {
		return
	}

	id, ok := todoID(r)
	if !ok {
		h.fail(w, http.StatusBadRequest, msgInvalidTodoID, requestId)
		return
	}

	todo, err := h.todos.Get(r.Context(), user, id)
	if err != nil {
		h.todoFailed(w, err, GetTodo, requestId)
		return
	}

	h.respond(w, payload.NewTodoResponse(todo), http.StatusOK, requestId)
}

func (h *TodoHandler) HandleUpdateTodo(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	user, ok := h.currentUser(w, r, UpdateTodo, requestId)
	if !ok {
		return
	}

	id, ok := todoID(r)
	if !ok {
		h.fail(w, http.StatusBadRequest, msgInvalidTodoID, requestId)
		return
	}

	var req payload.UpdateTodoRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.fail(w, http.StatusBadRequest, msgInvalidPayload, requestId)
		h.logs.Infow("failed to decode and validate request payload",
			"error", err,
			"handler", UpdateTodo,
			"request_id", requestId)
		return
	}

	todo, err := h.todos.Update(r.Context(), user, id, req.ToPatch())
	if err != nil {
		h.todoFailed(w, err, UpdateTodo, requestId)
		return
	}

	h.respond(w, payload.NewTodoResponse(todo), http.StatusOK, requestId)
}

func (h *TodoHandler) HandleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	user, ok := h.currentUser(w, r, DeleteTodo, requestId)
	if !ok {
		return
	}

	id, ok := todoID(r)
	if !ok {
		h.fail(w, http.StatusBadRequest, msgInvalidTodoID, requestId)
		return
	}

	todo, err := h.todos.Delete(r.Context(), user, id)
	if err != nil {
		h.todoFailed(w, err, DeleteTodo, requestId)
		return
	}

	h.logs.Infow("todo deleted",
		"todo_id", todo.ID,
		"user_id", user.ID,
		"handler", DeleteTodo,
		"request_id", requestId)

	h.respond(w, payload.NewTodoResponse(todo), http.StatusOK, requestId)
}

func (h *TodoHandler) todoFailed(w http.ResponseWriter, err error, route, requestId string) {
	switch {
	case errors.Is(err, core.ErrTodoNotFound):
		h.fail(w, http.StatusNotFound, msgTodoNotFound, requestId)
	case errors.Is(err, core.ErrEmptyTitle):
		h.fail(w, http.StatusBadRequest, msgInvalidPayload, requestId)
	default:
		h.fail(w, http.StatusInternalServerError, msgInternal, requestId)
		h.logs.Errorw("todo operation failed",
			"error", err,
			"handler", route,
			"request_id", requestId)
	}
}
