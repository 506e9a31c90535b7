package handler

import (
	"errors"
	"net/http"

	"todoapi/internal/core"
	"todoapi/internal/http/payload"
)

func (h *TodoHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.RegisterRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.fail(w, http.StatusBadRequest, msgInvalidPayload, requestId)
		h.logs.Infow("failed to decode and validate request payload",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	token, err := h.auth.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrEmailTaken):
			h.fail(w, http.StatusBadRequest, msgEmailTaken, requestId)
		case errors.Is(err, core.ErrPasswordTooLong):
			h.fail(w, http.StatusBadRequest, msgPasswordTooLong, requestId)
		default:
			h.fail(w, http.StatusInternalServerError, msgInternal, requestId)
			h.logs.Errorw("registration failed",
				"error", err,
				"handler", Register,
				"request_id", requestId)
			return
		}

		h.logs.Infow("registration rejected",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	h.respond(w, payload.NewTokenResponse(token), http.StatusOK, requestId)
}

func (h *TodoHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.LoginRequest
	if err := h.requestValidator.DecodeFormPayload(r, &req); err != nil {
		h.fail(w, http.StatusBadRequest, msgInvalidPayload, requestId)
		h.logs.Infow("failed to decode and validate login form",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	token, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, core.ErrInvalidCredentials) {
			h.fail(w, http.StatusUnauthorized, msgBadCredentials, requestId)
			h.logs.Infow("login rejected",
				"handler", Login,
				"request_id", requestId)
			return
		}

		h.fail(w, http.StatusInternalServerError, msgInternal, requestId)
		h.logs.Errorw("login failed",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	h.respond(w, payload.NewTokenResponse(token), http.StatusOK, requestId)
}
