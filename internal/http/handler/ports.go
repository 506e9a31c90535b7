package handler

import (
	"context"
	"net/http"

	"todoapi/internal/core"
	"todoapi/internal/http/payload"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name AuthService . AuthService
type AuthService interface {
	Register(ctx context.Context, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Authenticate(ctx context.Context, token string) (core.User, error)
}

//counterfeiter:generate -o fake -fake-name TodoService . TodoService
type TodoService interface {
	Create(ctx context.Context, user core.User, draft core.TodoDraft) (core.Todo, error)
	List(ctx context.Context, user core.User) ([]core.Todo, error)
	Get(ctx context.Context, user core.User, id int64) (core.Todo, error)
	Update(ctx context.Context, user core.User, id int64, patch core.TodoPatch) (core.Todo, error)
	Delete(ctx context.Context, user core.User, id int64) (core.Todo, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
	DecodeFormPayload(r *http.Request, object payload.FormBinder) error
}
