package core

import (
	"context"
	"time"

	"todoapi/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name UserRepository . UserRepository
type UserRepository interface {
	FindUserByEmail(ctx context.Context, email string) (repository.User, error)
	CreateUser(ctx context.Context, email, passwordHash string) (repository.User, error)
}

//counterfeiter:generate -o fake -fake-name TodoRepository . TodoRepository
type TodoRepository interface {
	CreateTodo(ctx context.Context, title string, description *string, ownerID int64) (repository.Todo, error)
	ListTodos(ctx context.Context, ownerID int64) ([]repository.Todo, error)
	GetTodo(ctx context.Context, id, ownerID int64) (repository.Todo, error)
	UpdateTodo(ctx context.Context, id, ownerID int64, patch repository.TodoPatch) (repository.Todo, error)
	DeleteTodo(ctx context.Context, id, ownerID int64) (repository.Todo, error)
}

//counterfeiter:generate -o fake -fake-name TokenIssuer . TokenIssuer
type TokenIssuer interface {
	Issue(subject string, ttl time.Duration) (string, error)
	Verify(token string) (string, error)
}

//counterfeiter:generate -o fake -fake-name PasswordHasher . PasswordHasher
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}
