package repository

import (
	"context"
	"errors"
	"fmt"

	"todoapi/internal/db"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrTodoNotFound error = errors.New("todo not found")
var ErrDuplicateEmail error = errors.New("email already exists")

// TodoRepository persists users and their todos. Every todo query is scoped by owner.
type TodoRepository struct {
	db Storage
}

func NewTodoRepository(db Storage) *TodoRepository {
	return &TodoRepository{
		db: db,
	}
}

func (r *TodoRepository) Migrate() error {
	err := r.db.MigrateModels(&User{}, &Todo{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *TodoRepository) FindUserByEmail(ctx context.Context, email string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, db.Conditions{"email": email}, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by email: %w", err)
	}

	return user, nil
}

// CreateUser relies on the unique index on email, so concurrent registrations of the same
// address produce exactly one row.
func (r *TodoRepository) CreateUser(ctx context.Context, email, passwordHash string) (User, error) {
	user := User{
		Email:          email,
		HashedPassword: passwordHash,
	}

	err := r.db.Insert(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return User{}, ErrDuplicateEmail
		}
		return User{}, fmt.Errorf("insert user: %w", err)
	}

	return user, nil
}

func (r *TodoRepository) CreateTodo(ctx context.Context, title string, description *string, ownerID int64) (Todo, error) {
	todo := Todo{
		Title:       title,
		Description: description,
		UserID:      ownerID,
	}

	err := r.db.Insert(ctx, &todo)
	if err != nil {
		return Todo{}, fmt.Errorf("insert todo: %w", err)
	}

	return todo, nil
}

func (r *TodoRepository) ListTodos(ctx context.Context, ownerID int64) ([]Todo, error) {
	todos := []Todo{}

	err := r.db.GetAllBy(ctx, db.Conditions{"user_id": ownerID}, &todos)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}

	return todos, nil
}

func (r *TodoRepository) GetTodo(ctx context.Context, id, ownerID int64) (Todo, error) {
	var todo Todo

	err := r.db.GetOneBy(ctx, ownedBy(id, ownerID), &todo)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Todo{}, ErrTodoNotFound
		}
		return Todo{}, fmt.Errorf("get todo: %w", err)
	}

	return todo, nil
}

func (r *TodoRepository) UpdateTodo(ctx context.Context, id, ownerID int64, patch TodoPatch) (Todo, error) {
	var todo Todo

	err := r.db.UpdateOneBy(ctx, ownedBy(id, ownerID), patch.fields(), &todo)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Todo{}, ErrTodoNotFound
		}
		return Todo{}, fmt.Errorf("update todo: %w", err)
	}

	return todo, nil
}

// DeleteTodo returns the state of the todo as it was before removal.
func (r *TodoRepository) DeleteTodo(ctx context.Context, id, ownerID int64) (Todo, error) {
	var todo Todo

	err := r.db.DeleteOneBy(ctx, ownedBy(id, ownerID), &todo)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Todo{}, ErrTodoNotFound
		}
		return Todo{}, fmt.Errorf("delete todo: %w", err)
	}

	return todo, nil
}

func ownedBy(id, ownerID int64) db.Conditions {
	return db.Conditions{
		"id":      id,
		"user_id": ownerID,
	}
}
