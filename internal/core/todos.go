package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"todoapi/internal/repository"

	"go.uber.org/zap"
)

var ErrTodoNotFound error = errors.New("todo not found")
var ErrEmptyTitle error = errors.New("todo title is required")

// TodoService runs CRUD over the todos of an authenticated user. A todo owned by someone else
// is reported exactly like one that does not exist.
type TodoService struct {
	logs  *zap.SugaredLogger
	todos TodoRepository
}

func NewTodoService(logger *zap.SugaredLogger, todos TodoRepository) *TodoService {
	return &TodoService{
		logs:  logger,
		todos: todos,
	}
}

func (s *TodoService) Create(ctx context.Context, user User, draft TodoDraft) (Todo, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return Todo{}, ErrEmptyTitle
	}

	todo, err := s.todos.CreateTodo(ctx, draft.Title, draft.Description, user.ID)
	if err != nil {
		return Todo{}, fmt.Errorf("create todo: %w", err)
	}

	s.logs.Debugw("todo created", "user_id", user.ID, "todo_id", todo.ID)

	return toTodo(todo), nil
}

func (s *TodoService) List(ctx context.Context, user User) ([]Todo, error) {
	todos, err := s.todos.ListTodos(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}

	records := make([]Todo, len(todos))
	for i, t := range todos {
		records[i] = toTodo(t)
	}

	return records, nil
}

func (s *TodoService) Get(ctx context.Context, user User, id int64) (Todo, error) {
	todo, err := s.todos.GetTodo(ctx, id, user.ID)
	if err != nil {
		return Todo{}, notFoundOr(err, "get todo")
	}

	return toTodo(todo), nil
}

// Update changes only the fields set in patch.
func (s *TodoService) Update(ctx context.Context, user User, id int64, patch TodoPatch) (Todo, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return Todo{}, ErrEmptyTitle
	}

	todo, err := s.todos.UpdateTodo(ctx, id, user.ID, repository.TodoPatch{
		Title:            patch.Title,
		Description:      patch.Description,
		ClearDescription: patch.ClearDescription,
	})
	if err != nil {
		return Todo{}, notFoundOr(err, "update todo")
	}

	s.logs.Debugw("todo updated", "user_id", user.ID, "todo_id", id)

	return toTodo(todo), nil
}

// Delete removes the todo and returns it as it was.
func (s *TodoService) Delete(ctx context.Context, user User, id int64) (Todo, error) {
	todo, err := s.todos.DeleteTodo(ctx, id, user.ID)
	if err != nil {
		return Todo{}, notFoundOr(err, "delete todo")
	}

	s.logs.Debugw("todo deleted", "user_id", user.ID, "todo_id", id)

	return toTodo(todo), nil
}

func notFoundOr(err error, op string) error {
	if errors.Is(err, repository.ErrTodoNotFound) {
		return ErrTodoNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

func toTodo(t repository.Todo) Todo {
	return Todo{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		UserID:      t.UserID,
	}
}
