package payload

import (
	"todoapi/internal/core"

	"github.com/jellydator/validation"
)

type CreateTodoRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

func (c CreateTodoRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Title, validation.Required),
	)
}

func (c CreateTodoRequest) ToDraft() core.TodoDraft {
	return core.TodoDraft{
		Title:       c.Title,
		Description: c.Description,
	}
}

// UpdateTodoRequest changes only the keys present in the body. An explicit null description
// clears it; a title may be omitted but never null or empty.
type UpdateTodoRequest struct {
	Title       OptionalString `json:"title"`
	Description OptionalString `json:"description"`
}

func (u UpdateTodoRequest) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Title, validation.By(presentNotBlank)),
	)
}

func (u UpdateTodoRequest) ToPatch() core.TodoPatch {
	return core.TodoPatch{
		Title:            u.Title.Value,
		Description:      u.Description.Value,
		ClearDescription: u.Description.Set && u.Description.Value == nil,
	}
}

type TodoResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	UserID      int64   `json:"user_id"`
}

func NewTodoResponse(todo core.Todo) TodoResponse {
	return TodoResponse{
		ID:          todo.ID,
		Title:       todo.Title,
		Description: todo.Description,
		UserID:      todo.UserID,
	}
}

func NewTodoListResponse(todos []core.Todo) []TodoResponse {
	resp := make([]TodoResponse, 0, len(todos))
	for _, t := range todos {
		resp = append(resp, NewTodoResponse(t))
	}
	return resp
}
