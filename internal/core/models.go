package core

// User is the authenticated caller. The password hash never leaves the repository layer.
type User struct {
	ID    int64
	Email string
}

type Todo struct {
	ID          int64
	Title       string
	Description *string
	UserID      int64
}

// TodoDraft holds the fields of a todo that is about to be created.
type TodoDraft struct {
	Title       string
	Description *string
}

// TodoPatch holds the fields of a partial update; nil fields keep their stored value unless
// ClearDescription asks for the description to be removed.
type TodoPatch struct {
	Title            *string
	Description      *string
	ClearDescription bool
}
