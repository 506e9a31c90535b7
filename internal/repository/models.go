package repository

type User struct {
	ID             int64  `gorm:"primaryKey"`
	Email          string `gorm:"type:varchar(320);uniqueIndex;not null"`
	HashedPassword string `gorm:"not null"`

	Todos []Todo `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

type Todo struct {
	ID          int64   `gorm:"primaryKey"`
	Title       string  `gorm:"not null"`
	Description *string // nullable
	UserID      int64   `gorm:"not null;index"`
}

// TodoPatch carries the fields of a partial update; nil means "leave unchanged".
// ClearDescription with a nil Description sets the column to NULL.
type TodoPatch struct {
	Title            *string
	Description      *string
	ClearDescription bool
}

func (p TodoPatch) fields() map[string]any {
	fields := make(map[string]any, 2)
	if p.Title != nil {
		fields["title"] = *p.Title
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	} else if p.ClearDescription {
		fields["description"] = nil
	}
	return fields
}
