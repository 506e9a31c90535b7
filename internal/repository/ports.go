package repository

import (
	"context"

	"todoapi/internal/db"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateModels(models ...any) error
	Insert(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, conds db.Conditions, dest any) error
	GetAllBy(ctx context.Context, conds db.Conditions, dest any) error
	UpdateOneBy(ctx context.Context, conds db.Conditions, fields map[string]any, dest any) error
	DeleteOneBy(ctx context.Context, conds db.Conditions, dest any) error
}
