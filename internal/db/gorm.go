package db

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicateKey = errors.New("duplicate key")

// Conditions are column equality predicates joined with AND.
type Conditions map[string]any

type GormDB struct {
	db *gorm.DB
}

func NewPostgresDB(dsn string, logs *zap.SugaredLogger) (*GormDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         NewGormLogger(logs),
		TranslateError: true,
	})
	if err != nil {
		return &GormDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return NewGormDB(db), nil
}

func NewGormDB(db *gorm.DB) *GormDB {
	return &GormDB{
		db: db,
	}
}

func (g *GormDB) MigrateModels(models ...any) error {
	err := g.db.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// Insert creates record and fills in its generated columns.
func (g *GormDB) Insert(ctx context.Context, record any) error {
	err := g.db.WithContext(ctx).Create(record).Error
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert record: %w", ErrDuplicateKey)
		}
		return fmt.Errorf("insert record: %w", err)
	}

	return nil
}

func (g *GormDB) GetOneBy(ctx context.Context, conds Conditions, dest any) error {
	err := g.db.WithContext(ctx).Where(map[string]any(conds)).First(dest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %v: %w", conds.columns(), err)
	}

	return nil
}

// GetAllBy loads every matching row into dest in primary key order.
func (g *GormDB) GetAllBy(ctx context.Context, conds Conditions, dest any) error {
	err := g.db.WithContext(ctx).Where(map[string]any(conds)).Order("id").Find(dest).Error
	if err != nil {
		return fmt.Errorf("getting records by %v: %w", conds.columns(), err)
	}

	return nil
}

// UpdateOneBy locks the single row matching conds, applies fields to it and reloads it into dest.
// An empty fields map only loads the row.
func (g *GormDB) UpdateOneBy(ctx context.Context, conds Conditions, fields map[string]any, dest any) error {
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := lockOne(tx, conds, dest)
		if err != nil {
			return err
		}

		if len(fields) == 0 {
			return nil
		}

		err = tx.Model(dest).Where(map[string]any(conds)).Updates(fields).Error
		if err != nil {
			return fmt.Errorf("update record: %w", err)
		}

		return tx.Where(map[string]any(conds)).First(dest).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("updating record by %v: %w", conds.columns(), err)
	}

	return nil
}

// DeleteOneBy removes the single row matching conds and leaves its prior state in dest.
func (g *GormDB) DeleteOneBy(ctx context.Context, conds Conditions, dest any) error {
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := lockOne(tx, conds, dest)
		if err != nil {
			return err
		}

		res := tx.Where(map[string]any(conds)).Delete(dest)
		if res.Error != nil {
			return fmt.Errorf("delete record: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("deleting record by %v: %w", conds.columns(), err)
	}

	return nil
}

func lockOne(tx *gorm.DB, conds Conditions, dest any) error {
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(map[string]any(conds)).
		First(dest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("lock record: %w", err)
	}

	return nil
}

func (c Conditions) columns() []string {
	cols := make([]string, 0, len(c))
	for col := range c {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}
