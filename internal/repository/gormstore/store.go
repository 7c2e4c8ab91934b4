package gormstore

import (
	"context"
	"errors"
	"fmt"

	"go-jobboard-api/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func mapError(err error, op string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", op, domain.ErrAlreadyExists)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func create(ctx context.Context, db *gorm.DB, value any, op string) error {
	if err := db.WithContext(ctx).Omit(clause.Associations).Create(value).Error; err != nil {
		return mapError(err, op)
	}
	return nil
}

// update writes the given columns and reports ErrNotFound when no row matched.
func update(ctx context.Context, db *gorm.DB, model any, id string, values map[string]any, op string) error {
	result := db.WithContext(ctx).Model(model).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return mapError(result.Error, op)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func remove(ctx context.Context, db *gorm.DB, model any, id string, op string) error {
	result := db.WithContext(ctx).Delete(model, "id = ?", id)
	if result.Error != nil {
		return mapError(result.Error, op)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func exists(ctx context.Context, db *gorm.DB, model any, op string, query string, args ...any) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(model).Where(query, args...).Limit(1).Count(&count).Error; err != nil {
		return false, mapError(err, op)
	}
	return count > 0, nil
}

// toDomainList converts rows, failing on the first row that breaks an entity
// invariant.
func toDomainList[M any, E any](rows []M, convert func(M) (E, error)) ([]E, error) {
	out := make([]E, 0, len(rows))
	for _, row := range rows {
		e, err := convert(row)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
