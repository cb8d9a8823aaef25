package repository

import (
	"context"

	"gorm.io/gorm"
)

// SequenceRepository hands out gapless-enough serial numbers per
// (scope, period). Next must be called inside the transaction that
// creates the numbered row so a rolled-back creation releases nothing
// another caller could have observed.
type SequenceRepository interface {
	Next(ctx context.Context, scope, period string) (int64, error)
}

type sequenceRepo struct {
	db *gorm.DB
}

// NewSequenceRepo creates the gorm-backed SequenceRepository.
func NewSequenceRepo(db *gorm.DB) SequenceRepository {
	return &sequenceRepo{db: db}
}

func (r *sequenceRepo) Next(ctx context.Context, scope, period string) (int64, error) {
	var value int64
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO sequences (scope, period, value)
		VALUES (?, ?, 1)
		ON CONFLICT (scope, period)
		DO UPDATE SET value = sequences.value + 1
		RETURNING value`,
		scope, period,
	).Scan(&value).Error
	if err != nil {
		return 0, err
	}
	return value, nil
}
