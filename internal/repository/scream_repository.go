package repository

import (
	"context"

	"screamy/internal/domain/scream"

	"gorm.io/gorm"
)

type PostgresScreamRepository struct {
	db *gorm.DB
}

func NewScreamRepository(db *gorm.DB) ScreamRepository {
	return &PostgresScreamRepository{db: db}
}

// GetByUserHandle returns all screams owned by the handle, newest first.
func (r *PostgresScreamRepository) GetByUserHandle(ctx context.Context, handle string) ([]scream.Scream, error) {
	var screams []scream.Scream
	err := r.db.WithContext(ctx).
		Where("user_handle = ?", handle).
		Order("created_at DESC").
		Find(&screams).Error
	if err != nil {
		return nil, err
	}
	return screams, nil
}

func (r *PostgresScreamRepository) GetLikesByUserHandle(ctx context.Context, handle string) ([]scream.Like, error) {
	var likes []scream.Like
	err := r.db.WithContext(ctx).
		Where("user_handle = ?", handle).
		Find(&likes).Error
	if err != nil {
		return nil, err
	}
	return likes, nil
}
