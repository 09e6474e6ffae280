package repository

import (
	"context"
	"errors"

	"screamy/internal/domain/user"
	screamy_errors "screamy/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostgresUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateIdentity(ctx context.Context, ident *user.Identity) error {
	res := r.db.WithContext(ctx).Create(ident)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return screamy_errors.ErrAlreadyExists
		}
		return res.Error
	}
	return nil
}

func (r *PostgresUserRepository) GetIdentityByEmail(ctx context.Context, email string) (user.Identity, error) {
	var ident user.Identity
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&ident).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.Identity{}, screamy_errors.ErrNotFound
		}
		return user.Identity{}, err
	}
	return ident, nil
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, u *user.User) error {
	res := r.db.WithContext(ctx).Create(u)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return screamy_errors.ErrAlreadyExists
		}
		return res.Error
	}
	return nil
}

func (r *PostgresUserRepository) GetUserByHandle(ctx context.Context, handle string) (user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).
		Where("handle = ?", handle).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, screamy_errors.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func (r *PostgresUserRepository) GetUserByIdentityID(ctx context.Context, identityID uuid.UUID) (user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).
		Where("user_id = ?", identityID).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, screamy_errors.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

// UpdateDetails merge-updates only the whitelisted profile fields that were
// actually submitted; absent fields keep their stored values.
func (r *PostgresUserRepository) UpdateDetails(ctx context.Context, handle string, details user.Details) error {
	updates := map[string]interface{}{}
	if details.Bio != "" {
		updates["bio"] = details.Bio
	}
	if details.Location != "" {
		updates["location"] = details.Location
	}
	if details.Website != "" {
		updates["website"] = details.Website
	}
	if len(updates) == 0 {
		return nil
	}

	res := r.db.WithContext(ctx).
		Model(&user.User{}).
		Where("handle = ?", handle).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return screamy_errors.ErrNotFound
	}
	return nil
}

func (r *PostgresUserRepository) UpdateImageURL(ctx context.Context, handle string, imageURL string) error {
	res := r.db.WithContext(ctx).
		Model(&user.User{}).
		Where("handle = ?", handle).
		Update("image_url", imageURL)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return screamy_errors.ErrNotFound
	}
	return nil
}
