package repository

import (
	"context"

	"screamy/internal/domain/notification"
	screamy_errors "screamy/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostgresNotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &PostgresNotificationRepository{db: db}
}

func (r *PostgresNotificationRepository) GetRecentByRecipient(ctx context.Context, recipient string, limit int) ([]notification.Notification, error) {
	var notifications []notification.Notification
	err := r.db.WithContext(ctx).
		Where("recipient = ?", recipient).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead flips read=true on every referenced notification in one
// transaction. An id that does not match a notification addressed to the
// recipient rolls the whole batch back, so a failed batch changes nothing.
func (r *PostgresNotificationRepository) MarkRead(ctx context.Context, recipient string, ids []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, id := range ids {
			res := tx.Model(&notification.Notification{}).
				Where("id = ? AND recipient = ?", id, recipient).
				Update("read", true)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return screamy_errors.ErrNotFound
			}
		}
		return nil
	})
}
