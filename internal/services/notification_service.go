package services

import (
	"context"

	"screamy/internal/repository"
	screamy_errors "screamy/pkg/errors"

	"github.com/google/uuid"
)

type NotificationService struct {
	notifRepo repository.NotificationRepository
}

func NewNotificationService(notifRepo repository.NotificationRepository) *NotificationService {
	return &NotificationService{notifRepo: notifRepo}
}

// MarkRead flips read=true on the referenced notifications in one
// all-or-nothing commit. Ids are parsed up front so a malformed id rejects
// the batch before anything is written; the repository scopes the update to
// the caller, so a foreign id aborts the batch too.
func (s *NotificationService) MarkRead(ctx context.Context, handle string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	parsed := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			return screamy_errors.ErrInvalidInput
		}
		parsed = append(parsed, id)
	}

	return s.notifRepo.MarkRead(ctx, handle, parsed)
}
