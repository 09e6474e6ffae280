package repository

import (
	"context"

	"github.com/google/uuid"

	"screamy/internal/domain/notification"
	"screamy/internal/domain/scream"
	"screamy/internal/domain/user"
)

type UserRepository interface {
	CreateIdentity(ctx context.Context, ident *user.Identity) error
	GetIdentityByEmail(ctx context.Context, email string) (user.Identity, error)

	CreateUser(ctx context.Context, u *user.User) error
	GetUserByHandle(ctx context.Context, handle string) (user.User, error)
	GetUserByIdentityID(ctx context.Context, identityID uuid.UUID) (user.User, error)
	UpdateDetails(ctx context.Context, handle string, details user.Details) error
	UpdateImageURL(ctx context.Context, handle string, imageURL string) error
}

type ScreamRepository interface {
	GetByUserHandle(ctx context.Context, handle string) ([]scream.Scream, error)
	GetLikesByUserHandle(ctx context.Context, handle string) ([]scream.Like, error)
}

type NotificationRepository interface {
	GetRecentByRecipient(ctx context.Context, recipient string, limit int) ([]notification.Notification, error)
	MarkRead(ctx context.Context, recipient string, ids []uuid.UUID) error
}
