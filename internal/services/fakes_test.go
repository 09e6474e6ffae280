package services

import (
	"context"

	"screamy/internal/domain/notification"
	"screamy/internal/domain/scream"
	"screamy/internal/domain/user"
	screamy_errors "screamy/pkg/errors"

	"github.com/google/uuid"
)

// --- Fakes ---

type fakeUserRepo struct {
	identities map[string]user.Identity // by email
	users      map[string]user.User     // by handle

	identityCreates int
	imageURLUpdates []string
	detailsUpdates  []user.Details
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		identities: map[string]user.Identity{},
		users:      map[string]user.User{},
	}
}

func (f *fakeUserRepo) CreateIdentity(ctx context.Context, ident *user.Identity) error {
	f.identityCreates++
	if _, ok := f.identities[ident.Email]; ok {
		return screamy_errors.ErrAlreadyExists
	}
	f.identities[ident.Email] = *ident
	return nil
}

func (f *fakeUserRepo) GetIdentityByEmail(ctx context.Context, email string) (user.Identity, error) {
	ident, ok := f.identities[email]
	if !ok {
		return user.Identity{}, screamy_errors.ErrNotFound
	}
	return ident, nil
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, u *user.User) error {
	if _, ok := f.users[u.Handle]; ok {
		return screamy_errors.ErrAlreadyExists
	}
	f.users[u.Handle] = *u
	return nil
}

func (f *fakeUserRepo) GetUserByHandle(ctx context.Context, handle string) (user.User, error) {
	u, ok := f.users[handle]
	if !ok {
		return user.User{}, screamy_errors.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetUserByIdentityID(ctx context.Context, identityID uuid.UUID) (user.User, error) {
	for _, u := range f.users {
		if u.UserID == identityID {
			return u, nil
		}
	}
	return user.User{}, screamy_errors.ErrNotFound
}

func (f *fakeUserRepo) UpdateDetails(ctx context.Context, handle string, details user.Details) error {
	u, ok := f.users[handle]
	if !ok {
		return screamy_errors.ErrNotFound
	}
	f.detailsUpdates = append(f.detailsUpdates, details)
	if details.Bio != "" {
		u.Bio = details.Bio
	}
	if details.Location != "" {
		u.Location = details.Location
	}
	if details.Website != "" {
		u.Website = details.Website
	}
	f.users[handle] = u
	return nil
}

func (f *fakeUserRepo) UpdateImageURL(ctx context.Context, handle string, imageURL string) error {
	u, ok := f.users[handle]
	if !ok {
		return screamy_errors.ErrNotFound
	}
	u.ImageURL = imageURL
	f.users[handle] = u
	f.imageURLUpdates = append(f.imageURLUpdates, imageURL)
	return nil
}

type fakeScreamRepo struct {
	screams map[string][]scream.Scream
	likes   map[string][]scream.Like

	screamQueries int
}

func newFakeScreamRepo() *fakeScreamRepo {
	return &fakeScreamRepo{
		screams: map[string][]scream.Scream{},
		likes:   map[string][]scream.Like{},
	}
}

func (f *fakeScreamRepo) GetByUserHandle(ctx context.Context, handle string) ([]scream.Scream, error) {
	f.screamQueries++
	return f.screams[handle], nil
}

func (f *fakeScreamRepo) GetLikesByUserHandle(ctx context.Context, handle string) ([]scream.Like, error) {
	return f.likes[handle], nil
}

type fakeNotificationRepo struct {
	recent []notification.Notification

	markReadCalls [][]uuid.UUID
	markReadErr   error
}

func (f *fakeNotificationRepo) GetRecentByRecipient(ctx context.Context, recipient string, limit int) ([]notification.Notification, error) {
	if len(f.recent) > limit {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}

func (f *fakeNotificationRepo) MarkRead(ctx context.Context, recipient string, ids []uuid.UUID) error {
	if f.markReadErr != nil {
		return f.markReadErr
	}
	f.markReadCalls = append(f.markReadCalls, ids)
	return nil
}

type fakeStorage struct {
	uploads map[string]string // key -> content type
	failPut bool
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{uploads: map[string]string{}}
}

func (f *fakeStorage) UploadFile(ctx context.Context, key, filePath, contentType string) error {
	if f.failPut {
		return screamy_errors.ErrInvalidInput
	}
	f.uploads[key] = contentType
	return nil
}

func (f *fakeStorage) FileURL(key string) string {
	return "https://cdn.test/" + key
}
