package services

import (
	"context"

	"screamy/internal/domain/notification"
	"screamy/internal/domain/scream"
	"screamy/internal/domain/user"
	"screamy/internal/repository"
)

// recentNotifications is how many notifications the self-profile reader
// returns, newest first.
const recentNotifications = 10

type UserService struct {
	userRepo   repository.UserRepository
	screamRepo repository.ScreamRepository
	notifRepo  repository.NotificationRepository
}

func NewUserService(userRepo repository.UserRepository, screamRepo repository.ScreamRepository, notifRepo repository.NotificationRepository) *UserService {
	return &UserService{
		userRepo:   userRepo,
		screamRepo: screamRepo,
		notifRepo:  notifRepo,
	}
}

// PublicProfile is the response body of GET /user/:handle.
type PublicProfile struct {
	User    user.User       `json:"user"`
	Screams []scream.Scream `json:"screams"`
}

// OwnProfile is the response body of GET /user.
type OwnProfile struct {
	Credentials   user.User                   `json:"credentials"`
	Likes         []scream.Like               `json:"likes"`
	Notifications []notification.Notification `json:"notifications"`
}

// UpdateDetails merges the reduced detail fields into the caller's own
// profile. The handle comes from the authenticated context, never from the
// request body.
func (s *UserService) UpdateDetails(ctx context.Context, handle string, details user.Details) error {
	return s.userRepo.UpdateDetails(ctx, handle, details)
}

// GetPublicProfile fetches a profile and the owner's screams, newest first.
// A missing profile short-circuits before the screams query is issued.
func (s *UserService) GetPublicProfile(ctx context.Context, handle string) (PublicProfile, error) {
	u, err := s.userRepo.GetUserByHandle(ctx, handle)
	if err != nil {
		return PublicProfile{}, err
	}

	screams, err := s.screamRepo.GetByUserHandle(ctx, handle)
	if err != nil {
		return PublicProfile{}, err
	}

	return PublicProfile{
		User:    u,
		Screams: screams,
	}, nil
}

// GetOwnProfile fetches the caller's profile, likes and the 10 most recent
// notifications. The three fetches are sequential; a missing profile stops
// the chain.
func (s *UserService) GetOwnProfile(ctx context.Context, handle string) (OwnProfile, error) {
	u, err := s.userRepo.GetUserByHandle(ctx, handle)
	if err != nil {
		return OwnProfile{}, err
	}

	likes, err := s.screamRepo.GetLikesByUserHandle(ctx, handle)
	if err != nil {
		return OwnProfile{}, err
	}

	notifications, err := s.notifRepo.GetRecentByRecipient(ctx, handle, recentNotifications)
	if err != nil {
		return OwnProfile{}, err
	}

	return OwnProfile{
		Credentials:   u,
		Likes:         likes,
		Notifications: notifications,
	}, nil
}
