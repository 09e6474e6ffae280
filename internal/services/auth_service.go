package services

import (
	"context"
	"errors"
	"time"

	"screamy/config"
	"screamy/internal/domain/user"
	"screamy/internal/repository"
	screamy_errors "screamy/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo        repository.UserRepository
	jwtSecret       []byte
	accessTTL       time.Duration
	defaultImageURL string
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config, defaultImageURL string) *AuthService {
	return &AuthService{
		userRepo:        userRepo,
		jwtSecret:       []byte(cfg.JWTSecret),
		accessTTL:       time.Duration(cfg.JWTExpiryMin) * time.Minute,
		defaultImageURL: defaultImageURL,
	}
}

type SignupInput struct {
	Email    string
	Password string
	Handle   string
}

type LoginInput struct {
	Email    string
	Password string
}

type AccessClaims struct {
	Handle string `json:"handle"`
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// Signup provisions an identity record and a profile document for a new
// handle and returns a fresh session token. The handle existence check and
// the identity creation are not transactional with each other: two
// concurrent signups for the same handle can both pass the check before
// either writes. Known limitation, accepted for this scope.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (string, error) {
	if _, err := s.userRepo.GetUserByHandle(ctx, in.Handle); err == nil {
		return "", screamy_errors.ErrHandleTaken
	} else if !errors.Is(err, screamy_errors.ErrNotFound) {
		return "", err
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return "", err
	}

	ident := &user.Identity{
		ID:           uuid.New(),
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := s.userRepo.CreateIdentity(ctx, ident); err != nil {
		if errors.Is(err, screamy_errors.ErrAlreadyExists) {
			return "", screamy_errors.ErrEmailTaken
		}
		return "", err
	}

	token, err := s.newAccessToken(in.Handle, ident.ID)
	if err != nil {
		return "", err
	}

	profile := &user.User{
		Handle:    in.Handle,
		Email:     in.Email,
		UserID:    ident.ID,
		ImageURL:  s.defaultImageURL,
		CreatedAt: time.Now(),
	}
	if err := s.userRepo.CreateUser(ctx, profile); err != nil {
		return "", err
	}

	return token, nil
}

// Login verifies the credentials and returns a fresh session token. Every
// failure mode collapses into ErrWrongCredentials so the response cannot
// leak which field was wrong.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (string, error) {
	ident, err := s.userRepo.GetIdentityByEmail(ctx, in.Email)
	if err != nil {
		return "", screamy_errors.ErrWrongCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(ident.PasswordHash), []byte(in.Password)); err != nil {
		return "", screamy_errors.ErrWrongCredentials
	}

	u, err := s.userRepo.GetUserByIdentityID(ctx, ident.ID)
	if err != nil {
		return "", screamy_errors.ErrWrongCredentials
	}

	return s.newAccessToken(u.Handle, ident.ID)
}

func (s *AuthService) ParseAccessToken(tokenString string) (AccessClaims, error) {
	if tokenString == "" {
		return AccessClaims{}, screamy_errors.ErrUnauthorized
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, screamy_errors.ErrUnauthorized
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return AccessClaims{}, screamy_errors.ErrUnauthorized
	}

	claims, ok := parsed.Claims.(*AccessClaims)
	if !ok || !parsed.Valid {
		return AccessClaims{}, screamy_errors.ErrUnauthorized
	}

	return *claims, nil
}

func (s *AuthService) newAccessToken(handle string, userID uuid.UUID) (string, error) {
	now := time.Now()

	claims := AccessClaims{
		Handle: handle,
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   handle,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

type ctxKey string

var handleKey ctxKey = "handle"
var userIDKey ctxKey = "user_id"

func WithAuthContext(ctx context.Context, handle string, userID uuid.UUID) context.Context {
	ctx = context.WithValue(ctx, handleKey, handle)
	ctx = context.WithValue(ctx, userIDKey, userID)
	return ctx
}

func HandleFromContext(ctx context.Context) (string, bool) {
	value := ctx.Value(handleKey)
	if value == nil {
		return "", false
	}
	handle, ok := value.(string)
	return handle, ok
}

func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	value := ctx.Value(userIDKey)
	if value == nil {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}
