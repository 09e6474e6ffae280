package services

import (
	"context"
	"testing"

	"screamy/config"
	screamy_errors "screamy/pkg/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const defaultImageURL = "https://cdn.test/blank-profile-picture.png"

func newTestAuthService(repo *fakeUserRepo) *AuthService {
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiryMin: 60}
	return NewAuthService(repo, cfg, defaultImageURL)
}

func TestSignupCreatesIdentityAndProfile(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	token, err := svc.Signup(context.Background(), SignupInput{
		Email:    "a@b.com",
		Password: "x",
		Handle:   "alice",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	ident, err := repo.GetIdentityByEmail(context.Background(), "a@b.com")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, ident.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(ident.PasswordHash), []byte("x")))

	profile, err := repo.GetUserByHandle(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", profile.Email)
	assert.Equal(t, ident.ID, profile.UserID)
	assert.Equal(t, defaultImageURL, profile.ImageURL)
	assert.False(t, profile.CreatedAt.IsZero())
}

func TestSignupTakenHandleShortCircuits(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Signup(context.Background(), SignupInput{Email: "a@b.com", Password: "x", Handle: "alice"})
	require.NoError(t, err)
	createsAfterFirst := repo.identityCreates

	_, err = svc.Signup(context.Background(), SignupInput{Email: "other@b.com", Password: "x", Handle: "alice"})
	assert.ErrorIs(t, err, screamy_errors.ErrHandleTaken)

	// The existence check must fire before identity creation is attempted.
	assert.Equal(t, createsAfterFirst, repo.identityCreates)
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Signup(context.Background(), SignupInput{Email: "a@b.com", Password: "x", Handle: "alice"})
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), SignupInput{Email: "a@b.com", Password: "x", Handle: "bob"})
	assert.ErrorIs(t, err, screamy_errors.ErrEmailTaken)
}

func TestLoginIssuesToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Signup(context.Background(), SignupInput{Email: "a@b.com", Password: "secret", Handle: "alice"})
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), LoginInput{Email: "a@b.com", Password: "secret"})
	require.NoError(t, err)

	claims, err := svc.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Handle)
	assert.NotEmpty(t, claims.UserID)
}

func TestLoginWrongPasswordIsGeneric(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Signup(context.Background(), SignupInput{Email: "a@b.com", Password: "secret", Handle: "alice"})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), LoginInput{Email: "a@b.com", Password: "wrong"})
	assert.ErrorIs(t, err, screamy_errors.ErrWrongCredentials)
}

func TestLoginUnknownEmailIsGeneric(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), LoginInput{Email: "nobody@b.com", Password: "x"})
	// Unknown user and wrong password must be indistinguishable.
	assert.ErrorIs(t, err, screamy_errors.ErrWrongCredentials)
}

func TestParseAccessTokenRejectsGarbage(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	_, err := svc.ParseAccessToken("")
	assert.ErrorIs(t, err, screamy_errors.ErrUnauthorized)

	_, err = svc.ParseAccessToken("not.a.jwt")
	assert.ErrorIs(t, err, screamy_errors.ErrUnauthorized)
}

func TestParseAccessTokenRejectsForeignSecret(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	other := NewAuthService(repo, &config.Config{JWTSecret: "other-secret", JWTExpiryMin: 60}, defaultImageURL)

	token, err := svc.Signup(context.Background(), SignupInput{Email: "a@b.com", Password: "x", Handle: "alice"})
	require.NoError(t, err)

	_, err = other.ParseAccessToken(token)
	assert.ErrorIs(t, err, screamy_errors.ErrUnauthorized)
}

func TestAuthContextRoundTrip(t *testing.T) {
	id := uuid.New()
	ctx := WithAuthContext(context.Background(), "alice", id)

	handle, ok := HandleFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "alice", handle)

	gotID, ok := UserIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, id, gotID)

	_, ok = HandleFromContext(context.Background())
	assert.False(t, ok)
}
