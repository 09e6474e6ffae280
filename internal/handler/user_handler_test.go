package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"screamy/internal/domain/notification"
	"screamy/internal/domain/scream"
	"screamy/internal/domain/user"
	"screamy/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserRouter(userRepo *memUserRepo, screamRepo *memScreamRepo, notifRepo *memNotificationRepo, handle string) *gin.Engine {
	svc := services.NewUserService(userRepo, screamRepo, notifRepo)
	h := NewUserHandler(svc)

	r := gin.New()
	r.GET("/user/:handle", h.GetUser)
	r.GET("/user", authAs(handle), h.GetOwnUser)
	r.POST("/user", authAs(handle), h.UpdateDetails)
	return r
}

func TestGetUserEndpoint(t *testing.T) {
	userRepo := newMemUserRepo()
	userRepo.users["alice"] = user.User{Handle: "alice", Email: "a@b.com", Bio: "hi"}

	screamRepo := newMemScreamRepo()
	screamRepo.screams["alice"] = []scream.Scream{
		{ID: uuid.New(), UserHandle: "alice", Body: "first", CreatedAt: time.Now()},
	}

	r := newUserRouter(userRepo, screamRepo, &memNotificationRepo{}, "alice")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/user/alice", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		User    user.User       `json:"user"`
		Screams []scream.Scream `json:"screams"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "alice", body.User.Handle)
	require.Len(t, body.Screams, 1)
	assert.Equal(t, "first", body.Screams[0].Body)
}

func TestGetUserEndpointUnknownHandle(t *testing.T) {
	screamRepo := newMemScreamRepo()
	r := newUserRouter(newMemUserRepo(), screamRepo, &memNotificationRepo{}, "alice")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/user/ghost", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decodeBody(t, w)["error"])
	assert.Zero(t, screamRepo.screamQueries)
}

func TestGetOwnUserEndpoint(t *testing.T) {
	userRepo := newMemUserRepo()
	userRepo.users["alice"] = user.User{Handle: "alice", Email: "a@b.com"}

	screamRepo := newMemScreamRepo()
	screamRepo.likes["alice"] = []scream.Like{{UserHandle: "alice", ScreamID: uuid.New()}}

	notifRepo := &memNotificationRepo{
		recent: []notification.Notification{
			{ID: uuid.New(), Recipient: "alice", Sender: "bob", Type: "like"},
		},
	}

	r := newUserRouter(userRepo, screamRepo, notifRepo, "alice")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/user", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Credentials   user.User                   `json:"credentials"`
		Likes         []scream.Like               `json:"likes"`
		Notifications []notification.Notification `json:"notifications"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "alice", body.Credentials.Handle)
	assert.Len(t, body.Likes, 1)
	assert.Len(t, body.Notifications, 1)
}

func TestGetOwnUserEndpointMissingProfile(t *testing.T) {
	r := newUserRouter(newMemUserRepo(), newMemScreamRepo(), &memNotificationRepo{}, "ghost")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/user", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decodeBody(t, w)["error"])
}

func TestUpdateDetailsEndpoint(t *testing.T) {
	userRepo := newMemUserRepo()
	userRepo.users["alice"] = user.User{Handle: "alice", Bio: "old"}

	r := newUserRouter(userRepo, newMemScreamRepo(), &memNotificationRepo{}, "alice")

	raw, err := json.Marshal(gin.H{
		"bio":     "  new bio  ",
		"website": "example.com",
		// Unknown fields are dropped, never persisted.
		"handle": "mallory",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/user", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Details added successfully", decodeBody(t, w)["message"])

	u := userRepo.users["alice"]
	assert.Equal(t, "new bio", u.Bio)
	assert.Equal(t, "http://example.com", u.Website)
	assert.Equal(t, "alice", u.Handle)
}
