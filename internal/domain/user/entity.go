package user

import (
	"time"

	"github.com/google/uuid"
)

// Identity represents the identities table. It holds the login credentials
// and is created together with the profile at signup, though the two writes
// are not transactional.
type Identity struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (Identity) TableName() string {
	return "identities"
}

// User represents the users table, keyed by the user-chosen handle.
type User struct {
	Handle    string    `gorm:"primaryKey" json:"handle"`
	Email     string    `gorm:"not null" json:"email"`
	UserID    uuid.UUID `gorm:"type:uuid;not null" json:"userId"`
	ImageURL  string    `json:"imageUrl"`
	Bio       string    `json:"bio,omitempty"`
	Location  string    `json:"location,omitempty"`
	Website   string    `json:"website,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}

// Details is the whitelisted subset of profile fields a user may change
// after signup. Empty fields are left untouched by a merge update.
type Details struct {
	Bio      string
	Location string
	Website  string
}

func (d Details) Empty() bool {
	return d.Bio == "" && d.Location == "" && d.Website == ""
}
