package scream

import (
	"time"

	"github.com/google/uuid"
)

// Scream represents the screams table. Screams are owned by the posts
// subsystem and are read-only here.
type Scream struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"screamId"`
	UserHandle   string    `gorm:"index;not null" json:"userHandle"`
	Body         string    `json:"body"`
	UserImage    string    `json:"userImage"`
	LikeCount    int       `json:"likeCount"`
	CommentCount int       `json:"commentCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (Scream) TableName() string {
	return "screams"
}

// Like links a user handle to a scream. Read-only here.
type Like struct {
	UserHandle string    `gorm:"index;not null" json:"userHandle"`
	ScreamID   uuid.UUID `gorm:"type:uuid;not null" json:"screamId"`
}

func (Like) TableName() string {
	return "likes"
}
