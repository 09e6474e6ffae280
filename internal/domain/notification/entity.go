package notification

import (
	"time"

	"github.com/google/uuid"
)

// Notification represents the notifications table. Only the read flag is
// mutated in this service; once read it stays read (re-marking is a no-op).
type Notification struct {
	// gen_random_uuid is built into Postgres 13+, so AutoMigrate needs no
	// extension bootstrap.
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"notificationId"`
	Recipient string    `gorm:"index;not null" json:"recipient"`
	Sender    string    `gorm:"not null" json:"sender"`
	ScreamID  uuid.UUID `gorm:"type:uuid" json:"screamId"`
	Type      string    `json:"type"`
	Read      bool      `gorm:"default:false" json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Notification) TableName() string {
	return "notifications"
}
