package models

import "time"

// SocialAccount is a connected platform account the dashboard reads metrics
// from and publishes scheduled posts to. AccessToken is the platform bearer
// token, stored as-is.
type SocialAccount struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Platform    string    `gorm:"uniqueIndex;size:64;not null" json:"platform"`
	Handle      string    `gorm:"size:255;not null" json:"handle"`
	AccessToken string    `gorm:"size:512;not null" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

const (
	PostStatusPending   = "pending"
	PostStatusPublished = "published"
	PostStatusFailed    = "failed"
)

// ScheduledPost is a DB-backed publish job. The publisher picks up pending
// rows whose publish_at has passed; a failed attempt records the error and
// stays pending until MaxPublishAttempts is reached.
type ScheduledPost struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	AccountID   uint       `gorm:"index;not null" json:"account_id"`
	Body        string     `gorm:"type:text;not null" json:"body"`
	PublishAt   time.Time  `gorm:"index;not null" json:"publish_at"`
	Status      string     `gorm:"size:32;not null;default:pending" json:"status"`
	Attempts    int        `gorm:"not null;default:0" json:"attempts"`
	LastError   string     `gorm:"size:1024" json:"last_error,omitempty"`
	ExternalID  string     `gorm:"size:191" json:"external_id,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
