package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Follow records that one user follows another. A user cannot follow
// themselves, and the (follower, following) pair is unique; the composite
// index backs the service-level pre-check under concurrency. Unfollows are
// hard deletes so the pair can be re-created later.
type Follow struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FollowerID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_follower_following" json:"follower_id"`
	FollowingID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_follower_following" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// BeforeCreate assigns a UUID primary key if one was not provided.
func (f *Follow) BeforeCreate(_ *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
