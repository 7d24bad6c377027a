package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Like marks a user's like on either a thread or a comment. Exactly one of
// ThreadID and CommentID must be set; the service layer rejects both-set and
// both-null before anything reaches storage. A user can like a given target
// at most once. Unlikes are hard deletes so the unique indexes stay usable
// after a like/unlike/like cycle.
type Like struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_like_user_thread;uniqueIndex:idx_like_user_comment" json:"user_id"`
	ThreadID  *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_like_user_thread" json:"thread_id,omitempty"`
	CommentID *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_like_user_comment" json:"comment_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// BeforeCreate assigns a UUID primary key if one was not provided.
func (l *Like) BeforeCreate(_ *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
