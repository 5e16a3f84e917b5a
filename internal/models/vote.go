package models

import (
	"time"
)

// One vote row per (post, user). Re-voting overwrites Direction, it never
// inserts a second row; the unique index backs the upsert.
type Vote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_post_voter" json:"post_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_post_voter" json:"user_id"`
	Direction int       `gorm:"not null" json:"direction"` // -1, 0 or 1
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CommentVote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CommentID uint      `gorm:"not null;uniqueIndex:idx_comment_voter" json:"comment_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_comment_voter" json:"user_id"`
	Direction int       `gorm:"not null" json:"direction"` // -1, 0 or 1
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
