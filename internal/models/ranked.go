package models

import (
	"time"
)

// Read-side records. Flat joined rows from the store are mapped into these
// nested shapes before leaving the repository; markdown and emoji rendering
// has already been applied to them.

type PostAuthor struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PostSubreddit struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"` // Sanitized HTML
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type RankedPost struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	URL          string    `json:"url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	VoteScore    int64     `json:"vote_score"`
	TopScore     int64     `json:"top_score"`
	HotScore     float64   `json:"hot_score"`
	NumUpvotes   int64     `json:"num_upvotes"`
	NumDownvotes int64     `json:"num_downvotes"`

	User      PostAuthor    `json:"user"`
	Subreddit PostSubreddit `json:"subreddit"`
}

type CommentAuthor struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type RankedComment struct {
	ID           uint      `json:"id"`
	Text         string    `json:"text"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	VoteScore    int64     `json:"vote_score"`
	NumUpvotes   int64     `json:"num_upvotes"`
	NumDownvotes int64     `json:"num_downvotes"`

	User CommentAuthor `json:"user"`
}
