package repository

import (
	"time"

	"gopherit/internal/enrich"
	"gopherit/internal/models"
	"gopherit/internal/ranking"
)

// postRow is the flat shape scanned from the grouped post join. ranked turns
// it into the nested record callers see; that mapping is the only place the
// flat layout is known.
type postRow struct {
	ID        uint
	Title     string
	URL       string
	CreatedAt time.Time
	UpdatedAt time.Time

	UserID        uint
	Username      string
	UserCreatedAt time.Time
	UserUpdatedAt time.Time

	SubredditID          uint
	SubredditName        string
	SubredditDescription string
	SubredditCreatedAt   time.Time
	SubredditUpdatedAt   time.Time

	VoteScore    int64
	NumUpvotes   int64
	NumDownvotes int64
}

func (r postRow) ranked(now time.Time, cfg ranking.Config) models.RankedPost {
	return models.RankedPost{
		ID:           r.ID,
		Title:        enrich.Emojify(r.Title),
		URL:          r.URL,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
		VoteScore:    r.VoteScore,
		TopScore:     ranking.TopScore(r.VoteScore),
		HotScore:     cfg.Hot(r.VoteScore, r.CreatedAt, now),
		NumUpvotes:   r.NumUpvotes,
		NumDownvotes: r.NumDownvotes,
		User: models.PostAuthor{
			ID:        r.UserID,
			Username:  r.Username,
			CreatedAt: r.UserCreatedAt,
			UpdatedAt: r.UserUpdatedAt,
		},
		Subreddit: models.PostSubreddit{
			ID:          r.SubredditID,
			Name:        r.SubredditName,
			Description: enrich.RenderMarkdown(r.SubredditDescription),
			CreatedAt:   r.SubredditCreatedAt,
			UpdatedAt:   r.SubredditUpdatedAt,
		},
	}
}

type commentRow struct {
	ID        uint
	Text      string
	CreatedAt time.Time
	UpdatedAt time.Time

	UserID   uint
	Username string

	VoteScore    int64
	NumUpvotes   int64
	NumDownvotes int64
}

func (r commentRow) ranked() models.RankedComment {
	return models.RankedComment{
		ID:           r.ID,
		Text:         enrich.Emojify(r.Text),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
		VoteScore:    r.VoteScore,
		NumUpvotes:   r.NumUpvotes,
		NumDownvotes: r.NumDownvotes,
		User: models.CommentAuthor{
			ID:       r.UserID,
			Username: r.Username,
		},
	}
}
