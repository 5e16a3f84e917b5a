package repository

import (
	"context"
	"errors"
	"sort"

	"gorm.io/gorm"

	"gopherit/internal/apperr"
	"gopherit/internal/models"
)

// SortMode selects the ordering of ListPosts.
type SortMode string

const (
	SortNew SortMode = "new" // creation time descending (default)
	SortHot SortMode = "hot" // time-decayed vote score
	SortTop SortMode = "top" // signed vote score
)

// ListPostsParams makes both knobs of ListPosts explicit: a nil SubredditID
// searches across all subreddits, an empty Sort falls back to SortNew.
type ListPostsParams struct {
	SubredditID *uint
	Sort        SortMode
}

// Read paths return at most this many rows.
const resultLimit = 25

const postColumns = `
	p.id, p.title, p.url, p.created_at, p.updated_at,
	u.id AS user_id, u.username, u.created_at AS user_created_at, u.updated_at AS user_updated_at,
	s.id AS subreddit_id, s.name AS subreddit_name, s.description AS subreddit_description,
	s.created_at AS subreddit_created_at, s.updated_at AS subreddit_updated_at,
	COALESCE(SUM(v.direction), 0) AS vote_score,
	COALESCE(SUM(CASE WHEN v.direction = 1 THEN 1 ELSE 0 END), 0) AS num_upvotes,
	COALESCE(SUM(CASE WHEN v.direction = -1 THEN 1 ELSE 0 END), 0) AS num_downvotes`

func (c *Content) postQuery(ctx context.Context) *gorm.DB {
	return c.db.WithContext(ctx).
		Table("posts AS p").
		Select(postColumns).
		Joins("JOIN users u ON u.id = p.user_id").
		Joins("JOIN subreddits s ON s.id = p.subreddit_id").
		Joins("LEFT JOIN votes v ON v.post_id = p.id").
		Group("p.id, u.id, s.id")
}

// CreatePost inserts a post and returns its id. A post must always land in
// an existing subreddit.
func (c *Content) CreatePost(ctx context.Context, userID, subredditID uint, title, url string) (uint, error) {
	if subredditID == 0 {
		return 0, apperr.New(apperr.CodeMissingSubreddit, "there is no subreddit id")
	}

	post := models.Post{UserID: userID, SubredditID: subredditID, Title: title, URL: url}
	if err := c.db.WithContext(ctx).Create(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return 0, apperr.Wrap(apperr.CodeMissingSubreddit, "post references a subreddit or user that does not exist", err)
		}
		return 0, storeErr("create post", err)
	}
	return post.ID, nil
}

// ListPosts returns up to 25 enriched posts, ordered per params.Sort.
// Hot and top scores are computed from the aggregated rows, then the slice is
// sorted with creation time (and finally id) as tie-breaks so the order is
// total and deterministic.
func (c *Content) ListPosts(ctx context.Context, params ListPostsParams) ([]models.RankedPost, error) {
	q := c.postQuery(ctx)
	if params.SubredditID != nil {
		q = q.Where("p.subreddit_id = ?", *params.SubredditID)
	}

	var rows []postRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, storeErr("list posts", err)
	}

	now := c.now()
	posts := make([]models.RankedPost, len(rows))
	for i, row := range rows {
		posts[i] = row.ranked(now, c.ranking)
	}

	sortPosts(posts, params.Sort)
	if len(posts) > resultLimit {
		posts = posts[:resultLimit]
	}
	return posts, nil
}

// GetPost returns one enriched post, or (nil, nil) when the id matches
// nothing. Absence is a sentinel here, not an error.
func (c *Content) GetPost(ctx context.Context, postID uint) (*models.RankedPost, error) {
	var rows []postRow
	if err := c.postQuery(ctx).Where("p.id = ?", postID).Scan(&rows).Error; err != nil {
		return nil, storeErr("get post", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	post := rows[0].ranked(c.now(), c.ranking)
	return &post, nil
}

// ListPostsForUser returns up to 25 posts authored by username, newest first.
func (c *Content) ListPostsForUser(ctx context.Context, username string) ([]models.RankedPost, error) {
	var rows []postRow
	err := c.postQuery(ctx).
		Where("u.username = ?", username).
		Order("p.created_at DESC, p.id DESC").
		Limit(resultLimit).
		Scan(&rows).Error
	if err != nil {
		return nil, storeErr("list posts for user", err)
	}

	now := c.now()
	posts := make([]models.RankedPost, len(rows))
	for i, row := range rows {
		posts[i] = row.ranked(now, c.ranking)
	}
	return posts, nil
}

func sortPosts(posts []models.RankedPost, mode SortMode) {
	sort.SliceStable(posts, func(i, j int) bool {
		a, b := posts[i], posts[j]
		switch mode {
		case SortHot:
			if a.HotScore != b.HotScore {
				return a.HotScore > b.HotScore
			}
		case SortTop:
			if a.TopScore != b.TopScore {
				return a.TopScore > b.TopScore
			}
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
}
