package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gopherit/internal/apperr"
	"gopherit/internal/enrich"
	"gopherit/internal/models"
)

// CreateSubreddit inserts a subreddit and returns its id. The description is
// stored as raw markdown.
func (c *Content) CreateSubreddit(ctx context.Context, name, description string) (uint, error) {
	subreddit := models.Subreddit{Name: name, Description: description}
	if err := c.db.WithContext(ctx).Create(&subreddit).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, apperr.Wrap(apperr.CodeDuplicateSubreddit, "a subreddit with this name already exists", err)
		}
		return 0, storeErr("create subreddit", err)
	}
	return subreddit.ID, nil
}

// ListSubreddits returns every subreddit, newest first, descriptions rendered
// to sanitized HTML.
func (c *Content) ListSubreddits(ctx context.Context) ([]models.Subreddit, error) {
	var subreddits []models.Subreddit
	err := c.db.WithContext(ctx).Order("created_at DESC").Find(&subreddits).Error
	if err != nil {
		return nil, storeErr("list subreddits", err)
	}
	for i := range subreddits {
		subreddits[i].Description = enrich.RenderMarkdown(subreddits[i].Description)
	}
	return subreddits, nil
}

// GetSubredditByName returns (nil, nil) when no subreddit matches. The
// description of a found subreddit is rendered.
func (c *Content) GetSubredditByName(ctx context.Context, name string) (*models.Subreddit, error) {
	var subreddit models.Subreddit
	err := c.db.WithContext(ctx).Where("name = ?", name).First(&subreddit).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("find subreddit by name", err)
	}
	subreddit.Description = enrich.RenderMarkdown(subreddit.Description)
	return &subreddit, nil
}
