package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gopherit/internal/apperr"
	"gopherit/internal/models"
)

// CreateComment inserts a comment on a post and returns its id.
func (c *Content) CreateComment(ctx context.Context, userID, postID uint, text string) (uint, error) {
	comment := models.Comment{UserID: userID, PostID: postID, Text: text}
	if err := c.db.WithContext(ctx).Create(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return 0, apperr.Wrap(apperr.CodeStoreFailure, "comment references a post or user that does not exist", err)
		}
		return 0, storeErr("create comment", err)
	}
	return comment.ID, nil
}

// ListCommentsForPost returns up to 25 comments on a post with their author
// and vote aggregates, best-scored first, newer first within a score.
func (c *Content) ListCommentsForPost(ctx context.Context, postID uint) ([]models.RankedComment, error) {
	var rows []commentRow
	err := c.db.WithContext(ctx).
		Table("comments AS c").
		Select(`
			c.id, c.text, c.created_at, c.updated_at,
			u.id AS user_id, u.username,
			COALESCE(SUM(v.direction), 0) AS vote_score,
			COALESCE(SUM(CASE WHEN v.direction = 1 THEN 1 ELSE 0 END), 0) AS num_upvotes,
			COALESCE(SUM(CASE WHEN v.direction = -1 THEN 1 ELSE 0 END), 0) AS num_downvotes`).
		Joins("JOIN users u ON u.id = c.user_id").
		Joins("LEFT JOIN comment_votes v ON v.comment_id = c.id").
		Where("c.post_id = ?", postID).
		Group("c.id, u.id").
		Order("vote_score DESC, c.created_at DESC, c.id DESC").
		Limit(resultLimit).
		Scan(&rows).Error
	if err != nil {
		return nil, storeErr("list comments for post", err)
	}

	comments := make([]models.RankedComment, len(rows))
	for i, row := range rows {
		comments[i] = row.ranked()
	}
	return comments, nil
}
