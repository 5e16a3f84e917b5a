package repository

import (
	"context"

	"gorm.io/gorm/clause"

	"gopherit/internal/apperr"
	"gopherit/internal/models"
)

func validDirection(direction int) bool {
	return direction == -1 || direction == 0 || direction == 1
}

// UpsertVote records a user's vote on a post. Exactly one row exists per
// (post, user): a repeat vote overwrites the stored direction, last write
// wins. Two racing upserts for the same pair are resolved by the store's
// conflict handling, never by locking here.
func (c *Content) UpsertVote(ctx context.Context, postID, userID uint, direction int) error {
	if !validDirection(direction) {
		return apperr.New(apperr.CodeInvalidVoteDirection, "vote direction must be one of -1, 0, 1")
	}

	vote := models.Vote{PostID: postID, UserID: userID, Direction: direction}
	err := c.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "post_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"direction", "updated_at"}),
	}).Create(&vote).Error
	if err != nil {
		return storeErr("upsert vote", err)
	}
	return nil
}

// UpsertCommentVote is UpsertVote for comments, with the same upsert law.
func (c *Content) UpsertCommentVote(ctx context.Context, commentID, userID uint, direction int) error {
	if !validDirection(direction) {
		return apperr.New(apperr.CodeInvalidVoteDirection, "vote direction must be one of -1, 0, 1")
	}

	vote := models.CommentVote{CommentID: commentID, UserID: userID, Direction: direction}
	err := c.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "comment_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"direction", "updated_at"}),
	}).Create(&vote).Error
	if err != nil {
		return storeErr("upsert comment vote", err)
	}
	return nil
}
