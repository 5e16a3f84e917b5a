package repository

import (
	"time"

	"gorm.io/gorm"

	"gopherit/internal/apperr"
	"gopherit/internal/ranking"
)

// Content is the data-access surface for users, subreddits, posts, comments
// and votes. Writes are single-row inserts or upserts; reads join and
// aggregate but mutate nothing, and every row leaves here as an enriched
// nested record.
//
// The *gorm.DB is owned by the caller; Content never opens or closes it and
// takes no locks beyond what the store's unique constraints provide.
type Content struct {
	db      *gorm.DB
	ranking ranking.Config
	now     func() time.Time
}

func NewContent(db *gorm.DB) *Content {
	return &Content{
		db:      db,
		ranking: ranking.DefaultConfig,
		now:     time.Now,
	}
}

// storeErr wraps an unexpected store error without masking it.
func storeErr(op string, err error) error {
	return apperr.Wrap(apperr.CodeStoreFailure, op, err)
}
