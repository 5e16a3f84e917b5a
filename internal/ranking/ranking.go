package ranking

import (
	"time"
)

type Config struct {
	MinAge time.Duration // 最小衰减年龄，防止刚发布的帖子除零
}

var DefaultConfig = Config{
	MinAge: time.Minute,
}

// Hot decays a signed vote score by the age of the subject: between two
// subjects with the same score the younger one always ranks higher.
// A subject with no votes scores exactly 0 regardless of age.
func (c Config) Hot(voteScore int64, createdAt, now time.Time) float64 {
	if voteScore == 0 {
		return 0
	}
	age := now.Sub(createdAt)
	if age < c.MinAge {
		age = c.MinAge
	}
	return float64(voteScore) / age.Hours()
}

// HotScore applies DefaultConfig.
func HotScore(voteScore int64, createdAt, now time.Time) float64 {
	return DefaultConfig.Hot(voteScore, createdAt, now)
}

// TopScore is the vote score under a distinct name, so callers do not bake in
// the assumption that the two formulas stay identical.
func TopScore(voteScore int64) int64 {
	return voteScore
}
