package ranking

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHotNewerRanksHigherOnEqualScore(t *testing.T) {
	now := time.Now()

	newer := HotScore(5, now.Add(-1*time.Hour), now)
	older := HotScore(5, now.Add(-24*time.Hour), now)

	assert.Greater(t, newer, older)
}

func TestHotZeroVotesIsZero(t *testing.T) {
	now := time.Now()

	assert.Zero(t, HotScore(0, now.Add(-time.Hour), now))
	assert.Zero(t, HotScore(0, now, now))
}

func TestHotFreshPostDoesNotDivideByZero(t *testing.T) {
	now := time.Now()

	score := HotScore(10, now, now)
	assert.False(t, math.IsInf(score, 0))
	assert.False(t, math.IsNaN(score))
	assert.Greater(t, score, float64(0))
}

func TestHotNegativeScoreDecaysTowardZero(t *testing.T) {
	now := time.Now()

	recent := HotScore(-4, now.Add(-1*time.Hour), now)
	old := HotScore(-4, now.Add(-48*time.Hour), now)

	assert.Less(t, recent, float64(0))
	assert.Greater(t, old, recent)
}

func TestTopScoreMirrorsVoteScore(t *testing.T) {
	assert.Equal(t, int64(7), TopScore(7))
	assert.Equal(t, int64(-3), TopScore(-3))
	assert.Equal(t, int64(0), TopScore(0))
}
