// Package reward computes the stat changes for one lesson submission. It is
// pure: the caller mutates the user in memory here and commits everything in a
// single transaction alongside progress and mistake writes.
package reward

import (
	"time"

	"englishquest/internal/models"
)

const (
	levelUpBonus  = 50
	expPerLevel   = 100
	expDivisor    = 10
	coinDivisor   = 5
	minExpGain    = 1
	completeScore = 80
)

// CompletionThreshold is the best score at which a lesson counts as completed.
const CompletionThreshold = completeScore

// Result summarizes what a submission earned.
type Result struct {
	ExperienceGained int
	CoinsGained      int
	LeveledUp        bool
}

// Apply updates the user's stats for a lesson finished with the given score
// (0-100) and hearts lost. Exactly one level-up is granted per submission even
// when the new experience crosses several thresholds.
func Apply(user *models.User, score, heartsLost int, now time.Time) Result {
	var res Result

	res.ExperienceGained = score / expDivisor
	if res.ExperienceGained < minExpGain {
		res.ExperienceGained = minExpGain
	}
	if user.BoostActive(now) {
		res.ExperienceGained *= 2
	}
	user.Experience += res.ExperienceGained

	if user.Experience >= user.Level*expPerLevel {
		user.Level++
		user.Coins += levelUpBonus
		res.LeveledUp = true
	}

	user.Hearts -= heartsLost
	if user.Hearts < 0 {
		user.Hearts = 0
	}

	res.CoinsGained = score / coinDivisor
	user.Coins += res.CoinsGained

	user.StreakCount = nextStreak(user.LastLessonAt, user.StreakCount, now)
	lessonAt := now
	user.LastLessonAt = &lessonAt

	return res
}

// nextStreak compares calendar days in UTC. Same day keeps the streak,
// yesterday extends it, anything older restarts at 1.
func nextStreak(last *time.Time, current int, now time.Time) int {
	if last == nil {
		return 1
	}
	today := dateOf(now)
	switch dateOf(*last) {
	case today:
		return current
	case today.AddDate(0, 0, -1):
		return current + 1
	default:
		return 1
	}
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
