package corpus

import (
	"time"

	"github.com/heartmarshall/biblestories-backend/internal/domain"
)

// StoryOfTheDay deterministically maps a calendar day to exactly one story:
// index = (dayOfYear - 1) mod Len. For a fixed corpus and date the result is
// identical across calls and process restarts. The caller supplies today;
// there is no hidden wall-clock read here, so the same instant can resolve
// to different stories for callers in different time zones only if the
// callers choose to pass zone-local dates.
//
// time.Time.YearDay yields 366 for Dec 31 of a leap year, so leap years
// rotate through one extra index before wrapping.
func (c *Corpus) StoryOfTheDay(today time.Time) domain.Story {
	index := (today.YearDay() - 1) % len(c.stories)
	return c.stories[index]
}
