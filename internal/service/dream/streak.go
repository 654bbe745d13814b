package dream

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Streak returns the number of consecutive calendar days, ending today
// or yesterday, on which the user recorded at least one dream.
func (s *Service) Streak(ctx context.Context, userID uuid.UUID) (int, error) {
	dates, err := s.dreams.ListDates(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("dream.Streak: %w", err)
	}
	return calcStreak(dates, time.Now().UTC()), nil
}

// calcStreak walks the distinct dream dates, sorted descending, and
// counts the consecutive run ending at the most recent date. A most
// recent date older than yesterday breaks the streak entirely: the
// result is 0, not the length of some earlier run.
func calcStreak(dates []time.Time, now time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	today := truncateDay(now)
	latest := truncateDay(dates[0])

	if latest.Before(today.AddDate(0, 0, -1)) {
		return 0
	}

	streak := 1
	prev := latest
	for _, d := range dates[1:] {
		day := truncateDay(d)
		if day.Equal(prev) {
			continue
		}
		if !day.Equal(prev.AddDate(0, 0, -1)) {
			break
		}
		streak++
		prev = day
	}
	return streak
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
