package reltime

import (
	"fmt"
	"time"
)

const (
	minutesPerHour = 60
	hoursPerDay    = 24
	daysPerWeek    = 7

	fallbackLayout = "Jan 2"
)

// Format renders a timestamp relative to now using the dashboard's display
// buckets: "Just now", "N min(s) ago", "N hour(s) ago", "N day(s) ago", and an
// abbreviated month/day date once the delta reaches a week.
func Format(now, then time.Time) string {
	diff := now.Sub(then)

	mins := int(diff.Minutes())
	hours := int(diff.Hours())
	days := int(diff.Hours() / hoursPerDay)

	switch {
	case mins < 1:
		return "Just now"
	case mins < minutesPerHour:
		return fmt.Sprintf("%d min%s ago", mins, plural(mins))
	case hours < hoursPerDay:
		return fmt.Sprintf("%d hour%s ago", hours, plural(hours))
	case days < daysPerWeek:
		return fmt.Sprintf("%d day%s ago", days, plural(days))
	default:
		return then.Format(fallbackLayout)
	}
}

// Since is Format against the current wall clock.
func Since(then time.Time) string {
	return Format(time.Now(), then)
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}

	return ""
}
