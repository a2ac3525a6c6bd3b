package reltime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tourcrm/shared/reltime"
)

func TestFormat(t *testing.T) {
	now := time.Date(2024, time.January, 24, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		delta    time.Duration
		expected string
	}{
		{
			name:     "under a minute",
			delta:    45 * time.Second,
			expected: "Just now",
		},
		{
			name:     "exactly zero",
			delta:    0,
			expected: "Just now",
		},
		{
			name:     "ninety seconds",
			delta:    90 * time.Second,
			expected: "1 min ago",
		},
		{
			name:     "several minutes",
			delta:    10 * time.Minute,
			expected: "10 mins ago",
		},
		{
			name:     "fifty nine minutes",
			delta:    59 * time.Minute,
			expected: "59 mins ago",
		},
		{
			name:     "one hour",
			delta:    60 * time.Minute,
			expected: "1 hour ago",
		},
		{
			name:     "several hours",
			delta:    5 * time.Hour,
			expected: "5 hours ago",
		},
		{
			name:     "twenty three hours",
			delta:    23*time.Hour + 30*time.Minute,
			expected: "23 hours ago",
		},
		{
			name:     "one day",
			delta:    24 * time.Hour,
			expected: "1 day ago",
		},
		{
			name:     "three days",
			delta:    3 * 24 * time.Hour,
			expected: "3 days ago",
		},
		{
			name:     "six days",
			delta:    6*24*time.Hour + 12*time.Hour,
			expected: "6 days ago",
		},
		{
			name:     "ten days falls back to a date",
			delta:    10 * 24 * time.Hour,
			expected: "Jan 14",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reltime.Format(now, now.Add(-tt.delta))

			assert.Equal(t, tt.expected, got)
		})
	}
}
