package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aprovost/studiodesk/internal/session"
)

func TestDeriveStatus(t *testing.T) {
	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	type testCase struct {
		name       string
		date       time.Time
		start, end string
		now        time.Time
		want       session.Status
	}

	tests := []testCase{
		{
			name:  "BeforeStart",
			date:  day,
			start: "14:00",
			end:   "16:00",
			now:   day.Add(10 * time.Hour),
			want:  session.StatusUpcoming,
		},
		{
			name:  "ExactlyAtStart",
			date:  day,
			start: "14:00",
			end:   "16:00",
			now:   day.Add(14 * time.Hour),
			want:  session.StatusInProgress,
		},
		{
			name:  "Between",
			date:  day,
			start: "14:00",
			end:   "16:00",
			now:   day.Add(15 * time.Hour),
			want:  session.StatusInProgress,
		},
		{
			name:  "ExactlyAtEnd",
			date:  day,
			start: "14:00",
			end:   "16:00",
			now:   day.Add(16 * time.Hour),
			want:  session.StatusInProgress,
		},
		{
			name:  "AfterEnd",
			date:  day,
			start: "14:00",
			end:   "16:00",
			now:   day.Add(16*time.Hour + time.Minute),
			want:  session.StatusCompleted,
		},
		{
			name:  "NoEndTimeStillRunning",
			date:  day,
			start: "14:00",
			end:   "",
			now:   day.AddDate(0, 0, 3),
			want:  session.StatusInProgress,
		},
		{
			name:  "FutureDay",
			date:  day.AddDate(0, 0, 7),
			start: "09:00",
			end:   "10:00",
			now:   day.Add(12 * time.Hour),
			want:  session.StatusUpcoming,
		},
		{
			name:  "PastDay",
			date:  day.AddDate(0, 0, -7),
			start: "09:00",
			end:   "10:00",
			now:   day.Add(12 * time.Hour),
			want:  session.StatusCompleted,
		},
		{
			name:  "MalformedStartFallsBackToMidnight",
			date:  day,
			start: "not-a-time",
			end:   "",
			now:   day.Add(time.Hour),
			want:  session.StatusInProgress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, session.DeriveStatus(tt.date, tt.start, tt.end, tt.now))
		})
	}
}
