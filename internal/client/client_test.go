package client_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aprovost/studiodesk/internal/client"
)

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	type testCase struct {
		name        string
		lastSession *time.Time
		want        client.Status
	}

	ts := func(t time.Time) *time.Time { return &t }

	tests := []testCase{
		{
			name:        "NeverHadSession",
			lastSession: nil,
			want:        client.StatusNew,
		},
		{
			name:        "RecentSession",
			lastSession: ts(now.AddDate(0, -1, 0)),
			want:        client.StatusActive,
		},
		{
			name:        "ExactlySixMonthsAgo",
			lastSession: ts(now.AddDate(0, -6, 0)),
			want:        client.StatusActive,
		},
		{
			name:        "JustOverSixMonthsAgo",
			lastSession: ts(now.AddDate(0, -6, 0).Add(-time.Second)),
			want:        client.StatusInactive,
		},
		{
			name:        "YearsAgo",
			lastSession: ts(now.AddDate(-2, 0, 0)),
			want:        client.StatusInactive,
		},
		{
			name:        "SessionToday",
			lastSession: ts(now),
			want:        client.StatusActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, client.DeriveStatus(tt.lastSession, now))
		})
	}
}
