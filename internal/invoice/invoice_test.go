package invoice_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aprovost/studiodesk/internal/invoice"
)

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	ts := func(t time.Time) *time.Time { return &t }

	type testCase struct {
		name    string
		balance int64
		dueDate *time.Time
		want    invoice.Status
	}

	tests := []testCase{
		{
			name:    "ZeroBalanceIsPaid",
			balance: 0,
			dueDate: nil,
			want:    invoice.StatusPaid,
		},
		{
			name:    "ZeroBalancePaidEvenWhenDueDatePassed",
			balance: 0,
			dueDate: ts(now.AddDate(0, -1, 0)),
			want:    invoice.StatusPaid,
		},
		{
			name:    "PastDueDateIsOverdue",
			balance: 5000,
			dueDate: ts(now.AddDate(0, 0, -1)),
			want:    invoice.StatusOverdue,
		},
		{
			name:    "FutureDueDateIsPending",
			balance: 5000,
			dueDate: ts(now.AddDate(0, 0, 14)),
			want:    invoice.StatusPending,
		},
		{
			name:    "NoDueDateIsPending",
			balance: 5000,
			dueDate: nil,
			want:    invoice.StatusPending,
		},
		{
			name:    "DueExactlyNowIsPending",
			balance: 5000,
			dueDate: ts(now),
			want:    invoice.StatusPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := invoice.DeriveStatus(tt.balance, tt.dueDate, now)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Exactly one label applies for any balance/due-date pair.
func TestDeriveStatus_Exhaustive(t *testing.T) {
	now := time.Now()
	due := now.AddDate(0, 0, -3)

	for _, balance := range []int64{-100, 0, 100} {
		for _, dueDate := range []*time.Time{nil, &due} {
			got := invoice.DeriveStatus(balance, dueDate, now)
			assert.Contains(t, []invoice.Status{
				invoice.StatusPaid, invoice.StatusOverdue, invoice.StatusPending,
			}, got)
		}
	}
}
