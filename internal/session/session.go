package session

import (
	"errors"
	"time"

	"github.com/aprovost/studiodesk/internal/patch"
)

var ErrNotFound = errors.New("session not found")

// Status is derived from the session's date and clock times against the
// current moment. Never persisted.
type Status string

const (
	StatusUpcoming   Status = "upcoming"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Session represents a booked photo session. IDs are caller-supplied or
// generated at creation.
type Session struct {
	ID          string
	Type        string
	Date        time.Time // date only, midnight UTC
	StartTime   string    // "15:04"
	EndTime     string
	Location    string
	PackageName string
	FeeCents    int64
	DepositPaid bool
	Notes       string
	ClientEmail string

	Client        *ClientInfo  // Loaded via JOIN
	StaffAssigned int          // correlated count
	StaffNames    string       // aggregated per-session staff list
	AssignedStaff []Assignment // detail view only
}

// ClientInfo carries the joined client columns on session listings.
type ClientInfo struct {
	Name   string
	Phone  string
	Email  string
	Street string
	City   string
	State  string
	Zip    string
}

// Assignment links a staff member to a session with a per-session role.
type Assignment struct {
	SessionID  string
	StaffEmail string
	Role       string
	StaffName  string
	StaffRole  string // the staff member's main role
}

// DeriveStatus classifies a session against now. A session with no
// recorded end time stays in progress once started.
func DeriveStatus(date time.Time, startTime, endTime string, now time.Time) Status {
	start := at(date, startTime)

	if endTime != "" {
		if end := at(date, endTime); now.After(end) {
			return StatusCompleted
		}
	}

	if now.Before(start) {
		return StatusUpcoming
	}

	return StatusInProgress
}

// at combines a session date with an "HH:MM" clock time. Unparseable
// times resolve to midnight so a malformed row still classifies.
func at(date time.Time, clock string) time.Time {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return date
	}

	return time.Date(date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0, date.Location())
}

// PatchSpec is the allow-list for partial session updates.
var PatchSpec = patch.Spec{
	Table:     "photo_session",
	KeyColumn: "session_id",
	Columns: map[string]string{
		"sessionType": "session_type",
		"sessionDate": "session_date",
		"startTime":   "start_time",
		"endTime":     "end_time",
		"location":    "location",
		"packageName": "package_name",
		"sessionFee":  "fee_cents",
		"depositPaid": "deposit_paid",
		"notes":       "notes",
		"clientEmail": "client_email",
	},
}
