package client

import (
	"errors"
	"time"

	"github.com/aprovost/studiodesk/internal/patch"
)

var ErrNotFound = errors.New("client not found")

// Status is the client's activity label, derived at read time from the
// last session date. It is never persisted.
type Status string

const (
	StatusNew      Status = "new"
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Client represents a studio client. The email is the identity and is
// immutable once created.
type Client struct {
	Email              string
	FirstName          string
	LastName           string
	Phone              string
	Street             string
	City               string
	State              string
	Zip                string
	LeadSource         string
	ManagerEmail       *string
	MarketingLeadEmail *string
	LastSessionDate    *time.Time

	Manager *Manager // Loaded via JOIN
	Lead    *Lead    // Loaded via JOIN
}

// Manager carries the joined details of the staff member managing a client.
type Manager struct {
	Name  string
	Role  string
	Phone string
}

// Lead carries the joined details of the marketing lead a client came from.
type Lead struct {
	Interests string
	SignedUp  *time.Time
}

// DeriveStatus classifies a client by their last session date: never had
// one means new, more than six months ago means inactive, otherwise
// active. Exactly six months ago is still active.
func DeriveStatus(lastSession *time.Time, now time.Time) Status {
	if lastSession == nil {
		return StatusNew
	}

	if lastSession.Before(now.AddDate(0, -6, 0)) {
		return StatusInactive
	}

	return StatusActive
}

// PatchSpec is the allow-list for partial client updates. The identity
// (clientEmail) is absent on purpose; lastSessionDate is owned by
// session creation and cannot be set directly.
var PatchSpec = patch.Spec{
	Table:     "client",
	KeyColumn: "client_email",
	Columns: map[string]string{
		"firstName":           "first_name",
		"lastName":            "last_name",
		"phone":               "phone",
		"street":              "street",
		"city":                "city",
		"state":               "state",
		"zip":                 "zip",
		"leadSource":          "lead_source",
		"managedByStaffEmail": "managed_by_staff_email",
		"marketingLeadEmail":  "marketing_lead_email",
	},
}
