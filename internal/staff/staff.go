package staff

import (
	"errors"
	"time"

	"github.com/aprovost/studiodesk/internal/patch"
)

var ErrNotFound = errors.New("staff member not found")

// Staff represents a studio employee. The email is the identity.
// Role is free text in storage even though the UI offers a fixed set.
type Staff struct {
	Email        string
	FirstName    string
	LastName     string
	Role         string
	Phone        string
	HireDate     time.Time
	PayRateCents int64
	Street       string
	City         string
	State        string
	Zip          string

	ClientsManaged   int // correlated count
	SessionsAssigned int // correlated count
}

// Assignment is a staff member's booking on a session, joined with the
// session and client details the assignment listing shows.
type Assignment struct {
	SessionID   string
	StaffEmail  string
	Role        string
	SessionType string
	SessionDate time.Time
	Location    string
	ClientName  string
}

// PatchSpec is the allow-list for partial staff updates.
var PatchSpec = patch.Spec{
	Table:     "staff",
	KeyColumn: "staff_email",
	Columns: map[string]string{
		"firstName": "first_name",
		"lastName":  "last_name",
		"role":      "role",
		"phone":     "phone",
		"hireDate":  "hire_date",
		"payRate":   "pay_rate_cents",
		"street":    "street",
		"city":      "city",
		"state":     "state",
		"zip":       "zip",
	},
}
