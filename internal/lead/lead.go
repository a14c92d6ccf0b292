package lead

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("marketing lead not found")

// Status reflects whether a lead ever became a client. Derived at read
// time from the client table, never stored on the lead.
type Status string

const (
	StatusConverted Status = "converted"
	StatusLead      Status = "lead"
)

// Lead is a marketing sign-up identified by email.
type Lead struct {
	Email     string
	Interests string
	SignedUp  time.Time

	ConvertedTo *string // client email, when a client references this lead
}

// DeriveStatus labels a lead by whether any client references it.
func DeriveStatus(convertedTo *string) Status {
	if convertedTo != nil {
		return StatusConverted
	}

	return StatusLead
}
