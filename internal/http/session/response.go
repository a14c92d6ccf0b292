package session

import (
	"time"

	"github.com/aprovost/studiodesk/internal/session"
)

type sessionResponse struct {
	ID            string               `json:"sessionId"`
	Type          string               `json:"sessionType"`
	Date          string               `json:"sessionDate"`
	StartTime     string               `json:"startTime,omitempty"`
	EndTime       string               `json:"endTime,omitempty"`
	Location      string               `json:"location"`
	PackageName   string               `json:"packageName"`
	FeeCents      int64                `json:"fee"`
	DepositPaid   bool                 `json:"depositPaid"`
	Notes         string               `json:"notes,omitempty"`
	ClientEmail   string               `json:"clientEmail"`
	Status        session.Status       `json:"status"`
	Client        *clientInfoResponse  `json:"client,omitempty"`
	StaffAssigned int                  `json:"staffAssigned"`
	StaffNames    string               `json:"staffNames,omitempty"`
	AssignedStaff []assignmentResponse `json:"assignedStaff,omitempty"`
}

type clientInfoResponse struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
	Street string `json:"street,omitempty"`
	City   string `json:"city,omitempty"`
	State  string `json:"state,omitempty"`
	Zip    string `json:"zip,omitempty"`
}

type assignmentResponse struct {
	StaffEmail string `json:"staffEmail"`
	Role       string `json:"role"`
	StaffName  string `json:"staffName"`
	StaffRole  string `json:"staffRole"`
}

// ToResponse is shared with the client handler, which lists a client's
// sessions under /clients/{email}/sessions.
func ToResponse(s *session.Session) sessionResponse {
	resp := sessionResponse{
		ID:            s.ID,
		Type:          s.Type,
		Date:          s.Date.Format(time.DateOnly),
		StartTime:     s.StartTime,
		EndTime:       s.EndTime,
		Location:      s.Location,
		PackageName:   s.PackageName,
		FeeCents:      s.FeeCents,
		DepositPaid:   s.DepositPaid,
		Notes:         s.Notes,
		ClientEmail:   s.ClientEmail,
		Status:        session.DeriveStatus(s.Date, s.StartTime, s.EndTime, time.Now()),
		StaffAssigned: s.StaffAssigned,
		StaffNames:    s.StaffNames,
	}

	if s.Client != nil {
		resp.Client = &clientInfoResponse{
			Name:   s.Client.Name,
			Phone:  s.Client.Phone,
			Email:  s.Client.Email,
			Street: s.Client.Street,
			City:   s.Client.City,
			State:  s.Client.State,
			Zip:    s.Client.Zip,
		}
	}

	for _, a := range s.AssignedStaff {
		resp.AssignedStaff = append(resp.AssignedStaff, assignmentResponse{
			StaffEmail: a.StaffEmail,
			Role:       a.Role,
			StaffName:  a.StaffName,
			StaffRole:  a.StaffRole,
		})
	}

	return resp
}

func ToResponseList(sessions []*session.Session) []sessionResponse {
	resp := make([]sessionResponse, len(sessions))
	for i, s := range sessions {
		resp[i] = ToResponse(s)
	}

	return resp
}
