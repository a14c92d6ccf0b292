package staff

import (
	"time"

	"github.com/aprovost/studiodesk/internal/staff"
)

type staffResponse struct {
	Email            string `json:"email"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Role             string `json:"role"`
	Phone            string `json:"phone"`
	HireDate         string `json:"hireDate"`
	PayRate          int64  `json:"payRate"`
	Street           string `json:"street,omitempty"`
	City             string `json:"city,omitempty"`
	State            string `json:"state,omitempty"`
	Zip              string `json:"zip,omitempty"`
	ClientsManaged   int    `json:"clientsManaged"`
	SessionsAssigned int    `json:"sessionsAssigned"`
}

type assignmentResponse struct {
	SessionID   string `json:"sessionId"`
	Role        string `json:"role"`
	SessionType string `json:"sessionType"`
	SessionDate string `json:"sessionDate"`
	Location    string `json:"location"`
	ClientName  string `json:"clientName"`
}

func toResponse(st *staff.Staff) staffResponse {
	return staffResponse{
		Email:            st.Email,
		FirstName:        st.FirstName,
		LastName:         st.LastName,
		Role:             st.Role,
		Phone:            st.Phone,
		HireDate:         st.HireDate.Format(time.DateOnly),
		PayRate:          st.PayRateCents,
		Street:           st.Street,
		City:             st.City,
		State:            st.State,
		Zip:              st.Zip,
		ClientsManaged:   st.ClientsManaged,
		SessionsAssigned: st.SessionsAssigned,
	}
}

func toResponseList(members []*staff.Staff) []staffResponse {
	resp := make([]staffResponse, len(members))
	for i, st := range members {
		resp[i] = toResponse(st)
	}

	return resp
}

func toAssignmentList(assignments []staff.Assignment) []assignmentResponse {
	resp := make([]assignmentResponse, len(assignments))
	for i, a := range assignments {
		resp[i] = assignmentResponse{
			SessionID:   a.SessionID,
			Role:        a.Role,
			SessionType: a.SessionType,
			SessionDate: a.SessionDate.Format(time.DateOnly),
			Location:    a.Location,
			ClientName:  a.ClientName,
		}
	}

	return resp
}
