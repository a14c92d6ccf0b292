package client

import (
	"time"

	"github.com/aprovost/studiodesk/internal/client"
)

type clientResponse struct {
	Email              string           `json:"email"`
	FirstName          string           `json:"firstName"`
	LastName           string           `json:"lastName"`
	Phone              string           `json:"phone"`
	Street             string           `json:"street"`
	City               string           `json:"city"`
	State              string           `json:"state"`
	Zip                string           `json:"zip"`
	LeadSource         string           `json:"leadSource"`
	ManagedByEmail     *string          `json:"managedByStaffEmail,omitempty"`
	MarketingLeadEmail *string          `json:"marketingLeadEmail,omitempty"`
	LastSessionDate    *string          `json:"lastSessionDate,omitempty"`
	Status             client.Status    `json:"status"`
	Manager            *managerResponse `json:"manager,omitempty"`
	Lead               *leadResponse    `json:"marketingLead,omitempty"`
}

type managerResponse struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Phone string `json:"phone"`
}

type leadResponse struct {
	Interests string  `json:"interests"`
	SignedUp  *string `json:"signedUp,omitempty"`
}

func toResponse(c *client.Client) clientResponse {
	resp := clientResponse{
		Email:              c.Email,
		FirstName:          c.FirstName,
		LastName:           c.LastName,
		Phone:              c.Phone,
		Street:             c.Street,
		City:               c.City,
		State:              c.State,
		Zip:                c.Zip,
		LeadSource:         c.LeadSource,
		ManagedByEmail:     c.ManagerEmail,
		MarketingLeadEmail: c.MarketingLeadEmail,
		LastSessionDate:    formatDate(c.LastSessionDate),
		Status:             client.DeriveStatus(c.LastSessionDate, time.Now()),
	}

	if c.Manager != nil {
		resp.Manager = &managerResponse{
			Name:  c.Manager.Name,
			Role:  c.Manager.Role,
			Phone: c.Manager.Phone,
		}
	}

	if c.Lead != nil {
		resp.Lead = &leadResponse{
			Interests: c.Lead.Interests,
			SignedUp:  formatDate(c.Lead.SignedUp),
		}
	}

	return resp
}

func toResponseList(clients []*client.Client) []clientResponse {
	resp := make([]clientResponse, len(clients))
	for i, c := range clients {
		resp[i] = toResponse(c)
	}

	return resp
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}

	s := t.Format(time.DateOnly)

	return &s
}
