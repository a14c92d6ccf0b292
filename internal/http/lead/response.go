package lead

import (
	"time"

	"github.com/aprovost/studiodesk/internal/lead"
)

type leadResponse struct {
	Email       string      `json:"email"`
	Interests   string      `json:"interests"`
	SignedUp    string      `json:"signedUp"`
	Status      lead.Status `json:"status"`
	ConvertedTo *string     `json:"convertedTo,omitempty"`
}

func toResponse(l *lead.Lead) leadResponse {
	return leadResponse{
		Email:       l.Email,
		Interests:   l.Interests,
		SignedUp:    l.SignedUp.Format(time.DateOnly),
		Status:      lead.DeriveStatus(l.ConvertedTo),
		ConvertedTo: l.ConvertedTo,
	}
}

func toResponseList(leads []*lead.Lead) []leadResponse {
	resp := make([]leadResponse, len(leads))
	for i, l := range leads {
		resp[i] = toResponse(l)
	}

	return resp
}
