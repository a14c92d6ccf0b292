package search

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aprovost/studiodesk/internal/http/respond"
	"github.com/aprovost/studiodesk/internal/search"
)

type Handler struct {
	svc *search.Service
}

func NewHandler(svc *search.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.search)
}

type hitResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Info string `json:"info,omitempty"`
}

type searchResponse struct {
	Clients      []hitResponse `json:"clients"`
	Sessions     []hitResponse `json:"sessions"`
	Invoices     []hitResponse `json:"invoices"`
	TotalResults int           `json:"totalResults"`
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(w, http.StatusOK, searchResponse{
		Clients:      toHits(result.Clients),
		Sessions:     toHits(result.Sessions),
		Invoices:     toHits(result.Invoices),
		TotalResults: result.Total(),
	})
}

func toHits(hits []search.Hit) []hitResponse {
	resp := make([]hitResponse, len(hits))
	for i, h := range hits {
		resp[i] = hitResponse{ID: h.ID, Name: h.Name, Type: h.Type, Info: h.Info}
	}

	return resp
}
