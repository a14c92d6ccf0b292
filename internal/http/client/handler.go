package client

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aprovost/studiodesk/internal/client"
	"github.com/aprovost/studiodesk/internal/http/respond"
	sessionhttp "github.com/aprovost/studiodesk/internal/http/session"
	"github.com/aprovost/studiodesk/internal/patch"
	"github.com/aprovost/studiodesk/internal/session"
)

type Handler struct {
	svc      *client.Service
	sessions *session.Service
}

func NewHandler(svc *client.Service, sessions *session.Service) *Handler {
	return &Handler{svc: svc, sessions: sessions}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{email}", h.get)
	r.Put("/{email}", h.update)
	r.Get("/{email}/sessions", h.listSessions)
}

type createClientRequest struct {
	Email              string  `json:"email"`
	FirstName          string  `json:"firstName"`
	LastName           string  `json:"lastName"`
	Phone              string  `json:"phone"`
	Street             string  `json:"street"`
	City               string  `json:"city"`
	State              string  `json:"state"`
	Zip                string  `json:"zip"`
	LeadSource         string  `json:"leadSource"`
	ManagedByEmail     *string `json:"managedByStaffEmail"`
	MarketingLeadEmail *string `json:"marketingLeadEmail"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Email == "" {
		respond.Error(w, http.StatusBadRequest, "email is required")
		return
	}

	c, err := h.svc.Create(r.Context(), client.CreateParams{
		Email:              req.Email,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Phone:              req.Phone,
		Street:             req.Street,
		City:               req.City,
		State:              req.State,
		Zip:                req.Zip,
		LeadSource:         req.LeadSource,
		ManagerEmail:       req.ManagedByEmail,
		MarketingLeadEmail: req.MarketingLeadEmail,
	})
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(c))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	clients, err := h.svc.List(r.Context())
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(clients))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	c, err := h.svc.Get(r.Context(), email)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "client not found")
			return
		}

		respond.Error(w, http.StatusInternalServerError, err.Error())

		return
	}

	respond.JSON(w, http.StatusOK, toResponse(c))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	kvs, err := patch.ParseObject(r.Body)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.Update(r.Context(), email, kvs); err != nil {
		switch {
		case errors.Is(err, patch.ErrNoFields):
			respond.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, client.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "client not found")
		default:
			respond.Error(w, http.StatusInternalServerError, err.Error())
		}

		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{"message": "client updated"})
}

func (h *Handler) listSessions(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	sessions, err := h.sessions.ListForClient(r.Context(), email)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(w, http.StatusOK, sessionhttp.ToResponseList(sessions))
}
