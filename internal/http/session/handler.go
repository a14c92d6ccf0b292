package session

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/aprovost/studiodesk/internal/http/respond"
	"github.com/aprovost/studiodesk/internal/patch"
	"github.com/aprovost/studiodesk/internal/session"
)

type Handler struct {
	svc *session.Service
}

func NewHandler(svc *session.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	// Registered before /{id} so "range" is not taken as a session id.
	r.Get("/range", h.listRange)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Post("/{id}/assign-staff", h.assignStaff)
}

type createSessionRequest struct {
	ID          string `json:"sessionId"`
	Type        string `json:"sessionType"`
	Date        string `json:"sessionDate"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Location    string `json:"location"`
	PackageName string `json:"packageName"`
	FeeCents    int64  `json:"fee"`
	DepositPaid bool   `json:"depositPaid"`
	Notes       string `json:"notes"`
	ClientEmail string `json:"clientEmail"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.ClientEmail == "" {
		respond.Error(w, http.StatusBadRequest, "clientEmail is required")
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid sessionDate")
		return
	}

	sess, err := h.svc.Create(r.Context(), session.CreateParams{
		ID:          req.ID,
		Type:        req.Type,
		Date:        date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
		PackageName: req.PackageName,
		FeeCents:    req.FeeCents,
		DepositPaid: req.DepositPaid,
		Notes:       req.Notes,
		ClientEmail: req.ClientEmail,
	})
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(w, http.StatusCreated, ToResponse(sess))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.svc.List(r.Context())
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(w, http.StatusOK, ToResponseList(sessions))
}

// listRange returns sessions between two dates inclusive, with the
// aggregated staff list per session.
func (h *Handler) listRange(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	start, err := time.Parse(time.DateOnly, q.Get("startDate"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid startDate")
		return
	}

	end, err := time.Parse(time.DateOnly, q.Get("endDate"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid endDate")
		return
	}

	sessions, err := h.svc.ListInRange(r.Context(), start, end)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(w, http.StatusOK, ToResponseList(sessions))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	sess, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "session not found")
			return
		}

		respond.Error(w, http.StatusInternalServerError, err.Error())

		return
	}

	respond.JSON(w, http.StatusOK, ToResponse(sess))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	kvs, err := patch.ParseObject(r.Body)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.Update(r.Context(), id, kvs); err != nil {
		switch {
		case errors.Is(err, patch.ErrNoFields):
			respond.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, session.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "session not found")
		default:
			respond.Error(w, http.StatusInternalServerError, err.Error())
		}

		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{"message": "session updated"})
}

type assignStaffRequest struct {
	StaffEmail string `json:"staffEmail"`
	Role       string `json:"role"`
}

func (h *Handler) assignStaff(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req assignStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.StaffEmail == "" {
		respond.Error(w, http.StatusBadRequest, "staffEmail is required")
		return
	}

	if err := h.svc.AssignStaff(r.Context(), id, req.StaffEmail, req.Role); err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]string{"message": "staff assigned"})
}
