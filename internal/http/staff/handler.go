package staff

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/aprovost/studiodesk/internal/http/respond"
	"github.com/aprovost/studiodesk/internal/patch"
	"github.com/aprovost/studiodesk/internal/staff"
)

type Handler struct {
	svc *staff.Service
}

func NewHandler(svc *staff.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{email}", h.get)
	r.Put("/{email}", h.update)
	r.Get("/{email}/assignments", h.listAssignments)
}

type createStaffRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	Phone     string `json:"phone"`
	HireDate  string `json:"hireDate"`
	PayRate   int64  `json:"payRate"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Email == "" {
		respond.Error(w, http.StatusBadRequest, "email is required")
		return
	}

	hireDate, err := time.Parse(time.DateOnly, req.HireDate)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid hireDate")
		return
	}

	st, err := h.svc.Create(r.Context(), staff.CreateParams{
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         req.Role,
		Phone:        req.Phone,
		HireDate:     hireDate,
		PayRateCents: req.PayRate,
		Street:       req.Street,
		City:         req.City,
		State:        req.State,
		Zip:          req.Zip,
	})
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(st))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	members, err := h.svc.List(r.Context())
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(members))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	st, err := h.svc.Get(r.Context(), email)
	if err != nil {
		if errors.Is(err, staff.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "staff member not found")
			return
		}

		respond.Error(w, http.StatusInternalServerError, err.Error())

		return
	}

	respond.JSON(w, http.StatusOK, toResponse(st))
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
		case errors.Is(err, staff.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "staff member not found")
		default:
			respond.Error(w, http.StatusInternalServerError, err.Error())
		}

		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{"message": "staff member updated"})
}

func (h *Handler) listAssignments(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	assignments, err := h.svc.Assignments(r.Context(), email)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(w, http.StatusOK, toAssignmentList(assignments))
}
