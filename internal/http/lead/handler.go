package lead

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/aprovost/studiodesk/internal/http/respond"
	"github.com/aprovost/studiodesk/internal/lead"
)

type Handler struct {
	svc *lead.Service
}

func NewHandler(svc *lead.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Post("/import", h.importCSV)
	r.Get("/{email}", h.get)
}

type createLeadRequest struct {
	Email     string `json:"email"`
	Interests string `json:"interests"`
	SignedUp  string `json:"signedUp"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Email == "" {
		respond.Error(w, http.StatusBadRequest, "email is required")
		return
	}

	signedUp := time.Now()

	if req.SignedUp != "" {
		t, err := time.Parse(time.DateOnly, req.SignedUp)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid signedUp date")
			return
		}

		signedUp = t
	}

	l, err := h.svc.Create(r.Context(), lead.CreateParams{
		Email:     req.Email,
		Interests: req.Interests,
		SignedUp:  signedUp,
	})
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(l))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	leads, err := h.svc.List(r.Context())
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(leads))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	l, err := h.svc.Get(r.Context(), email)
	if err != nil {
		if errors.Is(err, lead.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "marketing lead not found")
			return
		}

		respond.Error(w, http.StatusInternalServerError, err.Error())

		return
	}

	respond.JSON(w, http.StatusOK, toResponse(l))
}

type importResponse struct {
	Imported int      `json:"imported"`
	Skipped  []string `json:"skipped,omitempty"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		respond.Error(w, http.StatusBadRequest, "failed to parse form: "+err.Error())
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	params, err := lead.ParseCSV(file, time.Now())
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.svc.ImportBatch(r.Context(), params)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(w, http.StatusCreated, importResponse{
		Imported: result.Imported,
		Skipped:  result.Skipped,
	})
}
