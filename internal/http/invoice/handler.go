package invoice

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/aprovost/studiodesk/internal/http/respond"
	"github.com/aprovost/studiodesk/internal/invoice"
	"github.com/aprovost/studiodesk/internal/patch"
)

type Handler struct {
	svc *invoice.Service
}

func NewHandler(svc *invoice.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{number}", h.details)
	r.Get("/{number}/details", h.details)
	r.Put("/{number}", h.update)
	r.Put("/{number}/payment", h.recordPayment)
}

type lineItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type createInvoiceRequest struct {
	Number          int64             `json:"invoiceNumber"`
	Date            string            `json:"invoiceDate"`
	Description     string            `json:"description"`
	Subtotal        int64             `json:"subtotal"`
	Tax             int64             `json:"tax"`
	TotalDue        int64             `json:"totalDue"`
	BalanceDue      *int64            `json:"balanceDue"`
	PaymentReceived int64             `json:"paymentReceived"`
	DueDate         *string           `json:"dueDate"`
	ClientEmail     string            `json:"clientEmail"`
	Lines           []lineItemRequest `json:"lineItems"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Number == 0 {
		respond.Error(w, http.StatusBadRequest, "invoiceNumber is required")
		return
	}

	if req.ClientEmail == "" {
		respond.Error(w, http.StatusBadRequest, "clientEmail is required")
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid invoiceDate")
		return
	}

	var dueDate *time.Time

	if req.DueDate != nil && *req.DueDate != "" {
		d, err := time.Parse(time.DateOnly, *req.DueDate)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid dueDate")
			return
		}

		dueDate = &d
	}

	params := invoice.CreateParams{
		Number:               req.Number,
		Date:                 date,
		Description:          req.Description,
		SubtotalCents:        req.Subtotal,
		TaxCents:             req.Tax,
		TotalDueCents:        req.TotalDue,
		BalanceDueCents:      req.BalanceDue,
		PaymentReceivedCents: req.PaymentReceived,
		DueDate:              dueDate,
		ClientEmail:          req.ClientEmail,
	}

	for _, l := range req.Lines {
		params.Lines = append(params.Lines, invoice.LineParams{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
		})
	}

	inv, err := h.svc.Create(r.Context(), params)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(inv))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.svc.List(r.Context())
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(invoices))
}

func (h *Handler) details(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.ParseInt(chi.URLParam(r, "number"), 10, 64)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid invoice number")
		return
	}

	inv, err := h.svc.Details(r.Context(), number)
	if err != nil {
		if errors.Is(err, invoice.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "invoice not found")
			return
		}

		respond.Error(w, http.StatusInternalServerError, err.Error())

		return
	}

	respond.JSON(w, http.StatusOK, toResponse(inv))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.ParseInt(chi.URLParam(r, "number"), 10, 64)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid invoice number")
		return
	}

	kvs, err := patch.ParseObject(r.Body)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.Update(r.Context(), number, kvs); err != nil {
		switch {
		case errors.Is(err, patch.ErrNoFields):
			respond.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, invoice.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "invoice not found")
		default:
			respond.Error(w, http.StatusInternalServerError, err.Error())
		}

		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{"message": "invoice updated"})
}

type recordPaymentRequest struct {
	PaymentReceived int64 `json:"paymentReceived"`
}

func (h *Handler) recordPayment(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.ParseInt(chi.URLParam(r, "number"), 10, 64)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid invoice number")
		return
	}

	var req recordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.RecordPayment(r.Context(), number, req.PaymentReceived); err != nil {
		if errors.Is(err, invoice.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "invoice not found")
			return
		}

		respond.Error(w, http.StatusInternalServerError, err.Error())

		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{"message": "payment recorded"})
}
