package product

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aprovost/studiodesk/internal/http/respond"
	"github.com/aprovost/studiodesk/internal/patch"
	"github.com/aprovost/studiodesk/internal/product"
)

type Handler struct {
	svc *product.Service
}

func NewHandler(svc *product.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	// Registered before /{id} so "low-stock" is not taken as a SKU.
	r.Get("/low-stock", h.listLowStock)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Put("/{id}/stock", h.adjustStock)
}

type createProductRequest struct {
	ID         string `json:"productId"`
	Name       string `json:"productName"`
	CostPrice  int64  `json:"costPrice"`
	SalePrice  int64  `json:"salePrice"`
	StockLevel int    `json:"stockLevel"`
	Supplier   string `json:"supplier"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.ID == "" {
		respond.Error(w, http.StatusBadRequest, "productId is required")
		return
	}

	p, err := h.svc.Create(r.Context(), product.CreateParams{
		ID:             req.ID,
		Name:           req.Name,
		CostPriceCents: req.CostPrice,
		SalePriceCents: req.SalePrice,
		StockLevel:     req.StockLevel,
		Supplier:       req.Supplier,
	})
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(p))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.List(r.Context())
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(products))
}

func (h *Handler) listLowStock(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.ListLowStock(r.Context())
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(products))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "product not found")
			return
		}

		respond.Error(w, http.StatusInternalServerError, err.Error())

		return
	}

	respond.JSON(w, http.StatusOK, toResponse(p))
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
		case errors.Is(err, product.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "product not found")
		default:
			respond.Error(w, http.StatusInternalServerError, err.Error())
		}

		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{"message": "product updated"})
}

type adjustStockRequest struct {
	Quantity int `json:"quantity"`
}

// adjustStock applies a relative delta: positive restocks, negative
// records sales or shrinkage.
func (h *Handler) adjustStock(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req adjustStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.AdjustStock(r.Context(), id, req.Quantity); err != nil {
		if errors.Is(err, product.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "product not found")
			return
		}

		respond.Error(w, http.StatusInternalServerError, err.Error())

		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{"message": "stock updated"})
}
