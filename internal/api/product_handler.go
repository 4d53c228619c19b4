package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"nova-ecart-be/internal/product"

	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	Svc product.Service
}

func NewProductHandler(svc product.Service) *ProductHandler {
	return &ProductHandler{Svc: svc}
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in product.ProductCreate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	p, err := h.Svc.Create(r.Context(), in)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, p)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			writeError(w, "product not found", http.StatusNotFound)
			return
		}
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := product.ListFilter{
		Category: r.URL.Query().Get("category"),
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		filter.Limit, _ = strconv.Atoi(v)
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		filter.Offset, _ = strconv.Atoi(v)
	}

	products, err := h.Svc.List(r.Context(), filter)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if products == nil {
		products = []product.Product{}
	}

	writeJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) ListBySeller(w http.ResponseWriter, r *http.Request) {
	sellerID := chi.URLParam(r, "seller_id")

	products, err := h.Svc.ListBySeller(r.Context(), sellerID)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if products == nil {
		products = []product.Product{}
	}

	writeJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var in product.ProductUpdate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	p, err := h.Svc.Update(r.Context(), id, in)
	if err != nil {
		switch {
		case errors.Is(err, product.ErrNotFound):
			writeError(w, "product not found", http.StatusNotFound)
		case errors.Is(err, product.ErrInvalid):
			writeError(w, err.Error(), http.StatusBadRequest)
		default:
			writeError(w, err.Error(), http.StatusBadRequest)
		}
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, product.ErrNotFound) {
			writeError(w, "product not found", http.StatusNotFound)
			return
		}
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
