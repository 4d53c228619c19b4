package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"nova-ecart-be/internal/seller"

	"github.com/go-chi/chi/v5"
)

type SellerHandler struct {
	Svc seller.Service
}

func NewSellerHandler(svc seller.Service) *SellerHandler {
	return &SellerHandler{Svc: svc}
}

func (h *SellerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in seller.SellerCreate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	s, err := h.Svc.Create(r.Context(), in)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, s)
}

func (h *SellerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, seller.ErrNotFound) {
			writeError(w, "seller not found", http.StatusNotFound)
			return
		}
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, s)
}

func (h *SellerHandler) GetByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	s, err := h.Svc.GetByUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, seller.ErrNotFound) {
			writeError(w, "seller profile not found", http.StatusNotFound)
			return
		}
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, s)
}

func (h *SellerHandler) List(w http.ResponseWriter, r *http.Request) {
	status := seller.VerificationStatus(r.URL.Query().Get("status"))

	sellers, err := h.Svc.List(r.Context(), status)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if sellers == nil {
		sellers = []seller.Seller{}
	}

	writeJSON(w, http.StatusOK, sellers)
}

func (h *SellerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var in seller.SellerUpdate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	s, err := h.Svc.Update(r.Context(), id, in)
	if err != nil {
		switch {
		case errors.Is(err, seller.ErrNotFound):
			writeError(w, "seller not found", http.StatusNotFound)
		default:
			writeError(w, err.Error(), http.StatusBadRequest)
		}
		return
	}

	writeJSON(w, http.StatusOK, s)
}

type verificationRequest struct {
	Notes string `json:"notes"`
}

func (h *SellerHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.setVerification(w, r, h.Svc.Approve)
}

func (h *SellerHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.setVerification(w, r, h.Svc.Reject)
}

func (h *SellerHandler) setVerification(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, id, notes string) (*seller.Seller, error),
) {
	id := chi.URLParam(r, "id")

	var req verificationRequest
	// Body is optional; notes default to empty.
	_ = json.NewDecoder(r.Body).Decode(&req)

	s, err := apply(r.Context(), id, req.Notes)
	if err != nil {
		if errors.Is(err, seller.ErrNotFound) {
			writeError(w, "seller not found", http.StatusNotFound)
			return
		}
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, s)
}
