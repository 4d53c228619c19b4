package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"nova-ecart-be/internal/logger"
	"nova-ecart-be/internal/middleware"
	"nova-ecart-be/internal/order"
	"nova-ecart-be/internal/payment"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	Svc payment.Service
}

func NewPaymentHandler(svc payment.Service) *PaymentHandler {
	return &PaymentHandler{Svc: svc}
}

// CreatePayment handles POST /api/cryptomus/payment.
func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		writeError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req payment.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.Svc.CreatePayment(r.Context(), userID, req)
	if err != nil {
		// Gateway failures and validation problems both surface as 400 to
		// the caller; the distinction lives in the logs.
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Callback handles POST /api/cryptomus/callback. The raw body bytes are the
// signed message, so the signature check runs before any decoding.
func (h *PaymentHandler) Callback(w http.ResponseWriter, r *http.Request) {
	log := logger.FromCtx(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, "failed to read body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	sig := r.Header.Get("sign")
	if sig == "" {
		sig = r.URL.Query().Get("signature")
	}

	if !h.Svc.VerifyCallback(body, sig) {
		log.Warn("callback signature rejected")
		writeError(w, "invalid signature", http.StatusUnauthorized)
		return
	}

	var p payment.CallbackPayload
	if err := json.Unmarshal(body, &p); err != nil {
		writeError(w, "invalid JSON payload", http.StatusBadRequest)
		return
	}

	result, err := h.Svc.ProcessCallback(r.Context(), p)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrMalformedCallback):
			writeError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, order.ErrNotFound):
			writeError(w, "order not found", http.StatusNotFound)
		case errors.Is(err, order.ErrStatusConflict):
			writeError(w, "order already finalized", http.StatusConflict)
		default:
			log.Error("callback processing failed", zap.Error(err))
			writeError(w, "failed to process callback", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Status handles GET /api/cryptomus/status/{order_id}.
func (h *PaymentHandler) Status(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")

	status, err := h.Svc.GetStatus(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			writeError(w, "order not found", http.StatusNotFound)
			return
		}
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"order_id": orderID,
		"status":   string(status),
	})
}

// Orders handles GET /api/cryptomus/orders for the authenticated user.
func (h *PaymentHandler) Orders(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		writeError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	orders, err := h.Svc.ListOrders(r.Context(), userID)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	type orderView struct {
		OrderID  string  `json:"order_id"`
		Status   string  `json:"status"`
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
	}

	views := make([]orderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, orderView{
			OrderID:  o.ID,
			Status:   string(o.Status),
			Amount:   o.Amount,
			Currency: o.Currency,
		})
	}

	writeJSON(w, http.StatusOK, views)
}
