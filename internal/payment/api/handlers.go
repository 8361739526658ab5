package api

import (
	"encoding/json"
	"net/http"

	"storepay-be/internal/logger"
	"storepay-be/internal/metrics"
	"storepay-be/internal/payment"

	"go.uber.org/zap"
)

// Handler exposes the two payment operations over HTTP. It only
// shapes transport: validation of the body happens here, everything
// else is the service's business.
type Handler struct {
	Svc   *payment.Service
	Stats *metrics.Payments
}

func NewHandler(svc *payment.Service, stats *metrics.Payments) *Handler {
	return &Handler{
		Svc:   svc,
		Stats: stats,
	}
}

type initiateRequest struct {
	Amount    float64 `json:"amount"`
	ProductID string  `json:"productId"`
	UserID    string  `json:"userId"`
}

type initiateResponse struct {
	Success  bool   `json:"success"`
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Key      string `json:"key"`
}

type verifyRequest struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
	UserID    string `json:"userId"`
}

type verifyResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	PaymentID string `json:"paymentId,omitempty"`
	OrderID   string `json:"orderId,omitempty"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Initiate handles POST /payment/razorpay/initiate.
func (h *Handler) Initiate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromCtx(r.Context())

	var req initiateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}
	if req.Amount <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "amount must be a positive number"})
		return
	}

	res, err := h.Svc.InitiatePayment(r.Context(), req.Amount, req.ProductID, req.UserID)
	if err != nil {
		h.Stats.InitiateFailed.Inc()
		log.Error("Payment initiation failed", zap.Error(err))
		// The cause is surfaced to the caller; acceptable for this
		// internal tool, redact before exposing publicly.
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Message: "Payment initiation failed",
			Error:   err.Error(),
		})
		return
	}

	h.Stats.Initiated.Inc()
	writeJSON(w, http.StatusOK, initiateResponse{
		Success:  true,
		OrderID:  res.OrderID,
		Amount:   res.AmountMinor,
		Currency: res.Currency,
		Key:      res.KeyID,
	})
}

// Verify handles POST /payment/razorpay/verify. A signature mismatch
// is a business outcome, not a transport error: it answers 200 with
// success=false and a deliberately generic message.
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	if !h.Svc.VerifyPayment(r.Context(), req.OrderID, req.PaymentID, req.Signature) {
		h.Stats.Rejected.Inc()
		writeJSON(w, http.StatusOK, verifyResponse{
			Success: false,
			Message: "Payment verification failed",
		})
		return
	}

	h.Stats.Verified.Inc()
	writeJSON(w, http.StatusOK, verifyResponse{
		Success:   true,
		Message:   "Payment verified successfully",
		PaymentID: req.PaymentID,
		OrderID:   req.OrderID,
	})
}

// Health handles GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"payments": h.Stats.Snapshot(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.L().Error("Failed encoding response", zap.Error(err))
	}
}
