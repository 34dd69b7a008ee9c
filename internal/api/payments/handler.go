package payments

import (
	"errors"
	"net/http"
	"time"

	"subshop-backend/internal/domain/payments"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) CreatePaymentRequest(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	var body CreatePaymentInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid cartItems/paymentMethod"})
		return
	}

	res, err := h.svc.Create(c.Request.Context(), userID, body.CartItems, payments.Method(body.PaymentMethod))
	if err != nil {
		respondError(c, err)
		return
	}

	p := res.Payment
	c.JSON(http.StatusCreated, CreatePaymentResponse{
		PaymentID:     p.ID,
		WalletAddress: res.WalletAddress,
		AmountRub:     p.AmountMinor,
		AmountCrypto:  p.AmountCrypto.StringFixed(6),
		Currency:      p.Currency,
		QRCode:        res.QRCode,
		ExpiresAt:     p.ExpiresAt.UTC().Format(time.RFC3339),
		Network:       p.Network,
		Warnings:      res.Warnings,
	})
}

func (h *Handler) GetPaymentStatus(c *gin.Context) {
	view, err := h.svc.Status(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	expires := view.ExpiresAt.UTC().Format(time.RFC3339)
	c.JSON(http.StatusOK, StatusResponse{
		Status:    string(view.Status),
		TxHash:    view.TxHash,
		ExpiresAt: &expires,
		TimeLeft:  view.TimeLeft,
	})
}

func (h *Handler) ConfirmPayment(c *gin.Context) {
	var body ConfirmPaymentInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing txHash"})
		return
	}

	p, err := h.svc.Confirm(c.Request.Context(), c.Param("id"), body.TxHash)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ConfirmPaymentResponse{
		Payment: ConfirmedPayment{
			ID:     p.ID,
			Status: string(p.Status),
			TxHash: p.TxHash,
		},
	})
}

func (h *Handler) GetPaymentHistory(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	list, err := h.svc.History(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	entries := make([]HistoryEntry, 0, len(list))
	for _, p := range list {
		entries = append(entries, HistoryEntry{
			ID:           p.ID,
			AmountRub:    p.AmountMinor,
			AmountCrypto: p.AmountCrypto.StringFixed(6),
			Currency:     p.Currency,
			Network:      p.Network,
			Method:       string(p.Method),
			Status:       string(p.Status),
			TxHash:       p.TxHash,
			CreatedAt:    p.CreatedAt.UTC().Format(time.RFC3339),
			ExpiresAt:    p.ExpiresAt.UTC().Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, entries)
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotImplemented):
		c.JSON(http.StatusNotImplemented, gin.H{"error": "Card payments are coming soon"})
	case errors.Is(err, ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, ErrRateUnavailable), errors.Is(err, ErrQRRender):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}
