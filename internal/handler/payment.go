package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mmynk/consorcio/internal/middleware"
	"github.com/mmynk/consorcio/internal/service"
)

// PaymentHandler serves /payments.
type PaymentHandler struct {
	svc *service.LedgerService
}

func NewPaymentHandler(svc *service.LedgerService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

// GET /payments
func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.svc.ListPayments(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// GET /payments/:id
func (h *PaymentHandler) Get(c *gin.Context) {
	p, err := h.svc.GetPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// POST /payments
func (h *PaymentHandler) Create(c *gin.Context) {
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if req.CreatedBy == "" {
		req.CreatedBy = middleware.GetParticipantID(c)
	}
	p, err := h.svc.CreatePayment(c.Request.Context(), req.model())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// PUT /payments/:id
func (h *PaymentHandler) Update(c *gin.Context) {
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	id := c.Param("id")
	if req.ID == "" {
		req.ID = id
	}
	p, err := h.svc.UpdatePayment(c.Request.Context(), id, req.model())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DELETE /payments/:id
func (h *PaymentHandler) Delete(c *gin.Context) {
	if err := h.svc.DeletePayment(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "payment deleted"})
}
