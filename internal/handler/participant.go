package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mmynk/consorcio/internal/service"
)

// ParticipantHandler serves /participants.
type ParticipantHandler struct {
	svc *service.LedgerService
}

func NewParticipantHandler(svc *service.LedgerService) *ParticipantHandler {
	return &ParticipantHandler{svc: svc}
}

// GET /participants
func (h *ParticipantHandler) List(c *gin.Context) {
	participants, err := h.svc.ListParticipants(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, participants)
}

// GET /participants/:id
func (h *ParticipantHandler) Get(c *gin.Context) {
	p, err := h.svc.GetParticipant(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// POST /participants
func (h *ParticipantHandler) Create(c *gin.Context) {
	var req participantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	p, err := h.svc.CreateParticipant(c.Request.Context(), req.model())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// PUT /participants/:id
func (h *ParticipantHandler) Update(c *gin.Context) {
	var req participantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	id := c.Param("id")
	if req.ID == "" {
		req.ID = id
	}
	p, err := h.svc.UpdateParticipant(c.Request.Context(), id, req.model())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DELETE /participants/:id
func (h *ParticipantHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteParticipant(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "participant deleted"})
}

// GET /participants/:id/expenses
func (h *ParticipantHandler) Expenses(c *gin.Context) {
	expenses, err := h.svc.ParticipantExpenses(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// GET /participants/:id/payments
func (h *ParticipantHandler) Payments(c *gin.Context) {
	payments, err := h.svc.ParticipantPayments(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// GET /participants/:id/balance
func (h *ParticipantHandler) Balance(c *gin.Context) {
	b, err := h.svc.ParticipantBalance(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
