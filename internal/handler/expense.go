package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mmynk/consorcio/internal/middleware"
	"github.com/mmynk/consorcio/internal/service"
)

// ExpenseHandler serves /expenses.
type ExpenseHandler struct {
	svc *service.LedgerService
}

func NewExpenseHandler(svc *service.LedgerService) *ExpenseHandler {
	return &ExpenseHandler{svc: svc}
}

// GET /expenses
func (h *ExpenseHandler) List(c *gin.Context) {
	expenses, err := h.svc.ListExpenses(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// GET /expenses/:id
func (h *ExpenseHandler) Get(c *gin.Context) {
	e, err := h.svc.GetExpense(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// POST /expenses
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if req.CreatedBy == "" {
		req.CreatedBy = middleware.GetParticipantID(c)
	}
	e, err := h.svc.CreateExpense(c.Request.Context(), req.model())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

// PUT /expenses/:id
func (h *ExpenseHandler) Update(c *gin.Context) {
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	id := c.Param("id")
	if req.ID == "" {
		req.ID = id
	}
	e, err := h.svc.UpdateExpense(c.Request.Context(), id, req.model())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// DELETE /expenses/:id
func (h *ExpenseHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteExpense(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "expense deleted"})
}
