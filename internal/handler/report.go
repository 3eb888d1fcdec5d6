package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mmynk/consorcio/internal/service"
)

// ReportHandler serves the derived views: balances, debts and the summary.
type ReportHandler struct {
	svc *service.LedgerService
}

func NewReportHandler(svc *service.LedgerService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// GET /balances
func (h *ReportHandler) Balances(c *gin.Context) {
	balances, err := h.svc.Balances(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, balances)
}

// GET /debts
func (h *ReportHandler) Debts(c *gin.Context) {
	debts, err := h.svc.Debts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if debts == nil {
		c.JSON(http.StatusOK, []any{})
		return
	}
	c.JSON(http.StatusOK, debts)
}

// GET /summary
func (h *ReportHandler) Summary(c *gin.Context) {
	summary, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
