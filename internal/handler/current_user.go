package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mmynk/consorcio/internal/service"
)

// CurrentUserHandler serves /current-user.
type CurrentUserHandler struct {
	svc *service.LedgerService
}

func NewCurrentUserHandler(svc *service.LedgerService) *CurrentUserHandler {
	return &CurrentUserHandler{svc: svc}
}

// GET /current-user
func (h *CurrentUserHandler) Get(c *gin.Context) {
	cu, err := h.svc.GetCurrentUser(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cu)
}

// PUT /current-user
func (h *CurrentUserHandler) Set(c *gin.Context) {
	var req currentUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	cu, err := h.svc.SetCurrentUser(c.Request.Context(), req.model())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cu)
}

// POST /current-user/:participantId
func (h *CurrentUserHandler) SetFromParticipant(c *gin.Context) {
	cu, err := h.svc.SetCurrentUserFromParticipant(c.Request.Context(), c.Param("participantId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cu)
}

// DELETE /current-user
func (h *CurrentUserHandler) Clear(c *gin.Context) {
	if err := h.svc.ClearCurrentUser(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "current user cleared"})
}
