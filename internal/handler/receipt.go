package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mmynk/consorcio/internal/ledger"
	"github.com/mmynk/consorcio/internal/receipts"
	"github.com/mmynk/consorcio/internal/service"
)

// ReceiptHandler serves /upload/receipt.
type ReceiptHandler struct {
	svc *service.ReceiptService
}

func NewReceiptHandler(svc *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{svc: svc}
}

type uploadResponse struct {
	receipts.Receipt
	Message string `json:"message"`
}

// POST /upload/receipt (multipart field "file")
func (h *ReceiptHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		respondError(c, ledger.Validation("no file provided"))
		return
	}
	if fh.Size > h.svc.MaxBytes() {
		respondError(c, ledger.Validation("file exceeds the %d byte limit", h.svc.MaxBytes()))
		return
	}

	f, err := fh.Open()
	if err != nil {
		respondError(c, fmt.Errorf("failed to open upload: %w", err))
		return
	}
	defer f.Close()

	// one extra byte so an oversized body is still detected by the store
	content, err := io.ReadAll(io.LimitReader(f, h.svc.MaxBytes()+1))
	if err != nil {
		respondError(c, fmt.Errorf("failed to read upload: %w", err))
		return
	}

	r, err := h.svc.Upload(fh.Filename, content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, uploadResponse{Receipt: r, Message: "file uploaded"})
}

// GET /upload/receipt/:filename
func (h *ReceiptHandler) Download(c *gin.Context) {
	filename := c.Param("filename")
	path, err := h.svc.Path(filename)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	c.File(path)
}
