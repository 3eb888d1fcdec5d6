package service

import (
	"log/slog"

	"github.com/mmynk/consorcio/internal/metrics"
	"github.com/mmynk/consorcio/internal/receipts"
)

const entityReceipt = "receipt"

// ReceiptService stores and serves uploaded receipts.
type ReceiptService struct {
	store   *receipts.Store
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewReceiptService(store *receipts.Store, m *metrics.Metrics, logger *slog.Logger) *ReceiptService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReceiptService{store: store, metrics: m, logger: logger}
}

// MaxBytes returns the upload size limit.
func (s *ReceiptService) MaxBytes() int64 {
	return s.store.MaxBytes()
}

// Upload saves content under a generated name derived from originalName.
func (s *ReceiptService) Upload(originalName string, content []byte) (receipts.Receipt, error) {
	r, err := s.store.Save(originalName, content)
	if err != nil {
		s.logger.Warn("Receipt upload rejected", "filename", originalName, "size", len(content), "error", err)
		s.metrics.ObserveOperation(entityReceipt, "upload", "rejected")
		return receipts.Receipt{}, err
	}
	s.logger.Info("Receipt uploaded", "filename", r.Filename, "content_type", r.ContentType, "size", r.Size)
	s.metrics.ObserveOperation(entityReceipt, "upload", "ok")
	return r, nil
}

// Path returns the on-disk location of a stored receipt.
func (s *ReceiptService) Path(filename string) (string, error) {
	path, err := s.store.Path(filename)
	if err != nil {
		s.metrics.ObserveOperation(entityReceipt, "download", "rejected")
		return "", err
	}
	s.metrics.ObserveOperation(entityReceipt, "download", "ok")
	return path, nil
}
