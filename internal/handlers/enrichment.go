package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/villagekeep/villagekeep-backend/internal/platform/logger"
	"github.com/villagekeep/villagekeep-backend/internal/services"
)

type EnrichmentHandler struct {
	log *logger.Logger
	svc services.EnrichmentService
}

func NewEnrichmentHandler(baseLog *logger.Logger, svc services.EnrichmentService) *EnrichmentHandler {
	return &EnrichmentHandler{log: baseLog.With("handler", "EnrichmentHandler"), svc: svc}
}

// Scan sweeps the catalog against the search index. A degraded scan (index
// unavailable) still returns 200 with success=false.
func (h *EnrichmentHandler) Scan(c *gin.Context) {
	result, err := h.svc.Scan(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "scan_failed")
		return
	}
	RespondOK(c, result)
}
