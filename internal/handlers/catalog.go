package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/villagekeep/villagekeep-backend/internal/domain/catalog"
	"github.com/villagekeep/villagekeep-backend/internal/middleware"
	"github.com/villagekeep/villagekeep-backend/internal/platform/logger"
	"github.com/villagekeep/villagekeep-backend/internal/services"
)

type CatalogHandler struct {
	log *logger.Logger
	svc services.CatalogService
}

func NewCatalogHandler(baseLog *logger.Logger, svc services.CatalogService) *CatalogHandler {
	return &CatalogHandler{log: baseLog.With("handler", "CatalogHandler"), svc: svc}
}

func (h *CatalogHandler) ListHouses(c *gin.Context) {
	houses, err := h.svc.ListHouses(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "list_houses_failed")
		return
	}
	RespondOK(c, gin.H{"houses": houses, "count": len(houses)})
}

func (h *CatalogHandler) GetHouse(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	house, err := h.svc.GetHouse(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "get_house_failed")
		return
	}
	RespondOK(c, house)
}

func (h *CatalogHandler) GetHouseAccessories(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	accessories, err := h.svc.GetHouseAccessories(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "get_accessories_failed")
		return
	}
	RespondOK(c, gin.H{"accessories": accessories, "count": len(accessories)})
}

func (h *CatalogHandler) ApplyEnrichment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var enrichment types.Enrichment
	if err := c.ShouldBindJSON(&enrichment); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if err := h.svc.ApplyEnrichment(c.Request.Context(), id, enrichment, middleware.Reviewer(c)); err != nil {
		respondServiceError(c, err, "apply_enrichment_failed")
		return
	}
	RespondOK(c, gin.H{"applied": enrichment.Field})
}
