package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/villagekeep/villagekeep-backend/internal/middleware"
	"github.com/villagekeep/villagekeep-backend/internal/platform/logger"
	"github.com/villagekeep/villagekeep-backend/internal/services"
)

type ReviewHandler struct {
	log *logger.Logger
	svc services.ReviewService
}

func NewReviewHandler(baseLog *logger.Logger, svc services.ReviewService) *ReviewHandler {
	return &ReviewHandler{log: baseLog.With("handler", "ReviewHandler"), svc: svc}
}

func (h *ReviewHandler) ListPending(c *gin.Context) {
	pending, err := h.svc.ListPending(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "list_pending_failed")
		return
	}
	RespondOK(c, gin.H{"pending": pending, "count": len(pending)})
}

func (h *ReviewHandler) Approve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	record, err := h.svc.Approve(c.Request.Context(), id, middleware.Reviewer(c))
	if err != nil {
		respondServiceError(c, err, "approve_failed")
		return
	}
	RespondOK(c, gin.H{"approval": record})
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

func (h *ReviewHandler) Reject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req rejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if err := h.svc.Reject(c.Request.Context(), id, middleware.Reviewer(c), req.Reason); err != nil {
		respondServiceError(c, err, "reject_failed")
		return
	}
	RespondOK(c, gin.H{"rejected": id})
}

type bulkApproveRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

func (h *ReviewHandler) BulkApprove(c *gin.Context) {
	var req bulkApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if len(req.IDs) == 0 {
		RespondError(c, http.StatusBadRequest, "empty_batch", nil)
		return
	}
	result := h.svc.BulkApprove(c.Request.Context(), req.IDs, middleware.Reviewer(c))
	RespondOK(c, result)
}

func (h *ReviewHandler) Recent(c *gin.Context) {
	recent, err := h.svc.RecentApprovals(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "recent_approvals_failed")
		return
	}
	RespondOK(c, gin.H{"approvals": recent, "count": len(recent)})
}

func (h *ReviewHandler) Undo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	record, err := h.svc.Undo(c.Request.Context(), id, middleware.Reviewer(c))
	if err != nil {
		respondServiceError(c, err, "undo_failed")
		return
	}
	RespondOK(c, gin.H{"approval": record})
}
