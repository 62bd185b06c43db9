package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	catalogrepo "github.com/villagekeep/villagekeep-backend/internal/data/repos/catalog"
	"github.com/villagekeep/villagekeep-backend/internal/platform/apierr"
	"github.com/villagekeep/villagekeep-backend/internal/services"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// respondServiceError maps engine errors onto HTTP statuses and stable
// codes. Write errors stay 500 but keep their step visible in the code so a
// client can tell a failed backup from a failed status flip.
func respondServiceError(c *gin.Context, err error, fallbackCode string) {
	switch {
	case errors.Is(err, services.ErrForbidden):
		RespondError(c, http.StatusForbidden, "forbidden", err)
	case errors.Is(err, services.ErrNoLinkedHouse):
		RespondError(c, http.StatusBadRequest, "no_linked_house", err)
	case errors.Is(err, services.ErrEmptyReason):
		RespondError(c, http.StatusBadRequest, "empty_reason", err)
	case errors.Is(err, services.ErrNotPending):
		RespondError(c, http.StatusConflict, "not_pending", err)
	case errors.Is(err, catalogrepo.ErrRevisionConflict):
		RespondError(c, http.StatusConflict, "revision_conflict", err)
	case errors.Is(err, catalogrepo.ErrNotFound):
		RespondError(c, http.StatusNotFound, "not_found", err)
	default:
		var we *services.WriteError
		if errors.As(err, &we) {
			RespondError(c, http.StatusInternalServerError, "write_failed_"+string(we.Step), err)
			return
		}
		ae := apierr.From(err, fallbackCode)
		RespondError(c, ae.Status, ae.Code, ae)
	}
}
