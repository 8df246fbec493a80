package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

var businessStatus = map[string]int{
	"booking_not_found":      http.StatusNotFound,
	"suggestion_not_found":   http.StatusNotFound,
	"time_conflict":          http.StatusConflict,
	"suggestion_unavailable": http.StatusConflict,
	"duplicate_id":           http.StatusConflict,
}

// writeError maps business errors to 4xx responses and everything else to
// a logged 500.
func (h *AppointmentHandler) writeError(c *gin.Context, err error) {
	code, ok := httperr.CodeOf(err)
	if !ok {
		h.log.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	status, known := businessStatus[code]
	if !known {
		status = http.StatusBadRequest
	}
	httperr.Write(c, status, code, httperr.Message(code))
}
