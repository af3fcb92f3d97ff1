package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"hospital_records/internal/repository"
	"hospital_records/internal/service"

	"github.com/gin-gonic/gin"
)

const errInternal = "internal error"

// errorResponse is the body of every non-2xx answer.
type errorResponse struct {
	Detail string `json:"detail" example:"Doctor not found"`
}

// messageResponse is the body of successful writes.
type messageResponse struct {
	Message string `json:"message" example:"Doctor added"`
}

func abortWithDetail(c *gin.Context, code int, detail string) {
	c.AbortWithStatusJSON(code, errorResponse{Detail: detail})
}

func respondMessage(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, messageResponse{Message: msg})
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any, logKey string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow(logKey, "err", err)
		}
		abortWithDetail(c, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// parseID reads the :id path segment; entity is the lowercase record name.
func parseID(c *gin.Context, entity string) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abortWithDetail(c, http.StatusBadRequest, "invalid "+entity+" id")
		return 0, false
	}
	return id, true
}

// respondRecordError maps store and service errors for one record kind
// (title is "Doctor" or "Patient") to status codes. Unknown errors are logged.
func (h *Handler) respondRecordError(c *gin.Context, title, logKey string, err error, kv ...interface{}) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		abortWithDetail(c, http.StatusNotFound, title+" not found")
	case errors.Is(err, repository.ErrConflict):
		abortWithDetail(c, http.StatusBadRequest, title+" already exists.")
	case errors.Is(err, service.ErrInvalidRecord):
		abortWithDetail(c, http.StatusBadRequest, err.Error())
	default:
		if h.log != nil {
			fields := append([]interface{}{"err", err}, kv...)
			h.log.Errorw(logKey, fields...)
		}
		abortWithDetail(c, http.StatusInternalServerError, errInternal)
	}
}
