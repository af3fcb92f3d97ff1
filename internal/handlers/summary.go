package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const statusOK = "ok"

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Record counts
// @Tags         system
// @Produce      json
// @Success      200  {object}  models.Summary
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /summary [get]
// @Security     BearerAuth
func (h *Handler) getSummary(c *gin.Context) {
	s, err := h.services.GetSummary(c.Request.Context())
	if err != nil {
		if h.log != nil {
			h.log.Errorw("summary_failed", "err", err)
		}
		abortWithDetail(c, http.StatusInternalServerError, errInternal)
		return
	}
	c.JSON(http.StatusOK, s)
}
