package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "requestId"
	userIDKey       = "userId"
)

func (h *Handler) userIdMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		abortWithDetail(c, http.StatusUnauthorized, "missing Authorization header")
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		abortWithDetail(c, http.StatusUnauthorized, "invalid Authorization header format")
		return
	}

	userId, err := h.services.ParseToken(parts[1])
	if err != nil {
		abortWithDetail(c, http.StatusUnauthorized, "invalid or expired token")
		return
	}

	// store in Gin context
	c.Set(userIDKey, userId)
	c.Next()
}

// requestLogger tags each request with an id (echoed back in X-Request-ID)
// and logs one line per completed request.
func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()

	reqID := c.GetHeader(requestIDHeader)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	c.Set(requestIDKey, reqID)
	c.Header(requestIDHeader, reqID)

	c.Next()

	if h.log == nil {
		return
	}
	h.log.Infow("http_request",
		"request_id", reqID,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"latency", time.Since(start),
	)
}
