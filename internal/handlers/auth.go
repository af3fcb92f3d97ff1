package handlers

import (
	"errors"
	"net/http"

	"hospital_records/internal/service"

	"github.com/gin-gonic/gin"
)

// LoginRequest carries the operator's credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type loginResponse struct {
	Message string `json:"message" example:"Login successful"`
	Token   string `json:"token"`
}

// @Summary      Log in
// @Description  Returns a bearer token to present on record endpoints.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	if ok := h.bindJSONOrBadRequest(c, &input, "auth_bad_request_body"); !ok {
		return
	}

	token, err := h.services.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			if h.log != nil {
				h.log.Infow("auth_login_failed", "username", input.Username, "err", err)
			}
			abortWithDetail(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		if h.log != nil {
			h.log.Errorw("auth_login_error", "username", input.Username, "err", err)
		}
		abortWithDetail(c, http.StatusInternalServerError, errInternal)
		return
	}

	c.JSON(http.StatusOK, loginResponse{Message: "Login successful", Token: token})
}
