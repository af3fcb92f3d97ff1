package handlers

import (
	"net/http"

	"hospital_records/internal/models"

	"github.com/gin-gonic/gin"
)

const doctorTitle = "Doctor"

// CreateDoctorRequest is the create payload. id is a pointer so 0 is accepted
// while a missing id is still rejected.
type CreateDoctorRequest struct {
	ID        *int   `json:"id" binding:"required" example:"1"`
	Name      string `json:"name" binding:"required" example:"Gregory House"`
	Specialty string `json:"specialty" binding:"required" example:"Diagnostics"`
}

// @Summary      Add doctor
// @Tags         doctors
// @Accept       json
// @Produce      json
// @Param        body  body      CreateDoctorRequest  true  "Doctor"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /doctors/ [post]
// @Security     BearerAuth
func (h *Handler) createDoctor(c *gin.Context) {
	var req CreateDoctorRequest
	if ok := h.bindJSONOrBadRequest(c, &req, "doctor_bad_request_body"); !ok {
		return
	}
	d := models.Doctor{ID: *req.ID, Name: req.Name, Specialty: req.Specialty}
	if err := h.services.CreateDoctor(c.Request.Context(), d); err != nil {
		h.respondRecordError(c, doctorTitle, "doctor_create_failed", err, "id", d.ID)
		return
	}
	respondMessage(c, "Doctor added")
}

// @Summary      List doctors
// @Tags         doctors
// @Produce      json
// @Success      200  {array}   models.Doctor
// @Failure      401  {object}  errorResponse
// @Router       /doctors/ [get]
// @Security     BearerAuth
func (h *Handler) listDoctors(c *gin.Context) {
	doctors, err := h.services.ListDoctors(c.Request.Context())
	if err != nil {
		h.respondRecordError(c, doctorTitle, "doctor_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// @Summary      Get doctor
// @Tags         doctors
// @Produce      json
// @Param        id   path      int  true  "Doctor ID"
// @Success      200  {object}  models.Doctor
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /doctors/{id} [get]
// @Security     BearerAuth
func (h *Handler) getDoctor(c *gin.Context) {
	id, ok := parseID(c, "doctor")
	if !ok {
		return
	}
	d, err := h.services.GetDoctor(c.Request.Context(), id)
	if err != nil {
		h.respondRecordError(c, doctorTitle, "doctor_get_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, d)
}

// @Summary      Update doctor
// @Description  Only supplied fields are changed. An empty object is a no-op.
// @Tags         doctors
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "Doctor ID"
// @Param        body  body      models.DoctorPatch  true  "Fields to change"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /doctors/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateDoctor(c *gin.Context) {
	id, ok := parseID(c, "doctor")
	if !ok {
		return
	}
	var patch models.DoctorPatch
	if ok := h.bindJSONOrBadRequest(c, &patch, "doctor_bad_request_body"); !ok {
		return
	}
	if err := h.services.UpdateDoctor(c.Request.Context(), id, patch); err != nil {
		h.respondRecordError(c, doctorTitle, "doctor_update_failed", err, "id", id)
		return
	}
	respondMessage(c, "Doctor updated")
}

// @Summary      Remove doctor
// @Tags         doctors
// @Produce      json
// @Param        id   path      int  true  "Doctor ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /doctors/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteDoctor(c *gin.Context) {
	id, ok := parseID(c, "doctor")
	if !ok {
		return
	}
	if err := h.services.DeleteDoctor(c.Request.Context(), id); err != nil {
		h.respondRecordError(c, doctorTitle, "doctor_delete_failed", err, "id", id)
		return
	}
	respondMessage(c, "Doctor removed")
}
