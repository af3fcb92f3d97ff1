package handlers

import (
	"net/http"

	"hospital_records/internal/models"

	"github.com/gin-gonic/gin"
)

const patientTitle = "Patient"

// CreatePatientRequest mirrors CreateDoctorRequest with disease in place of specialty.
type CreatePatientRequest struct {
	ID      *int   `json:"id" binding:"required" example:"1"`
	Name    string `json:"name" binding:"required" example:"John Doe"`
	Disease string `json:"disease" binding:"required" example:"Influenza"`
}

// @Summary      Add patient
// @Tags         patients
// @Accept       json
// @Produce      json
// @Param        body  body      CreatePatientRequest  true  "Patient"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /patients/ [post]
// @Security     BearerAuth
func (h *Handler) createPatient(c *gin.Context) {
	var req CreatePatientRequest
	if ok := h.bindJSONOrBadRequest(c, &req, "patient_bad_request_body"); !ok {
		return
	}
	p := models.Patient{ID: *req.ID, Name: req.Name, Disease: req.Disease}
	if err := h.services.CreatePatient(c.Request.Context(), p); err != nil {
		h.respondRecordError(c, patientTitle, "patient_create_failed", err, "id", p.ID)
		return
	}
	respondMessage(c, "Patient added")
}

// @Summary      List patients
// @Tags         patients
// @Produce      json
// @Success      200  {array}   models.Patient
// @Failure      401  {object}  errorResponse
// @Router       /patients/ [get]
// @Security     BearerAuth
func (h *Handler) listPatients(c *gin.Context) {
	patients, err := h.services.ListPatients(c.Request.Context())
	if err != nil {
		h.respondRecordError(c, patientTitle, "patient_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, patients)
}

// @Summary      Get patient
// @Tags         patients
// @Produce      json
// @Param        id   path      int  true  "Patient ID"
// @Success      200  {object}  models.Patient
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /patients/{id} [get]
// @Security     BearerAuth
func (h *Handler) getPatient(c *gin.Context) {
	id, ok := parseID(c, "patient")
	if !ok {
		return
	}
	p, err := h.services.GetPatient(c.Request.Context(), id)
	if err != nil {
		h.respondRecordError(c, patientTitle, "patient_get_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary      Update patient
// @Description  Only supplied fields are changed. An empty object is a no-op.
// @Tags         patients
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "Patient ID"
// @Param        body  body      models.PatientPatch  true  "Fields to change"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /patients/{id} [put]
// @Security     BearerAuth
func (h *Handler) updatePatient(c *gin.Context) {
	id, ok := parseID(c, "patient")
	if !ok {
		return
	}
	var patch models.PatientPatch
	if ok := h.bindJSONOrBadRequest(c, &patch, "patient_bad_request_body"); !ok {
		return
	}
	if err := h.services.UpdatePatient(c.Request.Context(), id, patch); err != nil {
		h.respondRecordError(c, patientTitle, "patient_update_failed", err, "id", id)
		return
	}
	respondMessage(c, "Patient updated")
}

// @Summary      Remove patient
// @Tags         patients
// @Produce      json
// @Param        id   path      int  true  "Patient ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /patients/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deletePatient(c *gin.Context) {
	id, ok := parseID(c, "patient")
	if !ok {
		return
	}
	if err := h.services.DeletePatient(c.Request.Context(), id); err != nil {
		h.respondRecordError(c, patientTitle, "patient_delete_failed", err, "id", id)
		return
	}
	respondMessage(c, "Patient removed")
}
