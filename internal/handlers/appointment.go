package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"clinic-scheduler-server/internal/middleware"
	"clinic-scheduler-server/internal/models"
	"clinic-scheduler-server/internal/services"
	"clinic-scheduler-server/internal/utils"
)

// AppointmentHandler handles booking, update, cancellation and the doctor
// day view.
type AppointmentHandler struct {
	Appointments *services.AppointmentService
	Clinic       *services.ClinicService
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(appointments *services.AppointmentService, clinic *services.ClinicService) *AppointmentHandler {
	return &AppointmentHandler{Appointments: appointments, Clinic: clinic}
}

// ForDoctor handles GET /appointments/:date/:patientName/:token (doctor
// only). The acting doctor is derived from the token; the path carries no
// doctor id.
func (h *AppointmentHandler) ForDoctor(c *gin.Context) {
	date, err := time.ParseInLocation(dateLayout, c.Param("date"), time.Local)
	if err != nil {
		utils.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	// the frontend sends the literal "null" when no name filter is set
	patientName := c.Param("patientName")
	if strings.EqualFold(patientName, "null") {
		patientName = ""
	}

	details, err := h.Appointments.ForDoctor(patientName, date, middleware.TokenFromContext(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.NotFound(c, "Doctor not found")
		case errors.Is(err, services.ErrInvalidToken):
			utils.Unauthorized(c, "Invalid token")
		case errors.Is(err, services.ErrValidation):
			utils.BadRequest(c, err.Error())
		default:
			utils.InternalServerError(c, "Failed to fetch appointments")
		}
		return
	}
	utils.OK(c, gin.H{"appointments": details})
}

// BookAppointmentRequest represents the request body for booking.
type BookAppointmentRequest struct {
	DoctorID        string    `json:"doctorId" binding:"required"`
	PatientID       string    `json:"patientId" binding:"required"`
	AppointmentTime time.Time `json:"appointmentTime" binding:"required"`
}

// Book handles POST /appointments/:token (patient only). The template
// gate runs first: an unknown doctor is a 404 and a slot missing from the
// day's availability a 409. The overlap validation inside the service can
// still reject afterwards with a 400.
func (h *AppointmentHandler) Book(c *gin.Context) {
	var req BookAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	appointment := models.Appointment{
		DoctorID:        req.DoctorID,
		PatientID:       req.PatientID,
		AppointmentTime: req.AppointmentTime,
		Status:          models.StatusScheduled,
	}

	verdict, err := h.Clinic.ValidateAppointmentSlot(&appointment)
	if err != nil {
		utils.InternalServerError(c, "Failed to book appointment")
		return
	}
	switch verdict {
	case services.SlotDoctorNotFound:
		utils.NotFound(c, "Doctor not found")
		return
	case services.SlotUnavailable:
		utils.Conflict(c, "Selected time is not available")
		return
	}

	if err := h.Appointments.Book(&appointment); err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.BadRequest(c, err.Error())
		} else {
			utils.InternalServerError(c, "Failed to book appointment")
		}
		return
	}
	utils.Created(c, "Appointment booked successfully")
}

// UpdateAppointmentRequest represents the request body for updating an
// appointment's time or status.
type UpdateAppointmentRequest struct {
	ID              string    `json:"id" binding:"required"`
	DoctorID        string    `json:"doctorId" binding:"required"`
	PatientID       string    `json:"patientId" binding:"required"`
	AppointmentTime time.Time `json:"appointmentTime" binding:"required"`
	Status          int       `json:"status"`
}

// Update handles PUT /appointments/:token (patient only).
func (h *AppointmentHandler) Update(c *gin.Context) {
	var req UpdateAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	appointment := models.Appointment{
		BaseModel:       models.BaseModel{ID: req.ID},
		DoctorID:        req.DoctorID,
		PatientID:       req.PatientID,
		AppointmentTime: req.AppointmentTime,
		Status:          req.Status,
	}

	if err := h.Appointments.Update(&appointment); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.NotFound(c, "Appointment not found")
		case errors.Is(err, services.ErrValidation):
			utils.BadRequest(c, err.Error())
		default:
			utils.InternalServerError(c, "Failed to update appointment")
		}
		return
	}
	utils.Message(c, 200, "Appointment updated successfully")
}

// Cancel handles DELETE /appointments/:id/:token (patient only). Only the
// booking patient may cancel.
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	err := h.Appointments.Cancel(c.Param("id"), middleware.TokenFromContext(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.NotFound(c, "Appointment not found")
		case errors.Is(err, services.ErrForbidden):
			utils.Forbidden(c, "Unauthorized: you can only cancel your own appointment")
		case errors.Is(err, services.ErrInvalidToken), errors.Is(err, services.ErrMissingToken):
			utils.Unauthorized(c, "Invalid token")
		case errors.Is(err, services.ErrValidation):
			utils.BadRequest(c, err.Error())
		default:
			utils.InternalServerError(c, "Failed to cancel appointment")
		}
		return
	}
	utils.Message(c, 200, "Appointment cancelled successfully")
}
