package handlers

import (
	"github.com/gin-gonic/gin"

	"clinic-scheduler-server/internal/models"
	"clinic-scheduler-server/internal/services"
	"clinic-scheduler-server/internal/utils"
)

// PrescriptionHandler handles prescription requests (doctor only).
type PrescriptionHandler struct {
	Prescriptions *services.PrescriptionService
}

// NewPrescriptionHandler creates a new PrescriptionHandler.
func NewPrescriptionHandler(prescriptions *services.PrescriptionService) *PrescriptionHandler {
	return &PrescriptionHandler{Prescriptions: prescriptions}
}

// PrescriptionRequest represents the request body for saving a
// prescription.
type PrescriptionRequest struct {
	AppointmentID string `json:"appointmentId" binding:"required"`
	PatientName   string `json:"patientName"`
	Medication    string `json:"medication" binding:"required"`
	Dosage        string `json:"dosage"`
	DoctorNotes   string `json:"doctorNotes"`
}

// Save handles POST /prescription/:token.
func (h *PrescriptionHandler) Save(c *gin.Context) {
	var req PrescriptionRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	prescription := models.Prescription{
		AppointmentID: req.AppointmentID,
		PatientName:   req.PatientName,
		Medication:    req.Medication,
		Dosage:        req.Dosage,
		DoctorNotes:   req.DoctorNotes,
	}
	if err := h.Prescriptions.Save(&prescription); err != nil {
		utils.InternalServerError(c, "Something went wrong while saving prescription")
		return
	}
	utils.Created(c, "Prescription saved")
}

// ByAppointment handles GET /prescription/:appointmentId/:token.
func (h *PrescriptionHandler) ByAppointment(c *gin.Context) {
	prescriptions, err := h.Prescriptions.ByAppointment(c.Param("appointmentId"))
	if err != nil {
		utils.InternalServerError(c, "Something went wrong while fetching prescription")
		return
	}
	utils.OK(c, gin.H{"prescriptions": prescriptions})
}
