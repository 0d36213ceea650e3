package services

import (
	"clinic-scheduler-server/internal/models"
	"clinic-scheduler-server/internal/repository"
)

// PrescriptionService stores and retrieves prescriptions keyed by
// appointment.
type PrescriptionService struct {
	prescriptions repository.PrescriptionRepository
}

// NewPrescriptionService creates a new PrescriptionService.
func NewPrescriptionService(prescriptions repository.PrescriptionRepository) *PrescriptionService {
	return &PrescriptionService{prescriptions: prescriptions}
}

// Save persists a prescription.
func (s *PrescriptionService) Save(prescription *models.Prescription) error {
	return s.prescriptions.Save(prescription)
}

// ByAppointment returns the prescriptions written for one appointment.
func (s *PrescriptionService) ByAppointment(appointmentID string) ([]models.Prescription, error) {
	return s.prescriptions.FindByAppointment(appointmentID)
}
