package services

import (
	"strings"

	"clinic-scheduler-server/internal/models"
	"clinic-scheduler-server/internal/repository"
)

// PatientService manages patient records and the patient-side appointment
// views.
type PatientService struct {
	patients     repository.PatientRepository
	appointments repository.AppointmentRepository
	tokens       *TokenService
}

// NewPatientService creates a new PatientService.
func NewPatientService(
	patients repository.PatientRepository,
	appointments repository.AppointmentRepository,
	tokens *TokenService,
) *PatientService {
	return &PatientService{patients: patients, appointments: appointments, tokens: tokens}
}

// Create stores a new patient record. Duplicate checks happen in
// ClinicService.ValidatePatientSignup before this is called.
func (s *PatientService) Create(patient *models.Patient) error {
	return s.patients.Save(patient)
}

// Appointments returns the appointments of the given patient. The id must
// belong to the token's subject; a patient can only read their own
// bookings.
func (s *PatientService) Appointments(id, token string) ([]models.AppointmentDetail, error) {
	if id == "" || strings.TrimSpace(token) == "" {
		return nil, Validation("Missing patientId or token")
	}

	patient, err := s.fromToken(token)
	if err != nil {
		return nil, err
	}
	if patient.ID != id {
		return nil, ErrUnauthorized
	}

	appointments, err := s.appointments.FindByPatient(id)
	if err != nil {
		return nil, err
	}
	return toDetails(appointments), nil
}

// conditionStatus maps the condition filter to an appointment status:
// "past" selects completed appointments, "future" scheduled ones.
func conditionStatus(condition string) (int, bool) {
	switch strings.ToLower(strings.TrimSpace(condition)) {
	case "past":
		return models.StatusCompleted, true
	case "future":
		return models.StatusScheduled, true
	}
	return 0, false
}

// ByCondition filters the patient's appointments by past/future.
func (s *PatientService) ByCondition(condition, patientID string) ([]models.AppointmentDetail, error) {
	status, ok := conditionStatus(condition)
	if !ok {
		return nil, Validation("Invalid condition. Use 'past' or 'future'")
	}

	appointments, err := s.appointments.FindByPatientAndStatus(patientID, status)
	if err != nil {
		return nil, err
	}
	return toDetails(appointments), nil
}

// ByDoctor filters the patient's appointments by a doctor-name substring.
func (s *PatientService) ByDoctor(name, patientID string) ([]models.AppointmentDetail, error) {
	appointments, err := s.appointments.FindByPatientAndDoctorName(patientID, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	return toDetails(appointments), nil
}

// ByDoctorAndCondition combines the doctor-name and past/future filters.
func (s *PatientService) ByDoctorAndCondition(condition, name, patientID string) ([]models.AppointmentDetail, error) {
	status, ok := conditionStatus(condition)
	if !ok {
		return nil, Validation("Invalid condition. Use 'past' or 'future'")
	}

	appointments, err := s.appointments.FindByPatientDoctorNameAndStatus(patientID, strings.TrimSpace(name), status)
	if err != nil {
		return nil, err
	}
	return toDetails(appointments), nil
}

// Details resolves the patient record behind a token.
func (s *PatientService) Details(token string) (*models.Patient, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrMissingToken
	}
	return s.fromToken(token)
}

// fromToken resolves the patient whose email is the token's subject.
func (s *PatientService) fromToken(token string) (*models.Patient, error) {
	email, err := s.tokens.ExtractIdentifier(token)
	if err != nil {
		return nil, err
	}

	patient, err := s.patients.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrInvalidToken
	}
	return patient, nil
}
