package services

import (
	"strings"
	"time"

	"clinic-scheduler-server/internal/models"
	"clinic-scheduler-server/internal/repository"
)

// slotDuration is the window each appointment occupies for conflict
// detection.
const slotDuration = time.Hour

// AppointmentService orchestrates booking, update, cancellation and
// retrieval of appointments.
type AppointmentService struct {
	appointments repository.AppointmentRepository
	doctors      repository.DoctorRepository
	patients     repository.PatientRepository
	tokens       *TokenService
}

// NewAppointmentService creates a new AppointmentService.
func NewAppointmentService(
	appointments repository.AppointmentRepository,
	doctors repository.DoctorRepository,
	patients repository.PatientRepository,
	tokens *TokenService,
) *AppointmentService {
	return &AppointmentService{
		appointments: appointments,
		doctors:      doctors,
		patients:     patients,
		tokens:       tokens,
	}
}

// Validate runs the booking legality checks in order, short-circuiting on
// the first failure. It returns the rejection reason, or "" when the
// appointment is valid. When isUpdate is set, the appointment's own prior
// record is excluded from the overlap scan so a no-op update does not
// conflict with itself.
func (s *AppointmentService) Validate(appointment *models.Appointment, isUpdate bool) (string, error) {
	if appointment == nil {
		return "Appointment data is required", nil
	}
	if appointment.DoctorID == "" {
		return "Doctor is required", nil
	}
	if appointment.PatientID == "" {
		return "Patient is required", nil
	}
	if appointment.AppointmentTime.IsZero() {
		return "Appointment time is required", nil
	}
	if appointment.AppointmentTime.Before(time.Now()) {
		return "Appointment time must be in the future", nil
	}

	doctor, err := s.doctors.FindByID(appointment.DoctorID)
	if err != nil {
		return "", err
	}
	if doctor == nil {
		return "Invalid doctor ID", nil
	}

	patient, err := s.patients.FindByID(appointment.PatientID)
	if err != nil {
		return "", err
	}
	if patient == nil {
		return "Invalid patient ID", nil
	}

	// Conflict check: each appointment occupies [start, start+1h) against
	// every other appointment of the doctor on the same calendar date.
	newStart := appointment.AppointmentTime
	newEnd := newStart.Add(slotDuration)

	dayStart, dayEnd := dayRange(newStart)
	sameDay, err := s.appointments.FindByDoctorAndTimeRange(doctor.ID, dayStart, dayEnd)
	if err != nil {
		return "", err
	}

	for _, existing := range sameDay {
		if isUpdate && appointment.ID != "" && existing.ID == appointment.ID {
			continue
		}
		existingStart := existing.AppointmentTime
		existingEnd := existingStart.Add(slotDuration)
		if newStart.Before(existingEnd) && existingStart.Before(newEnd) {
			return "Appointment slot already booked", nil
		}
	}

	return "", nil
}

// Book validates and persists a new appointment. The template-membership
// gate (ClinicService.ValidateAppointmentSlot) runs at the handler
// boundary before this; both checks guard the booking path.
func (s *AppointmentService) Book(appointment *models.Appointment) error {
	reason, err := s.Validate(appointment, false)
	if err != nil {
		return err
	}
	if reason != "" {
		return Validation(reason)
	}
	return s.appointments.Save(appointment)
}

// Update re-validates and persists changes to an existing appointment.
func (s *AppointmentService) Update(appointment *models.Appointment) error {
	if appointment == nil || appointment.ID == "" {
		return Validation("Appointment ID is required")
	}

	existing, err := s.appointments.FindByID(appointment.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	// Save writes every column; keep the original creation timestamp
	// instead of the request struct's zero value.
	appointment.CreatedAt = existing.CreatedAt

	reason, err := s.Validate(appointment, true)
	if err != nil {
		return err
	}
	if reason != "" {
		return Validation(reason)
	}
	return s.appointments.Save(appointment)
}

// Cancel hard-deletes an appointment. Only the patient who booked it may
// cancel: the token's identifier must match the booked patient's email,
// compared case-insensitively.
func (s *AppointmentService) Cancel(id, token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrMissingToken
	}

	appointment, err := s.appointments.FindByID(id)
	if err != nil {
		return err
	}
	if appointment == nil {
		return ErrNotFound
	}

	identifier, err := s.tokens.ExtractIdentifier(token)
	if err != nil {
		return err
	}
	if appointment.Patient.Email == "" {
		return Validation("Appointment has no patient information")
	}
	if !strings.EqualFold(appointment.Patient.Email, identifier) {
		return ErrForbidden
	}

	return s.appointments.Delete(appointment.ID)
}

// ForDoctor lists the acting doctor's appointments for one date,
// optionally filtered by a patient-name substring. The doctor is resolved
// from the token, never from a client-supplied id.
func (s *AppointmentService) ForDoctor(patientName string, date time.Time, token string) ([]models.AppointmentDetail, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrMissingToken
	}
	if date.IsZero() {
		return nil, Validation("Date is required")
	}

	identifier, err := s.tokens.ExtractIdentifier(token)
	if err != nil {
		return nil, err
	}
	doctor, err := s.doctors.FindByEmail(identifier)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrNotFound
	}

	start, end := dayRange(date)

	var appointments []models.Appointment
	if strings.TrimSpace(patientName) != "" {
		appointments, err = s.appointments.FindByDoctorPatientNameAndTimeRange(doctor.ID, patientName, start, end)
	} else {
		appointments, err = s.appointments.FindByDoctorAndTimeRange(doctor.ID, start, end)
	}
	if err != nil {
		return nil, err
	}

	return toDetails(appointments), nil
}

// toDetails projects appointments into their flat transfer shape,
// preserving query order.
func toDetails(appointments []models.Appointment) []models.AppointmentDetail {
	details := make([]models.AppointmentDetail, len(appointments))
	for i := range appointments {
		details[i] = appointments[i].Detail()
	}
	return details
}
