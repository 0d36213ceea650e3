package services

import (
	"strings"

	"clinic-scheduler-server/internal/models"
	"clinic-scheduler-server/internal/repository"
)

// Template-membership results from ValidateAppointmentSlot.
const (
	SlotDoctorNotFound = -1
	SlotUnavailable    = 0
	SlotValid          = 1
)

// ClinicService coordinates the cross-cutting operations: token gating,
// admin/patient login, signup validation, the template-membership booking
// gate and the composed doctor/patient filters.
type ClinicService struct {
	tokens       *TokenService
	admins       repository.AdminRepository
	doctors      repository.DoctorRepository
	patients     repository.PatientRepository
	doctorSvc    *DoctorService
	patientSvc   *PatientService
	appointments repository.AppointmentRepository
}

// NewClinicService creates a new ClinicService.
func NewClinicService(
	tokens *TokenService,
	admins repository.AdminRepository,
	doctors repository.DoctorRepository,
	patients repository.PatientRepository,
	doctorSvc *DoctorService,
	patientSvc *PatientService,
	appointments repository.AppointmentRepository,
) *ClinicService {
	return &ClinicService{
		tokens:       tokens,
		admins:       admins,
		doctors:      doctors,
		patients:     patients,
		doctorSvc:    doctorSvc,
		patientSvc:   patientSvc,
		appointments: appointments,
	}
}

// ValidateToken checks a bearer token against the expected role.
func (s *ClinicService) ValidateToken(token string, role models.Role) error {
	if strings.TrimSpace(token) == "" {
		return ErrMissingToken
	}
	_, err := s.tokens.Validate(token, role)
	return err
}

// ValidateAdmin checks admin credentials and issues a token with the
// username as subject.
func (s *ClinicService) ValidateAdmin(username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrMissingCredentials
	}

	admin, err := s.admins.FindByUsername(username)
	if err != nil {
		return "", err
	}
	if admin == nil || !admin.CheckPassword(password) {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Generate(admin.Username)
}

// ValidatePatientLogin checks patient credentials and issues a token with
// the email as subject.
func (s *ClinicService) ValidatePatientLogin(identifier, password string) (string, error) {
	if isUnset(identifier) || isUnset(password) {
		return "", ErrMissingCredentials
	}

	patient, err := s.patients.FindByEmail(identifier)
	if err != nil {
		return "", err
	}
	if patient == nil || !patient.CheckPassword(password) {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Generate(patient.Email)
}

// ValidatePatientSignup reports whether the patient may be created: no
// existing record may share the email or phone number.
func (s *ClinicService) ValidatePatientSignup(patient *models.Patient) (bool, error) {
	if patient == nil {
		return false, nil
	}
	existing, err := s.patients.FindByEmailOrPhone(patient.Email, patient.Phone)
	if err != nil {
		return false, err
	}
	return existing == nil, nil
}

// ValidateAppointmentSlot is the coarse template gate run at the handler
// boundary before booking: it recomputes the doctor's availability for the
// appointment's date and checks the requested time-of-day appears in it.
// Returns SlotDoctorNotFound, SlotUnavailable or SlotValid.
func (s *ClinicService) ValidateAppointmentSlot(appointment *models.Appointment) (int, error) {
	if appointment == nil || appointment.DoctorID == "" {
		return SlotDoctorNotFound, nil
	}

	doctor, err := s.doctors.FindByID(appointment.DoctorID)
	if err != nil {
		return SlotDoctorNotFound, err
	}
	if doctor == nil {
		return SlotDoctorNotFound, nil
	}

	if appointment.AppointmentTime.IsZero() {
		return SlotUnavailable, nil
	}

	available, err := s.doctorSvc.Availability(doctor.ID, appointment.AppointmentTime)
	if err != nil {
		return SlotUnavailable, err
	}

	requested := timeOfDay(appointment.AppointmentTime)
	for _, slot := range available {
		if NormalizeSlot(slot) == requested {
			return SlotValid, nil
		}
	}
	return SlotUnavailable, nil
}

// FilterDoctors composes the doctor search from whichever of the three
// filters are present. The literal string "null" and blanks both mean
// "no filter".
func (s *ClinicService) FilterDoctors(name, specialty, amOrPm string) ([]models.Doctor, error) {
	hasName := !isUnset(name)
	hasSpecialty := !isUnset(specialty)
	hasTime := !isUnset(amOrPm)

	switch {
	case hasName && hasSpecialty && hasTime:
		return s.doctorSvc.FilterByNameSpecialtyAndTime(name, specialty, amOrPm)
	case hasName && hasTime:
		return s.doctorSvc.FilterByNameAndTime(name, amOrPm)
	case hasName && hasSpecialty:
		return s.doctorSvc.FilterByNameAndSpecialty(name, specialty)
	case hasSpecialty && hasTime:
		return s.doctorSvc.FilterBySpecialtyAndTime(specialty, amOrPm)
	case hasSpecialty:
		return s.doctorSvc.FilterBySpecialty(specialty)
	case hasTime:
		return s.doctorSvc.FilterByTime(amOrPm)
	case hasName:
		return s.doctorSvc.FindByName(name)
	}
	return s.doctorSvc.List()
}

// FilterPatientAppointments composes the patient's appointment view from
// the optional condition (past/future) and doctor-name filters. The
// acting patient is always resolved from the token.
func (s *ClinicService) FilterPatientAppointments(condition, doctorName, token string) ([]models.AppointmentDetail, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrMissingToken
	}

	patient, err := s.patientSvc.fromToken(token)
	if err != nil {
		return nil, err
	}

	hasCondition := !isUnset(condition)
	hasDoctor := !isUnset(doctorName)

	switch {
	case hasCondition && hasDoctor:
		return s.patientSvc.ByDoctorAndCondition(condition, doctorName, patient.ID)
	case hasCondition:
		return s.patientSvc.ByCondition(condition, patient.ID)
	case hasDoctor:
		return s.patientSvc.ByDoctor(doctorName, patient.ID)
	}
	return s.patientSvc.Appointments(patient.ID, token)
}

// isUnset treats blanks and the literal "null" sentinel sent by the
// frontend as an absent filter value.
func isUnset(s string) bool {
	t := strings.TrimSpace(s)
	return t == "" || strings.EqualFold(t, "null")
}
