package services

import (
	"strings"
	"time"

	"clinic-scheduler-server/internal/models"
	"clinic-scheduler-server/internal/repository"
)

// DoctorService manages doctor records, availability computation and the
// doctor search filters.
type DoctorService struct {
	doctors      repository.DoctorRepository
	appointments repository.AppointmentRepository
	tokens       *TokenService
}

// NewDoctorService creates a new DoctorService.
func NewDoctorService(
	doctors repository.DoctorRepository,
	appointments repository.AppointmentRepository,
	tokens *TokenService,
) *DoctorService {
	return &DoctorService{doctors: doctors, appointments: appointments, tokens: tokens}
}

// Availability computes the doctor's open slots for one calendar date: the
// availability template minus the time-of-day values already booked that
// day. The template itself is never mutated. Unknown doctors and zero
// dates yield an empty list.
func (s *DoctorService) Availability(doctorID string, date time.Time) ([]string, error) {
	if doctorID == "" || date.IsZero() {
		return []string{}, nil
	}

	doctor, err := s.doctors.FindByID(doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return []string{}, nil
	}

	start, end := dayRange(date)
	appointments, err := s.appointments.FindByDoctorAndTimeRange(doctorID, start, end)
	if err != nil {
		return nil, err
	}

	booked := make(map[string]struct{}, len(appointments))
	for _, a := range appointments {
		booked[timeOfDay(a.AppointmentTime)] = struct{}{}
	}

	available := make([]string, 0, len(doctor.AvailableTimes))
	for _, slot := range doctor.AvailableTimes {
		if strings.TrimSpace(slot) == "" {
			continue
		}
		if _, taken := booked[NormalizeSlot(slot)]; taken {
			continue
		}
		available = append(available, slot)
	}
	return available, nil
}

// Save registers a new doctor, rejecting duplicate emails.
func (s *DoctorService) Save(doctor *models.Doctor) error {
	if doctor == nil || doctor.Email == "" {
		return ErrValidation
	}

	existing, err := s.doctors.FindByEmail(doctor.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrDuplicate
	}
	return s.doctors.Save(doctor)
}

// Update saves changes to an existing doctor. An empty password keeps the
// stored hash.
func (s *DoctorService) Update(doctor *models.Doctor) error {
	if doctor == nil || doctor.ID == "" {
		return ErrValidation
	}

	existing, err := s.doctors.FindByID(doctor.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	if doctor.Password == "" {
		doctor.Password = existing.Password
	}
	doctor.CreatedAt = existing.CreatedAt
	return s.doctors.Save(doctor)
}

// Delete removes a doctor along with all of their appointments.
func (s *DoctorService) Delete(id string) error {
	exists, err := s.doctors.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}

	if err := s.appointments.DeleteByDoctor(id); err != nil {
		return err
	}
	return s.doctors.Delete(id)
}

// List returns all doctors.
func (s *DoctorService) List() ([]models.Doctor, error) {
	return s.doctors.FindAll()
}

// Login checks the doctor's credentials and issues a token with the
// doctor's email as subject.
func (s *DoctorService) Login(identifier, password string) (string, error) {
	if identifier == "" || password == "" {
		return "", ErrMissingCredentials
	}

	doctor, err := s.doctors.FindByEmail(identifier)
	if err != nil {
		return "", err
	}
	if doctor == nil || !doctor.CheckPassword(password) {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Generate(doctor.Email)
}

// FindByName returns doctors whose name contains the given substring.
func (s *DoctorService) FindByName(name string) ([]models.Doctor, error) {
	return s.doctors.FindByName(name)
}

// FilterBySpecialty returns doctors with an exact (case-insensitive)
// specialty match.
func (s *DoctorService) FilterBySpecialty(specialty string) ([]models.Doctor, error) {
	return s.doctors.FindBySpecialty(specialty)
}

// FilterByNameAndSpecialty combines the name substring and specialty
// filters.
func (s *DoctorService) FilterByNameAndSpecialty(name, specialty string) ([]models.Doctor, error) {
	return s.doctors.FindByNameAndSpecialty(name, specialty)
}

// FilterByNameAndTime filters by name substring, then keeps doctors with
// at least one AM or PM slot in their template.
func (s *DoctorService) FilterByNameAndTime(name, amOrPm string) ([]models.Doctor, error) {
	doctors, err := s.doctors.FindByName(name)
	if err != nil {
		return nil, err
	}
	return filterDoctorsByTime(doctors, amOrPm), nil
}

// FilterBySpecialtyAndTime filters by specialty, then by AM/PM slots.
func (s *DoctorService) FilterBySpecialtyAndTime(specialty, amOrPm string) ([]models.Doctor, error) {
	doctors, err := s.doctors.FindBySpecialty(specialty)
	if err != nil {
		return nil, err
	}
	return filterDoctorsByTime(doctors, amOrPm), nil
}

// FilterByNameSpecialtyAndTime applies all three filters.
func (s *DoctorService) FilterByNameSpecialtyAndTime(name, specialty, amOrPm string) ([]models.Doctor, error) {
	doctors, err := s.doctors.FindByNameAndSpecialty(name, specialty)
	if err != nil {
		return nil, err
	}
	return filterDoctorsByTime(doctors, amOrPm), nil
}

// FilterByTime keeps all doctors with at least one slot in the requested
// half of the day.
func (s *DoctorService) FilterByTime(amOrPm string) ([]models.Doctor, error) {
	doctors, err := s.doctors.FindAll()
	if err != nil {
		return nil, err
	}
	return filterDoctorsByTime(doctors, amOrPm), nil
}

// filterDoctorsByTime keeps doctors whose availability template contains
// at least one entry with the requested AM/PM suffix. An unrecognized
// filter value passes everything through.
func filterDoctorsByTime(doctors []models.Doctor, amOrPm string) []models.Doctor {
	target := strings.ToUpper(strings.TrimSpace(amOrPm))
	if target != "AM" && target != "PM" {
		return doctors
	}

	filtered := make([]models.Doctor, 0, len(doctors))
	for _, d := range doctors {
		for _, slot := range d.AvailableTimes {
			if strings.HasSuffix(strings.ToUpper(strings.TrimSpace(slot)), target) {
				filtered = append(filtered, d)
				break
			}
		}
	}
	return filtered
}
