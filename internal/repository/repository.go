package repository

import (
	"time"

	"clinic-scheduler-server/internal/models"
)

// The repositories expose the find/save/delete-by-key operations the
// services are written against. Lookups that miss return (nil, nil) so
// callers can branch on absence without inspecting driver errors.

// AdminRepository looks up administrator accounts.
type AdminRepository interface {
	FindByUsername(username string) (*models.Admin, error)
}

// DoctorRepository manages doctor records and search.
type DoctorRepository interface {
	FindByID(id string) (*models.Doctor, error)
	FindByEmail(email string) (*models.Doctor, error)
	FindAll() ([]models.Doctor, error)
	ExistsByID(id string) (bool, error)
	Save(doctor *models.Doctor) error
	Delete(id string) error

	// Search: name is a case-insensitive substring, specialty an exact
	// case-insensitive match.
	FindByName(name string) ([]models.Doctor, error)
	FindBySpecialty(specialty string) ([]models.Doctor, error)
	FindByNameAndSpecialty(name, specialty string) ([]models.Doctor, error)
}

// PatientRepository manages patient records.
type PatientRepository interface {
	FindByID(id string) (*models.Patient, error)
	FindByEmail(email string) (*models.Patient, error)
	FindByEmailOrPhone(email, phone string) (*models.Patient, error)
	Save(patient *models.Patient) error
}

// AppointmentRepository manages appointments. All listing methods return
// rows with Doctor and Patient preloaded, ordered by appointment time.
type AppointmentRepository interface {
	FindByID(id string) (*models.Appointment, error)
	FindByDoctorAndTimeRange(doctorID string, start, end time.Time) ([]models.Appointment, error)
	FindByDoctorPatientNameAndTimeRange(doctorID, patientName string, start, end time.Time) ([]models.Appointment, error)
	FindByPatient(patientID string) ([]models.Appointment, error)
	FindByPatientAndStatus(patientID string, status int) ([]models.Appointment, error)
	FindByPatientAndDoctorName(patientID, doctorName string) ([]models.Appointment, error)
	FindByPatientDoctorNameAndStatus(patientID, doctorName string, status int) ([]models.Appointment, error)
	Save(appointment *models.Appointment) error
	Delete(id string) error
	DeleteByDoctor(doctorID string) error
}

// PrescriptionRepository manages prescriptions keyed by appointment.
type PrescriptionRepository interface {
	Save(prescription *models.Prescription) error
	FindByAppointment(appointmentID string) ([]models.Prescription, error)
}
