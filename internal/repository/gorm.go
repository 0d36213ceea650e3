package repository

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"clinic-scheduler-server/internal/models"
)

// containsPattern builds a case-insensitive LIKE pattern for substring
// matching.
func containsPattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}

// Repositories bundles the GORM-backed implementations sharing one
// database handle.
type Repositories struct {
	Admins        AdminRepository
	Doctors       DoctorRepository
	Patients      PatientRepository
	Appointments  AppointmentRepository
	Prescriptions PrescriptionRepository
}

// New creates the GORM repository set.
func New(db *gorm.DB) *Repositories {
	return &Repositories{
		Admins:        &gormAdminRepository{db: db},
		Doctors:       &gormDoctorRepository{db: db},
		Patients:      &gormPatientRepository{db: db},
		Appointments:  &gormAppointmentRepository{db: db},
		Prescriptions: &gormPrescriptionRepository{db: db},
	}
}

// first runs a query expecting at most one row and maps
// gorm.ErrRecordNotFound to (nil, nil).
func first[T any](tx *gorm.DB, dest *T) (*T, error) {
	if err := tx.First(dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return dest, nil
}

// ----- admins -----

type gormAdminRepository struct {
	db *gorm.DB
}

func (r *gormAdminRepository) FindByUsername(username string) (*models.Admin, error) {
	var admin models.Admin
	return first(r.db.Where("username = ?", username), &admin)
}

// ----- doctors -----

type gormDoctorRepository struct {
	db *gorm.DB
}

func (r *gormDoctorRepository) FindByID(id string) (*models.Doctor, error) {
	var doctor models.Doctor
	return first(r.db.Where("id = ?", id), &doctor)
}

func (r *gormDoctorRepository) FindByEmail(email string) (*models.Doctor, error) {
	var doctor models.Doctor
	return first(r.db.Where("email = ?", email), &doctor)
}

func (r *gormDoctorRepository) FindAll() ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := r.db.Find(&doctors).Error
	return doctors, err
}

func (r *gormDoctorRepository) ExistsByID(id string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Doctor{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *gormDoctorRepository) Save(doctor *models.Doctor) error {
	return r.db.Save(doctor).Error
}

func (r *gormDoctorRepository) Delete(id string) error {
	return r.db.Delete(&models.Doctor{}, "id = ?", id).Error
}

func (r *gormDoctorRepository) FindByName(name string) ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := r.db.Where("LOWER(name) LIKE ?", containsPattern(name)).Find(&doctors).Error
	return doctors, err
}

func (r *gormDoctorRepository) FindBySpecialty(specialty string) ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := r.db.Where("LOWER(specialty) = LOWER(?)", specialty).Find(&doctors).Error
	return doctors, err
}

func (r *gormDoctorRepository) FindByNameAndSpecialty(name, specialty string) ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := r.db.
		Where("LOWER(name) LIKE ? AND LOWER(specialty) = LOWER(?)", containsPattern(name), specialty).
		Find(&doctors).Error
	return doctors, err
}

// ----- patients -----

type gormPatientRepository struct {
	db *gorm.DB
}

func (r *gormPatientRepository) FindByID(id string) (*models.Patient, error) {
	var patient models.Patient
	return first(r.db.Where("id = ?", id), &patient)
}

func (r *gormPatientRepository) FindByEmail(email string) (*models.Patient, error) {
	var patient models.Patient
	return first(r.db.Where("email = ?", email), &patient)
}

func (r *gormPatientRepository) FindByEmailOrPhone(email, phone string) (*models.Patient, error) {
	var patient models.Patient
	return first(r.db.Where("email = ? OR phone = ?", email, phone), &patient)
}

func (r *gormPatientRepository) Save(patient *models.Patient) error {
	return r.db.Save(patient).Error
}

// ----- appointments -----

type gormAppointmentRepository struct {
	db *gorm.DB
}

func (r *gormAppointmentRepository) preloaded() *gorm.DB {
	return r.db.Preload("Doctor").Preload("Patient").Order("appointment_time asc")
}

func (r *gormAppointmentRepository) FindByID(id string) (*models.Appointment, error) {
	var appointment models.Appointment
	return first(r.db.Preload("Doctor").Preload("Patient").Where("id = ?", id), &appointment)
}

func (r *gormAppointmentRepository) FindByDoctorAndTimeRange(doctorID string, start, end time.Time) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.preloaded().
		Where("doctor_id = ? AND appointment_time BETWEEN ? AND ?", doctorID, start, end).
		Find(&appointments).Error
	return appointments, err
}

func (r *gormAppointmentRepository) FindByDoctorPatientNameAndTimeRange(doctorID, patientName string, start, end time.Time) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.preloaded().
		Joins("JOIN patients ON patients.id = appointments.patient_id").
		Where("appointments.doctor_id = ? AND LOWER(patients.name) LIKE ? AND appointments.appointment_time BETWEEN ? AND ?",
			doctorID, containsPattern(patientName), start, end).
		Find(&appointments).Error
	return appointments, err
}

func (r *gormAppointmentRepository) FindByPatient(patientID string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.preloaded().Where("patient_id = ?", patientID).Find(&appointments).Error
	return appointments, err
}

func (r *gormAppointmentRepository) FindByPatientAndStatus(patientID string, status int) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.preloaded().
		Where("patient_id = ? AND status = ?", patientID, status).
		Find(&appointments).Error
	return appointments, err
}

func (r *gormAppointmentRepository) FindByPatientAndDoctorName(patientID, doctorName string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.preloaded().
		Joins("JOIN doctors ON doctors.id = appointments.doctor_id").
		Where("appointments.patient_id = ? AND LOWER(doctors.name) LIKE ?", patientID, containsPattern(doctorName)).
		Find(&appointments).Error
	return appointments, err
}

func (r *gormAppointmentRepository) FindByPatientDoctorNameAndStatus(patientID, doctorName string, status int) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.preloaded().
		Joins("JOIN doctors ON doctors.id = appointments.doctor_id").
		Where("appointments.patient_id = ? AND LOWER(doctors.name) LIKE ? AND appointments.status = ?",
			patientID, containsPattern(doctorName), status).
		Find(&appointments).Error
	return appointments, err
}

func (r *gormAppointmentRepository) Save(appointment *models.Appointment) error {
	return r.db.Save(appointment).Error
}

func (r *gormAppointmentRepository) Delete(id string) error {
	return r.db.Delete(&models.Appointment{}, "id = ?", id).Error
}

func (r *gormAppointmentRepository) DeleteByDoctor(doctorID string) error {
	return r.db.Delete(&models.Appointment{}, "doctor_id = ?", doctorID).Error
}

// ----- prescriptions -----

type gormPrescriptionRepository struct {
	db *gorm.DB
}

func (r *gormPrescriptionRepository) Save(prescription *models.Prescription) error {
	return r.db.Save(prescription).Error
}

func (r *gormPrescriptionRepository) FindByAppointment(appointmentID string) ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	err := r.db.Where("appointment_id = ?", appointmentID).Find(&prescriptions).Error
	return prescriptions, err
}
