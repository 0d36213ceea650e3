package services

import (
	"time"

	"clinic-scheduler-server/internal/models"
)

// Function-field repository mocks. Tests set only the methods they
// expect to be called; unset methods behave as empty stores.

type adminRepoMock struct {
	findByUsername func(username string) (*models.Admin, error)
}

func (m *adminRepoMock) FindByUsername(username string) (*models.Admin, error) {
	if m.findByUsername == nil {
		return nil, nil
	}
	return m.findByUsername(username)
}

type doctorRepoMock struct {
	findByID               func(id string) (*models.Doctor, error)
	findByEmail            func(email string) (*models.Doctor, error)
	findAll                func() ([]models.Doctor, error)
	existsByID             func(id string) (bool, error)
	save                   func(doctor *models.Doctor) error
	delete                 func(id string) error
	findByName             func(name string) ([]models.Doctor, error)
	findBySpecialty        func(specialty string) ([]models.Doctor, error)
	findByNameAndSpecialty func(name, specialty string) ([]models.Doctor, error)
}

func (m *doctorRepoMock) FindByID(id string) (*models.Doctor, error) {
	if m.findByID == nil {
		return nil, nil
	}
	return m.findByID(id)
}

func (m *doctorRepoMock) FindByEmail(email string) (*models.Doctor, error) {
	if m.findByEmail == nil {
		return nil, nil
	}
	return m.findByEmail(email)
}

func (m *doctorRepoMock) FindAll() ([]models.Doctor, error) {
	if m.findAll == nil {
		return nil, nil
	}
	return m.findAll()
}

func (m *doctorRepoMock) ExistsByID(id string) (bool, error) {
	if m.existsByID == nil {
		return false, nil
	}
	return m.existsByID(id)
}

func (m *doctorRepoMock) Save(doctor *models.Doctor) error {
	if m.save == nil {
		return nil
	}
	return m.save(doctor)
}

func (m *doctorRepoMock) Delete(id string) error {
	if m.delete == nil {
		return nil
	}
	return m.delete(id)
}

func (m *doctorRepoMock) FindByName(name string) ([]models.Doctor, error) {
	if m.findByName == nil {
		return nil, nil
	}
	return m.findByName(name)
}

func (m *doctorRepoMock) FindBySpecialty(specialty string) ([]models.Doctor, error) {
	if m.findBySpecialty == nil {
		return nil, nil
	}
	return m.findBySpecialty(specialty)
}

func (m *doctorRepoMock) FindByNameAndSpecialty(name, specialty string) ([]models.Doctor, error) {
	if m.findByNameAndSpecialty == nil {
		return nil, nil
	}
	return m.findByNameAndSpecialty(name, specialty)
}

type patientRepoMock struct {
	findByID           func(id string) (*models.Patient, error)
	findByEmail        func(email string) (*models.Patient, error)
	findByEmailOrPhone func(email, phone string) (*models.Patient, error)
	save               func(patient *models.Patient) error
}

func (m *patientRepoMock) FindByID(id string) (*models.Patient, error) {
	if m.findByID == nil {
		return nil, nil
	}
	return m.findByID(id)
}

func (m *patientRepoMock) FindByEmail(email string) (*models.Patient, error) {
	if m.findByEmail == nil {
		return nil, nil
	}
	return m.findByEmail(email)
}

func (m *patientRepoMock) FindByEmailOrPhone(email, phone string) (*models.Patient, error) {
	if m.findByEmailOrPhone == nil {
		return nil, nil
	}
	return m.findByEmailOrPhone(email, phone)
}

func (m *patientRepoMock) Save(patient *models.Patient) error {
	if m.save == nil {
		return nil
	}
	return m.save(patient)
}

type appointmentRepoMock struct {
	findByID                            func(id string) (*models.Appointment, error)
	findByDoctorAndTimeRange            func(doctorID string, start, end time.Time) ([]models.Appointment, error)
	findByDoctorPatientNameAndTimeRange func(doctorID, patientName string, start, end time.Time) ([]models.Appointment, error)
	findByPatient                       func(patientID string) ([]models.Appointment, error)
	findByPatientAndStatus              func(patientID string, status int) ([]models.Appointment, error)
	findByPatientAndDoctorName          func(patientID, doctorName string) ([]models.Appointment, error)
	findByPatientDoctorNameAndStatus    func(patientID, doctorName string, status int) ([]models.Appointment, error)
	save                                func(appointment *models.Appointment) error
	delete                              func(id string) error
	deleteByDoctor                      func(doctorID string) error
}

func (m *appointmentRepoMock) FindByID(id string) (*models.Appointment, error) {
	if m.findByID == nil {
		return nil, nil
	}
	return m.findByID(id)
}

func (m *appointmentRepoMock) FindByDoctorAndTimeRange(doctorID string, start, end time.Time) ([]models.Appointment, error) {
	if m.findByDoctorAndTimeRange == nil {
		return nil, nil
	}
	return m.findByDoctorAndTimeRange(doctorID, start, end)
}

func (m *appointmentRepoMock) FindByDoctorPatientNameAndTimeRange(doctorID, patientName string, start, end time.Time) ([]models.Appointment, error) {
	if m.findByDoctorPatientNameAndTimeRange == nil {
		return nil, nil
	}
	return m.findByDoctorPatientNameAndTimeRange(doctorID, patientName, start, end)
}

func (m *appointmentRepoMock) FindByPatient(patientID string) ([]models.Appointment, error) {
	if m.findByPatient == nil {
		return nil, nil
	}
	return m.findByPatient(patientID)
}

func (m *appointmentRepoMock) FindByPatientAndStatus(patientID string, status int) ([]models.Appointment, error) {
	if m.findByPatientAndStatus == nil {
		return nil, nil
	}
	return m.findByPatientAndStatus(patientID, status)
}

func (m *appointmentRepoMock) FindByPatientAndDoctorName(patientID, doctorName string) ([]models.Appointment, error) {
	if m.findByPatientAndDoctorName == nil {
		return nil, nil
	}
	return m.findByPatientAndDoctorName(patientID, doctorName)
}

func (m *appointmentRepoMock) FindByPatientDoctorNameAndStatus(patientID, doctorName string, status int) ([]models.Appointment, error) {
	if m.findByPatientDoctorNameAndStatus == nil {
		return nil, nil
	}
	return m.findByPatientDoctorNameAndStatus(patientID, doctorName, status)
}

func (m *appointmentRepoMock) Save(appointment *models.Appointment) error {
	if m.save == nil {
		return nil
	}
	return m.save(appointment)
}

func (m *appointmentRepoMock) Delete(id string) error {
	if m.delete == nil {
		return nil
	}
	return m.delete(id)
}

func (m *appointmentRepoMock) DeleteByDoctor(doctorID string) error {
	if m.deleteByDoctor == nil {
		return nil
	}
	return m.deleteByDoctor(doctorID)
}

type prescriptionRepoMock struct {
	save              func(prescription *models.Prescription) error
	findByAppointment func(appointmentID string) ([]models.Prescription, error)
}

func (m *prescriptionRepoMock) Save(prescription *models.Prescription) error {
	if m.save == nil {
		return nil
	}
	return m.save(prescription)
}

func (m *prescriptionRepoMock) FindByAppointment(appointmentID string) ([]models.Prescription, error) {
	if m.findByAppointment == nil {
		return nil, nil
	}
	return m.findByAppointment(appointmentID)
}

// newTestTokens builds a TokenService over the given stores with a fixed
// secret and a one hour expiry.
func newTestTokens(admins *adminRepoMock, doctors *doctorRepoMock, patients *patientRepoMock) *TokenService {
	if admins == nil {
		admins = &adminRepoMock{}
	}
	if doctors == nil {
		doctors = &doctorRepoMock{}
	}
	if patients == nil {
		patients = &patientRepoMock{}
	}
	return NewTokenService(admins, doctors, patients, "test-secret", time.Hour)
}
