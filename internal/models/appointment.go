package models

import (
	"time"
)

// Appointment status values. An appointment is created as scheduled and
// flipped to completed once it has taken place.
const (
	StatusScheduled = 0
	StatusCompleted = 1
)

// Appointment represents a booked slot between one doctor and one patient
type Appointment struct {
	BaseModel
	DoctorID        string    `gorm:"size:36;index;not null" json:"doctorId"`
	PatientID       string    `gorm:"size:36;index;not null" json:"patientId"`
	AppointmentTime time.Time `gorm:"index" json:"appointmentTime"`
	Status          int       `gorm:"default:0" json:"status"`

	// Relations
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"-"`
	Patient Patient `gorm:"foreignKey:PatientID" json:"-"`
}

// AppointmentDetail is the flat projection returned to dashboards, with
// doctor and patient fields denormalized onto the record.
type AppointmentDetail struct {
	ID              string    `json:"id"`
	DoctorID        string    `json:"doctorId"`
	DoctorName      string    `json:"doctorName"`
	PatientID       string    `json:"patientId"`
	PatientName     string    `json:"patientName"`
	PatientEmail    string    `json:"patientEmail"`
	PatientPhone    string    `json:"patientPhone"`
	PatientAddress  string    `json:"patientAddress"`
	AppointmentTime time.Time `json:"appointmentTime"`
	Status          int       `json:"status"`
}

// Detail projects an appointment with preloaded relations into its
// transfer shape.
func (a *Appointment) Detail() AppointmentDetail {
	return AppointmentDetail{
		ID:              a.ID,
		DoctorID:        a.DoctorID,
		DoctorName:      a.Doctor.Name,
		PatientID:       a.PatientID,
		PatientName:     a.Patient.Name,
		PatientEmail:    a.Patient.Email,
		PatientPhone:    a.Patient.Phone,
		PatientAddress:  a.Patient.Address,
		AppointmentTime: a.AppointmentTime,
		Status:          a.Status,
	}
}
