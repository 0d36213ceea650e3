package models

// Prescription represents medication prescribed during an appointment
type Prescription struct {
	BaseModel
	AppointmentID string `gorm:"size:36;index;not null" json:"appointmentId"`
	PatientName   string `gorm:"size:100" json:"patientName"`
	Medication    string `gorm:"size:255;not null" json:"medication"`
	Dosage        string `gorm:"size:100" json:"dosage"`
	DoctorNotes   string `gorm:"type:text" json:"doctorNotes"`

	// Relation
	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"-"`
}
