package services

import (
	"errors"
	"testing"
	"time"

	"clinic-scheduler-server/internal/models"
)

// futureSlot returns a time safely in the future, on the hour, so the
// "must be in the future" check never interferes with overlap tests.
func futureSlot(hoursFromNow int) time.Time {
	return time.Now().Add(48 * time.Hour).Truncate(time.Hour).Add(time.Duration(hoursFromNow) * time.Hour)
}

func newAppointmentService(appointments *appointmentRepoMock, doctors *doctorRepoMock, patients *patientRepoMock) *AppointmentService {
	if appointments == nil {
		appointments = &appointmentRepoMock{}
	}
	if doctors == nil {
		doctors = &doctorRepoMock{
			findByID: func(id string) (*models.Doctor, error) {
				return &models.Doctor{BaseModel: models.BaseModel{ID: id}}, nil
			},
		}
	}
	if patients == nil {
		patients = &patientRepoMock{
			findByID: func(id string) (*models.Patient, error) {
				return &models.Patient{BaseModel: models.BaseModel{ID: id}}, nil
			},
		}
	}
	return NewAppointmentService(appointments, doctors, patients, newTestTokens(nil, doctors, patients))
}

func TestValidateFieldChecks(t *testing.T) {
	svc := newAppointmentService(nil, nil, nil)
	base := futureSlot(0)

	tests := []struct {
		name        string
		appointment *models.Appointment
		want        string
	}{
		{"nil appointment", nil, "Appointment data is required"},
		{"missing doctor", &models.Appointment{PatientID: "p1", AppointmentTime: base}, "Doctor is required"},
		{"missing patient", &models.Appointment{DoctorID: "d1", AppointmentTime: base}, "Patient is required"},
		{"missing time", &models.Appointment{DoctorID: "d1", PatientID: "p1"}, "Appointment time is required"},
		{
			"past time",
			&models.Appointment{DoctorID: "d1", PatientID: "p1", AppointmentTime: time.Now().Add(-time.Hour)},
			"Appointment time must be in the future",
		},
		{"valid", &models.Appointment{DoctorID: "d1", PatientID: "p1", AppointmentTime: base}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason, err := svc.Validate(tt.appointment, false)
			if err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if reason != tt.want {
				t.Errorf("reason = %q, want %q", reason, tt.want)
			}
		})
	}
}

func TestValidateUnknownReferences(t *testing.T) {
	base := futureSlot(0)

	noDoctors := newAppointmentService(nil, &doctorRepoMock{}, nil)
	reason, err := noDoctors.Validate(&models.Appointment{DoctorID: "ghost", PatientID: "p1", AppointmentTime: base}, false)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if reason != "Invalid doctor ID" {
		t.Errorf("reason = %q, want %q", reason, "Invalid doctor ID")
	}

	noPatients := newAppointmentService(nil, nil, &patientRepoMock{})
	reason, err = noPatients.Validate(&models.Appointment{DoctorID: "d1", PatientID: "ghost", AppointmentTime: base}, false)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if reason != "Invalid patient ID" {
		t.Errorf("reason = %q, want %q", reason, "Invalid patient ID")
	}
}

func TestValidateOverlap(t *testing.T) {
	existingStart := futureSlot(0)
	existing := models.Appointment{
		BaseModel:       models.BaseModel{ID: "a1"},
		DoctorID:        "d1",
		PatientID:       "p1",
		AppointmentTime: existingStart,
	}
	appointments := &appointmentRepoMock{
		findByDoctorAndTimeRange: func(doctorID string, start, end time.Time) ([]models.Appointment, error) {
			return []models.Appointment{existing}, nil
		},
	}
	svc := newAppointmentService(appointments, nil, nil)

	tests := []struct {
		name     string
		start    time.Time
		isUpdate bool
		id       string
		want     string
	}{
		{"same start", existingStart, false, "", "Appointment slot already booked"},
		{"half hour into the window", existingStart.Add(30 * time.Minute), false, "", "Appointment slot already booked"},
		{"half hour before, window reaches in", existingStart.Add(-30 * time.Minute), false, "", "Appointment slot already booked"},
		{"adjacent following hour", existingStart.Add(time.Hour), false, "", ""},
		{"adjacent preceding hour", existingStart.Add(-time.Hour), false, "", ""},
		{"update excludes own record", existingStart, true, "a1", ""},
		{"update still conflicts with others", existingStart, true, "a2", "Appointment slot already booked"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appt := &models.Appointment{
				BaseModel:       models.BaseModel{ID: tt.id},
				DoctorID:        "d1",
				PatientID:       "p1",
				AppointmentTime: tt.start,
			}
			reason, err := svc.Validate(appt, tt.isUpdate)
			if err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if reason != tt.want {
				t.Errorf("reason = %q, want %q", reason, tt.want)
			}
		})
	}
}

func TestBook(t *testing.T) {
	var saved *models.Appointment
	appointments := &appointmentRepoMock{
		save: func(a *models.Appointment) error { saved = a; return nil },
	}
	svc := newAppointmentService(appointments, nil, nil)

	appt := &models.Appointment{DoctorID: "d1", PatientID: "p1", AppointmentTime: futureSlot(0)}
	if err := svc.Book(appt); err != nil {
		t.Fatalf("Book: %v", err)
	}
	if saved != appt {
		t.Errorf("appointment was not persisted")
	}

	err := svc.Book(&models.Appointment{PatientID: "p1", AppointmentTime: futureSlot(0)})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("Book without doctor = %v, want ErrValidation", err)
	}
	if err.Error() != "Doctor is required" {
		t.Errorf("reason = %q, want %q", err.Error(), "Doctor is required")
	}
}

func TestUpdate(t *testing.T) {
	stored := &models.Appointment{
		BaseModel: models.BaseModel{
			ID:        "a1",
			CreatedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local),
		},
		DoctorID:        "d1",
		PatientID:       "p1",
		AppointmentTime: futureSlot(0),
	}
	appointments := &appointmentRepoMock{
		findByID: func(id string) (*models.Appointment, error) {
			if id == "a1" {
				return stored, nil
			}
			return nil, nil
		},
	}
	svc := newAppointmentService(appointments, nil, nil)

	update := &models.Appointment{
		BaseModel:       models.BaseModel{ID: "a1"},
		DoctorID:        "d1",
		PatientID:       "p1",
		AppointmentTime: futureSlot(1),
		Status:          models.StatusCompleted,
	}
	if err := svc.Update(update); err != nil {
		t.Fatalf("Update: %v", err)
	}
	// the request struct carries no creation timestamp; the stored one
	// must survive the full-row save
	if !update.CreatedAt.Equal(stored.CreatedAt) || update.CreatedAt.IsZero() {
		t.Errorf("CreatedAt after update = %v, want %v", update.CreatedAt, stored.CreatedAt)
	}

	if err := svc.Update(&models.Appointment{}); !errors.Is(err, ErrValidation) {
		t.Errorf("Update without id = %v, want ErrValidation", err)
	}

	missing := &models.Appointment{
		BaseModel:       models.BaseModel{ID: "ghost"},
		DoctorID:        "d1",
		PatientID:       "p1",
		AppointmentTime: futureSlot(1),
	}
	if err := svc.Update(missing); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update unknown appointment = %v, want ErrNotFound", err)
	}
}

func TestCancelOwnership(t *testing.T) {
	stored := &models.Appointment{
		BaseModel: models.BaseModel{ID: "a1"},
		DoctorID:  "d1",
		PatientID: "p1",
		Patient:   models.Patient{Email: "Jane@Example.com"},
	}
	var deleted string
	appointments := &appointmentRepoMock{
		findByID: func(id string) (*models.Appointment, error) {
			if id == "a1" {
				return stored, nil
			}
			return nil, nil
		},
		delete: func(id string) error { deleted = id; return nil },
	}
	svc := newAppointmentService(appointments, nil, nil)

	// ownership compares emails case-insensitively
	ownToken, err := svc.tokens.Generate("jane@example.com")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if err := svc.Cancel("a1", ownToken); err != nil {
		t.Fatalf("Cancel own appointment: %v", err)
	}
	if deleted != "a1" {
		t.Errorf("appointment was not deleted")
	}

	otherToken, err := svc.tokens.Generate("mallory@example.com")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if err := svc.Cancel("a1", otherToken); !errors.Is(err, ErrForbidden) {
		t.Errorf("Cancel someone else's appointment = %v, want ErrForbidden", err)
	}

	if err := svc.Cancel("ghost", ownToken); !errors.Is(err, ErrNotFound) {
		t.Errorf("Cancel unknown appointment = %v, want ErrNotFound", err)
	}
	if err := svc.Cancel("a1", ""); !errors.Is(err, ErrMissingToken) {
		t.Errorf("Cancel without token = %v, want ErrMissingToken", err)
	}
	if err := svc.Cancel("a1", "garbage"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Cancel with garbage token = %v, want ErrInvalidToken", err)
	}
}

func TestForDoctorResolvesDoctorFromToken(t *testing.T) {
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)
	doctors := &doctorRepoMock{
		findByEmail: func(email string) (*models.Doctor, error) {
			if email == "doc@example.com" {
				return &models.Doctor{BaseModel: models.BaseModel{ID: "d1"}, Email: email}, nil
			}
			return nil, nil
		},
	}

	var rangeDoctor, filteredName string
	appointments := &appointmentRepoMock{
		findByDoctorAndTimeRange: func(doctorID string, start, end time.Time) ([]models.Appointment, error) {
			rangeDoctor = doctorID
			return []models.Appointment{{DoctorID: doctorID}}, nil
		},
		findByDoctorPatientNameAndTimeRange: func(doctorID, patientName string, start, end time.Time) ([]models.Appointment, error) {
			rangeDoctor = doctorID
			filteredName = patientName
			return nil, nil
		},
	}
	svc := newAppointmentService(appointments, doctors, nil)

	token, err := svc.tokens.Generate("doc@example.com")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	details, err := svc.ForDoctor("", date, token)
	if err != nil {
		t.Fatalf("ForDoctor: %v", err)
	}
	if rangeDoctor != "d1" {
		t.Errorf("queried doctor = %q, want %q", rangeDoctor, "d1")
	}
	if len(details) != 1 {
		t.Errorf("details = %d rows, want 1", len(details))
	}

	if _, err := svc.ForDoctor("jane", date, token); err != nil {
		t.Fatalf("ForDoctor with name filter: %v", err)
	}
	if filteredName != "jane" {
		t.Errorf("name filter = %q, want %q", filteredName, "jane")
	}

	strangerToken, err := svc.tokens.Generate("nobody@example.com")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := svc.ForDoctor("", date, strangerToken); !errors.Is(err, ErrNotFound) {
		t.Errorf("ForDoctor with unknown doctor = %v, want ErrNotFound", err)
	}
}
