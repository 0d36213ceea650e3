package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"clinic-scheduler-server/internal/middleware"
	"clinic-scheduler-server/internal/models"
	"clinic-scheduler-server/internal/services"
	"clinic-scheduler-server/internal/utils"
)

// LoginRequest represents the request body shared by doctor and patient
// login. The identifier is an email address.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// PatientHandler handles patient signup, login and appointment views.
type PatientHandler struct {
	Patients *services.PatientService
	Clinic   *services.ClinicService
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(patients *services.PatientService, clinic *services.ClinicService) *PatientHandler {
	return &PatientHandler{Patients: patients, Clinic: clinic}
}

// SignupRequest represents the request body for patient registration.
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Address  string `json:"address"`
	Password string `json:"password" binding:"required,min=6"`
}

// Signup handles POST /patient.
func (h *PatientHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	patient := models.Patient{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}

	ok, err := h.Clinic.ValidatePatientSignup(&patient)
	if err != nil {
		utils.InternalServerError(c, "Internal server error")
		return
	}
	if !ok {
		utils.Conflict(c, "Patient with email id or phone no already exist")
		return
	}

	if err := patient.SetPassword(req.Password); err != nil {
		utils.InternalServerError(c, "Failed to hash password")
		return
	}
	if err := h.Patients.Create(&patient); err != nil {
		utils.InternalServerError(c, "Internal server error")
		return
	}
	utils.Created(c, "Signup successful")
}

// Login handles POST /patient/login.
func (h *PatientHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	token, err := h.Clinic.ValidatePatientLogin(req.Identifier, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingCredentials):
			utils.BadRequest(c, "Missing credentials")
		case errors.Is(err, services.ErrInvalidCredentials):
			utils.Unauthorized(c, "Invalid credentials")
		default:
			utils.InternalServerError(c, "Login failed")
		}
		return
	}

	utils.OK(c, gin.H{"token": token, "message": "Login successful"})
}

// Details handles GET /patient/me/:token.
func (h *PatientHandler) Details(c *gin.Context) {
	patient, err := h.Patients.Details(middleware.TokenFromContext(c))
	if err != nil {
		utils.Unauthorized(c, "Invalid token or patient not found")
		return
	}
	utils.OK(c, gin.H{"patient": patient})
}

// Appointments handles GET /patient/:id/:token. The id must match the
// token's subject.
func (h *PatientHandler) Appointments(c *gin.Context) {
	details, err := h.Patients.Appointments(c.Param("id"), middleware.TokenFromContext(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnauthorized):
			utils.Unauthorized(c, "Unauthorized: patientId does not match token")
		case errors.Is(err, services.ErrInvalidToken):
			utils.Unauthorized(c, "Invalid token")
		case errors.Is(err, services.ErrValidation):
			utils.BadRequest(c, err.Error())
		default:
			utils.InternalServerError(c, "Failed to fetch appointments")
		}
		return
	}
	utils.OK(c, gin.H{"appointments": details})
}

// Filter handles GET /patient/filter/:condition/:name/:token. Both
// filters accept the literal "null" as unset.
func (h *PatientHandler) Filter(c *gin.Context) {
	details, err := h.Clinic.FilterPatientAppointments(
		c.Param("condition"), c.Param("name"), middleware.TokenFromContext(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			utils.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrInvalidToken):
			utils.Unauthorized(c, "Invalid token")
		default:
			utils.InternalServerError(c, "Failed to filter appointments")
		}
		return
	}
	utils.OK(c, gin.H{"appointments": details})
}
