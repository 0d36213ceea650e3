package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"clinic-scheduler-server/internal/models"
	"clinic-scheduler-server/internal/services"
	"clinic-scheduler-server/internal/utils"
)

// dateLayout is the calendar-date format used in path segments.
const dateLayout = "2006-01-02"

// DoctorHandler handles doctor availability, CRUD and search requests.
type DoctorHandler struct {
	Doctors *services.DoctorService
	Clinic  *services.ClinicService
}

// NewDoctorHandler creates a new DoctorHandler.
func NewDoctorHandler(doctors *services.DoctorService, clinic *services.ClinicService) *DoctorHandler {
	return &DoctorHandler{Doctors: doctors, Clinic: clinic}
}

// Availability handles GET /doctor/availability/:role/:doctorId/:date/:token.
// The requesting role comes from the path, so the token is validated
// in-handler rather than through the fixed-role middleware.
func (h *DoctorHandler) Availability(c *gin.Context) {
	role, ok := models.ParseRole(c.Param("role"))
	if !ok {
		utils.BadRequest(c, "Unknown role")
		return
	}

	if err := h.Clinic.ValidateToken(c.Param("token"), role); err != nil {
		utils.Unauthorized(c, "Invalid or expired token")
		return
	}

	date, err := time.ParseInLocation(dateLayout, c.Param("date"), time.Local)
	if err != nil {
		utils.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	slots, err := h.Doctors.Availability(c.Param("doctorId"), date)
	if err != nil {
		utils.InternalServerError(c, "Failed to compute availability")
		return
	}

	utils.OK(c, gin.H{"availability": slots})
}

// List handles GET /doctor.
func (h *DoctorHandler) List(c *gin.Context) {
	doctors, err := h.Doctors.List()
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch doctors")
		return
	}
	utils.OK(c, gin.H{"doctors": doctors})
}

// DoctorRequest represents the request body for creating or updating a
// doctor.
type DoctorRequest struct {
	ID             string   `json:"id"`
	Name           string   `json:"name" binding:"required"`
	Specialty      string   `json:"specialty" binding:"required"`
	Email          string   `json:"email" binding:"required,email"`
	Password       string   `json:"password"`
	AvailableTimes []string `json:"availableTimes"`
}

// Create handles POST /doctor/:token (admin only).
func (h *DoctorHandler) Create(c *gin.Context) {
	var req DoctorRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	if len(req.Password) < 6 {
		utils.BadRequest(c, "Password must be at least 6 characters")
		return
	}

	doctor := models.Doctor{
		Name:           req.Name,
		Specialty:      req.Specialty,
		Email:          req.Email,
		AvailableTimes: models.TimeList(req.AvailableTimes),
	}
	if err := doctor.SetPassword(req.Password); err != nil {
		utils.InternalServerError(c, "Failed to hash password")
		return
	}

	if err := h.Doctors.Save(&doctor); err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			utils.Conflict(c, "Doctor already exists")
		} else {
			utils.InternalServerError(c, "Some internal error occurred")
		}
		return
	}
	utils.Created(c, "Doctor added to db")
}

// Login handles POST /doctor/login.
func (h *DoctorHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	token, err := h.Doctors.Login(req.Identifier, req.Password)
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

// Update handles PUT /doctor/:token (admin only).
func (h *DoctorHandler) Update(c *gin.Context) {
	var req DoctorRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	if req.ID == "" {
		utils.BadRequest(c, "Doctor ID is required")
		return
	}

	doctor := models.Doctor{
		BaseModel:      models.BaseModel{ID: req.ID},
		Name:           req.Name,
		Specialty:      req.Specialty,
		Email:          req.Email,
		AvailableTimes: models.TimeList(req.AvailableTimes),
	}
	if req.Password != "" {
		if err := doctor.SetPassword(req.Password); err != nil {
			utils.InternalServerError(c, "Failed to hash password")
			return
		}
	}

	if err := h.Doctors.Update(&doctor); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.NotFound(c, "Doctor not found")
		case errors.Is(err, services.ErrValidation):
			utils.BadRequest(c, err.Error())
		default:
			utils.InternalServerError(c, "Some internal error occurred")
		}
		return
	}
	utils.Message(c, 200, "Doctor updated")
}

// Delete handles DELETE /doctor/:id/:token (admin only). The doctor's
// appointments are removed along with the record.
func (h *DoctorHandler) Delete(c *gin.Context) {
	if err := h.Doctors.Delete(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFound(c, "Doctor not found with id")
		} else {
			utils.InternalServerError(c, "Some internal error occurred")
		}
		return
	}
	utils.Message(c, 200, "Doctor deleted successfully")
}

// Filter handles GET /doctor/filter/:name/:time/:speciality. Path
// segments carry the literal "null" when a filter is unset.
func (h *DoctorHandler) Filter(c *gin.Context) {
	doctors, err := h.Clinic.FilterDoctors(c.Param("name"), c.Param("speciality"), c.Param("time"))
	if err != nil {
		utils.InternalServerError(c, "Failed to filter doctors")
		return
	}
	utils.OK(c, gin.H{"doctors": doctors})
}
