package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"clinic-scheduler-server/internal/services"
	"clinic-scheduler-server/internal/utils"
)

// AdminHandler handles admin authentication.
type AdminHandler struct {
	Clinic *services.ClinicService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(clinic *services.ClinicService) *AdminHandler {
	return &AdminHandler{Clinic: clinic}
}

// AdminLoginRequest represents the request body for admin login.
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles admin login and issues a token with the username as
// subject.
func (h *AdminHandler) Login(c *gin.Context) {
	var req AdminLoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	token, err := h.Clinic.ValidateAdmin(req.Username, req.Password)
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
