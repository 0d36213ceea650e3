package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"clinic-scheduler-server/internal/config"
	"clinic-scheduler-server/internal/handlers"
	"clinic-scheduler-server/internal/middleware"
	"clinic-scheduler-server/internal/models"
	"clinic-scheduler-server/internal/repository"
	"clinic-scheduler-server/internal/services"
)

// SetupRoutes wires the repositories, services and handlers onto the
// router. Bearer tokens travel as the :token path segment; RequireRole
// gates the fixed-role routes, and the availability route validates
// in-handler because its role comes from the path.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	repos := repository.New(db)

	tokens := services.NewTokenService(
		repos.Admins, repos.Doctors, repos.Patients,
		cfg.JWTSecret, time.Duration(cfg.TokenExpiryDays)*24*time.Hour)
	doctorSvc := services.NewDoctorService(repos.Doctors, repos.Appointments, tokens)
	patientSvc := services.NewPatientService(repos.Patients, repos.Appointments, tokens)
	appointmentSvc := services.NewAppointmentService(repos.Appointments, repos.Doctors, repos.Patients, tokens)
	prescriptionSvc := services.NewPrescriptionService(repos.Prescriptions)
	clinic := services.NewClinicService(
		tokens, repos.Admins, repos.Doctors, repos.Patients,
		doctorSvc, patientSvc, repos.Appointments)

	adminHandler := handlers.NewAdminHandler(clinic)
	doctorHandler := handlers.NewDoctorHandler(doctorSvc, clinic)
	patientHandler := handlers.NewPatientHandler(patientSvc, clinic)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentSvc, clinic)
	prescriptionHandler := handlers.NewPrescriptionHandler(prescriptionSvc)

	asAdmin := middleware.RequireRole(clinic, models.RoleAdmin)
	asDoctor := middleware.RequireRole(clinic, models.RoleDoctor)
	asPatient := middleware.RequireRole(clinic, models.RolePatient)

	loginLimiter := middleware.NewRateLimiter(cfg.LoginRateLimit, cfg.LoginRateBurst)
	limited := middleware.RateLimit(loginLimiter)

	// Admin login
	router.POST("/admin", limited, adminHandler.Login)

	// Doctor routes
	doctor := router.Group("/doctor")
	{
		doctor.GET("", doctorHandler.List)
		doctor.POST("/login", limited, doctorHandler.Login)
		doctor.GET("/availability/:role/:doctorId/:date/:token", doctorHandler.Availability)
		doctor.GET("/filter/:name/:time/:speciality", doctorHandler.Filter)
		doctor.POST("/:token", asAdmin, doctorHandler.Create)
		doctor.PUT("/:token", asAdmin, doctorHandler.Update)
		doctor.DELETE("/:id/:token", asAdmin, doctorHandler.Delete)
	}

	// Patient routes
	patient := router.Group("/patient")
	{
		patient.POST("", patientHandler.Signup)
		patient.POST("/login", limited, patientHandler.Login)
		patient.GET("/me/:token", asPatient, patientHandler.Details)
		patient.GET("/filter/:condition/:name/:token", asPatient, patientHandler.Filter)
		patient.GET("/:id/:token", asPatient, patientHandler.Appointments)
	}

	// Appointment routes
	appointments := router.Group("/appointments")
	{
		appointments.GET("/:date/:patientName/:token", asDoctor, appointmentHandler.ForDoctor)
		appointments.POST("/:token", asPatient, appointmentHandler.Book)
		appointments.PUT("/:token", asPatient, appointmentHandler.Update)
		appointments.DELETE("/:id/:token", asPatient, appointmentHandler.Cancel)
	}

	// Prescription routes (doctor only)
	prescription := router.Group("/prescription")
	{
		prescription.POST("/:token", asDoctor, prescriptionHandler.Save)
		prescription.GET("/:appointmentId/:token", asDoctor, prescriptionHandler.ByAppointment)
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
