package handler

import (
	"errors"
	"net/http"

	"lifekey_api/internal/middleware"
	"lifekey_api/internal/model"
	"lifekey_api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PatientHandler serves the signed-in patient's own profile
type PatientHandler struct {
	service       service.PatientService
	demoPatientID string
	logger        *zap.Logger
}

// NewPatientHandler creates a new PatientHandler. demoPatientID is used for
// callers that present no resolvable token.
func NewPatientHandler(s service.PatientService, demoPatientID string, logger *zap.Logger) *PatientHandler {
	return &PatientHandler{service: s, demoPatientID: demoPatientID, logger: logger}
}

func (h *PatientHandler) currentPatientID(c *gin.Context) string {
	if userID, ok := middleware.AuthUserID(c); ok {
		return userID
	}
	return h.demoPatientID
}

func (h *PatientHandler) GetProfile(c *gin.Context) {
	patient, err := h.service.GetProfile(c.Request.Context(), h.currentPatientID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"patient": patient.PatientView()})
}

func (h *PatientHandler) UpdateProfile(c *gin.Context) {
	var req model.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	patient, err := h.service.UpdateProfile(c.Request.Context(), h.currentPatientID(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Profile updated successfully",
		"patientData": patient.PatientData,
	})
}

func (h *PatientHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPatientNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
	case errors.Is(err, service.ErrUserAlreadyExists):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already in use"})
	default:
		h.logger.Error("patient profile request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process profile"})
	}
}

// RegisterPatientRoutes registers patient routes
func (h *PatientHandler) RegisterPatientRoutes(rg *gin.RouterGroup) {
	patientGroup := rg.Group("/patient")
	{
		patientGroup.GET("/profile", h.GetProfile)
		patientGroup.PUT("/profile", h.UpdateProfile)
	}
}
