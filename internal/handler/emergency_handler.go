package handler

import (
	"errors"
	"net/http"
	"strconv"

	"lifekey_api/internal/middleware"
	"lifekey_api/internal/model"
	"lifekey_api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EmergencyHandler serves the first-responder endpoints: reporting,
// nearby hospitals and patient lookups.
type EmergencyHandler struct {
	emergencies service.EmergencyService
	hospitals   service.HospitalService
	patients    service.PatientService
	logger      *zap.Logger
}

// NewEmergencyHandler creates a new EmergencyHandler
func NewEmergencyHandler(e service.EmergencyService, h service.HospitalService, p service.PatientService, logger *zap.Logger) *EmergencyHandler {
	return &EmergencyHandler{emergencies: e, hospitals: h, patients: p, logger: logger}
}

func (h *EmergencyHandler) ReportEmergency(c *gin.Context) {
	var req model.ReportEmergencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	reporterID, _ := middleware.AuthUserID(c)
	emergency, err := h.emergencies.Report(c.Request.Context(), reporterID, req)
	if err != nil {
		if errors.Is(err, service.ErrLocationRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Location is required"})
			return
		}
		h.logger.Error("emergency report failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to report emergency"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Emergency reported successfully! Nearby hospitals have been notified.",
		"emergency": model.EmergencyAck{
			ID:        emergency.ID,
			Status:    emergency.Status,
			Location:  emergency.Location,
			Timestamp: emergency.CreatedAt,
		},
	})
}

func (h *EmergencyHandler) GetNearbyHospitals(c *gin.Context) {
	q := model.NearbyQuery{Lat: optionalFloatQuery(c, "lat"), Lng: optionalFloatQuery(c, "lng")}

	hospitals, err := h.hospitals.ListNearby(c.Request.Context(), q)
	if err != nil {
		h.logger.Error("nearby hospitals failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve hospitals"})
		return
	}
	c.JSON(http.StatusOK, hospitals)
}

// optionalFloatQuery returns nil when the parameter is missing or not a number
func optionalFloatQuery(c *gin.Context, param string) *float64 {
	v, err := strconv.ParseFloat(c.Query(param), 64)
	if err != nil {
		return nil
	}
	return &v
}

func (h *EmergencyHandler) GetPatientByQR(c *gin.Context) {
	var req struct {
		QRCode string `json:"qrCode"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	patient, err := h.patients.GetByQRCode(c.Request.Context(), req.QRCode)
	h.respondPatient(c, patient, err)
}

func (h *EmergencyHandler) GetPatientByID(c *gin.Context) {
	var req struct {
		PatientID string `json:"patientId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	patient, err := h.patients.GetByUniqueID(c.Request.Context(), req.PatientID)
	h.respondPatient(c, patient, err)
}

func (h *EmergencyHandler) respondPatient(c *gin.Context, patient *model.User, err error) {
	if err != nil {
		if errors.Is(err, service.ErrPatientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
			return
		}
		h.logger.Error("patient lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve patient"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"patient": patient.PatientView()})
}

// RegisterEmergencyRoutes registers emergency routes
func (h *EmergencyHandler) RegisterEmergencyRoutes(rg *gin.RouterGroup) {
	emergencyGroup := rg.Group("/emergency")
	{
		emergencyGroup.POST("/report", h.ReportEmergency)
		emergencyGroup.GET("/hospitals/nearby", h.GetNearbyHospitals)
		emergencyGroup.POST("/patient/qr", h.GetPatientByQR)
		emergencyGroup.POST("/patient/id", h.GetPatientByID)
	}
}
