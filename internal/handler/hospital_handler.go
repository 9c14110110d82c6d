package handler

import (
	"net/http"

	"lifekey_api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HospitalHandler serves the hospital directory
type HospitalHandler struct {
	service service.HospitalService
	logger  *zap.Logger
}

// NewHospitalHandler creates a new HospitalHandler
func NewHospitalHandler(s service.HospitalService, logger *zap.Logger) *HospitalHandler {
	return &HospitalHandler{service: s, logger: logger}
}

func (h *HospitalHandler) GetAllHospitals(c *gin.Context) {
	hospitals, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.logger.Error("listing hospitals failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve hospitals"})
		return
	}
	c.JSON(http.StatusOK, hospitals)
}

// Health reports that the API is up
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "LifeKey ID API is running!", "status": "healthy"})
}

// RegisterHospitalRoutes registers hospital routes
func (h *HospitalHandler) RegisterHospitalRoutes(rg *gin.RouterGroup) {
	rg.GET("/hospitals", h.GetAllHospitals)
}
