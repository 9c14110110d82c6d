package handler

import (
	"lifekey_api/internal/middleware"
	"lifekey_api/internal/repository"
	"lifekey_api/internal/service"
	"lifekey_api/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouterDeps is everything the HTTP layer needs
type RouterDeps struct {
	Store         *repository.Store
	Tokens        utils.TokenIssuer
	Hasher        utils.PasswordHasher
	DemoPatientID string
	Logger        *zap.Logger
}

// NewRouter wires services and handlers over the store and registers all routes
func NewRouter(deps RouterDeps) *gin.Engine {
	// --- Initialize Services ---
	authService := service.NewAuthService(deps.Store.Users, deps.Tokens, deps.Hasher, deps.Logger)
	emergencyService := service.NewEmergencyService(deps.Store.Emergencies, deps.Logger)
	hospitalService := service.NewHospitalService(deps.Store.Hospitals)
	patientService := service.NewPatientService(deps.Store.Users, deps.Logger)

	// --- Initialize Handlers ---
	authHandler := NewAuthHandler(authService, deps.Logger)
	emergencyHandler := NewEmergencyHandler(emergencyService, hospitalService, patientService, deps.Logger)
	patientHandler := NewPatientHandler(patientService, deps.DemoPatientID, deps.Logger)
	hospitalHandler := NewHospitalHandler(hospitalService, deps.Logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(deps.Logger))
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.IdentityMiddleware(deps.Tokens))

	// --- Register Routes ---
	root := router.Group("/")
	root.GET("", Health)
	authHandler.RegisterAuthRoutes(root)
	emergencyHandler.RegisterEmergencyRoutes(root)
	patientHandler.RegisterPatientRoutes(root)
	hospitalHandler.RegisterHospitalRoutes(root)

	return router
}
