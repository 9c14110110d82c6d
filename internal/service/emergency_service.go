package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"lifekey_api/internal/model"
	"lifekey_api/internal/repository"
	"lifekey_api/internal/utils"

	"go.uber.org/zap"
)

var ErrLocationRequired = errors.New("location is required")

// EmergencyService records emergency reports
type EmergencyService interface {
	Report(ctx context.Context, reporterID string, req model.ReportEmergencyRequest) (*model.Emergency, error)
}

type emergencyService struct {
	repo   repository.EmergencyRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewEmergencyService creates a new EmergencyService
func NewEmergencyService(repo repository.EmergencyRepository, logger *zap.Logger) EmergencyService {
	return &emergencyService{repo: repo, logger: logger, now: time.Now}
}

func (s *emergencyService) Report(ctx context.Context, reporterID string, req model.ReportEmergencyRequest) (*model.Emergency, error) {
	location := bytes.TrimSpace(req.Location)
	if len(location) == 0 || bytes.Equal(location, []byte("null")) {
		return nil, ErrLocationRequired
	}

	emergencyType := req.EmergencyType
	if emergencyType == "" {
		emergencyType = model.DefaultEmergencyType
	}
	if reporterID == "" {
		reporterID = model.AnonymousReporter
	}

	emergency := &model.Emergency{
		ID:            utils.NewID(),
		ReporterID:    reporterID,
		Location:      location,
		EmergencyType: emergencyType,
		Description:   req.Description,
		Status:        model.EmergencyStatusReported,
		Priority:      model.EmergencyPriorityHigh,
		CreatedAt:     s.now().UTC(),
	}

	if err := s.repo.Create(ctx, emergency); err != nil {
		return nil, fmt.Errorf("failed to store emergency: %w", err)
	}

	s.logger.Info("emergency reported",
		zap.String("emergency_id", emergency.ID),
		zap.String("type", emergency.EmergencyType),
		zap.ByteString("location", location),
	)
	return emergency, nil
}
