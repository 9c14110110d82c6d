package repository

import (
	"context"
	"sync"

	"lifekey_api/internal/model"
)

// EmergencyRepository defines operations for emergency reports
type EmergencyRepository interface {
	Create(ctx context.Context, emergency *model.Emergency) error
	FindByID(ctx context.Context, id string) (*model.Emergency, error)
	Count(ctx context.Context) int
}

type emergencyRepository struct {
	mu          sync.RWMutex
	emergencies []model.Emergency
}

// NewEmergencyRepository creates an empty in-memory EmergencyRepository
func NewEmergencyRepository() EmergencyRepository {
	return &emergencyRepository{}
}

// Create appends a new emergency report
func (r *emergencyRepository) Create(_ context.Context, e *model.Emergency) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.emergencies = append(r.emergencies, *e)
	return nil
}

// FindByID retrieves an emergency by its ID, nil if absent
func (r *emergencyRepository) FindByID(_ context.Context, id string) (*model.Emergency, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.emergencies {
		if e.ID == id {
			found := e
			return &found, nil
		}
	}
	return nil, nil
}

// Count returns the number of stored emergencies
func (r *emergencyRepository) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.emergencies)
}
