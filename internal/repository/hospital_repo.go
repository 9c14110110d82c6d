package repository

import (
	"context"

	"lifekey_api/internal/model"
)

// HospitalRepository gives read access to the hospital directory
type HospitalRepository interface {
	FindAll(ctx context.Context) ([]model.Hospital, error)
}

// Hospitals never change after seeding, so no lock is needed.
type hospitalRepository struct {
	hospitals []model.Hospital
}

// NewHospitalRepository creates a HospitalRepository over a fixed list
func NewHospitalRepository(hospitals []model.Hospital) HospitalRepository {
	hs := make([]model.Hospital, len(hospitals))
	for i, h := range hospitals {
		hs[i] = h.Clone()
	}
	return &hospitalRepository{hospitals: hs}
}

// FindAll returns copies of every hospital in seed order
func (r *hospitalRepository) FindAll(_ context.Context) ([]model.Hospital, error) {
	out := make([]model.Hospital, len(r.hospitals))
	for i, h := range r.hospitals {
		out[i] = h.Clone()
	}
	return out, nil
}
