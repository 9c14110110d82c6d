package service

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"lifekey_api/internal/model"
	"lifekey_api/internal/repository"
)

const (
	minMockDistanceKm = 1.0
	maxMockDistanceKm = 5.0
)

// HospitalService lists hospitals
type HospitalService interface {
	ListAll(ctx context.Context) ([]model.Hospital, error)
	ListNearby(ctx context.Context, q model.NearbyQuery) ([]model.Hospital, error)
}

type hospitalService struct {
	repo repository.HospitalRepository
	rand func() float64 // in [0, 1)
}

// NewHospitalService creates a new HospitalService
func NewHospitalService(repo repository.HospitalRepository) HospitalService {
	return &hospitalService{repo: repo, rand: rand.Float64}
}

func (s *hospitalService) ListAll(ctx context.Context) ([]model.Hospital, error) {
	hospitals, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list hospitals: %w", err)
	}
	return hospitals, nil
}

// ListNearby returns every hospital with a mock distance, closest first.
// The caller position is accepted but not used: distances are random.
func (s *hospitalService) ListNearby(ctx context.Context, _ model.NearbyQuery) ([]model.Hospital, error) {
	hospitals, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list hospitals: %w", err)
	}

	for i := range hospitals {
		hospitals[i].Distance = FormatDistance(s.mockDistance())
	}

	sort.SliceStable(hospitals, func(i, j int) bool {
		return ParseDistance(hospitals[i].Distance) < ParseDistance(hospitals[j].Distance)
	})
	return hospitals, nil
}

// mockDistance draws from [1.0, 5.0) rounded to one decimal
func (s *hospitalService) mockDistance() float64 {
	d := minMockDistanceKm + s.rand()*(maxMockDistanceKm-minMockDistanceKm)
	d = math.Round(d*10) / 10
	if d >= maxMockDistanceKm {
		d = maxMockDistanceKm - 0.1
	}
	return d
}

// FormatDistance renders a distance as "<value> km"
func FormatDistance(km float64) string {
	return strconv.FormatFloat(km, 'f', 1, 64) + " km"
}

// ParseDistance reads the number before the first space of a distance string.
// Unparsable values sort last.
func ParseDistance(distance string) float64 {
	value, _, _ := strings.Cut(distance, " ")
	km, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return math.Inf(1)
	}
	return km
}
