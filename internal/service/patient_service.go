package service

import (
	"context"
	"errors"
	"fmt"

	"lifekey_api/internal/model"
	"lifekey_api/internal/repository"
	"lifekey_api/internal/utils"

	"go.uber.org/zap"
)

var ErrPatientNotFound = errors.New("patient not found")

// PatientService serves patient lookups and the patient's own profile
type PatientService interface {
	GetByQRCode(ctx context.Context, qrCode string) (*model.User, error)
	GetByUniqueID(ctx context.Context, uniqueID string) (*model.User, error)
	GetProfile(ctx context.Context, patientID string) (*model.User, error)
	UpdateProfile(ctx context.Context, patientID string, req model.UpdateProfileRequest) (*model.User, error)
}

type patientService struct {
	userRepo repository.UserRepository
	logger   *zap.Logger
}

// NewPatientService creates a new PatientService
func NewPatientService(userRepo repository.UserRepository, logger *zap.Logger) PatientService {
	return &patientService{userRepo: userRepo, logger: logger}
}

// GetByQRCode finds a patient by the exact QR payload
func (s *patientService) GetByQRCode(ctx context.Context, qrCode string) (*model.User, error) {
	patient, err := s.userRepo.FindPatientByQRCode(ctx, qrCode)
	if err != nil {
		return nil, fmt.Errorf("failed to find patient by QR code: %w", err)
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	s.auditAccess(patient, "qr")
	return patient, nil
}

// GetByUniqueID finds a patient by unique ID, ignoring case
func (s *patientService) GetByUniqueID(ctx context.Context, uniqueID string) (*model.User, error) {
	patient, err := s.userRepo.FindPatientByUniqueID(ctx, utils.NormalizeUniqueID(uniqueID))
	if err != nil {
		return nil, fmt.Errorf("failed to find patient by unique ID: %w", err)
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	s.auditAccess(patient, "id")
	return patient, nil
}

func (s *patientService) auditAccess(patient *model.User, via string) {
	s.logger.Info("patient data accessed",
		zap.String("patient_id", patient.ID),
		zap.String("full_name", patient.FullName),
		zap.String("via", via),
	)
}

func (s *patientService) GetProfile(ctx context.Context, patientID string) (*model.User, error) {
	return s.findPatient(ctx, patientID)
}

// UpdateProfile applies the fields present in req. The unique ID and QR code
// are never regenerated.
func (s *patientService) UpdateProfile(ctx context.Context, patientID string, req model.UpdateProfileRequest) (*model.User, error) {
	patient, err := s.userRepo.Update(ctx, patientID, func(u *model.User) error {
		if !u.IsPatient() {
			return ErrPatientNotFound
		}
		applyProfileUpdate(u, req)
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrPatientNotFound), errors.Is(err, repository.ErrUserNotFound):
			return nil, ErrPatientNotFound
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to update patient profile: %w", err)
	}
	return patient, nil
}

func applyProfileUpdate(patient *model.User, req model.UpdateProfileRequest) {
	if req.FullName != nil {
		patient.FullName = *req.FullName
	}
	if req.Email != nil {
		patient.Email = *req.Email
	}
	if req.Phone != nil {
		patient.Phone = *req.Phone
	}

	pd := patient.PatientData
	if req.Address != nil {
		pd.Address = *req.Address
	}
	if req.BloodType != nil {
		pd.BloodType = *req.BloodType
	}
	if req.Allergies != nil {
		pd.Allergies = nonNil(*req.Allergies)
	}
	if req.Medications != nil {
		pd.Medications = nonNil(*req.Medications)
	}
	if req.Conditions != nil {
		pd.Conditions = nonNil(*req.Conditions)
	}
	if req.EmergencyContacts != nil {
		pd.EmergencyContacts = *req.EmergencyContacts
		if pd.EmergencyContacts == nil {
			pd.EmergencyContacts = []model.EmergencyContact{}
		}
	}
}

func (s *patientService) findPatient(ctx context.Context, patientID string) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to find patient: %w", err)
	}
	if user == nil || !user.IsPatient() {
		return nil, ErrPatientNotFound
	}
	return user, nil
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
