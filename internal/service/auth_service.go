package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lifekey_api/internal/model"
	"lifekey_api/internal/repository"
	"lifekey_api/internal/utils"

	"go.uber.org/zap"
)

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// maxUniqueIDAttempts bounds how often a colliding patient ID is redrawn
const maxUniqueIDAttempts = 5

// AuthService provides registration and login
type AuthService interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.User, string, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.User, string, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   utils.TokenIssuer
	hasher   utils.PasswordHasher
	logger   *zap.Logger
	now      func() time.Time
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, tokens utils.TokenIssuer, hasher utils.PasswordHasher, logger *zap.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		hasher:   hasher,
		logger:   logger,
		now:      time.Now,
	}
}

// Register creates a new user account
func (s *authService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, string, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		return nil, "", ErrUserAlreadyExists
	}

	storedPassword, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:        utils.NewID(),
		Email:     req.Email,
		Password:  storedPassword,
		UserType:  req.UserType,
		FullName:  req.FullName,
		Phone:     req.Phone,
		CreatedAt: s.now().UTC(),
	}

	if req.UserType == model.UserTypePatient {
		user.PatientData = newPatientData(req.PatientData)
		err = s.createPatient(ctx, user)
	} else {
		user.StaffData = req.StaffData
		err = s.userRepo.Create(ctx, user)
	}
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, "", ErrUserAlreadyExists
		}
		return nil, "", fmt.Errorf("failed to create user in repository: %w", err)
	}

	token, err := s.tokens.GenerateToken(user.ID, user.UserType)
	if err != nil {
		s.logger.Error("user created, but token generation failed", zap.String("user_id", user.ID), zap.Error(err))
		return user, "", fmt.Errorf("user created, but failed to generate token: %w", err)
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID), zap.String("user_type", user.UserType))
	return user, token, nil
}

// createPatient assigns a fresh unique ID and QR code, redrawing on collision
func (s *authService) createPatient(ctx context.Context, user *model.User) error {
	var err error
	for attempt := 0; attempt < maxUniqueIDAttempts; attempt++ {
		uniqueID := utils.NewUniqueID(s.now())
		user.PatientData.UniqueID = uniqueID
		user.PatientData.QRCode = utils.BuildQRCode(uniqueID, user.ID)

		err = s.userRepo.Create(ctx, user)
		if !errors.Is(err, repository.ErrDuplicateUniqueID) {
			return err
		}
	}
	return fmt.Errorf("could not allocate a unique patient ID after %d attempts: %w", maxUniqueIDAttempts, err)
}

func newPatientData(in *model.RegisterPatientData) *model.PatientData {
	pd := &model.PatientData{
		Allergies:         []string{},
		Medications:       []string{},
		Conditions:        []string{},
		EmergencyContacts: []model.EmergencyContact{},
		IsVerified:        false,
	}
	if in == nil {
		return pd
	}
	pd.Address = in.Address
	pd.BloodType = in.BloodType
	if in.Allergies != nil {
		pd.Allergies = in.Allergies
	}
	if in.Medications != nil {
		pd.Medications = in.Medications
	}
	if in.Conditions != nil {
		pd.Conditions = in.Conditions
	}
	if in.EmergencyContacts != nil {
		pd.EmergencyContacts = in.EmergencyContacts
	}
	return pd
}

// Login authenticates a user by email, user type and password
func (s *authService) Login(ctx context.Context, req model.LoginRequest) (*model.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by email: %w", err)
	}
	if user == nil || user.UserType != req.UserType {
		return nil, "", ErrInvalidCredentials
	}

	if !s.hasher.Matches(req.Password, user.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID, user.UserType)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}
