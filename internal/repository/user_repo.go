package repository

import (
	"context"
	"errors"
	"sync"

	"lifekey_api/internal/model"
)

var (
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrDuplicateUniqueID = errors.New("patient unique ID already taken")
	ErrUserNotFound      = errors.New("user not found")
)

// UserRepository defines operations for user data
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindPatientByQRCode(ctx context.Context, qrCode string) (*model.User, error)
	FindPatientByUniqueID(ctx context.Context, uniqueID string) (*model.User, error)
	Update(ctx context.Context, id string, apply func(*model.User) error) (*model.User, error)
	Count(ctx context.Context) int
}

type userRepository struct {
	mu    sync.RWMutex
	users []*model.User
}

// NewUserRepository creates an empty in-memory UserRepository
func NewUserRepository() UserRepository {
	return &userRepository{}
}

// Create appends a user. The uniqueness checks and the append happen
// under one lock so concurrent registrations can't both win.
func (r *userRepository) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return ErrDuplicateEmail
		}
		if user.PatientData != nil && u.PatientData != nil &&
			(u.PatientData.UniqueID == user.PatientData.UniqueID || u.PatientData.QRCode == user.PatientData.QRCode) {
			return ErrDuplicateUniqueID
		}
	}
	r.users = append(r.users, user.Clone())
	return nil
}

// FindByEmail retrieves a user by email, nil if absent
func (r *userRepository) FindByEmail(_ context.Context, email string) (*model.User, error) {
	return r.find(func(u *model.User) bool { return u.Email == email }), nil
}

// FindByID retrieves a user by ID, nil if absent
func (r *userRepository) FindByID(_ context.Context, id string) (*model.User, error) {
	return r.find(func(u *model.User) bool { return u.ID == id }), nil
}

// FindPatientByQRCode retrieves the patient whose QR code matches exactly
func (r *userRepository) FindPatientByQRCode(_ context.Context, qrCode string) (*model.User, error) {
	return r.find(func(u *model.User) bool {
		return u.IsPatient() && u.PatientData.QRCode == qrCode
	}), nil
}

// FindPatientByUniqueID retrieves the patient whose unique ID matches exactly
func (r *userRepository) FindPatientByUniqueID(_ context.Context, uniqueID string) (*model.User, error) {
	return r.find(func(u *model.User) bool {
		return u.IsPatient() && u.PatientData.UniqueID == uniqueID
	}), nil
}

// Update runs apply on a copy of the user with the given ID and stores the
// result. Lookup, mutation, email check and write all happen under one lock
// so concurrent partial updates can't overwrite each other. An error from
// apply aborts the update and is returned as is.
func (r *userRepository) Update(_ context.Context, id string, apply func(*model.User) error) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, u := range r.users {
		if u.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrUserNotFound
	}

	updated := r.users[idx].Clone()
	if err := apply(updated); err != nil {
		return nil, err
	}
	updated.ID = id

	for i, u := range r.users {
		if i != idx && u.Email == updated.Email {
			return nil, ErrDuplicateEmail
		}
	}
	r.users[idx] = updated
	return updated.Clone(), nil
}

// Count returns the number of stored users
func (r *userRepository) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

func (r *userRepository) find(match func(*model.User) bool) *model.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if match(u) {
			return u.Clone()
		}
	}
	return nil
}
