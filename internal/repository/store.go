package repository

import (
	"context"
	"fmt"
	"time"

	"lifekey_api/internal/model"
)

// Store is the in-memory record store: users, emergencies and hospitals.
// It lives for the lifetime of the process and is reseeded on restart.
type Store struct {
	Users       UserRepository
	Emergencies EmergencyRepository
	Hospitals   HospitalRepository
}

// NewStore creates an empty store with the given hospital directory
func NewStore(hospitals []model.Hospital) *Store {
	return &Store{
		Users:       NewUserRepository(),
		Emergencies: NewEmergencyRepository(),
		Hospitals:   NewHospitalRepository(hospitals),
	}
}

// NewSeededStore creates a store holding the sample hospitals and accounts.
// hashPassword converts the sample passwords to their stored form.
func NewSeededStore(ctx context.Context, hashPassword func(string) (string, error)) (*Store, error) {
	s := NewStore(SampleHospitals())
	for _, u := range SampleUsers() {
		stored, err := hashPassword(u.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash sample password for %s: %w", u.Email, err)
		}
		u.Password = stored
		if err := s.Users.Create(ctx, u); err != nil {
			return nil, fmt.Errorf("failed to seed user %s: %w", u.Email, err)
		}
	}
	return s, nil
}

var seedTime = time.Date(2024, time.January, 20, 10, 0, 0, 0, time.UTC)

// SampleUsers returns the demo patient and doctor
func SampleUsers() []*model.User {
	return []*model.User{
		{
			ID:       "patient_123",
			Email:    "john@example.com",
			Password: "password123",
			UserType: model.UserTypePatient,
			FullName: "John Doe",
			Phone:    "+1-555-0101",
			PatientData: &model.PatientData{
				UniqueID:    "LK123456789",
				BloodType:   "O+",
				Allergies:   []string{"penicillin", "peanuts"},
				Medications: []string{"Lisinopril 10mg", "Metformin"},
				Conditions:  []string{"Diabetes", "Hypertension"},
				EmergencyContacts: []model.EmergencyContact{
					{Name: "Jane Doe", Phone: "+1-555-0102", Relation: "Wife"},
				},
				QRCode:     "LIFEKEY:LK123456789:patient_123",
				IsVerified: true,
			},
			CreatedAt: seedTime,
		},
		{
			ID:       "doctor_456",
			Email:    "dr.smith@hospital.com",
			Password: "password123",
			UserType: model.UserTypeDoctor,
			FullName: "Dr. Sarah Smith",
			Phone:    "+1-555-0202",
			StaffData: &model.StaffData{
				LicenseNumber:   "MED123456",
				Hospital:        "City General Hospital",
				Department:      "Emergency Medicine",
				Specialization:  "Trauma Surgery",
				LicenseVerified: true,
				AccessLevel:     model.AccessLevelFull,
			},
			CreatedAt: seedTime,
		},
	}
}

// SampleHospitals returns the fixed hospital directory
func SampleHospitals() []model.Hospital {
	return []model.Hospital{
		{
			ID:             "1",
			Name:           "City General Hospital",
			Location:       model.GeoLocation{Lat: 40.7128, Lng: -74.0060, Address: "123 Medical Center Dr"},
			EmergencyPhone: "+1-555-0123",
			GeneralPhone:   "+1-555-0124",
			Departments:    []string{"Emergency", "Cardiology", "Trauma"},
			Distance:       "2.3 km",
		},
		{
			ID:             "2",
			Name:           "Community Medical Center",
			Location:       model.GeoLocation{Lat: 40.7215, Lng: -74.0052, Address: "456 Health Ave"},
			EmergencyPhone: "+1-555-0456",
			GeneralPhone:   "+1-555-0457",
			Departments:    []string{"Emergency", "Oncology"},
			Distance:       "3.1 km",
		},
	}
}
