package model

import "time"

const (
	UserTypePatient = "patient"
	UserTypeDoctor  = "doctor"
	UserTypeStaff   = "staff"
)

const (
	AccessLevelFull    = "full"
	AccessLevelLimited = "limited"
)

// EmergencyContact is a person to call on the patient's behalf
type EmergencyContact struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Relation string `json:"relation"`
}

// PatientData holds the medical-ID part of a patient account
type PatientData struct {
	UniqueID          string             `json:"uniqueId"`
	Address           string             `json:"address"`
	BloodType         string             `json:"bloodType"`
	Allergies         []string           `json:"allergies"`
	Medications       []string           `json:"medications"`
	Conditions        []string           `json:"conditions"`
	EmergencyContacts []EmergencyContact `json:"emergencyContacts"`
	QRCode            string             `json:"qrCode"`
	IsVerified        bool               `json:"isVerified"`
}

// StaffData holds the professional details of a doctor or staff account
type StaffData struct {
	LicenseNumber   string `json:"licenseNumber"`
	Hospital        string `json:"hospital"`
	Department      string `json:"department"`
	Specialization  string `json:"specialization"`
	LicenseVerified bool   `json:"licenseVerified"`
	AccessLevel     string `json:"accessLevel"`
}

// User represents a patient or staff account.
// At most one of PatientData and StaffData is set: patients always carry
// PatientData, staff carry StaffData only when it was supplied.
type User struct {
	ID          string       `json:"id"`
	Email       string       `json:"email"`
	Password    string       `json:"-"` // Never exposed in JSON responses
	UserType    string       `json:"userType"`
	FullName    string       `json:"fullName"`
	Phone       string       `json:"phone"`
	PatientData *PatientData `json:"patientData,omitempty"`
	StaffData   *StaffData   `json:"staffData,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// IsPatient reports whether the user carries patient data
func (u *User) IsPatient() bool {
	return u.UserType == UserTypePatient && u.PatientData != nil
}

// Clone returns a deep copy so callers can't mutate stored records
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.PatientData = u.PatientData.Clone()
	if u.StaffData != nil {
		sd := *u.StaffData
		c.StaffData = &sd
	}
	return &c
}

// Clone returns a deep copy of the patient data
func (p *PatientData) Clone() *PatientData {
	if p == nil {
		return nil
	}
	c := *p
	c.Allergies = cloneStrings(p.Allergies)
	c.Medications = cloneStrings(p.Medications)
	c.Conditions = cloneStrings(p.Conditions)
	c.EmergencyContacts = make([]EmergencyContact, len(p.EmergencyContacts))
	copy(c.EmergencyContacts, p.EmergencyContacts)
	return &c
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// PublicUser is the user view returned by the auth endpoints
type PublicUser struct {
	ID          string       `json:"id"`
	Email       string       `json:"email"`
	UserType    string       `json:"userType"`
	FullName    string       `json:"fullName"`
	PatientData *PatientData `json:"patientData"`
	StaffData   *StaffData   `json:"staffData"`
}

// PatientView is the patient record returned by lookups and the profile endpoint
type PatientView struct {
	ID          string       `json:"id"`
	FullName    string       `json:"fullName"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone"`
	PatientData *PatientData `json:"patientData"`
}

// Public builds the auth view of the user
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:          u.ID,
		Email:       u.Email,
		UserType:    u.UserType,
		FullName:    u.FullName,
		PatientData: u.PatientData,
		StaffData:   u.StaffData,
	}
}

// PatientView builds the patient-facing view of the user
func (u *User) PatientView() PatientView {
	return PatientView{
		ID:          u.ID,
		FullName:    u.FullName,
		Email:       u.Email,
		Phone:       u.Phone,
		PatientData: u.PatientData,
	}
}

// RegisterPatientData is the optional patient payload of a registration
type RegisterPatientData struct {
	Address           string             `json:"address"`
	BloodType         string             `json:"bloodType"`
	Allergies         []string           `json:"allergies"`
	Medications       []string           `json:"medications"`
	Conditions        []string           `json:"conditions"`
	EmergencyContacts []EmergencyContact `json:"emergencyContacts"`
}

// RegisterRequest is used for creating a new account
type RegisterRequest struct {
	Email       string               `json:"email" binding:"required"`
	Password    string               `json:"password" binding:"required"`
	UserType    string               `json:"userType" binding:"required,oneof=patient doctor staff"`
	FullName    string               `json:"fullName" binding:"required"`
	Phone       string               `json:"phone"`
	PatientData *RegisterPatientData `json:"patientData"`
	StaffData   *StaffData           `json:"staffData"`
}

// LoginRequest is used for authenticating an account
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	UserType string `json:"userType" binding:"required"`
}

// UpdateProfileRequest is a partial update of the patient profile.
// Nil fields are left unchanged; an empty (non-nil) slice clears the list.
type UpdateProfileRequest struct {
	FullName          *string             `json:"fullName,omitempty"`
	Email             *string             `json:"email,omitempty"`
	Phone             *string             `json:"phone,omitempty"`
	Address           *string             `json:"address,omitempty"`
	BloodType         *string             `json:"bloodType,omitempty"`
	Allergies         *[]string           `json:"allergies,omitempty"`
	Medications       *[]string           `json:"medications,omitempty"`
	Conditions        *[]string           `json:"conditions,omitempty"`
	EmergencyContacts *[]EmergencyContact `json:"emergencyContacts,omitempty"`
}
