package model

import (
	"encoding/json"
	"time"
)

const (
	EmergencyStatusReported = "reported"
	EmergencyPriorityHigh   = "high"

	DefaultEmergencyType = "unconscious_person"

	// AnonymousReporter is recorded when the caller could not be identified
	AnonymousReporter = "demo_user"
)

// Emergency represents a reported emergency
type Emergency struct {
	ID            string          `json:"id"`
	ReporterID    string          `json:"reporterId"`
	Location      json.RawMessage `json:"location"` // Free-form, echoed back as sent
	EmergencyType string          `json:"emergencyType"`
	Description   *string         `json:"description"`
	Status        string          `json:"status"`
	Priority      string          `json:"priority"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ReportEmergencyRequest is used for reporting a new emergency.
// Location is validated in the service since it can be any JSON value.
type ReportEmergencyRequest struct {
	Location      json.RawMessage `json:"location"`
	EmergencyType string          `json:"emergencyType"`
	Description   *string         `json:"description"`
}

// EmergencyAck is the acknowledgement returned after a report
type EmergencyAck struct {
	ID        string          `json:"id"`
	Status    string          `json:"status"`
	Location  json.RawMessage `json:"location"`
	Timestamp time.Time       `json:"timestamp"`
}
