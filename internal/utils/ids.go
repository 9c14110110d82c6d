package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	UniqueIDPrefix = "LK"
	QRCodePrefix   = "LIFEKEY"
)

// NewID returns a random UUID string used for users and emergencies
func NewID() string {
	return uuid.NewString()
}

// NewUniqueID builds a patient-facing ID: LK<unix-seconds><4-digit-random>
func NewUniqueID(now time.Time) string {
	return fmt.Sprintf("%s%d%04d", UniqueIDPrefix, now.Unix(), rand.Intn(10000))
}

// BuildQRCode returns the QR payload LIFEKEY:<uniqueId>:<userId>
func BuildQRCode(uniqueID, userID string) string {
	return QRCodePrefix + ":" + uniqueID + ":" + userID
}

// NormalizeUniqueID trims and uppercases a unique ID typed in by a user
func NormalizeUniqueID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
