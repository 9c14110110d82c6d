package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DemoTokenPrefix is prepended to the user ID to form a demo token
const DemoTokenPrefix = "demo_token_"

var ErrInvalidToken = errors.New("invalid token")

// TokenIssuer issues session tokens and resolves them back to a user ID
type TokenIssuer interface {
	GenerateToken(userID, userType string) (string, error)
	ResolveUserID(tokenString string) (string, error)
}

// DemoTokenIssuer produces non-cryptographic "demo_token_<id>" tokens.
// Anyone can forge one; it only stands in for a real session credential.
type DemoTokenIssuer struct{}

// NewDemoTokenIssuer creates a new DemoTokenIssuer
func NewDemoTokenIssuer() *DemoTokenIssuer {
	return &DemoTokenIssuer{}
}

// GenerateToken returns the demo token for a user
func (DemoTokenIssuer) GenerateToken(userID, _ string) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("cannot issue token for empty user ID")
	}
	return DemoTokenPrefix + userID, nil
}

// ResolveUserID strips the demo prefix
func (DemoTokenIssuer) ResolveUserID(tokenString string) (string, error) {
	userID, ok := strings.CutPrefix(tokenString, DemoTokenPrefix)
	if !ok || userID == "" {
		return "", ErrInvalidToken
	}
	return userID, nil
}

// JWTClaims custom claims for JWT
type JWTClaims struct {
	UserID   string `json:"user_id"`
	UserType string `json:"user_type"`
	jwt.RegisteredClaims
}

// JWTUtil provides JWT generation and validation
type JWTUtil struct {
	secretKey       string
	expirationHours int64
}

// NewJWTUtil creates a new JWTUtil
func NewJWTUtil(secretKey string, expirationHours int64) *JWTUtil {
	return &JWTUtil{secretKey: secretKey, expirationHours: expirationHours}
}

// GenerateToken generates a new JWT token
func (ju *JWTUtil) GenerateToken(userID, userType string) (string, error) {
	claims := &JWTClaims{
		UserID:   userID,
		UserType: userType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * time.Duration(ju.expirationHours))),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(ju.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken validates the JWT token
func (ju *JWTUtil) ValidateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ju.secretKey), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// ResolveUserID validates the token and returns its subject
func (ju *JWTUtil) ResolveUserID(tokenString string) (string, error) {
	claims, err := ju.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}
