package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"clinic-scheduler-server/internal/models"
	"clinic-scheduler-server/internal/repository"
)

// TokenService issues and verifies signed bearer tokens. The token carries
// only the identifier (admin username, doctor/patient email); the role is
// never embedded. Authorization re-derives the role by checking which
// credential store contains the identifier, so a deleted account
// invalidates its tokens immediately without a revocation list.
type TokenService struct {
	admins   repository.AdminRepository
	doctors  repository.DoctorRepository
	patients repository.PatientRepository
	secret   []byte
	expiry   time.Duration
}

// NewTokenService creates a TokenService signing with the given symmetric
// secret.
func NewTokenService(
	admins repository.AdminRepository,
	doctors repository.DoctorRepository,
	patients repository.PatientRepository,
	secret string,
	expiry time.Duration,
) *TokenService {
	return &TokenService{
		admins:   admins,
		doctors:  doctors,
		patients: patients,
		secret:   []byte(secret),
		expiry:   expiry,
	}
}

// Generate produces a signed token with subject=identifier.
func (s *TokenService) Generate(identifier string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   identifier,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ExtractIdentifier validates the token's signature and expiry and returns
// its subject. Malformed, tampered and expired tokens all come back as
// ErrInvalidToken.
func (s *TokenService) ExtractIdentifier(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// Validate verifies the token and checks that its identifier exists in the
// store for the expected role: admins are looked up by username, doctors
// and patients by email. A cryptographically valid token presented for the
// wrong role fails with ErrUnauthorized.
func (s *TokenService) Validate(tokenString string, role models.Role) (string, error) {
	identifier, err := s.ExtractIdentifier(tokenString)
	if err != nil {
		return "", err
	}

	switch role {
	case models.RoleAdmin:
		admin, err := s.admins.FindByUsername(identifier)
		if err != nil {
			return "", err
		}
		if admin == nil {
			return "", ErrUnauthorized
		}
	case models.RoleDoctor:
		doctor, err := s.doctors.FindByEmail(identifier)
		if err != nil {
			return "", err
		}
		if doctor == nil {
			return "", ErrUnauthorized
		}
	case models.RolePatient:
		patient, err := s.patients.FindByEmail(identifier)
		if err != nil {
			return "", err
		}
		if patient == nil {
			return "", ErrUnauthorized
		}
	default:
		return "", ErrUnauthorized
	}

	return identifier, nil
}
