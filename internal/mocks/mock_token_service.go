package mocks

import (
	"time"

	"github.com/phuongndtech-dev/ECommerceApi/domain"
)

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	GenerateFunc        func(user *domain.User) (string, time.Time, error)
	ValidateFunc        func(token string) (*domain.TokenClaims, error)
	UserIDFromTokenFunc func(token string) (uint, bool)
	EmailFromTokenFunc  func(token string) (string, bool)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Generate issues a token for the user
func (m *MockTokenService) Generate(user *domain.User) (string, time.Time, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(user)
	}
	return "mock-token", time.Now().Add(24 * time.Hour), nil
}

// Validate validates a token
func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	return nil, domain.ErrTokenInvalid
}

// UserIDFromToken projects the subject id out of a token
func (m *MockTokenService) UserIDFromToken(token string) (uint, bool) {
	if m.UserIDFromTokenFunc != nil {
		return m.UserIDFromTokenFunc(token)
	}
	claims, err := m.Validate(token)
	if err != nil {
		return 0, false
	}
	return claims.UserID, true
}

// EmailFromToken projects the email out of a token
func (m *MockTokenService) EmailFromToken(token string) (string, bool) {
	if m.EmailFromTokenFunc != nil {
		return m.EmailFromTokenFunc(token)
	}
	claims, err := m.Validate(token)
	if err != nil {
		return "", false
	}
	return claims.Email, true
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
