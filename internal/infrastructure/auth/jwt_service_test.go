package auth

import (
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/phuongndtech-dev/ECommerceApi/domain"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func testUser() *domain.User {
	return &domain.User{
		ID:        42,
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Smith",
		Role:      domain.RoleAdmin,
		IsActive:  true,
	}
}

func newTestService(ttl time.Duration) domain.TokenService {
	return NewJWTService(testSecret, "ECommerceApi", "ECommerceApi", ttl)
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestService(24 * time.Hour)
	user := testUser()

	token, expiresAt, err := svc.Generate(user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	remaining := time.Until(expiresAt)
	if remaining < 23*time.Hour || remaining > 24*time.Hour {
		t.Errorf("expected expiry about 24h out, got %s", remaining)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("expected user id %d, got %d", user.ID, claims.UserID)
	}
	if claims.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, claims.Email)
	}
	if claims.Role != user.Role {
		t.Errorf("expected role %s, got %s", user.Role, claims.Role)
	}
	if claims.FirstName != "Jane" || claims.LastName != "Smith" {
		t.Errorf("expected names to round-trip, got %s %s", claims.FirstName, claims.LastName)
	}
	if claims.TokenID == "" {
		t.Error("expected a unique token id")
	}
}

func TestJWTService_UniqueTokenIDs(t *testing.T) {
	svc := newTestService(time.Hour)
	user := testUser()

	first, _, err := svc.Generate(user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _, err := svc.Generate(user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	firstClaims, _ := svc.Validate(first)
	secondClaims, _ := svc.Validate(second)
	if firstClaims.TokenID == secondClaims.TokenID {
		t.Error("expected distinct jti per issued token")
	}
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestService(-time.Second)

	token, _, err := svc.Generate(testUser())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Validate(token); err != domain.ErrTokenInvalid {
		t.Errorf("expected ErrTokenInvalid for expired token, got %v", err)
	}
}

// The validity window opens at issued-at, so a token dated in the future is
// not yet valid.
func TestJWTService_FutureIssuedAt(t *testing.T) {
	svc := newTestService(time.Hour)
	user := testUser()
	future := time.Now().Add(30 * time.Minute)

	claims := jwt.MapClaims{
		"sub":    strconv.FormatUint(uint64(user.ID), 10),
		"email":  user.Email,
		"role":   string(user.Role),
		"userId": strconv.FormatUint(uint64(user.ID), 10),
		"iat":    future.Unix(),
		"exp":    future.Add(time.Hour).Unix(),
		"iss":    "ECommerceApi",
		"aud":    "ECommerceApi",
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Validate(token); err != domain.ErrTokenInvalid {
		t.Errorf("expected ErrTokenInvalid for future-dated token, got %v", err)
	}
}

func TestJWTService_TamperedSignature(t *testing.T) {
	svc := newTestService(time.Hour)

	token, _, err := svc.Generate(testUser())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	last := token[len(token)-1]
	flipped := byte('A')
	if last == 'A' {
		flipped = 'B'
	}
	tampered := token[:len(token)-1] + string(flipped)

	if _, err := svc.Validate(tampered); err != domain.ErrTokenInvalid {
		t.Errorf("expected ErrTokenInvalid for tampered token, got %v", err)
	}
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc := newTestService(time.Hour)
	other := NewJWTService("ffffffffffffffffffffffffffffffff", "ECommerceApi", "ECommerceApi", time.Hour)

	token, _, err := other.Generate(testUser())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Validate(token); err != domain.ErrTokenInvalid {
		t.Errorf("expected ErrTokenInvalid for token signed under another secret, got %v", err)
	}
}

// A well-formed token signed with a different algorithm must be rejected
// even when the signature verifies under the shared secret.
func TestJWTService_AlgorithmSubstitution(t *testing.T) {
	svc := newTestService(time.Hour)
	user := testUser()
	now := time.Now()

	claims := jwt.MapClaims{
		"sub":    strconv.FormatUint(uint64(user.ID), 10),
		"email":  user.Email,
		"role":   string(user.Role),
		"userId": strconv.FormatUint(uint64(user.ID), 10),
		"iat":    now.Unix(),
		"exp":    now.Add(time.Hour).Unix(),
		"iss":    "ECommerceApi",
		"aud":    "ECommerceApi",
	}

	hs384, err := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Validate(hs384); err != domain.ErrTokenInvalid {
		t.Errorf("expected ErrTokenInvalid for HS384 token, got %v", err)
	}

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Validate(none); err != domain.ErrTokenInvalid {
		t.Errorf("expected ErrTokenInvalid for unsigned token, got %v", err)
	}
}

func TestJWTService_IssuerAudienceMismatch(t *testing.T) {
	svc := newTestService(time.Hour)

	tests := []struct {
		name   string
		issuer string
		aud    string
	}{
		{name: "wrong issuer", issuer: "OtherApi", aud: "ECommerceApi"},
		{name: "wrong audience", issuer: "ECommerceApi", aud: "OtherApi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := NewJWTService(testSecret, tt.issuer, tt.aud, time.Hour)
			token, _, err := other.Generate(testUser())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if _, err := svc.Validate(token); err != domain.ErrTokenInvalid {
				t.Errorf("expected ErrTokenInvalid, got %v", err)
			}
		})
	}
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc := newTestService(time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.Validate(token); err != domain.ErrTokenInvalid {
			t.Errorf("expected ErrTokenInvalid for %q, got %v", token, err)
		}
	}
}

func TestJWTService_Projections(t *testing.T) {
	svc := newTestService(time.Hour)
	user := testUser()

	token, _, err := svc.Generate(user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id, ok := svc.UserIDFromToken(token)
	if !ok || id != user.ID {
		t.Errorf("expected user id %d, got %d (ok=%v)", user.ID, id, ok)
	}

	email, ok := svc.EmailFromToken(token)
	if !ok || email != user.Email {
		t.Errorf("expected email %s, got %s (ok=%v)", user.Email, email, ok)
	}

	if _, ok := svc.UserIDFromToken("garbage"); ok {
		t.Error("expected absence for invalid token")
	}
	if _, ok := svc.EmailFromToken("garbage"); ok {
		t.Error("expected absence for invalid token")
	}
}
