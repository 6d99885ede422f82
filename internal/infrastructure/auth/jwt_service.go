package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/phuongndtech-dev/ECommerceApi/domain"
)

// JWTServiceImpl implements domain.TokenService with HS256-signed tokens.
// The secret length is enforced at startup by config.Load, not here.
type JWTServiceImpl struct {
	secretKey []byte
	issuer    string
	audience  string
	tokenTTL  time.Duration
}

// NewJWTService creates a new JWT service
func NewJWTService(secretKey, issuer, audience string, tokenTTL time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		audience:  audience,
		tokenTTL:  tokenTTL,
	}
}

// Generate implements domain.TokenService
func (j *JWTServiceImpl) Generate(user *domain.User) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(j.tokenTTL)
	userID := strconv.FormatUint(uint64(user.ID), 10)

	claims := jwt.MapClaims{
		"sub":         userID,
		"email":       user.Email,
		"given_name":  user.FirstName,
		"family_name": user.LastName,
		"role":        string(user.Role),
		"userId":      userID, // convenience mirror of sub
		"jti":         uuid.NewString(),
		"iat":         now.Unix(),
		"exp":         expiresAt.Unix(),
		"iss":         j.issuer,
		"aud":         j.audience,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Validate implements domain.TokenService. It verifies the signature,
// issuer, audience, lifetime (zero clock skew) and that the token was
// signed with HS256 exactly, rejecting algorithm substitution. Every
// failure collapses into domain.ErrTokenInvalid.
func (j *JWTServiceImpl) Validate(tokenString string) (*domain.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, domain.ErrTokenInvalid
		}
		return j.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(j.issuer),
		jwt.WithAudience(j.audience),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	)
	if err != nil || !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		// Fall back to the userId mirror claim.
		sub, ok = claims["userId"].(string)
		if !ok {
			return nil, domain.ErrTokenInvalid
		}
	}
	userID, convErr := strconv.ParseUint(sub, 10, 32)
	if convErr != nil {
		return nil, domain.ErrTokenInvalid
	}

	email, ok := claims["email"].(string)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}

	roleStr, ok := claims["role"].(string)
	if !ok || !domain.Role(roleStr).Valid() {
		return nil, domain.ErrTokenInvalid
	}

	iat, ok := claims["iat"].(float64)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}

	tokenClaims := &domain.TokenClaims{
		UserID:    uint(userID),
		Email:     email,
		Role:      domain.Role(roleStr),
		IssuedAt:  int64(iat),
		ExpiresAt: int64(exp),
	}
	if givenName, ok := claims["given_name"].(string); ok {
		tokenClaims.FirstName = givenName
	}
	if familyName, ok := claims["family_name"].(string); ok {
		tokenClaims.LastName = familyName
	}
	if jti, ok := claims["jti"].(string); ok {
		tokenClaims.TokenID = jti
	}

	return tokenClaims, nil
}

// UserIDFromToken implements domain.TokenService
func (j *JWTServiceImpl) UserIDFromToken(tokenString string) (uint, bool) {
	claims, err := j.Validate(tokenString)
	if err != nil {
		return 0, false
	}
	return claims.UserID, true
}

// EmailFromToken implements domain.TokenService
func (j *JWTServiceImpl) EmailFromToken(tokenString string) (string, bool) {
	claims, err := j.Validate(tokenString)
	if err != nil {
		return "", false
	}
	return claims.Email, true
}
