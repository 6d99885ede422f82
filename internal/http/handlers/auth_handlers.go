package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/phuongndtech-dev/ECommerceApi/domain"
	"github.com/phuongndtech-dev/ECommerceApi/internal/http/middleware"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// Register handles user registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}
	if details := req.Validate(); len(details) > 0 {
		respondFailure(c, http.StatusBadRequest, "Validation failed", details...)
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			respondFailure(c, http.StatusConflict, "User with this email already exists")
			return
		}
		log.Printf("REGISTRATION_FAILED: email=%s error=%v", req.Email, err)
		respondInternal(c)
		return
	}

	respondSuccess(c, http.StatusCreated, toUserResponse(user), "User registered successfully")
}

// Login handles user login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			respondFailure(c, http.StatusUnauthorized, "Invalid email or password")
		case errors.Is(err, domain.ErrUserInactive):
			respondFailure(c, http.StatusForbidden, "Account is deactivated")
		default:
			log.Printf("LOGIN_FAILED: email=%s error=%v", req.Email, err)
			respondInternal(c)
		}
		return
	}

	respondSuccess(c, http.StatusOK, AuthResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		User:      toUserResponse(result.User),
	}, "Login successful")
}

// Logout acknowledges a logout. Tokens are not revocable server-side; the
// client discards its copy and the token lapses at its encoded expiry.
func (h *AuthHandlers) Logout(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		respondFailure(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), identity.UserID); err != nil {
		log.Printf("LOGOUT_FAILED: user_id=%d error=%v", identity.UserID, err)
		respondInternal(c)
		return
	}

	respondSuccess(c, http.StatusOK, nil, "Logged out successfully")
}

// Profile returns the authenticated caller's account
func (h *AuthHandlers) Profile(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		respondFailure(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := h.authSvc.GetUserProfile(c.Request.Context(), identity.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondFailure(c, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("PROFILE_FAILED: user_id=%d error=%v", identity.UserID, err)
		respondInternal(c)
		return
	}

	respondSuccess(c, http.StatusOK, toUserResponse(user), "")
}
