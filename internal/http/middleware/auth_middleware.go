package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/phuongndtech-dev/ECommerceApi/domain"
)

const identityKey = "identity"

// Identity is the authenticated caller, extracted from a validated token and
// carried as an explicit value rather than loose context entries.
type Identity struct {
	UserID uint
	Email  string
	Role   domain.Role
}

// IdentityFrom returns the authenticated caller set by Authenticate, or false
// when the request never passed through it.
func IdentityFrom(c *gin.Context) (Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, false
	}
	identity, ok := value.(Identity)
	return identity, ok
}

// Authenticate validates the bearer token and stores the caller's identity in
// the request context. Every failure mode is reported the same way.
func Authenticate(tokenSvc domain.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, domain.FailureResponse("Authorization header required"))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, domain.FailureResponse("Invalid authorization header format"))
			return
		}

		claims, err := tokenSvc.Validate(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, domain.FailureResponse("Invalid token"))
			return
		}

		c.Set(identityKey, Identity{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   claims.Role,
		})
		c.Next()
	}
}

// RequireRoles allows the request through only when the authenticated caller
// holds one of the given roles. Must run after Authenticate.
func RequireRoles(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, domain.FailureResponse("Authentication required"))
			return
		}

		if !identity.Role.In(roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, domain.FailureResponse("Insufficient permissions"))
			return
		}
		c.Next()
	}
}
