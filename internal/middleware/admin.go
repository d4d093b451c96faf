package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sleeptight/club-backend/internal/common"
)

// TokenValidator validates the privileged moderation credential.
// This is an administrative trust boundary separate from member
// identity: the token is not tied to any member record.
type TokenValidator interface {
	Validate(token string) bool
}

// SharedSecretValidator validates against a single shared secret
type SharedSecretValidator struct {
	secret []byte
}

// NewSharedSecretValidator creates a shared-secret validator
func NewSharedSecretValidator(secret string) *SharedSecretValidator {
	return &SharedSecretValidator{secret: []byte(secret)}
}

// Validate compares in constant time
func (v *SharedSecretValidator) Validate(token string) bool {
	if len(v.secret) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), v.secret) == 1
}

// AdminAuth authenticates moderation requests via the X-Admin-Token header
func AdminAuth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Admin-Token")
		if !validator.Validate(token) {
			common.ErrorResponse(c, http.StatusForbidden, "forbidden", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
