package testutil

import (
	"strings"

	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/gin-gonic/gin"

	"github.com/digitalstore/digitalstore-api/middleware"
)

// MockValidatedClaims creates a mock ValidatedClaims for testing
func MockValidatedClaims(subject string, scopes []string) *validator.ValidatedClaims {
	return &validator.ValidatedClaims{
		RegisteredClaims: validator.RegisteredClaims{
			Issuer:  "https://test.auth0.com/",
			Subject: subject,
		},
		CustomClaims: &middleware.CustomClaims{
			Scope: strings.Join(scopes, " "),
		},
	}
}

// MockAuthMiddleware simulates the JWT middleware. It sets up the context
// exactly as EnsureValidToken does for a valid token.
func MockAuthMiddleware(subject, accessToken string, scopes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, subject)
		c.Set(middleware.ContextAccessToken, accessToken)
		c.Set(middleware.ContextClaims, MockValidatedClaims(subject, scopes))
		c.Next()
	}
}

// Headers read by HeaderAuthMiddleware
const (
	TestSubjectHeader = "X-Test-Subject"
	TestScopesHeader  = "X-Test-Scopes"
)

// HeaderAuthMiddleware authenticates the subject named in X-Test-Subject with
// the space separated scopes in X-Test-Scopes. Requests without the header get
// the same 401 the real middleware returns.
func HeaderAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		subject := c.GetHeader(TestSubjectHeader)
		if subject == "" {
			c.AbortWithStatusJSON(401, gin.H{
				"success": false,
				"error":   gin.H{"code": "INVALID_TOKEN", "message": "Failed to validate JWT."},
			})
			return
		}
		c.Set(middleware.ContextUserID, subject)
		c.Set(middleware.ContextAccessToken, "token-"+subject)
		c.Set(middleware.ContextClaims, MockValidatedClaims(subject, strings.Fields(c.GetHeader(TestScopesHeader))))
		c.Next()
	}
}
