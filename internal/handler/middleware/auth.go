package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"commission-tracker/internal/domain/auth"
	"commission-tracker/internal/domain/user"
	"commission-tracker/internal/handler/httperr"
	"commission-tracker/internal/pkg/cookie"
	"commission-tracker/internal/pkg/errs"
	"commission-tracker/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errMissingToken   = errs.New("access token required")
	errNoPrincipal    = errs.New("no principal on request context")
	errRoleNotAllowed = errs.New("role not allowed")
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxPrincipalKey = "principal"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithProblem(c, errMissingToken, httperr.Problem{
				Status:  http.StatusUnauthorized,
				Code:    "UNAUTHORIZED",
				Message: "Access token required",
			}, nil)
			return
		}

		principal, err := m.tokenValidator.ValidateToken(c.Request.Context(), token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithProblem(c, err, httperr.Problem{
				Status:  http.StatusUnauthorized,
				Code:    "INVALID_TOKEN",
				Message: "Invalid or expired token",
			}, nil)
			return
		}

		SetPrincipal(c, principal)
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errNoPrincipal, "Internal server error", nil)
			return
		}

		for _, r := range roles {
			if principal.Role() == r {
				c.Next()
				return
			}
		}

		httperr.AbortWithProblem(c, errRoleNotAllowed, httperr.Problem{
			Status:  http.StatusForbidden,
			Code:    "FORBIDDEN",
			Message: "Insufficient permissions",
		}, nil)
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func SetPrincipal(c *gin.Context, p auth.Principal) {
	c.Set(ctxPrincipalKey, p)
}

func GetPrincipal(c *gin.Context) (auth.Principal, bool) {
	v, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return auth.Principal{}, false
	}
	p, ok := v.(auth.Principal)
	return p, ok
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	p, ok := GetPrincipal(c)
	if !ok {
		return uuid.Nil, false
	}
	return p.UserID(), true
}

// GetVendorID is set only when the principal is a vendor.
func GetVendorID(c *gin.Context) (uuid.UUID, bool) {
	p, ok := GetPrincipal(c)
	if !ok {
		return uuid.Nil, false
	}
	return p.VendorID()
}
