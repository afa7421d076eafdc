package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"travel-booking/internal/domain/customer"
	"travel-booking/internal/pkg/cookie"
	"travel-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxCustomerIDKey   = "customer_id"
	ctxCustomerRoleKey = "customer_role"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAccessToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		customerID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxCustomerIDKey, customerID)
		c.Set(ctxCustomerRoleKey, role)
		c.Set("jwt_claims", map[string]any{
			"customer_id": customerID,
			"role":        string(role),
		})
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetCustomerRole(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if !role.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetCustomerID(c *gin.Context) (int64, bool) {
	customerID, exists := c.Get(ctxCustomerIDKey)
	if !exists {
		return 0, false
	}

	id, ok := customerID.(int64)
	return id, ok
}

func GetCustomerRole(c *gin.Context) (customer.Role, bool) {
	customerRole, exists := c.Get(ctxCustomerRoleKey)
	if !exists {
		return "", false
	}

	role, ok := customerRole.(customer.Role)
	return role, ok
}

// IsAdmin reports whether the authenticated caller holds the admin role.
func IsAdmin(c *gin.Context) bool {
	role, ok := GetCustomerRole(c)
	return ok && role.IsAdmin()
}
