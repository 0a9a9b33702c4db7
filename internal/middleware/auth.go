package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sashabryl/train-station-api-service/internal/dto"
)

const (
	// ContextKeyUserID is the gin context key holding the authenticated user ID
	ContextKeyUserID = "user_id"
	// ContextKeyIsStaff is the gin context key holding the staff flag
	ContextKeyIsStaff = "is_staff"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Claims holds the token claims the API cares about
type Claims struct {
	UserID  string
	Email   string
	IsStaff bool
}

// ValidateToken parses and verifies an HS256 access token
func ValidateToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, ErrInvalidToken
	}

	email := ""
	if e, ok := claims["email"].(string); ok {
		email = e
	}
	isStaff := false
	if staff, ok := claims["is_staff"].(bool); ok {
		isStaff = staff
	}

	return &Claims{UserID: userID, Email: email, IsStaff: isStaff}, nil
}

// Auth requires a valid Bearer token and stores its claims in the gin context
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Authorization header is required",
				Code:  "UNAUTHORIZED",
			})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Authorization header must be in the form: Bearer <token>",
				Code:  "UNAUTHORIZED",
			})
			return
		}

		claims, err := ValidateToken(parts[1], secret)
		if err != nil {
			msg := "Invalid or expired token"
			if errors.Is(err, ErrTokenExpired) {
				msg = "Token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: msg,
				Code:  "UNAUTHORIZED",
			})
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyIsStaff, claims.IsStaff)
		c.Next()
	}
}

// AdminOnly rejects requests from non-staff users. Must run after Auth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsStaff(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Error: "Admin privileges are required for this operation",
				Code:  "FORBIDDEN",
			})
			return
		}
		c.Next()
	}
}

// GetUserID extracts the authenticated user ID from the gin context
func GetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get(ContextKeyUserID)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// IsStaff reports whether the authenticated user has staff privileges
func IsStaff(c *gin.Context) bool {
	v, exists := c.Get(ContextKeyIsStaff)
	if !exists {
		return false
	}
	staff, ok := v.(bool)
	return ok && staff
}
