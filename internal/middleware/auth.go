package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/villagekeep/villagekeep-backend/internal/platform/logger"
)

// ReviewerKey is the gin context key holding the authenticated reviewer
// email after RequireAuth has run.
const ReviewerKey = "reviewer"

type AuthMiddleware struct {
	log    *logger.Logger
	secret []byte
}

func NewAuthMiddleware(baseLog *logger.Logger, secret string) *AuthMiddleware {
	return &AuthMiddleware{
		log:    baseLog.With("middleware", "AuthMiddleware"),
		secret: []byte(secret),
	}
}

// RequireAuth verifies the bearer token and stashes the reviewer email in
// the gin context. Tokens are HMAC-signed; the email claim is required.
func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractBearer(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			return
		}
		email, err := am.reviewerFromToken(tokenString)
		if err != nil {
			am.log.Debug("token rejected", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			return
		}
		c.Set(ReviewerKey, email)
		c.Next()
	}
}

func (am *AuthMiddleware) reviewerFromToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return am.secret, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid claims")
	}
	email, _ := claims["email"].(string)
	email = strings.TrimSpace(email)
	if email == "" {
		return "", errors.New("token carries no email claim")
	}
	return email, nil
}

// Reviewer reads the authenticated reviewer email set by RequireAuth.
func Reviewer(c *gin.Context) string {
	v, _ := c.Get(ReviewerKey)
	email, _ := v.(string)
	return email
}

func extractBearer(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
