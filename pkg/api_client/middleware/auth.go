package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

const (
	ContextUserID  = "user_id"
	ContextIsAdmin = "is_admin"
)

// RequireUser valideert het Bearer-token en zet de gebruikersidentiteit op de
// gin-context.
func RequireUser(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, jwtSecret) {
			return
		}
		c.Next()
	}
}

// RequireAdmin eist naast een geldig token ook de admin-claim. De claim wordt
// gecontroleerd vóórdat de keten verdergaat; een niet-admin bereikt de handler
// nooit.
func RequireAdmin(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, jwtSecret) {
			return
		}
		if !c.GetBool(ContextIsAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}

// authenticate valideert het Bearer-token en zet de identiteit op de context.
// Bij een ongeldig token wordt de keten afgebroken en is de uitkomst false.
func authenticate(c *gin.Context, jwtSecret string) bool {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
		return false
	}

	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := parseClaims(tokenStr, jwtSecret)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return false
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token is missing a subject"})
		return false
	}

	admin, _ := claims["admin"].(bool)
	c.Set(ContextUserID, sub)
	c.Set(ContextIsAdmin, admin)
	return true
}

func parseClaims(tokenStr, jwtSecret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
