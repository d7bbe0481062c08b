// utils/auth.go
package utils

import (
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"pavilion-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// SessionCookie carries the admin session token. HttpOnly, so the
// console frontend never touches it directly.
const SessionCookie = "admin_session"

// Hash password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// Check password
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateToken issues the session JWT for an admin.
func GenerateToken(admin *models.Admin) (string, error) {
	expiryHours := 24 // default
	if env := os.Getenv("JWT_EXPIRY_HOURS"); env != "" {
		if h, err := strconv.Atoi(env); err == nil {
			expiryHours = h
		}
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      strconv.FormatUint(uint64(admin.ID), 10),
		"username": admin.Username,
		"name":     admin.FullName,
		"role":     admin.Role,
		"exp":      time.Now().Add(time.Duration(expiryHours) * time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	})

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET not set")
	}

	return token.SignedString([]byte(secret))
}

// SessionMaxAge returns the cookie lifetime in seconds, matching the
// token expiry.
func SessionMaxAge() int {
	expiryHours := 24
	if env := os.Getenv("JWT_EXPIRY_HOURS"); env != "" {
		if h, err := strconv.Atoi(env); err == nil {
			expiryHours = h
		}
	}
	return expiryHours * 3600
}

// SecureCookies reports whether session cookies carry the Secure flag.
// On by default; set COOKIE_SECURE=false for plain-HTTP local
// development, where browsers would otherwise drop the cookie.
func SecureCookies() bool {
	return os.Getenv("COOKIE_SECURE") != "false"
}

// AuthMiddleware guards the admin API. The session cookie is the normal
// path; a Bearer header is accepted as well for API clients.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookie)
		if err != nil || tokenString == "" {
			header := c.GetHeader("Authorization")
			if len(header) > 7 && strings.EqualFold(header[0:6], "BEARER") {
				tokenString = header[7:]
			}
		}
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		sub, _ := claims["sub"].(string)
		adminID, err := strconv.ParseUint(sub, 10, 64)
		if err != nil || adminID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		c.Set("adminId", uint(adminID))
		if name, ok := claims["name"].(string); ok {
			c.Set("adminName", name)
		}
		if role, ok := claims["role"].(string); ok {
			c.Set("adminRole", role)
		}

		c.Next()
	}
}

// AdminID returns the authenticated admin's id from the context.
func AdminID(c *gin.Context) uint {
	if v, ok := c.Get("adminId"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// AdminRole returns the authenticated admin's role from the context.
func AdminRole(c *gin.Context) string {
	if v, ok := c.Get("adminRole"); ok {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return ""
}
