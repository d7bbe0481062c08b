package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pavilion-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("strongpassword")
	require.NoError(t, err)
	assert.NotEqual(t, "strongpassword", hash)

	assert.True(t, CheckPasswordHash("strongpassword", hash))
	assert.False(t, CheckPasswordHash("wrongpassword", hash))
	assert.False(t, CheckPasswordHash("strongpassword", "not-a-hash"))
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := GenerateToken(&models.Admin{ID: 1, Username: "admin"})
	assert.Error(t, err)
}

func TestSecureCookies(t *testing.T) {
	t.Setenv("COOKIE_SECURE", "")
	assert.True(t, SecureCookies())

	t.Setenv("COOKIE_SECURE", "true")
	assert.True(t, SecureCookies())

	t.Setenv("COOKIE_SECURE", "false")
	assert.False(t, SecureCookies())
}

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"adminId": AdminID(c),
			"role":    AdminRole(c),
		})
	})
	return r
}

func TestAuthMiddlewareAcceptsCookie(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	admin := &models.Admin{ID: 7, Username: "admin", FullName: "Admin", Role: models.RoleManager}
	token, err := GenerateToken(admin)
	require.NoError(t, err)

	r := newAuthRouter()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"adminId":7`)
	assert.Contains(t, w.Body.String(), `"role":"manager"`)
}

func TestAuthMiddlewareAcceptsBearer(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(&models.Admin{ID: 3, Username: "admin", Role: models.RoleAdmin})
	require.NoError(t, err)

	r := newAuthRouter()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"adminId":3`)
}

func TestAuthMiddlewareRejectsMissingOrBadToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newAuthRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"error"`)

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "garbage"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := GenerateToken(&models.Admin{ID: 1, Username: "admin", Role: models.RoleAdmin})
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "other-secret")
	r := newAuthRouter()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
