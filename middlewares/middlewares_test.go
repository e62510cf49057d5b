package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Kariqs/vkusnyashka/models"
	"github.com/gin-gonic/gin"
	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const secret = "test-secret"

var issued = time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
}

func admin() models.User {
	return models.User{Model: gorm.Model{ID: 7}, Username: "root", Email: "root@example.com", Role: models.RoleAdmin}
}

func whoami(clk *testclock.Clock, guards ...gin.HandlerFunc) *gin.Engine {
	server := gin.New()
	server.Use(Identify(secret, clk))
	handlers := append(guards, func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, ViewerFrom(ctx))
	})
	server.GET("/me", handlers...)
	return server
}

func TestTokenRoundTrip(t *testing.T) {
	raw, err := IssueToken(admin(), secret, issued)
	require.NoError(t, err)

	viewer, err := ParseToken(raw, secret, testclock.NewClock(issued.Add(time.Hour)))
	require.NoError(t, err)
	assert.Equal(t, uint(7), viewer.UserID)
	assert.Equal(t, "root", viewer.Username)
	assert.True(t, viewer.IsAdmin())

	_, err = ParseToken(raw, "other-secret", testclock.NewClock(issued))
	assert.Error(t, err)

	_, err = ParseToken(raw, secret, testclock.NewClock(issued.Add(TokenLifetime+time.Minute)))
	assert.Error(t, err, "expired")
}

func TestIdentifyReadsCookieAndBearer(t *testing.T) {
	raw, err := IssueToken(admin(), secret, issued)
	require.NoError(t, err)
	server := whoami(testclock.NewClock(issued))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookie, Value: raw})
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)
	assert.Contains(t, w.Body.String(), `"Username":"root"`)

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	w = httptest.NewRecorder()
	server.ServeHTTP(w, req)
	assert.Contains(t, w.Body.String(), `"UserID":7`)

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w = httptest.NewRecorder()
	server.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"UserID":0`)
}

func TestRequireAuthRedirectsToLogin(t *testing.T) {
	server := whoami(testclock.NewClock(issued), RequireAuth())

	req := httptest.NewRequest(http.MethodGet, "/me?x=1", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/accounts/login/?next=%2Fme%3Fx%3D1", w.Header().Get("Location"))
}

func TestRequireAdmin(t *testing.T) {
	server := whoami(testclock.NewClock(issued), RequireAdmin())

	w := httptest.NewRecorder()
	server.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	user := admin()
	user.Role = models.RoleUser
	raw, err := IssueToken(user, secret, issued)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	w = httptest.NewRecorder()
	server.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	raw, err = IssueToken(admin(), secret, issued)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	w = httptest.NewRecorder()
	server.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
