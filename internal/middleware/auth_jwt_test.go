package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"app/internal/config"
)

const testSecret = "test-secret"

func testConfig() config.Config {
	return config.Config{JWTSecret: testSecret}
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func validClaims() jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"sub":  float64(42),
		"role": "ADMIN",
		"iat":  now.Unix(),
		"exp":  now.Add(15 * time.Minute).Unix(),
	}
}

// 認証が通った後のcontext値を検証するためのハンドラ。
func echoWithGuard(cfg config.Config) (*echo.Echo, *struct {
	userID int64
	role   string
}) {
	captured := &struct {
		userID int64
		role   string
	}{}
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		captured.userID = c.Get(CtxUserIDKey).(int64)
		captured.role = c.Get(CtxUserRoleKey).(string)
		return c.NoContent(http.StatusOK)
	}, AuthJWT(cfg))
	return e, captured
}

func doRequest(e *echo.Echo, authz string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthJWT_ValidToken(t *testing.T) {
	e, captured := echoWithGuard(testConfig())
	token := signToken(t, testSecret, validClaims())

	rec := doRequest(e, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), captured.userID)
	assert.Equal(t, "ADMIN", captured.role)
}

func TestAuthJWT_MissingHeader(t *testing.T) {
	e, _ := echoWithGuard(testConfig())

	rec := doRequest(e, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_MalformedHeader(t *testing.T) {
	e, _ := echoWithGuard(testConfig())

	for _, authz := range []string{"Basic abc", "Bearer", "Bearer "} {
		rec := doRequest(e, authz)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, authz)
	}
}

func TestAuthJWT_WrongSecret(t *testing.T) {
	e, _ := echoWithGuard(testConfig())
	token := signToken(t, "other-secret", validClaims())

	rec := doRequest(e, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_ExpiredToken(t *testing.T) {
	e, _ := echoWithGuard(testConfig())
	claims := validClaims()
	claims["exp"] = time.Now().Add(-time.Minute).Unix()
	token := signToken(t, testSecret, claims)

	rec := doRequest(e, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_MissingRole(t *testing.T) {
	e, _ := echoWithGuard(testConfig())
	claims := validClaims()
	delete(claims, "role")
	token := signToken(t, testSecret, claims)

	rec := doRequest(e, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_StringSubject(t *testing.T) {
	e, captured := echoWithGuard(testConfig())
	claims := validClaims()
	claims["sub"] = "42"
	token := signToken(t, testSecret, claims)

	rec := doRequest(e, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), captured.userID)
}
