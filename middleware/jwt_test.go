package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("test-secret")

func sign(t *testing.T, key []byte, userID string, expires time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	})
	s, err := token.SignedString(key)
	require.NoError(t, err)
	return s
}

func viewer(t *testing.T, key []byte, header string) string {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	var got string
	err := OptionalJWT(key)(func(c echo.Context) error {
		got = UserID(c)
		return nil
	})(c)
	require.NoError(t, err)
	return got
}

func TestOptionalJWT(t *testing.T) {
	valid := sign(t, testKey, "user-1", time.Now().Add(time.Hour))

	assert.Equal(t, "user-1", viewer(t, testKey, "Bearer "+valid))
	assert.Equal(t, "user-1", viewer(t, testKey, valid))
	assert.Equal(t, "", viewer(t, testKey, ""))
	assert.Equal(t, "", viewer(t, testKey, "Bearer garbage"))
	assert.Equal(t, "", viewer(t, testKey, sign(t, []byte("other"), "user-1", time.Now().Add(time.Hour))))
	assert.Equal(t, "", viewer(t, testKey, sign(t, testKey, "user-1", time.Now().Add(-time.Hour))))
	assert.Equal(t, "", viewer(t, nil, "Bearer "+valid))
}

func guarded(key []byte, header string) (int, string) {
	e := echo.New()
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, UserID(c))
	}, JWT(key))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec.Code, rec.Body.String()
}

func TestJWT(t *testing.T) {
	valid := sign(t, testKey, "admin-1", time.Now().Add(time.Hour))

	code, body := guarded(testKey, "Bearer "+valid)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "admin-1", body)

	tests := []struct {
		name   string
		key    []byte
		header string
	}{
		{"missing header", testKey, ""},
		{"garbage token", testKey, "Bearer garbage"},
		{"wrong key", testKey, "Bearer " + sign(t, []byte("other"), "admin-1", time.Now().Add(time.Hour))},
		{"expired", testKey, "Bearer " + sign(t, testKey, "admin-1", time.Now().Add(-time.Hour))},
		{"no user id", testKey, "Bearer " + sign(t, testKey, "", time.Now().Add(time.Hour))},
		{"no key configured", nil, "Bearer " + valid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _ := guarded(tt.key, tt.header)
			assert.Equal(t, http.StatusUnauthorized, code)
		})
	}
}
