package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// UserIDKey is the echo context key holding the viewer's user id.
const UserIDKey = "user_id"

// Claims extends jwt.RegisteredClaims with the viewer identity issued by
// the auth service.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

func parseToken(header string, key []byte) (*Claims, error) {
	token := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(header), "Bearer "))
	if token == "" {
		return nil, errors.New("missing authorization header")
	}

	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !tkn.Valid || claims.UserID == "" {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// JWT returns an Echo middleware that rejects requests without a valid
// bearer token signed with key. An empty key rejects everything.
func JWT(key []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if len(key) == 0 {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication not configured")
			}
			claims, err := parseToken(c.Request().Header.Get("Authorization"), key)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}

			c.Set(UserIDKey, claims.UserID)
			return next(c)
		}
	}
}

// OptionalJWT returns an Echo middleware that identifies the viewer from a
// bearer token when one is present and valid. Requests without a usable
// token continue anonymously; searches never require a login.
func OptionalJWT(key []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if len(key) == 0 {
				return next(c)
			}

			if claims, err := parseToken(c.Request().Header.Get("Authorization"), key); err == nil {
				c.Set(UserIDKey, claims.UserID)
			}
			return next(c)
		}
	}
}

// UserID returns the viewer set by JWT or OptionalJWT, or "".
func UserID(c echo.Context) string {
	id, _ := c.Get(UserIDKey).(string)
	return id
}
