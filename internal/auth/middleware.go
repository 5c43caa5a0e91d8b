package auth

import (
	"net/http"

	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"taskboard/internal/errors"
)

// contextKey is where the gate stores verified claims on the echo context.
const contextKey = "user"

// Middleware returns the authorization gate for protected routes. It pulls
// the bearer token from the Authorization header, verifies it through the
// token service, and stores the claims on the request context. A missing,
// malformed, forged, or expired token gets the same generic 401.
func Middleware(tokens *JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  contextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return tokens.Validate(tokenString)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, errors.ErrorResponse{
				Error: ErrInvalidToken.Error(),
				Code:  "UNAUTHORIZED",
			})
		},
	})
}

// UserID returns the authenticated user's ID attached by Middleware.
// The boolean is false on routes that never passed through the gate.
func UserID(c echo.Context) (uuid.UUID, bool) {
	claims, ok := c.Get(contextKey).(*Claims)
	if !ok {
		return uuid.Nil, false
	}
	return claims.UserID, true
}
