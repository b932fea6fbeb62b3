package middleware

import (
	"strings"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// claimsKey is the echo.Context key the authenticated claims are stored under.
const claimsKey = "authClaims"

// AuthMiddleware guards routes with JWT authentication. On success it stores
// typed claims on the context; on any failure it returns ErrAuthRequired so
// the error middleware emits the uniform 401 envelope.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer token before the handler runs.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrAuthRequired.WrapMessage("missing authorization header")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrAuthRequired.WrapMessage("authorization header is not a bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return domainerrors.ErrAuthRequired.WrapMessage("token validation failed")
		}

		c.Set(claimsKey, claims)

		return next(c)
	}
}

// CurrentClaims returns the authenticated identity set by Authenticate.
// The boolean is false on routes that did not pass through the guard.
func CurrentClaims(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(claimsKey).(*service.Claims)

	return claims, ok
}
