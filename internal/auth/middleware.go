package auth

import (
	"errors"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"contacthub/internal/apperrors"
	"contacthub/internal/model"
)

// identityContextKey is where the middleware binds the verified identity.
const identityContextKey = "identity"

// Middleware gates a route group on a valid bearer token. A request without
// an Authorization header is rejected before the token service is consulted;
// otherwise verification is delegated to JWTService and the resulting
// identity is bound into the request context.
func Middleware(jwtService *JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: identityContextKey,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return jwtService.Verify(auth)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			httpErr := apperrors.MapErrorToHTTP(classify(err))
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		},
	})
}

// classify folds extractor failures into the token taxonomy. Anything that
// never reached the token service counts as a missing token.
func classify(err error) error {
	switch {
	case errors.Is(err, apperrors.ErrTokenExpired):
		return apperrors.ErrTokenExpired
	case errors.Is(err, apperrors.ErrTokenInvalid):
		return apperrors.ErrTokenInvalid
	default:
		return apperrors.ErrTokenMissing
	}
}

// IdentityFrom returns the identity bound by Middleware, if any.
func IdentityFrom(c echo.Context) (*model.Identity, bool) {
	identity, ok := c.Get(identityContextKey).(*model.Identity)
	return identity, ok
}
