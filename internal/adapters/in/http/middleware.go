package http

import (
	"errors"
	"net/http"
	"strings"

	"campuseats/internal/core/domain/model/account"
	"campuseats/internal/core/ports"
	"campuseats/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// authContextKey is the echo context key holding the AuthContext.
const authContextKey = "campuseats.auth"

// AuthContext is what the auth middleware leaves behind for route handlers:
// the verified identity, and the domain profile looked up by the identity's
// email. Profile is nil when the account has authenticated but never
// registered; the access policy turns that into a 403 everywhere except the
// signup route itself.
type AuthContext struct {
	Identity ports.Identity
	Profile  *account.Profile
}

// authFromContext retrieves the AuthContext stored by the middleware.
func authFromContext(ctx echo.Context) (AuthContext, bool) {
	auth, ok := ctx.Get(authContextKey).(AuthContext)
	return auth, ok
}

// NewAuthMiddleware builds the bearer-token middleware: it verifies the
// Authorization header with the identity provider and resolves the caller's
// profile by email. A missing profile is not an error here; the request
// proceeds with AuthContext.Profile == nil.
func NewAuthMiddleware(
	provider ports.IdentityProvider,
	profiles ports.ProfileRepository,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || strings.TrimSpace(token) == "" {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "authentication required",
				})
			}

			requestCtx := ctx.Request().Context()

			identity, err := provider.Authenticate(requestCtx, token)
			if err != nil {
				return respondWithError(ctx, err)
			}

			profile, err := profiles.GetByEmail(requestCtx, identity.Email)
			if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
				return respondWithError(ctx, err)
			}

			ctx.Set(authContextKey, AuthContext{
				Identity: identity,
				Profile:  profile,
			})

			return next(ctx)
		}
	}
}
