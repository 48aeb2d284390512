package http

import (
	"errors"
	"net/http"

	"campuseats/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondWithError translates a domain or application error into the
// appropriate HTTP status. Unrecognized errors become an opaque 500; their
// details stay in the server logs, not the response.
func respondWithError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return respondBadRequest(ctx, err.Error())
	case errors.Is(err, errs.ErrUnauthorized):
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "authentication required",
		})
	case errors.Is(err, errs.ErrAccessForbidden):
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsDuplicated):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal server error",
		})
	}
}

// errUnauthenticated is returned when a route behind the auth middleware is
// reached without an AuthContext; it should never fire through the normal
// route registration.
func errUnauthenticated() error {
	return errs.NewUnauthorizedError()
}

func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
