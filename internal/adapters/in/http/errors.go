package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"kakanin/internal/core/domain/model/user"
	"kakanin/internal/generated/servers"
	"kakanin/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError writes err as a servers.Error body:
//
//	errs.ErrValueIs*          -> 400
//	user.ErrInvalidCredentials -> 401
//	errs.ErrObjectNotFound    -> 404
//	anything else             -> 500
func (s *Server) respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, user.ErrInvalidCredentials):
		return writeError(ctx, http.StatusUnauthorized, "Invalid username or password")
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return writeError(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return writeError(ctx, http.StatusNotFound, err.Error())
	default:
		return s.internalError(ctx, err)
	}
}

func (s *Server) internalError(ctx echo.Context, err error) error {
	s.logger.ErrorContext(ctx.Request().Context(), "request failed",
		"method", ctx.Request().Method,
		"path", ctx.Path(),
		"error", err,
	)
	return writeError(ctx, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return writeError(ctx, http.StatusBadRequest, message)
}

func writeError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}

// newHTTPErrorHandler renders errors returned by middleware and the router,
// such as failed basic auth or an unknown route, in the same body as handler
// errors.
func newHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
			message = fmt.Sprint(httpErr.Message)
		} else {
			logger.ErrorContext(ctx.Request().Context(), "unhandled error",
				"method", ctx.Request().Method,
				"path", ctx.Path(),
				"error", err,
			)
		}

		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(code)
		} else {
			err = writeError(ctx, code, message)
		}
		if err != nil {
			logger.ErrorContext(ctx.Request().Context(), "failed to write error response", "error", err)
		}
	}
}
