package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware is the single terminal point for every failure reaching the
// HTTP boundary. Installed as Echo's HTTPErrorHandler, it classifies the
// error structurally and writes one of the fixed envelope shapes. Internal
// causes are logged here and never serialized to the client.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Classified application failures: validation, auth, not-found, conflict.
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		m.writeJSON(c, appErr.StatusCode(), response.FromAppError(appErr))

		return
	}

	// Echo's own errors: unmatched routes, malformed request bodies.
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		m.writeJSON(c, httpErr.Code, response.Envelope{
			StatusCode: httpErr.Code,
			Error:      http.StatusText(httpErr.Code),
			Message:    httpErrorMessage(httpErr),
		})

		return
	}

	// Everything else is an unexpected fault: full detail to the log, a
	// generic envelope to the client.
	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
		slog.String("request_id", deliverycontext.GetRequestIDFromContext(c.Request().Context())),
	)

	m.writeJSON(c, http.StatusInternalServerError, response.Envelope{
		StatusCode: http.StatusInternalServerError,
		Error:      domainerrors.ErrInternal.Label(),
		Message:    domainerrors.ErrInternal.Message(),
	})
}

func (m *ErrorMiddleware) writeJSON(c echo.Context, status int, env response.Envelope) {
	if err := c.JSON(status, env); err != nil {
		m.logger.Error("Failed to write error envelope", slog.String("error", err.Error()))
	}
}

// httpErrorMessage extracts a client-safe message from an echo.HTTPError
// without echoing arbitrary internal detail.
func httpErrorMessage(httpErr *echo.HTTPError) string {
	if msg, ok := httpErr.Message.(string); ok {
		return msg
	}

	return http.StatusText(httpErr.Code)
}
