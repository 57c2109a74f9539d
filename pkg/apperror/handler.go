package apperror

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler returns the echo error handler. Every error becomes
// {"error": "<message>"}; 5xx causes are logged, not returned.
func HTTPErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := FallbackMessage

		var appErr *Error
		var he *echo.HTTPError
		switch {
		case errors.As(err, &appErr):
			code = appErr.HTTPStatus
			message = appErr.Message
		case errors.As(err, &he):
			code = he.Code
			if msg, ok := he.Message.(string); ok && msg != "" {
				message = msg
			} else if he.Message != nil {
				message = fmt.Sprint(he.Message)
			} else {
				message = http.StatusText(code)
			}
		default:
			if err != nil && err.Error() != "" {
				message = err.Error()
			}
		}

		if code >= 500 {
			log.Error("request error",
				slog.Int("status", code),
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.Any("error", err),
				slog.String("error_type", fmt.Sprintf("%T", errors.Unwrap(err))),
			)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, Body{Error: message})
	}
}
