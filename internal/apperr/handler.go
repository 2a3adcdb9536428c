package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		if errors.Is(err, ErrInvalidExpression) {
			pos, _ := Position(err)
			_ = c.JSON(http.StatusBadRequest, map[string]any{"error": ErrInvalidExpression.Error(), "position": pos})
			return
		}

		var re *ResourceError
		if errors.As(err, &re) {
			_ = c.JSON(http.StatusUnprocessableEntity, map[string]any{"error": re.Error(), "limit": re.Limit})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, map[string]string{"error": msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
