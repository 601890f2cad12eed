package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/labstack/echo/v4"
)

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// detail returns the text following the sentinel in err, as added by
// fmt.Errorf("%w: ...", sentinel).
func detail(err, sentinel error) string {
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	if i := strings.Index(msg, prefix); i >= 0 && len(msg) > i+len(prefix) {
		return msg[i+len(prefix):]
	}
	return sentinel.Error()
}

// statusFor maps an error to the HTTP status and body sent to the client.
func statusFor(err error) (int, errorResponse) {
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		msg := http.StatusText(he.Code)
		if m, ok := he.Message.(string); ok && m != "" {
			msg = m
		} else if he.Message != nil {
			msg = fmt.Sprint(he.Message)
		}
		return he.Code, errorResponse{Message: msg}
	case errors.Is(err, common.ErrorValidation):
		return http.StatusBadRequest, errorResponse{Message: detail(err, common.ErrorValidation)}
	case errors.Is(err, common.ErrorUploadRejected):
		return http.StatusBadRequest, errorResponse{Message: detail(err, common.ErrorUploadRejected)}
	case errors.Is(err, common.ErrorUnauthorized):
		return http.StatusUnauthorized, errorResponse{Message: "Invalid credentials"}
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
		return http.StatusUnauthorized, errorResponse{Message: "Unauthorized"}
	case errors.Is(err, common.ErrorAlreadyExists):
		return http.StatusConflict, errorResponse{Message: "Email already registered"}
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound, errorResponse{Message: "Not found"}
	default:
		return http.StatusInternalServerError, errorResponse{Message: "Internal server error", Error: err.Error()}
	}
}

// errorHandler renders every error as JSON. Server errors are logged.
func (s *HTTPServer) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, body := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error(c.Request().Context(), "request failed", "error", err.Error())
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		s.logger.Error(c.Request().Context(), "write error response", "error", err.Error())
	}
}
