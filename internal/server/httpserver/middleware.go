package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/logging"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// userIDKey is the echo context key holding the authenticated user id.
const userIDKey = "userID"

func (s *HTTPServer) useMiddleware(e *echo.Echo) {
	e.Use(middleware.RequestID())
	e.Use(requestIDToContext)
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logRequest(c.Request().Context(), v)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: s.config.CORSAllowOrigins,
	}))
	e.Use(middleware.BodyLimit(s.config.MaxUploadSize))
}

// requestIDToContext copies the X-Request-ID set by middleware.RequestID into
// the request context so service-level log lines carry it.
func requestIDToContext(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Response().Header().Get(echo.HeaderXRequestID)
		req := c.Request()
		c.SetRequest(req.WithContext(logging.WithRequestID(req.Context(), id)))
		return next(c)
	}
}

func (s *HTTPServer) logRequest(ctx context.Context, v middleware.RequestLoggerValues) {
	args := []any{
		"method", v.Method,
		"uri", v.URI,
		"status", v.Status,
		"latency", v.Latency.String(),
	}
	if v.Error != nil {
		args = append(args, "error", v.Error.Error())
	}

	if v.Status >= http.StatusInternalServerError {
		s.logger.Error(ctx, "request", args...)
		return
	}
	s.logger.Info(ctx, "request", args...)
}

// requireToken verifies "Authorization: Bearer <jwt>" and stores the user id
// under userIDKey.
func (s *HTTPServer) requireToken() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: userIDKey,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return s.users.UserIDFromToken(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if errors.Is(err, common.ErrTokenExpired) {
				return echo.NewHTTPError(http.StatusUnauthorized, "Token expired")
			}
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
		},
	})
}
