// Package httpserver exposes the storefront over HTTP using echo.
package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/dmitrijs2005/storefront/internal/server/config"
	"github.com/dmitrijs2005/storefront/internal/server/services"
	"github.com/dmitrijs2005/storefront/internal/server/uploads"
	"github.com/labstack/echo/v4"
)

const shutdownTimeout = 5 * time.Second

// Pinger reports database reachability.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HTTPServer struct {
	config   *config.Config
	logger   logging.Logger
	users    *services.UserService
	products *services.ProductService
	uploads  *uploads.Uploader
	db       Pinger
	echo     *echo.Echo
}

func NewHTTPServer(cfg *config.Config, l logging.Logger, us *services.UserService, ps *services.ProductService,
	up *uploads.Uploader, db Pinger) (*HTTPServer, error) {

	if _, err := cfg.MaxUploadBytes(); err != nil {
		return nil, err
	}

	s := &HTTPServer{
		config:   cfg,
		logger:   l.With("module", "http_server"),
		users:    us,
		products: ps,
		uploads:  up,
		db:       db,
	}
	s.echo = s.newRouter()
	return s, nil
}

// Handler returns the router, for tests and embedding.
func (s *HTTPServer) Handler() http.Handler {
	return s.echo
}

func (s *HTTPServer) newRouter() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.errorHandler

	s.useMiddleware(e)

	e.POST("/register", s.Register)
	e.POST("/login", s.Login)
	e.GET("/products", s.ListProducts)
	e.POST("/products", s.CreateProduct)
	e.GET("/uploads/:name", s.ServeUpload)
	e.GET("/me", s.Me, s.requireToken())
	e.GET("/health", s.Health)

	return e
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.config.EndpointAddrHTTP)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:      s.echo,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		stopped <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return <-stopped
}
