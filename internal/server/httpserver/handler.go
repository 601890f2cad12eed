package httpserver

import (
	"errors"
	"fmt"
	"maps"
	"mime/multipart"
	"net/http"
	"slices"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/server/services"
	"github.com/labstack/echo/v4"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func bindCredentials(c echo.Context) (*credentialsRequest, error) {
	req := &credentialsRequest{}
	if err := c.Bind(req); err != nil {
		return nil, fmt.Errorf("%w: invalid request payload", common.ErrorValidation)
	}
	return req, nil
}

// Register creates a user --> POST /register
func (s *HTTPServer) Register(c echo.Context) error {
	ctx := c.Request().Context()

	req, err := bindCredentials(c)
	if err != nil {
		return err
	}

	u, err := s.users.Register(ctx, req.Email, req.Password)
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "Registered", "user_id", u.ID)
	return c.JSON(http.StatusCreated, messageResponse{Message: "User registered"})
}

// Login issues an access token --> POST /login
func (s *HTTPServer) Login(c echo.Context) error {
	req, err := bindCredentials(c)
	if err != nil {
		return err
	}

	token, err := s.users.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"token": token})
}

// ListProducts --> GET /products
func (s *HTTPServer) ListProducts(c echo.Context) error {
	products, err := s.products.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// CreateProduct accepts a multipart form with name, price, description and
// an optional image file --> POST /products
func (s *HTTPServer) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	in := services.ProductInput{
		Name:        c.FormValue("name"),
		Price:       c.FormValue("price"),
		Description: c.FormValue("description"),
	}

	fh, err := c.FormFile(common.ImageFieldName)
	if ferr := checkFileFields(c.Request().MultipartForm); ferr != nil {
		return ferr
	}
	switch {
	case err == nil:
		f, err := fh.Open()
		if err != nil {
			return fmt.Errorf("open uploaded file: %w", err)
		}
		defer f.Close()

		in.Image = &services.ImageInput{
			FieldName:   common.ImageFieldName,
			ContentType: fh.Header.Get(echo.HeaderContentType),
			Body:        f,
		}
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	default:
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return err
		}
		return fmt.Errorf("%w: invalid multipart form", common.ErrorValidation)
	}

	p, err := s.products.Create(ctx, in)
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "Product created", "id", p.ID, "image", p.ImageURL)
	return c.JSON(http.StatusCreated, p)
}

// checkFileFields allows at most one file part, and only under the image field.
func checkFileFields(form *multipart.Form) error {
	if form == nil {
		return nil
	}
	for _, field := range slices.Sorted(maps.Keys(form.File)) {
		if field != common.ImageFieldName {
			return fmt.Errorf("%w: unexpected file field %q", common.ErrorUploadRejected, field)
		}
		if len(form.File[field]) > 1 {
			return fmt.Errorf("%w: only one %q file is allowed", common.ErrorUploadRejected, field)
		}
	}
	return nil
}

// ServeUpload streams a stored image --> GET /uploads/:name
func (s *HTTPServer) ServeUpload(c echo.Context) error {
	rc, contentType, err := s.uploads.Open(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}
	defer rc.Close()

	c.Response().Header().Set("X-Content-Type-Options", "nosniff")
	return c.Stream(http.StatusOK, contentType, rc)
}

// Me returns the caller's user id --> GET /me
func (s *HTTPServer) Me(c echo.Context) error {
	userID, _ := c.Get(userIDKey).(string)
	return c.JSON(http.StatusOK, map[string]string{"userId": userID})
}

// Health pings the database --> GET /health
func (s *HTTPServer) Health(c echo.Context) error {
	if err := s.db.PingContext(c.Request().Context()); err != nil {
		s.logger.Warn(c.Request().Context(), "health check failed", "error", err.Error())
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
