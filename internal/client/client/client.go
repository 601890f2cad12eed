// Package client is the storefront HTTP API client used by the CLI.
//
// Transport failures are reported as ErrUnavailable, 401 replies as
// ErrUnauthorized (wrapping the server's *APIError), and every other non-2xx
// reply as *APIError.
package client

import (
	"context"
	"io"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

type Client interface {
	Register(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) error
	Logout()
	Me(ctx context.Context) (string, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, p ProductForm) (*models.Product, error)
	Ping(ctx context.Context) error
}

// ProductForm is the multipart body of POST /products. Image may be nil.
type ProductForm struct {
	Name        string
	Price       string
	Description string

	ImageName string
	Image     io.Reader
}
