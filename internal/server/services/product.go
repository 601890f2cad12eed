package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/server/models"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/storefront/internal/server/uploads"
)

// ImageStore accepts and removes product images.
type ImageStore interface {
	Accept(ctx context.Context, fieldName, mimeType string, body io.ReadSeeker) (*uploads.StoredFile, error)
	Remove(ctx context.Context, name string) error
}

// ImageInput is an uploaded file part.
type ImageInput struct {
	FieldName   string
	ContentType string
	Body        io.ReadSeeker
}

// ProductInput carries the raw form values of a new product.
type ProductInput struct {
	Name        string
	Price       string
	Description string
	Image       *ImageInput
}

// ProductService creates and lists catalog products.
type ProductService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	images      ImageStore
}

func NewProductService(db *sql.DB, m repomanager.RepositoryManager, images ImageStore) *ProductService {
	return &ProductService{db: db, repomanager: m, images: images}
}

// Create validates in, stores the image if present and persists the product.
// Nothing is uploaded when validation fails, and the image is removed again
// if the product cannot be saved.
func (s *ProductService) Create(ctx context.Context, in ProductInput) (*models.Product, error) {
	p, err := validateProduct(in)
	if err != nil {
		return nil, err
	}

	var stored *uploads.StoredFile
	if in.Image != nil {
		stored, err = s.images.Accept(ctx, in.Image.FieldName, in.Image.ContentType, in.Image.Body)
		if err != nil {
			return nil, err
		}
		p.ImageURL = stored.URL
	}

	repo := s.repomanager.Products(s.db)
	created, err := repo.Create(ctx, p)
	if err != nil {
		err = fmt.Errorf("error creating product: %w", err)
		if stored != nil {
			if rmErr := s.images.Remove(ctx, stored.Name); rmErr != nil {
				err = errors.Join(err, fmt.Errorf("remove %s: %w", stored.Name, rmErr))
			}
		}
		return nil, err
	}
	return created, nil
}

// List returns every product in insertion order.
func (s *ProductService) List(ctx context.Context) ([]*models.Product, error) {
	repo := s.repomanager.Products(s.db)
	products, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing products: %w", err)
	}
	return products, nil
}

func validateProduct(in ProductInput) (*models.Product, error) {
	name := strings.TrimSpace(in.Name)
	description := strings.TrimSpace(in.Description)
	price := strings.TrimSpace(in.Price)

	var missing []string
	if name == "" {
		missing = append(missing, "name")
	}
	if price == "" {
		missing = append(missing, "price")
	}
	if description == "" {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required fields: %s", common.ErrorValidation, strings.Join(missing, ", "))
	}

	value, err := strconv.ParseFloat(price, 64)
	if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
		return nil, fmt.Errorf("%w: price must be a number", common.ErrorValidation)
	}
	if value <= 0 {
		return nil, fmt.Errorf("%w: price must be greater than zero", common.ErrorValidation)
	}

	return &models.Product{Name: name, Price: value, Description: description}, nil
}
