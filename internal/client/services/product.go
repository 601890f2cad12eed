package services

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/storefront/internal/client/client"
	"github.com/dmitrijs2005/storefront/internal/client/models"
)

// ProductService lists and creates catalog products.
type ProductService interface {
	List(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, p models.NewProduct) (*models.Product, error)
}

type productService struct {
	client client.Client
}

func NewProductService(c client.Client) ProductService {
	return &productService{client: c}
}

func (s *productService) List(ctx context.Context) ([]models.Product, error) {
	return s.client.ListProducts(ctx)
}

// Create uploads p, reading the image from p.ImagePath when it is set.
func (s *productService) Create(ctx context.Context, p models.NewProduct) (*models.Product, error) {
	form := client.ProductForm{Name: p.Name, Price: p.Price, Description: p.Description}

	if p.ImagePath != "" {
		f, err := os.Open(p.ImagePath)
		if err != nil {
			return nil, fmt.Errorf("open image: %w", err)
		}
		defer f.Close()

		form.ImageName = p.ImagePath
		form.Image = f
	}

	return s.client.CreateProduct(ctx, form)
}
