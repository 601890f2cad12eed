package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/client/client"
	"github.com/dmitrijs2005/storefront/internal/client/models"
)

var getMultiline = GetMultiline

// List prints every product in the catalog.
func (a *App) List(ctx context.Context) error {
	items, err := a.products.List(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No products")
		return nil
	}
	for _, p := range items {
		fmt.Fprintln(a.out, p)
	}
	return nil
}

// AddProduct prompts for product fields and an optional image path.
func (a *App) AddProduct(ctx context.Context) error {
	var p models.NewProduct
	var err error

	if p.Name, err = getSimpleText(a.reader, "Enter name", a.out); err != nil {
		return err
	}
	if p.Price, err = getSimpleText(a.reader, "Enter price", a.out); err != nil {
		return err
	}
	if p.Description, err = getMultiline(a.reader, "Enter description", a.out); err != nil {
		return err
	}
	if p.ImagePath, err = getSimpleText(a.reader, "Image path (jpeg, png or gif; empty to skip)", a.out); err != nil {
		return err
	}

	created, err := a.products.Create(ctx, p)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			return errors.New(apiErr.Message)
		}
		return err
	}

	fmt.Fprintf(a.out, "Product created: %s\n", created)
	return nil
}
