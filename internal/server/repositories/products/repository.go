// Package products is the product store.
package products

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/storefront/internal/server/models"
)

// Repository persists products. Create assigns product.ID. List returns every
// product in insertion order, never nil.
type Repository interface {
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	List(ctx context.Context) ([]*models.Product, error)
}

func scanProducts(rows *sql.Rows) ([]*models.Product, error) {
	result := make([]*models.Product, 0)
	for rows.Next() {
		var item models.Product
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Description, &item.ImageURL); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
