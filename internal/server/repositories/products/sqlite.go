package products

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/dbx"
	"github.com/dmitrijs2005/storefront/internal/server/models"
	"github.com/google/uuid"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	query := `INSERT INTO products (id, name, price, description, image_url)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), product.Name, product.Price, product.Description, product.ImageURL).Scan(&product.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}
	return product, nil
}

// List returns all products in rowid (insertion) order.
func (r *SQLiteRepository) List(ctx context.Context) ([]*models.Product, error) {
	query := `SELECT id, name, price, description, image_url FROM products ORDER BY rowid`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}
