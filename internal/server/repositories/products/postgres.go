package products

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/dbx"
	"github.com/dmitrijs2005/storefront/internal/server/models"
	"github.com/google/uuid"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts product with a fresh id.
func (r *PostgresRepository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	query := `
		INSERT INTO products (id, name, price, description, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), product.Name, product.Price, product.Description, product.ImageURL).Scan(&product.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return product, nil
}

// List returns all products in insertion (seq) order.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Product, error) {
	query := `
		SELECT id, name, price, description, image_url FROM products
		ORDER BY seq
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}
