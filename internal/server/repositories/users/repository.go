// Package users is the credential store: user records keyed by email.
package users

import (
	"context"

	"github.com/dmitrijs2005/storefront/internal/server/models"
)

// Repository persists users. Create assigns user.ID and fails with
// common.ErrorAlreadyExists for a taken email; GetUserByEmail fails with
// common.ErrorNotFound for an unknown one.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
