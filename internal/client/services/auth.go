// Package services contains application services for the storefront CLI.
// This file defines the authentication service: register, login and the
// current session.
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/client/client"
)

var ErrEmptyCredentials = errors.New("email and password are required")

// AuthService defines authentication operations for the CLI.
type AuthService interface {
	Register(ctx context.Context, email string, password []byte) error
	Login(ctx context.Context, email string, password []byte) error
	Logout()
	WhoAmI(ctx context.Context) (string, error)
	Ping(ctx context.Context) error
}

type authService struct {
	client client.Client
}

func NewAuthService(c client.Client) AuthService {
	return &authService{client: c}
}

func checkCredentials(email string, password []byte) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || len(password) == 0 {
		return "", ErrEmptyCredentials
	}
	return email, nil
}

func (a *authService) Register(ctx context.Context, email string, password []byte) error {
	email, err := checkCredentials(email, password)
	if err != nil {
		return err
	}
	return a.client.Register(ctx, email, string(password))
}

// Login authenticates; the client keeps the token for the session.
func (a *authService) Login(ctx context.Context, email string, password []byte) error {
	email, err := checkCredentials(email, password)
	if err != nil {
		return err
	}
	return a.client.Login(ctx, email, string(password))
}

func (a *authService) Logout() {
	a.client.Logout()
}

// WhoAmI returns the user id of the current session.
func (a *authService) WhoAmI(ctx context.Context) (string, error) {
	return a.client.Me(ctx)
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}
