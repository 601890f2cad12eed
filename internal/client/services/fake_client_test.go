package services

import (
	"context"
	"io"

	"github.com/dmitrijs2005/storefront/internal/client/client"
	"github.com/dmitrijs2005/storefront/internal/client/models"
)

// fakeClient implements client.Client for service tests.
type fakeClient struct {
	RegisterErr error
	LoginErr    error
	PingErr     error
	MeRet       string
	MeErr       error
	ListRet     []models.Product
	ListErr     error
	CreateErr   error

	LastEmail    string
	LastPassword string
	LastForm     client.ProductForm
	LastImage    []byte
	LoggedOut    bool
}

func (f *fakeClient) Register(_ context.Context, email, password string) error {
	f.LastEmail, f.LastPassword = email, password
	return f.RegisterErr
}

func (f *fakeClient) Login(_ context.Context, email, password string) error {
	f.LastEmail, f.LastPassword = email, password
	return f.LoginErr
}

func (f *fakeClient) Logout() { f.LoggedOut = true }

func (f *fakeClient) Me(context.Context) (string, error) { return f.MeRet, f.MeErr }

func (f *fakeClient) ListProducts(context.Context) ([]models.Product, error) {
	return f.ListRet, f.ListErr
}

func (f *fakeClient) CreateProduct(_ context.Context, p client.ProductForm) (*models.Product, error) {
	f.LastForm = p
	if p.Image != nil {
		f.LastImage, _ = io.ReadAll(p.Image)
	}
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}
	return &models.Product{ID: "p1", Name: p.Name}, nil
}

func (f *fakeClient) Ping(context.Context) error { return f.PingErr }
