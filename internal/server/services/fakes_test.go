package services

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"sync"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/dbx"
	"github.com/dmitrijs2005/storefront/internal/server/models"
	productsrepo "github.com/dmitrijs2005/storefront/internal/server/repositories/products"
	usersrepo "github.com/dmitrijs2005/storefront/internal/server/repositories/users"
	"github.com/dmitrijs2005/storefront/internal/server/uploads"
)

type fakeUsersRepo struct {
	mu      sync.Mutex
	byEmail map[string]*models.User

	createErr error
	getErr    error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byEmail: map[string]*models.User{}}
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}
	u.ID = "user-" + u.Email
	f.byEmail[u.Email] = u
	return u, nil
}

func (f *fakeUsersRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

type fakeProductsRepo struct {
	items     []*models.Product
	createErr error
	listErr   error
}

func (f *fakeProductsRepo) Create(_ context.Context, p *models.Product) (*models.Product, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	p.ID = "p" + string(rune('0'+len(f.items)))
	f.items = append(f.items, p)
	return p, nil
}

func (f *fakeProductsRepo) List(context.Context) ([]*models.Product, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*models.Product, 0, len(f.items))
	return append(out, f.items...), nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	p *fakeProductsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) usersrepo.Repository          { return m.u }
func (m *fakeRepoManager) Products(dbx.DBTX) productsrepo.Repository    { return m.p }

type fakeImageStore struct {
	stored    map[string][]byte
	accepted  int
	removed   []string
	acceptErr error
	removeErr error
}

func newFakeImageStore() *fakeImageStore {
	return &fakeImageStore{stored: map[string][]byte{}}
}

func (f *fakeImageStore) Accept(_ context.Context, field, mimeType string, body io.ReadSeeker) (*uploads.StoredFile, error) {
	f.accepted++
	if f.acceptErr != nil {
		return nil, f.acceptErr
	}
	b, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	name := field + "-1.png"
	f.stored[name] = b
	return &uploads.StoredFile{Name: name, URL: common.UploadsURLPrefix + "/" + name, ContentType: mimeType}, nil
}

func (f *fakeImageStore) Remove(_ context.Context, name string) error {
	f.removed = append(f.removed, name)
	if f.removeErr != nil {
		return f.removeErr
	}
	delete(f.stored, name)
	return nil
}

func pngImage(b []byte) *ImageInput {
	return &ImageInput{FieldName: common.ImageFieldName, ContentType: "image/png", Body: bytes.NewReader(b)}
}
