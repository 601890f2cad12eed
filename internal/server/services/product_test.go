package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductService(repo *fakeProductsRepo, images *fakeImageStore) *ProductService {
	return NewProductService(nil, &fakeRepoManager{p: repo}, images)
}

func TestCreateProduct_WithImage(t *testing.T) {
	repo := &fakeProductsRepo{}
	images := newFakeImageStore()
	s := newProductService(repo, images)

	p, err := s.Create(context.Background(), ProductInput{
		Name: " Mug ", Price: "12.50", Description: "Ceramic", Image: pngImage([]byte("png")),
	})
	require.NoError(t, err)
	assert.Equal(t, "Mug", p.Name)
	assert.Equal(t, 12.5, p.Price)
	assert.Equal(t, "/uploads/image-1.png", p.ImageURL)
	assert.Equal(t, []byte("png"), images.stored["image-1.png"])
	assert.Len(t, repo.items, 1)
}

func TestCreateProduct_WithoutImage(t *testing.T) {
	repo := &fakeProductsRepo{}
	images := newFakeImageStore()
	s := newProductService(repo, images)

	p, err := s.Create(context.Background(), ProductInput{Name: "Mug", Price: "3", Description: "d"})
	require.NoError(t, err)
	assert.Equal(t, "", p.ImageURL)
	assert.Zero(t, images.accepted)
}

func TestCreateProduct_ValidationBeforeUpload(t *testing.T) {
	cases := []struct {
		name string
		in   ProductInput
	}{
		{"missing name", ProductInput{Price: "1", Description: "d"}},
		{"missing price", ProductInput{Name: "n", Description: "d"}},
		{"missing description", ProductInput{Name: "n", Price: "1"}},
		{"blank name", ProductInput{Name: "  ", Price: "1", Description: "d"}},
		{"price not a number", ProductInput{Name: "n", Price: "cheap", Description: "d"}},
		{"price zero", ProductInput{Name: "n", Price: "0", Description: "d"}},
		{"price negative", ProductInput{Name: "n", Price: "-4", Description: "d"}},
		{"price NaN", ProductInput{Name: "n", Price: "NaN", Description: "d"}},
		{"price Inf", ProductInput{Name: "n", Price: "+Inf", Description: "d"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeProductsRepo{}
			images := newFakeImageStore()
			s := newProductService(repo, images)

			tc.in.Image = pngImage([]byte("png"))
			_, err := s.Create(context.Background(), tc.in)
			require.ErrorIs(t, err, common.ErrorValidation)
			assert.Zero(t, images.accepted)
			assert.Empty(t, repo.items)
		})
	}
}

func TestCreateProduct_UploadRejected(t *testing.T) {
	repo := &fakeProductsRepo{}
	images := newFakeImageStore()
	images.acceptErr = common.ErrorUploadRejected
	s := newProductService(repo, images)

	_, err := s.Create(context.Background(), ProductInput{
		Name: "n", Price: "1", Description: "d", Image: pngImage(nil),
	})
	require.ErrorIs(t, err, common.ErrorUploadRejected)
	assert.Empty(t, repo.items)
}

func TestCreateProduct_RepoFailureRemovesImage(t *testing.T) {
	repo := &fakeProductsRepo{createErr: errors.New("db down")}
	images := newFakeImageStore()
	s := newProductService(repo, images)

	_, err := s.Create(context.Background(), ProductInput{
		Name: "n", Price: "1", Description: "d", Image: pngImage([]byte("x")),
	})
	require.Error(t, err)
	assert.Equal(t, []string{"image-1.png"}, images.removed)
	assert.Empty(t, images.stored)
}

func TestCreateProduct_RepoAndRemoveFailure(t *testing.T) {
	repo := &fakeProductsRepo{createErr: errors.New("db down")}
	images := newFakeImageStore()
	images.removeErr = errors.New("perm denied")
	s := newProductService(repo, images)

	_, err := s.Create(context.Background(), ProductInput{
		Name: "n", Price: "1", Description: "d", Image: pngImage([]byte("x")),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
	assert.Contains(t, err.Error(), "perm denied")
}

func TestListProducts(t *testing.T) {
	repo := &fakeProductsRepo{}
	s := newProductService(repo, newFakeImageStore())

	empty, err := s.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	for _, n := range []string{"a", "b", "c"} {
		_, err := s.Create(context.Background(), ProductInput{Name: n, Price: "1", Description: "d"})
		require.NoError(t, err)
	}

	got, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].Name)
	assert.Equal(t, "c", got[2].Name)
}

func TestListProducts_Error(t *testing.T) {
	repo := &fakeProductsRepo{listErr: errors.New("boom")}
	s := newProductService(repo, newFakeImageStore())

	_, err := s.List(context.Background())
	require.Error(t, err)
}
