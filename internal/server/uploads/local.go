package uploads

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/filex"
)

// LocalStorage keeps files in a single directory on disk.
type LocalStorage struct {
	dir string
}

// NewLocalStorage creates dir if needed.
func NewLocalStorage(dir string) (*LocalStorage, error) {
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, err
	}
	return &LocalStorage{dir: abs}, nil
}

// Dir returns the absolute storage directory.
func (s *LocalStorage) Dir() string {
	return s.dir
}

func (s *LocalStorage) path(name string) (string, bool) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return "", false
	}
	return filepath.Join(s.dir, name), true
}

func (s *LocalStorage) Save(ctx context.Context, name, _ string, body io.ReadSeeker) error {
	p, ok := s.path(name)
	if !ok {
		return fmt.Errorf("%w: bad file name %q", common.ErrorUploadRejected, name)
	}

	if _, err := filex.WriteExclusive(p, body); err != nil {
		if filex.IsExist(err) {
			return common.ErrorAlreadyExists
		}
		return err
	}
	return nil
}

func (s *LocalStorage) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	p, ok := s.path(name)
	if !ok {
		return nil, common.ErrorNotFound
	}

	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, common.ErrorNotFound
		}
		return nil, err
	}
	return f, nil
}

func (s *LocalStorage) Remove(ctx context.Context, name string) error {
	p, ok := s.path(name)
	if !ok {
		return nil
	}

	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
