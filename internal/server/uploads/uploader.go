package uploads

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/dmitrijs2005/storefront/internal/common"
)

// allowedTypes maps accepted MIME types to the extension stored files get.
var allowedTypes = map[string]string{
	"image/jpeg": "jpeg",
	"image/png":  "png",
	"image/gif":  "gif",
}

// DefaultMaxAttempts bounds the number of names tried for one upload.
const DefaultMaxAttempts = 16

var (
	fieldNameRe  = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	storedNameRe = regexp.MustCompile(`^[A-Za-z0-9_]+-[0-9]+\.(jpeg|png|gif)$`)
)

// StoredFile describes an accepted upload.
type StoredFile struct {
	Name        string
	URL         string
	ContentType string
}

// Uploader validates uploads and names them <field>-<unixMillis>.<ext>.
type Uploader struct {
	storage     Storage
	now         func() time.Time
	maxAttempts int
}

func NewUploader(storage Storage) *Uploader {
	return &Uploader{storage: storage, now: time.Now, maxAttempts: DefaultMaxAttempts}
}

// Accept stores body under a fresh name. The declared MIME type must be one of
// image/jpeg, image/png or image/gif, otherwise common.ErrorUploadRejected is
// returned and nothing is written. A taken name is retried with the timestamp
// advanced by one millisecond.
func (u *Uploader) Accept(ctx context.Context, fieldName, mimeType string, body io.ReadSeeker) (*StoredFile, error) {
	if !fieldNameRe.MatchString(fieldName) {
		return nil, fmt.Errorf("%w: bad field name %q", common.ErrorUploadRejected, fieldName)
	}

	contentType, ext, err := normalizeType(mimeType)
	if err != nil {
		return nil, err
	}

	ts := u.now().UnixMilli()
	for attempt := 0; attempt < u.maxAttempts; attempt++ {
		if attempt > 0 {
			if _, err := body.Seek(0, io.SeekStart); err != nil {
				return nil, fmt.Errorf("rewind upload: %w", err)
			}
		}

		name := fmt.Sprintf("%s-%d.%s", fieldName, ts+int64(attempt), ext)
		err := u.storage.Save(ctx, name, contentType, body)
		if errors.Is(err, common.ErrorAlreadyExists) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("save %s: %w", name, err)
		}

		return &StoredFile{
			Name:        name,
			URL:         common.UploadsURLPrefix + "/" + name,
			ContentType: contentType,
		}, nil
	}

	return nil, fmt.Errorf("no free file name for %s after %d attempts", fieldName, u.maxAttempts)
}

// Open returns a stored file with its content type. Names that Accept could
// not have produced are reported as common.ErrorNotFound.
func (u *Uploader) Open(ctx context.Context, name string) (io.ReadCloser, string, error) {
	if !storedNameRe.MatchString(name) {
		return nil, "", common.ErrorNotFound
	}

	rc, err := u.storage.Open(ctx, name)
	if err != nil {
		return nil, "", err
	}
	return rc, contentTypeFor(name), nil
}

// Remove deletes a stored file.
func (u *Uploader) Remove(ctx context.Context, name string) error {
	if !storedNameRe.MatchString(name) {
		return nil
	}
	return u.storage.Remove(ctx, name)
}

func normalizeType(declared string) (string, string, error) {
	mediaType, _, err := mime.ParseMediaType(declared)
	if err != nil {
		return "", "", fmt.Errorf("%w: unsupported file type %q", common.ErrorUploadRejected, declared)
	}

	ext, ok := allowedTypes[mediaType]
	if !ok {
		return "", "", fmt.Errorf("%w: unsupported file type %q", common.ErrorUploadRejected, mediaType)
	}
	return mediaType, ext, nil
}

func contentTypeFor(name string) string {
	ext := strings.TrimPrefix(path.Ext(name), ".")
	for t, e := range allowedTypes {
		if e == ext {
			return t
		}
	}
	return "application/octet-stream"
}
