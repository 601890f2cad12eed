package uploads

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/dmitrijs2005/storefront/internal/common"
	srvconfig "github.com/dmitrijs2005/storefront/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	objects map[string][]byte
	puts    []*s3.PutObjectInput
	putErr  error
	getErr  error
	delErr  error
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}}
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.puts = append(f.puts, in)
	if f.putErr != nil {
		return nil, f.putErr
	}
	key := aws.ToString(in.Key)
	if aws.ToString(in.IfNoneMatch) == "*" {
		if _, ok := f.objects[key]; ok {
			return nil, &smithy.GenericAPIError{Code: "PreconditionFailed", Message: "At least one of the pre-conditions you specified did not hold"}
		}
	}
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[key] = b
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	b, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(b))}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.delErr != nil {
		return nil, f.delErr
	}
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Storage_SaveSetsConditionalPut(t *testing.T) {
	fake := newFakeS3()
	s := &S3Storage{client: fake, bucket: "uploads"}

	require.NoError(t, s.Save(context.Background(), "image-1.png", "image/png", bytes.NewReader([]byte("png"))))

	require.Len(t, fake.puts, 1)
	in := fake.puts[0]
	assert.Equal(t, "uploads", aws.ToString(in.Bucket))
	assert.Equal(t, "image-1.png", aws.ToString(in.Key))
	assert.Equal(t, "image/png", aws.ToString(in.ContentType))
	assert.Equal(t, "*", aws.ToString(in.IfNoneMatch))
	assert.Equal(t, []byte("png"), fake.objects["image-1.png"])
}

func TestS3Storage_SaveExistingKey(t *testing.T) {
	fake := newFakeS3()
	fake.objects["image-1.png"] = []byte("old")
	s := &S3Storage{client: fake, bucket: "uploads"}

	err := s.Save(context.Background(), "image-1.png", "image/png", bytes.NewReader([]byte("new")))
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
	assert.Equal(t, []byte("old"), fake.objects["image-1.png"])
}

func TestS3Storage_SaveOtherError(t *testing.T) {
	fake := newFakeS3()
	fake.putErr = errors.New("network down")
	s := &S3Storage{client: fake, bucket: "uploads"}

	err := s.Save(context.Background(), "image-1.png", "image/png", bytes.NewReader(nil))
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestS3Storage_OpenAndRemove(t *testing.T) {
	fake := newFakeS3()
	fake.objects["image-9.gif"] = []byte("gif")
	s := &S3Storage{client: fake, bucket: "uploads"}
	ctx := context.Background()

	rc, err := s.Open(ctx, "image-9.gif")
	require.NoError(t, err)
	b, _ := io.ReadAll(rc)
	assert.Equal(t, []byte("gif"), b)

	require.NoError(t, s.Remove(ctx, "image-9.gif"))
	_, err = s.Open(ctx, "image-9.gif")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestS3Storage_OpenError(t *testing.T) {
	fake := newFakeS3()
	fake.getErr = &smithy.GenericAPIError{Code: "AccessDenied"}
	s := &S3Storage{client: fake, bucket: "uploads"}

	_, err := s.Open(context.Background(), "image-1.png")
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorNotFound)
}

func TestUploader_WithS3StorageRetriesOnTakenKey(t *testing.T) {
	fake := newFakeS3()
	fake.objects["image-10.png"] = []byte("old")
	u := NewUploader(&S3Storage{client: fake, bucket: "uploads"})
	u.now = fixedClock(10)

	f, err := u.Accept(context.Background(), "image", "image/png", bytes.NewReader([]byte("new")))
	require.NoError(t, err)
	assert.Equal(t, "image-11.png", f.Name)
	assert.Equal(t, []byte("new"), fake.objects["image-11.png"])
}

func testS3Config() *srvconfig.Config {
	return &srvconfig.Config{
		S3RootUser:     "admin",
		S3RootPassword: "secret",
		S3Bucket:       "uploads",
		S3Region:       "us-east-1",
		S3BaseEndpoint: "http://127.0.0.1:9000/",
	}
}

func TestNewS3Storage_ConfiguresClient(t *testing.T) {
	origNew := newS3ClientFromConfig
	defer func() { newS3ClientFromConfig = origNew }()

	var opts s3.Options
	var gotCfg aws.Config
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) s3API {
		gotCfg = cfg
		for _, fn := range optFns {
			fn(&opts)
		}
		return newFakeS3()
	}

	s, err := NewS3Storage(context.Background(), testS3Config())
	require.NoError(t, err)
	assert.Equal(t, "uploads", s.bucket)
	assert.Equal(t, "us-east-1", gotCfg.Region)
	assert.Equal(t, "http://127.0.0.1:9000/", aws.ToString(opts.BaseEndpoint))
	assert.True(t, opts.UsePathStyle)

	creds, err := gotCfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "admin", creds.AccessKeyID)
	assert.Equal(t, "secret", creds.SecretAccessKey)
}

func TestNewS3Storage_LoadConfigError(t *testing.T) {
	orig := loadDefaultAWSConfig
	defer func() { loadDefaultAWSConfig = orig }()

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no config")
	}

	_, err := NewS3Storage(context.Background(), testS3Config())
	require.EqualError(t, err, "no config")
}
