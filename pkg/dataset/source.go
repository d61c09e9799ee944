package dataset

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

//go:embed data/quotes.json
var bundled []byte

// Source is where a dataset is read from. Name carries the file extension the
// decoder uses to pick the format.
type Source interface {
	Name() string
	Open(ctx context.Context) (io.ReadCloser, error)
}

type embeddedSource struct{}

// Embedded returns the dataset compiled into the binary.
func Embedded() Source {
	return embeddedSource{}
}

func (embeddedSource) Name() string {
	return "quotes.json"
}

func (embeddedSource) Open(ctx context.Context) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(bundled)), nil
}

type fileSource struct {
	path string
}

// File returns a Source reading a dataset from the local filesystem.
func File(p string) Source {
	return fileSource{path: p}
}

func (s fileSource) Name() string {
	return filepath.Base(s.path)
}

func (s fileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	return os.Open(s.path)
}

type objectSource struct {
	client *minio.Client
	bucket string
	object string
}

// Object returns a Source reading a dataset from an S3-compatible bucket.
func Object(client *minio.Client, bucket, object string) Source {
	return objectSource{client: client, bucket: bucket, object: object}
}

func (s objectSource) Name() string {
	return path.Base(s.object)
}

func (s objectSource) Open(ctx context.Context) (io.ReadCloser, error) {
	// Stat first so a missing key fails here instead of on the first Read.
	if _, err := s.client.StatObject(ctx, s.bucket, s.object, minio.StatObjectOptions{}); err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" {
			return nil, fmt.Errorf("object %s/%s not found: %w", s.bucket, s.object, os.ErrNotExist)
		}
		return nil, err
	}
	return s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
}

// NewObjectClient builds a MinIO/S3 client with static credentials.
func NewObjectClient(endpoint, accessKey, secretKey string, secure bool) (*minio.Client, error) {
	return minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: secure,
	})
}
