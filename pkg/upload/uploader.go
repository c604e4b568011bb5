package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"net/http"
	"path"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const registerTimeout = 4 * time.Second

// UploadedBlob identifies an object stored by the remote service.
type UploadedBlob struct {
	Key    string
	Bucket string
}

// Path is the bucket-qualified location referenced by job descriptors.
func (b UploadedBlob) Path() string {
	return path.Join(b.Bucket, b.Key)
}

type Uploader interface {
	Upload(ctx context.Context, imageBytes []byte, persistent bool) (UploadedBlob, error)
	UploadImage(ctx context.Context, img image.Image, persistent bool) (UploadedBlob, error)
}

type storageClient interface {
	Bucket() string
	Call(ctx context.Context, method, path string, timeout time.Duration, body, out interface{}) error
	PutObject(ctx context.Context, url, contentType string, data []byte) error
}

type registration struct {
	Filename   string `json:"filename"`
	FileSize   int    `json:"file_size"`
	Persistent bool   `json:"persistent"`
}

type presignedTarget struct {
	URL    string `json:"url"`
	OssKey string `json:"oss_key"`
}

type uploader struct {
	client      storageClient
	newFilename func() string
}

var _ Uploader = (*uploader)(nil)

func NewUploader(client storageClient) Uploader {
	return &uploader{client, NewFilename}
}

// NewFilename returns a random PNG object name. Names are unique by
// construction, so concurrent uploads need no coordination.
func NewFilename() string {
	return uuid.NewString() + ".png"
}

func (u *uploader) UploadImage(ctx context.Context, img image.Image, persistent bool) (UploadedBlob, error) {
	var buff bytes.Buffer
	if err := imaging.Encode(&buff, img, imaging.PNG); err != nil {
		return UploadedBlob{}, fmt.Errorf("%w: encoding png: %v", ErrUploadFailed, err)
	}

	return u.Upload(ctx, buff.Bytes(), persistent)
}

func (u *uploader) Upload(ctx context.Context, imageBytes []byte, persistent bool) (UploadedBlob, error) {
	request := registration{
		Filename:   u.newFilename(),
		FileSize:   len(imageBytes),
		Persistent: persistent,
	}

	var target presignedTarget
	if err := u.client.Call(ctx, http.MethodPost, "/v1/oss-files", registerTimeout, request, &target); err != nil {
		slog.Error("registering upload failed", "filename", request.Filename, "error", err)
		return UploadedBlob{}, fmt.Errorf("%w: register: %v", ErrUploadFailed, err)
	}

	if target.URL == "" || target.OssKey == "" {
		return UploadedBlob{}, fmt.Errorf("%w: register: incomplete pre-signed target", ErrUploadFailed)
	}

	if err := u.client.PutObject(ctx, target.URL, "image/png", imageBytes); err != nil {
		slog.Error("writing upload to storage failed", "key", target.OssKey, "error", err)
		return UploadedBlob{}, fmt.Errorf("%w: put: %v", ErrUploadFailed, err)
	}

	return UploadedBlob{Key: target.OssKey, Bucket: u.client.Bucket()}, nil
}

var (
	ErrUploadFailed = errors.New("upload failed")
)
