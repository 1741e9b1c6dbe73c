// Package assetstore abstracts durable image storage behind a single Put/
// Delete interface with two backends: local disk and Cloudinary. The backend
// is selected once by configuration and injected; nothing above this package
// knows which one is in play.
package assetstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// MaxFileSize caps a single uploaded image. Oversize input fails before any
// store operation is attempted.
const MaxFileSize = 5 * 1024 * 1024

var (
	ErrEmptyFile       = errors.New("file is empty")
	ErrFileTooLarge    = errors.New("file exceeds maximum allowed size")
	ErrInvalidMimeType = errors.New("only JPEG, PNG, GIF and WebP images are allowed")
)

// allowedMimeTypes is the image allow-list. Anything else is rejected at
// ingestion, never stored.
var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Upload is a validated in-memory image awaiting storage.
type Upload struct {
	Name        string
	ContentType string
	Data        []byte
}

// Store puts images and deletes them by the reference it issued. References
// are backend-specific: relative paths for local disk, full URLs for
// Cloudinary. Delete returns an error on failure; swallowing it is the
// caller's decision, not the store's.
type Store interface {
	Put(ctx context.Context, folder string, up Upload) (string, error)
	Delete(ctx context.Context, ref string) error
}

// ReadMultipart validates and buffers one uploaded file: size cap first, then
// content sniffing against the image allow-list. The declared Content-Type
// header is ignored; the first 512 bytes decide.
func ReadMultipart(fh *multipart.FileHeader) (Upload, error) {
	if fh.Size == 0 {
		return Upload{}, ErrEmptyFile
	}
	if fh.Size > MaxFileSize {
		return Upload{}, ErrFileTooLarge
	}

	file, err := fh.Open()
	if err != nil {
		return Upload{}, fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxFileSize+1))
	if err != nil {
		return Upload{}, fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return Upload{}, ErrEmptyFile
	}
	if len(data) > MaxFileSize {
		return Upload{}, ErrFileTooLarge
	}

	mimeType := http.DetectContentType(data)
	mimeType = strings.Split(mimeType, ";")[0]
	if !allowedMimeTypes[mimeType] {
		return Upload{}, ErrInvalidMimeType
	}

	return Upload{
		Name:        fh.Filename,
		ContentType: mimeType,
		Data:        data,
	}, nil
}

// ReadMultipartAll buffers a batch of uploads, failing on the first invalid one.
func ReadMultipartAll(fhs []*multipart.FileHeader) ([]Upload, error) {
	uploads := make([]Upload, 0, len(fhs))
	for _, fh := range fhs {
		up, err := ReadMultipart(fh)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, up)
	}
	return uploads, nil
}

func extForMime(mime string) string {
	switch mime {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	}
	return ".img"
}
