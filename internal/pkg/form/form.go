// Package form extracts validated image uploads from multipart requests.
package form

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"autohub/internal/assetstore"
)

var ErrTooManyFiles = errors.New("too many files")

// Upload returns the validated file for field, or nil when the field was not
// sent. An absent field and a non-multipart body both mean "no file"; a
// malformed multipart body is an error, never a silent nil.
func Upload(c *gin.Context, field string) (*assetstore.Upload, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	up, err := assetstore.ReadMultipart(fh)
	if err != nil {
		return nil, err
	}
	return &up, nil
}

// Uploads returns every validated file for an array field, capped at max.
func Uploads(c *gin.Context, field string, max int) ([]assetstore.Upload, error) {
	mf, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	fhs := mf.File[field]
	if len(fhs) == 0 {
		return nil, nil
	}
	if len(fhs) > max {
		return nil, ErrTooManyFiles
	}
	return assetstore.ReadMultipartAll(fhs)
}
