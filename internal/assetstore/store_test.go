package assetstore

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pngBytes  = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 64)...)
	jpegBytes = append([]byte("\xff\xd8\xff\xe0"), bytes.Repeat([]byte{0}, 64)...)
	gifBytes  = append([]byte("GIF89a"), bytes.Repeat([]byte{0}, 64)...)
)

// multipartFile builds a real *multipart.FileHeader the way gin hands them to
// handlers.
func multipartFile(t *testing.T, field, name string, data []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File[field]
	require.Len(t, files, 1)
	return files[0]
}

func TestReadMultipartAcceptsImages(t *testing.T) {
	for name, data := range map[string][]byte{
		"logo.png": pngBytes,
		"car.jpg":  jpegBytes,
		"anim.gif": gifBytes,
	} {
		up, err := ReadMultipart(multipartFile(t, "file", name, data))
		require.NoError(t, err, name)
		assert.Equal(t, name, up.Name)
		assert.Equal(t, data, up.Data)
	}
}

func TestReadMultipartRejectsNonImages(t *testing.T) {
	fh := multipartFile(t, "file", "notes.txt", []byte("plain text, not an image"))
	_, err := ReadMultipart(fh)
	assert.ErrorIs(t, err, ErrInvalidMimeType)

	// A spoofed extension does not help: content is sniffed.
	fh = multipartFile(t, "file", "fake.png", []byte("<html><body>nope</body></html>"))
	_, err = ReadMultipart(fh)
	assert.ErrorIs(t, err, ErrInvalidMimeType)
}

func TestReadMultipartRejectsOversize(t *testing.T) {
	big := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{1}, MaxFileSize)...)
	fh := multipartFile(t, "file", "huge.png", big)
	_, err := ReadMultipart(fh)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestReadMultipartRejectsEmpty(t *testing.T) {
	fh := multipartFile(t, "file", "empty.png", nil)
	_, err := ReadMultipart(fh)
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestReadMultipartAllFailsFast(t *testing.T) {
	fhs := []*multipart.FileHeader{
		multipartFile(t, "photos", "a.png", pngBytes),
		multipartFile(t, "photos", "b.txt", []byte("not an image at all")),
	}
	_, err := ReadMultipartAll(fhs)
	assert.ErrorIs(t, err, ErrInvalidMimeType)

	ups, err := ReadMultipartAll(fhs[:1])
	require.NoError(t, err)
	assert.Len(t, ups, 1)
}
