package assetstore

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStore keeps images on Cloudinary. References are the secure
// delivery URLs; deletion derives the public id back out of the URL because
// the destroy API takes the id form, not the URL form.
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
	// rootFolder namespaces categories, e.g. "autohub" -> "autohub/cars".
	rootFolder string
}

func NewCloudinaryStore(cloudinaryURL, rootFolder string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("configure cloudinary: %w", err)
	}
	return &CloudinaryStore{cld: cld, rootFolder: strings.Trim(rootFolder, "/")}, nil
}

func (s *CloudinaryStore) Put(ctx context.Context, folder string, up Upload) (string, error) {
	target := folder
	if s.rootFolder != "" {
		target = s.rootFolder + "/" + folder
	}

	resp, err := s.cld.Upload.Upload(ctx, bytes.NewReader(up.Data), uploader.UploadParams{
		Folder: target,
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload to %s: %w", target, err)
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload to %s: %s", target, resp.Error.Message)
	}
	return resp.SecureURL, nil
}

func (s *CloudinaryStore) Delete(ctx context.Context, ref string) error {
	publicID, ok := PublicIDFromURL(ref)
	if !ok {
		return fmt.Errorf("no public id in reference %q", ref)
	}

	resp, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary destroy %s: %w", publicID, err)
	}
	if resp.Result != "ok" && resp.Result != "not found" {
		return fmt.Errorf("cloudinary destroy %s: %s", publicID, resp.Result)
	}
	return nil
}

// PublicIDFromURL maps a previously issued delivery URL back to a deletable
// public id: everything after the "/upload/" segment, minus an optional
// "v<digits>/" version segment and the file extension.
func PublicIDFromURL(url string) (string, bool) {
	const marker = "/upload/"
	idx := strings.Index(url, marker)
	if idx == -1 {
		return "", false
	}
	path := url[idx+len(marker):]

	if ext := strings.LastIndex(path, "."); ext != -1 {
		path = path[:ext]
	}

	if strings.HasPrefix(path, "v") {
		if slash := strings.Index(path, "/"); slash > 1 {
			if isDigits(path[1:slash]) {
				path = path[slash+1:]
			}
		}
	}

	if path == "" {
		return "", false
	}
	return path, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
