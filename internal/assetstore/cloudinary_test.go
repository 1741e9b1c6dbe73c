package assetstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicIDFromURL(t *testing.T) {
	cases := []struct {
		url  string
		want string
		ok   bool
	}{
		{
			url:  "https://res.cloudinary.com/demo/image/upload/v1699999999/autohub/cars/abc123.jpg",
			want: "autohub/cars/abc123",
			ok:   true,
		},
		{
			// No version segment.
			url:  "https://res.cloudinary.com/demo/image/upload/autohub/brands/logo.png",
			want: "autohub/brands/logo",
			ok:   true,
		},
		{
			// No extension.
			url:  "http://res.cloudinary.com/demo/image/upload/v123/sample",
			want: "sample",
			ok:   true,
		},
		{
			// Folder starting with "v" but not a version segment.
			url:  "https://res.cloudinary.com/demo/image/upload/vehicles/truck.webp",
			want: "vehicles/truck",
			ok:   true,
		},
		{
			url: "https://example.com/not-cloudinary/image.jpg",
			ok:  false,
		},
		{
			url: "uploads/cars/123.jpg",
			ok:  false,
		},
		{
			url: "",
			ok:  false,
		},
	}

	for _, tc := range cases {
		got, ok := PublicIDFromURL(tc.url)
		assert.Equal(t, tc.ok, ok, tc.url)
		if tc.ok {
			assert.Equal(t, tc.want, got, tc.url)
		}
	}
}
