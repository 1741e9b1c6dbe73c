package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	cases := map[string]string{
		"My First Post":        "my-first-post",
		"  Hello,   World!  ":  "hello-world",
		"2024 Toyota — Review": "2024-toyota-review",
		"---":                  "",
		"Already-Slugged":      "already-slugged",
	}
	for in, want := range cases {
		assert.Equal(t, want, Make(in), in)
	}
}

func TestDisambiguate(t *testing.T) {
	out := Disambiguate("my-post")
	assert.True(t, strings.HasPrefix(out, "my-post-"))
	assert.Len(t, out, len("my-post-")+4)
	assert.NotEqual(t, "my-post", out)
}
