package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	salt, err := NewSalt()
	require.NoError(t, err)
	require.Len(t, salt, 32) // 16 bytes hex-encoded

	digest := Hash("s3cret", salt)
	assert.Len(t, digest, 128) // 64 bytes hex-encoded

	assert.True(t, Verify("s3cret", salt, digest))
	assert.False(t, Verify("wrong", salt, digest))
	assert.False(t, Verify("s3cret", "deadbeef", digest))
}

func TestHashIsDeterministicPerSalt(t *testing.T) {
	assert.Equal(t, Hash("pw", "aa"), Hash("pw", "aa"))
	assert.NotEqual(t, Hash("pw", "aa"), Hash("pw", "bb"))
}

func TestNewSaltIsRandom(t *testing.T) {
	a, err := NewSalt()
	require.NoError(t, err)
	b, err := NewSalt()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
