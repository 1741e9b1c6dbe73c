package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestLocalizedBsonKeys(t *testing.T) {
	raw, err := bson.Marshal(Localized{En: "hello", Ar: "مرحبا"})
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))

	// The text index addresses title.en / title.ar etc, so these keys are
	// part of the storage contract.
	assert.Equal(t, "hello", doc["en"])
	assert.Equal(t, "مرحبا", doc["ar"])
}

func TestLocalizedEmpty(t *testing.T) {
	assert.True(t, Localized{}.Empty())
	assert.False(t, Localized{Ar: "x"}.Empty())
}
