package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Format(t *testing.T) {
	generated, err := Generate(PrefixUserBook)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(generated, "ub-"))
	assert.Len(t, generated, len(PrefixUserBook)+1+21)
}

func TestGenerate_Uniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for range 500 {
		generated, err := Generate(PrefixUser)
		require.NoError(t, err)
		assert.False(t, seen[generated], "ID should be unique: %s", generated)
		seen[generated] = true
	}
}

func TestMustGenerate(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = MustGenerate(PrefixUser)
	})
}
