package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Prefixed(t *testing.T) {
	g := NewUUIDGenerator("item")

	a, b := g.Generate(), g.Generate()
	assert.NotEqual(t, a, b)
	require.True(t, strings.HasPrefix(a, "item-"))

	_, err := uuid.Parse(strings.TrimPrefix(a, "item-"))
	assert.NoError(t, err)
}

func TestUUIDGenerator_NoPrefix(t *testing.T) {
	_, err := uuid.Parse(NewUUIDGenerator("").Generate())
	assert.NoError(t, err)
}
