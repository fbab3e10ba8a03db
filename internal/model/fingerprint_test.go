package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprintIsStable(t *testing.T) {
	a, err := Fingerprint(validModel())
	require.NoError(t, err)
	b, err := Fingerprint(validModel())
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.True(t, strings.HasPrefix(a, "urn:uuid:"))
}

func TestFingerprintTracksModelChanges(t *testing.T) {
	base, err := Fingerprint(validModel())
	require.NoError(t, err)

	changed := validModel()
	changed.Objects[0].Attributes[0].Required = false
	other, err := Fingerprint(changed)
	require.NoError(t, err)

	assert.NotEqual(t, base, other)
}
