package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "asha@example.com", NormalizeEmail("  Asha@Example.COM "))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestExtractEmailDomain(t *testing.T) {
	domain, err := ExtractEmailDomain("asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, "example.com", domain)

	_, err = ExtractEmailDomain("no-at-sign")
	assert.Error(t, err)

	_, err = ExtractEmailDomain("two@@example.com")
	assert.Error(t, err)
}
