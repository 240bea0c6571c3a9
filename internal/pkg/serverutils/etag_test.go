package serverutils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateETag(t *testing.T) {
	a := GenerateETag("milk, eggs")
	b := GenerateETag("milk, eggs")
	c := GenerateETag("milk, eggs, bread")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	// Quoted per RFC 7232 so it can go straight into the header.
	assert.True(t, strings.HasPrefix(a, `"`))
	assert.True(t, strings.HasSuffix(a, `"`))
}
