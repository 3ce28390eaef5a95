package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		v := New()
		assert.NotEmpty(t, v)
		assert.False(t, seen[v], "duplicate id %s", v)
		seen[v] = true
	}
}
