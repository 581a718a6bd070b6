package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	type scenario struct {
		str      string
		max      int
		expected string
	}

	scenarios := []scenario{
		{"Hello World", 5, "Hello"},
		{"Hello", 5, "Hello"},
		{"Hi", 255, "Hi"},
		{"", 3, ""},
		{"Hello", 0, ""},
		{"Übersicht", 2, "Üb"},
		{"日本語テキスト", 3, "日本語"},
	}

	for _, s := range scenarios {
		assert.Equal(t, s.expected, Truncate(s.str, s.max))
	}
}

func TestEllipsis(t *testing.T) {
	type scenario struct {
		str      string
		max      int
		expected string
	}

	scenarios := []scenario{
		{"short", 10, "short"},
		{"Hello World", 6, "Hello…"},
		{"Hello World", 1, "…"},
		{"Hello World", 0, ""},
	}

	for _, s := range scenarios {
		assert.Equal(t, s.expected, Ellipsis(s.str, s.max))
	}
}
