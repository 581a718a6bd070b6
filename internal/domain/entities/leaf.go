package entities

import (
	"strconv"
	"strings"
)

// Kind is the scalar type a leaf had in its source document.
type Kind uint8

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindNull
)

// Leaf is a scalar value with its source kind. Value is the literal text; null
// leaves have an empty Value.
type Leaf struct {
	Value string
	Kind  Kind
}

// Empty is the emptiness predicate for translation values, with loose
// truthiness: "", "0", false, zero numbers and null are empty. Whitespace-only
// text is not.
func (l Leaf) Empty() bool {
	switch l.Kind {
	case KindNull:
		return true
	case KindBool:
		return !strings.EqualFold(l.Value, "true")
	case KindNumber:
		return isZeroNumber(l.Value)
	default:
		return l.Value == "" || l.Value == "0"
	}
}

// isZeroNumber accepts decimal, float and 0x/0o/0b literals, with TOML digit
// separators.
func isZeroNumber(s string) bool {
	if f, err := strconv.ParseFloat(strings.ReplaceAll(s, "_", ""), 64); err == nil {
		return f == 0
	}
	if i, err := strconv.ParseInt(s, 0, 64); err == nil {
		return i == 0
	}
	return false
}
