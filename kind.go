package jsonvalue

import "github.com/cybergodev/jsonvalue/internal"

// Kind identifies the JSON type held by a Value
type Kind uint8

const (
	// KindEmpty is reported by a Value that holds no node
	KindEmpty Kind = iota
	KindNull
	KindBool
	KindInteger
	KindReal
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindReal:
		return "real"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "empty"
	}
}

// kindOf maps a backend node onto its public kind. A released node reads
// as empty.
func kindOf(n *internal.Node) Kind {
	if n == nil {
		return KindEmpty
	}
	switch n.Kind() {
	case internal.KindNull:
		return KindNull
	case internal.KindBool:
		return KindBool
	case internal.KindInteger:
		return KindInteger
	case internal.KindReal:
		return KindReal
	case internal.KindString:
		return KindString
	case internal.KindArray:
		return KindArray
	case internal.KindObject:
		return KindObject
	default:
		return KindEmpty
	}
}
