package internal

import (
	"github.com/pkg/errors"
	"go.uber.org/atomic"
)

// Kind identifies the JSON type held by a Node
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInteger
	KindReal
	KindString
	KindArray
	KindObject
	KindReleased
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
		return "released"
	}
}

// Backend errors. Callers map them onto their own error taxonomy.
var (
	ErrReleased  = errors.New("node has been released")
	ErrNilNode   = errors.New("nil node")
	ErrNotObject = errors.New("node is not an object")
	ErrNotArray  = errors.New("node is not an array")
	ErrCycle     = errors.New("node would contain itself")
	ErrSyntax    = errors.New("syntax error")
	ErrTooDeep   = errors.New("nesting depth exceeded")
	ErrTooLarge  = errors.New("input size exceeded")
	ErrBadNumber = errors.New("number cannot be represented")
)

// Node is a reference-counted JSON value.
//
// A freshly constructed node carries one reference owned by its creator.
// Containers hold one reference to each child. When the count drops to zero
// the node releases its children and becomes unusable.
//
// Counts are atomic, the tree itself is not synchronized.
type Node struct {
	refs atomic.Int32
	kind Kind

	b bool
	i int64
	f float64
	s string

	items  []*Node
	keys   []string
	fields map[string]*Node
}

func newNode(kind Kind) *Node {
	n := &Node{kind: kind}
	n.refs.Store(1)
	return n
}

// NewNull creates a null node
func NewNull() *Node {
	return newNode(KindNull)
}

// NewBool creates a boolean node
func NewBool(b bool) *Node {
	n := newNode(KindBool)
	n.b = b
	return n
}

// NewInteger creates an integer node
func NewInteger(i int64) *Node {
	n := newNode(KindInteger)
	n.i = i
	return n
}

// NewReal creates a real node. NaN and infinities have no JSON form.
func NewReal(f float64) (*Node, error) {
	if !isFinite(f) {
		return nil, errors.Wrapf(ErrBadNumber, "real %v", f)
	}
	n := newNode(KindReal)
	n.f = f
	return n, nil
}

// NewString creates a string node
func NewString(s string) *Node {
	n := newNode(KindString)
	n.s = s
	return n
}

// NewArray creates an empty array node
func NewArray() *Node {
	return newNode(KindArray)
}

// NewObject creates an empty object node
func NewObject() *Node {
	n := newNode(KindObject)
	n.fields = make(map[string]*Node)
	return n
}

// Acquire adds a reference and returns n. Acquiring nil is a no-op.
func (n *Node) Acquire() *Node {
	if n == nil {
		return nil
	}
	if n.refs.Inc() <= 1 {
		panic("internal: acquire of released node")
	}
	return n
}

// Release drops a reference. The last release frees the node and releases
// every child it holds.
func (n *Node) Release() {
	if n == nil {
		return
	}
	switch c := n.refs.Dec(); {
	case c > 0:
		return
	case c < 0:
		panic("internal: release of released node")
	}
	n.free()
}

func (n *Node) free() {
	for _, item := range n.items {
		item.Release()
	}
	for _, key := range n.keys {
		n.fields[key].Release()
	}
	n.kind = KindReleased
	n.items, n.keys, n.fields = nil, nil, nil
	n.s = ""
}

// Refs returns the current reference count
func (n *Node) Refs() int32 {
	if n == nil {
		return 0
	}
	return n.refs.Load()
}

// Kind returns the node type; nil reports KindReleased
func (n *Node) Kind() Kind {
	if n == nil {
		return KindReleased
	}
	return n.kind
}

func (n *Node) IsNull() bool     { return n.Kind() == KindNull }
func (n *Node) IsBool() bool     { return n.Kind() == KindBool }
func (n *Node) IsInteger() bool  { return n.Kind() == KindInteger }
func (n *Node) IsReal() bool     { return n.Kind() == KindReal }
func (n *Node) IsString() bool   { return n.Kind() == KindString }
func (n *Node) IsArray() bool    { return n.Kind() == KindArray }
func (n *Node) IsObject() bool   { return n.Kind() == KindObject }
func (n *Node) IsReleased() bool { return n.Kind() == KindReleased }

// BoolValue returns the boolean payload, false for other kinds
func (n *Node) BoolValue() bool {
	return n.IsBool() && n.b
}

// IntegerValue returns the integer payload, 0 for other kinds
func (n *Node) IntegerValue() int64 {
	if !n.IsInteger() {
		return 0
	}
	return n.i
}

// RealValue returns the real payload, 0 for other kinds
func (n *Node) RealValue() float64 {
	if !n.IsReal() {
		return 0
	}
	return n.f
}

// StringValue returns the string payload, "" for other kinds
func (n *Node) StringValue() string {
	if !n.IsString() {
		return ""
	}
	return n.s
}

// contains reports whether target is n or is reachable from n
func (n *Node) contains(target *Node) bool {
	if n == target {
		return true
	}
	switch n.kind {
	case KindArray:
		for _, item := range n.items {
			if item.contains(target) {
				return true
			}
		}
	case KindObject:
		for _, key := range n.keys {
			if n.fields[key].contains(target) {
				return true
			}
		}
	}
	return false
}
