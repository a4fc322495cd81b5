package jsonvalue

import (
	"github.com/cybergodev/jsonvalue/internal"
)

// Value is a handle sharing ownership of at most one JSON node.
//
// Every handle that refers to a node holds one reference to it. Handles that
// share a node observe each other's mutations: a value returned by GetObject
// or GetCollection is a view into its parent, not a copy.
//
// Copy a handle with Clone or Assign. Dereferencing a *Value copies the
// pointer to the node without taking a reference. Release a handle with
// Close (or Clear) when done; the node is freed once its last holder lets go.
//
// The zero Value is empty and uses the default codec.
//
// Values are not safe for concurrent use. Handles sharing nodes across
// goroutines need external synchronization.
type Value struct {
	_     noCopy
	node  *internal.Node
	codec *Codec
}

// noCopy lets go vet flag struct copies of Value
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// New returns an empty value bound to the default codec
func New() *Value {
	return getDefaultCodec().NewValue()
}

// Parse parses text into a new value with the default codec
func Parse(text string) (*Value, error) {
	return getDefaultCodec().Parse(text)
}

// ParseBytes parses data into a new value with the default codec
func ParseBytes(data []byte) (*Value, error) {
	return getDefaultCodec().ParseBytes(data)
}

func (v *Value) getCodec() *Codec {
	if v == nil || v.codec == nil {
		return getDefaultCodec()
	}
	return v.codec
}

// Clone returns a new handle sharing v's node. The tree is not copied.
func (v *Value) Clone() *Value {
	if v == nil {
		return New()
	}
	return &Value{node: v.node.Acquire(), codec: v.codec}
}

// Assign makes v share other's node, releasing whatever v held before.
// Assigning a value to itself or to an alias of the same node is safe.
// A nil or empty other leaves v empty.
func (v *Value) Assign(other *Value) {
	var n *internal.Node
	if other != nil {
		n = other.node.Acquire()
	}
	old := v.node
	v.node = n
	old.Release()
}

// Clear releases the held node and leaves v empty. Clearing an empty value
// is a no-op.
func (v *Value) Clear() {
	if v == nil || v.node == nil {
		return
	}
	n := v.node
	v.node = nil
	n.Release()
}

// Close releases the held node. It always returns nil.
func (v *Value) Close() error {
	v.Clear()
	return nil
}

// IsEmpty reports whether v holds no node
func (v *Value) IsEmpty() bool {
	return v == nil || v.node == nil
}

// Kind returns the JSON type of the held node, KindEmpty when there is none
func (v *Value) Kind() Kind {
	if v.IsEmpty() {
		return KindEmpty
	}
	return kindOf(v.node)
}

// RefCount returns the number of holders of v's node, handles and parent
// containers alike. It is 0 for an empty value.
func (v *Value) RefCount() int {
	if v.IsEmpty() {
		return 0
	}
	return int(v.node.Refs())
}

// SameNode reports whether v and other hold the same node
func (v *Value) SameNode(other *Value) bool {
	if v.IsEmpty() || other.IsEmpty() {
		return false
	}
	return v.node == other.node
}

// Parse replaces v's content with the document parsed from text.
// On failure v is left empty.
func (v *Value) Parse(text string) error {
	return v.ParseBytes([]byte(text))
}

// ParseBytes replaces v's content with the document parsed from data.
// On failure v is left empty.
func (v *Value) ParseBytes(data []byte) error {
	v.Clear()
	n, err := v.getCodec().parseNode(data)
	if err != nil {
		return err
	}
	v.node = n
	return nil
}

// CreateRootObject replaces v's content with a new empty object
func (v *Value) CreateRootObject() error {
	v.Clear()
	v.node = internal.NewObject()
	return nil
}

// UnmarshalJSON implements json.Unmarshaler
func (v *Value) UnmarshalJSON(data []byte) error {
	return v.ParseBytes(data)
}

// MarshalJSON implements json.Marshaler. An empty value marshals as null.
func (v *Value) MarshalJSON() ([]byte, error) {
	if v.IsEmpty() {
		return []byte("null"), nil
	}
	return v.getCodec().appendNode(nil, v.node)
}

// String returns the compact JSON text of v, or "" when v is empty or
// cannot be serialized
func (v *Value) String() string {
	if v.IsEmpty() {
		return ""
	}
	out, err := v.getCodec().appendNode(nil, v.node)
	if err != nil {
		return ""
	}
	return string(out)
}
