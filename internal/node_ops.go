package internal

import (
	"github.com/pkg/errors"
)

// checkChild validates a value about to be attached under parent
func checkChild(parent, child *Node) error {
	switch {
	case child == nil:
		return ErrNilNode
	case child.IsReleased():
		return ErrReleased
	case (child.IsArray() || child.IsObject()) && child.contains(parent):
		return ErrCycle
	}
	return nil
}

// Get returns the value stored under key without adding a reference.
// It returns nil when n is not an object or the key is absent.
func (n *Node) Get(key string) *Node {
	if !n.IsObject() {
		return nil
	}
	return n.fields[key]
}

// Set stores value under key and adds a reference to it
func (n *Node) Set(key string, value *Node) error {
	if value == nil {
		return errors.Wrapf(ErrNilNode, "set %q", key)
	}
	if value.IsReleased() {
		return errors.Wrapf(ErrReleased, "set %q", key)
	}
	return n.SetNew(key, value.Acquire())
}

// SetNew stores value under key taking over the caller's reference.
// On failure the reference is released.
func (n *Node) SetNew(key string, value *Node) error {
	err := n.setNew(key, value)
	if err != nil && value != nil && !value.IsReleased() {
		value.Release()
	}
	return err
}

func (n *Node) setNew(key string, value *Node) error {
	if n.IsReleased() {
		return errors.Wrapf(ErrReleased, "set %q", key)
	}
	if !n.IsObject() {
		return errors.Wrapf(ErrNotObject, "set %q on %s", key, n.kind)
	}
	if err := checkChild(n, value); err != nil {
		return errors.Wrapf(err, "set %q", key)
	}

	old, exists := n.fields[key]
	n.fields[key] = value
	if !exists {
		n.keys = append(n.keys, key)
		return nil
	}
	old.Release()
	return nil
}

// Delete removes key from the object and releases its value
func (n *Node) Delete(key string) bool {
	if !n.IsObject() {
		return false
	}
	old, exists := n.fields[key]
	if !exists {
		return false
	}
	delete(n.fields, key)
	for i, k := range n.keys {
		if k == key {
			n.keys = append(n.keys[:i], n.keys[i+1:]...)
			break
		}
	}
	old.Release()
	return true
}

// Keys returns the object keys in insertion order
func (n *Node) Keys() []string {
	if !n.IsObject() {
		return nil
	}
	keys := make([]string, len(n.keys))
	copy(keys, n.keys)
	return keys
}

// Range calls fn for each member in insertion order until fn returns false.
// Values are borrowed.
func (n *Node) Range(fn func(key string, value *Node) bool) {
	if !n.IsObject() {
		return
	}
	for _, key := range n.keys {
		if !fn(key, n.fields[key]) {
			return
		}
	}
}

// Len returns the element count of an array or the member count of an object
func (n *Node) Len() int {
	switch n.Kind() {
	case KindArray:
		return len(n.items)
	case KindObject:
		return len(n.keys)
	default:
		return 0
	}
}

// Index returns the element at i without adding a reference, nil when out of range
func (n *Node) Index(i int) *Node {
	if !n.IsArray() || i < 0 || i >= len(n.items) {
		return nil
	}
	return n.items[i]
}

// Append adds value to the end of the array and adds a reference to it
func (n *Node) Append(value *Node) error {
	if value == nil {
		return errors.Wrap(ErrNilNode, "append")
	}
	if value.IsReleased() {
		return errors.Wrap(ErrReleased, "append")
	}
	return n.AppendNew(value.Acquire())
}

// AppendNew adds value to the end of the array taking over the caller's
// reference. On failure the reference is released.
func (n *Node) AppendNew(value *Node) error {
	err := n.appendNew(value)
	if err != nil && value != nil && !value.IsReleased() {
		value.Release()
	}
	return err
}

func (n *Node) appendNew(value *Node) error {
	if n.IsReleased() {
		return errors.Wrap(ErrReleased, "append")
	}
	if !n.IsArray() {
		return errors.Wrapf(ErrNotArray, "append to %s", n.kind)
	}
	if err := checkChild(n, value); err != nil {
		return errors.Wrap(err, "append")
	}
	n.items = append(n.items, value)
	return nil
}
