package jsonvalue

import (
	"strconv"

	"github.com/cybergodev/jsonvalue/internal"
)

// resolveArray returns the array addressed by key: v's own node when key is
// empty, the member under key otherwise.
func (v *Value) resolveArray(op, key string) (*internal.Node, error) {
	var n *internal.Node
	if key == "" {
		if v.IsEmpty() {
			return nil, emptyError(op, key)
		}
		n = v.node
	} else {
		item, err := v.member(op, key)
		if err != nil {
			return nil, err
		}
		n = item
	}
	if !n.IsArray() {
		return nil, newValueError(op, key, "expected array, found "+kindOf(n).String(), ErrTypeMismatch)
	}
	return n, nil
}

// GetCollection returns one handle per element of the array addressed by
// key, in order. An empty key addresses v itself. Each handle aliases its
// element; the returned slice is not shared with the array.
func (v *Value) GetCollection(key string) ([]*Value, error) {
	return v.AppendCollection(nil, key)
}

// AppendCollection is like GetCollection but appends the handles to dst.
// On failure dst is returned unchanged.
func (v *Value) AppendCollection(dst []*Value, key string) (_ []*Value, err error) {
	defer v.logFailure("get_collection", key, &err)

	arr, err := v.resolveArray("get_collection", key)
	if err != nil {
		return dst, err
	}
	codec := v.getCodec()
	size := arr.Len()
	for i := 0; i < size; i++ {
		dst = append(dst, codec.wrap(arr.Index(i)))
	}
	return dst, nil
}

// PutCollection stores a new array under key holding the nodes of items in
// order. Nodes are shared, not copied. If any item is empty or would create
// a cycle nothing is stored.
func (v *Value) PutCollection(key string, items []*Value) (err error) {
	defer v.logFailure("put_collection", key, &err)

	obj, err := v.object("put_collection", key)
	if err != nil {
		return err
	}

	arr := internal.NewArray()
	defer arr.Release()

	for i, item := range items {
		if item.IsEmpty() {
			return newValueError("put_collection", key, "item "+strconv.Itoa(i)+" holds no node", ErrEmptyValue)
		}
		if err := arr.Append(item.node); err != nil {
			return backendError("put_collection", key, err)
		}
	}
	if err := obj.Set(key, arr); err != nil {
		return backendError("put_collection", key, err)
	}
	return nil
}

// GetStringCollection adds the strings of the array addressed by key to set.
// An empty key addresses v itself. At most limit elements are visited, in
// order; the first element that is not a string stops the scan with
// ErrTypeMismatch, keeping what was added before it.
func (v *Value) GetStringCollection(key string, set *StringSet, limit Limit) (err error) {
	defer v.logFailure("get_string_collection", key, &err)

	if set == nil {
		return newValueError("get_string_collection", key, "nil set", ErrInvalidArgument)
	}
	arr, err := v.resolveArray("get_string_collection", key)
	if err != nil {
		return err
	}

	count := arr.Len()
	if n, ok := limit.Max(); ok && n < count {
		count = n
	}
	for i := 0; i < count; i++ {
		item := arr.Index(i)
		if !item.IsString() {
			return newValueError("get_string_collection", key,
				"element "+strconv.Itoa(i)+" is "+kindOf(item).String()+", expected string", ErrTypeMismatch)
		}
		set.Insert(item.StringValue())
	}
	return nil
}

// PutStringCollection stores the first limit strings of set, in ascending
// order, as an array. With a key the array goes under key in the object v
// holds. Without a key v must be empty and the array becomes its root.
func (v *Value) PutStringCollection(key string, set *StringSet, limit Limit) (err error) {
	defer v.logFailure("put_string_collection", key, &err)

	const op = "put_string_collection"
	switch {
	case !v.IsEmpty() && key == "":
		return newValueError(op, key, "value already holds a node and no key was given", ErrAmbiguousTarget)
	case !v.IsEmpty() && !v.node.IsObject():
		return notObjectError(op, key, kindOf(v.node))
	case v.IsEmpty() && key != "":
		return emptyError(op, key)
	}

	arr := internal.NewArray()
	defer arr.Release()

	remaining := limit.take(set.Len())
	var appendErr error
	set.Ascend(func(item string) bool {
		if remaining == 0 {
			return false
		}
		remaining--
		appendErr = arr.AppendNew(internal.NewString(item))
		return appendErr == nil
	})
	if appendErr != nil {
		return backendError(op, key, appendErr)
	}

	if key == "" {
		v.node = arr.Acquire()
		return nil
	}
	if err := v.node.Set(key, arr); err != nil {
		return backendError(op, key, err)
	}
	return nil
}
