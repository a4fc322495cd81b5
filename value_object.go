package jsonvalue

// GetObject returns a handle to the member stored under key. The member may
// be of any kind. The handle aliases the member: changes made through it are
// visible through v and the other way around. The caller owns the returned
// handle and should Close it.
func (v *Value) GetObject(key string) (_ *Value, err error) {
	defer v.logFailure("get_object", key, &err)

	item, err := v.member("get_object", key)
	if err != nil {
		return nil, err
	}
	return v.getCodec().wrap(item), nil
}

// PutObject stores child's node under key. The node is shared, not copied:
// v and child observe the same subtree afterwards. A child that holds v's
// node, or any node containing it, is rejected with ErrCycle.
func (v *Value) PutObject(key string, child *Value) (err error) {
	defer v.logFailure("put_object", key, &err)

	obj, err := v.object("put_object", key)
	if err != nil {
		return err
	}
	if child.IsEmpty() {
		return newValueError("put_object", key, "child holds no node", ErrEmptyValue)
	}
	if err := obj.Set(key, child.node); err != nil {
		return backendError("put_object", key, err)
	}
	return nil
}

// Has reports whether v holds an object with a member named key
func (v *Value) Has(key string) bool {
	_, err := v.member("has", key)
	return err == nil
}

// Keys returns the member names of the held object in insertion order
func (v *Value) Keys() (_ []string, err error) {
	defer v.logFailure("keys", "", &err)

	obj, err := v.object("keys", "")
	if err != nil {
		return nil, err
	}
	return obj.Keys(), nil
}

// Len returns the member count of an object or the element count of an
// array. Other kinds fail with ErrTypeMismatch.
func (v *Value) Len() (_ int, err error) {
	defer v.logFailure("len", "", &err)

	if v.IsEmpty() {
		return 0, emptyError("len", "")
	}
	switch kindOf(v.node) {
	case KindObject, KindArray:
		return v.node.Len(), nil
	default:
		return 0, newValueError("len", "", "expected object or array, found "+kindOf(v.node).String(), ErrTypeMismatch)
	}
}

// Delete removes the member stored under key. Handles aliasing the removed
// member keep it alive.
func (v *Value) Delete(key string) (err error) {
	defer v.logFailure("delete", key, &err)

	obj, err := v.object("delete", key)
	if err != nil {
		return err
	}
	if !obj.Delete(key) {
		return notFoundError("delete", key)
	}
	return nil
}
