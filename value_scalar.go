package jsonvalue

import (
	"fmt"
	"math"

	"github.com/cybergodev/jsonvalue/internal"
)

// object returns the held node when it is an object
func (v *Value) object(op, key string) (*internal.Node, error) {
	if v.IsEmpty() {
		return nil, emptyError(op, key)
	}
	if !v.node.IsObject() {
		return nil, notObjectError(op, key, kindOf(v.node))
	}
	return v.node, nil
}

// member returns the node stored under key without adding a reference
func (v *Value) member(op, key string) (*internal.Node, error) {
	obj, err := v.object(op, key)
	if err != nil {
		return nil, err
	}
	item := obj.Get(key)
	if item == nil {
		return nil, notFoundError(op, key)
	}
	return item, nil
}

// GetValue returns the string stored under key. Only string members
// qualify; use GetText to read other kinds as text.
func (v *Value) GetValue(key string) (_ string, err error) {
	defer v.logFailure("get_value", key, &err)

	item, err := v.member("get_value", key)
	if err != nil {
		return "", err
	}
	if !item.IsString() {
		return "", newValueError("get_value", key, fmt.Sprintf("expected string, found %s", kindOf(item)), ErrTypeMismatch)
	}
	return item.StringValue(), nil
}

// PutValue stores value under key as a JSON string
func (v *Value) PutValue(key, value string) (err error) {
	defer v.logFailure("put_value", key, &err)

	return v.put("put_value", key, internal.NewString(value))
}

// put installs a fresh node under key, taking over its reference
func (v *Value) put(op, key string, n *internal.Node) error {
	obj, err := v.object(op, key)
	if err != nil {
		n.Release()
		return err
	}
	if err := obj.SetNew(key, n); err != nil {
		return backendError(op, key, err)
	}
	return nil
}

// memberText renders the member under key to its canonical text
func (v *Value) memberText(op, key string) (string, error) {
	item, err := v.member(op, key)
	if err != nil {
		return "", err
	}
	return v.renderText(item)
}

// GetText returns the member under key rendered as text. Strings come back
// as is; numbers and booleans in their canonical form; arrays, objects and
// null as compact JSON.
func (v *Value) GetText(key string) (_ string, err error) {
	defer v.logFailure("get_text", key, &err)

	return v.memberText("get_text", key)
}

// GetInt64 reads the member under key as an int64 in the given radix
// (Decimal by default). The whole text must convert.
func (v *Value) GetInt64(key string, radix ...Radix) (_ int64, err error) {
	defer v.logFailure("get_int64", key, &err)

	r, err := pickRadix(radix)
	if err != nil {
		return 0, err
	}
	text, err := v.memberText("get_int64", key)
	if err != nil {
		return 0, err
	}
	return parseInt64("get_int64", key, text, r)
}

// GetInt reads the member under key as an int
func (v *Value) GetInt(key string, radix ...Radix) (int, error) {
	i, err := v.GetInt64(key, radix...)
	if err != nil {
		return 0, err
	}
	if int64(int(i)) != i {
		err = conversionError("get_int", key, formatInt64(i, Decimal), "int")
		v.logFailure("get_int", key, &err)
		return 0, err
	}
	return int(i), nil
}

// GetUint64 reads the member under key as a uint64
func (v *Value) GetUint64(key string, radix ...Radix) (_ uint64, err error) {
	defer v.logFailure("get_uint64", key, &err)

	r, err := pickRadix(radix)
	if err != nil {
		return 0, err
	}
	text, err := v.memberText("get_uint64", key)
	if err != nil {
		return 0, err
	}
	return parseUint64("get_uint64", key, text, r)
}

// GetFloat64 reads the member under key as a float64
func (v *Value) GetFloat64(key string) (_ float64, err error) {
	defer v.logFailure("get_float64", key, &err)

	text, err := v.memberText("get_float64", key)
	if err != nil {
		return 0, err
	}
	return parseFloat64("get_float64", key, text)
}

// GetBool reads the member under key as a bool. JSON booleans render as
// 1 and 0, so integer members convert as well.
func (v *Value) GetBool(key string) (_ bool, err error) {
	defer v.logFailure("get_bool", key, &err)

	text, err := v.memberText("get_bool", key)
	if err != nil {
		return false, err
	}
	return parseBool("get_bool", key, text)
}

// putInferred stores value under key as a JSON integer when text, the
// rendering of value, reads back whole as a base-10 integer, and stores text
// as a JSON string otherwise. Floats that format without a fraction and
// booleans (which render as 1 and 0) land as integers.
func (v *Value) putInferred(op, key, text string, value int64) error {
	if _, err := v.object(op, key); err != nil {
		return err
	}
	if isDecimalInt64(text) {
		return v.put(op, key, internal.NewInteger(value))
	}
	return v.put(op, key, internal.NewString(text))
}

// PutInt64 stores value under key. The value is rendered in radix; if that
// text is a base-10 integer the value is stored as a JSON integer, otherwise
// the text is stored as a JSON string. PutInt64("k", 16, Hex) stores 16.
func (v *Value) PutInt64(key string, value int64, radix ...Radix) (err error) {
	defer v.logFailure("put_int64", key, &err)

	r, err := pickRadix(radix)
	if err != nil {
		return err
	}
	return v.putInferred("put_int64", key, formatInt64(value, r), value)
}

// PutInt stores value under key, see PutInt64
func (v *Value) PutInt(key string, value int, radix ...Radix) error {
	return v.PutInt64(key, int64(value), radix...)
}

// PutUint64 stores value under key, see PutInt64. Values above
// math.MaxInt64 are stored as strings.
func (v *Value) PutUint64(key string, value uint64, radix ...Radix) (err error) {
	defer v.logFailure("put_uint64", key, &err)

	r, err := pickRadix(radix)
	if err != nil {
		return err
	}
	text := formatUint64(value, r)
	if value > math.MaxInt64 {
		return v.putString("put_uint64", key, text)
	}
	return v.putInferred("put_uint64", key, text, int64(value))
}

// PutFloat64 stores value under key: as a JSON integer when its shortest
// text has no fraction or exponent, as a JSON string otherwise.
func (v *Value) PutFloat64(key string, value float64) (err error) {
	defer v.logFailure("put_float64", key, &err)

	text := formatFloat64(value)
	if !isDecimalInt64(text) {
		return v.putString("put_float64", key, text)
	}
	return v.putInferred("put_float64", key, text, int64(value))
}

// PutBool stores value under key as the JSON integer 1 or 0
func (v *Value) PutBool(key string, value bool) (err error) {
	defer v.logFailure("put_bool", key, &err)

	var i int64
	if value {
		i = 1
	}
	return v.putInferred("put_bool", key, formatBool(value), i)
}

func (v *Value) putString(op, key, text string) error {
	if _, err := v.object(op, key); err != nil {
		return err
	}
	return v.put(op, key, internal.NewString(text))
}
