package internal

import (
	"encoding/json"
	"io"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// ParseOptions bounds the input accepted by Parse. Zero values disable a bound.
type ParseOptions struct {
	MaxSize  int64
	MaxDepth int
}

// Parse builds a node tree from JSON text. Any JSON type is accepted at the
// root. Malformed input yields an error and no node; nothing partially built
// survives a failure.
func Parse(data []byte, opts ParseOptions) (*Node, error) {
	if opts.MaxSize > 0 && int64(len(data)) > opts.MaxSize {
		return nil, errors.Wrapf(ErrTooLarge, "input is %d bytes, limit is %d", len(data), opts.MaxSize)
	}
	// The iterator is lenient about truncated literals at end of input, so
	// the grammar is checked up front and the iterator only builds the tree.
	if !json.Valid(data) {
		return nil, errors.Wrap(ErrSyntax, describeSyntaxError(data))
	}

	iter := jsoniter.ConfigDefault.BorrowIterator(data)
	defer jsoniter.ConfigDefault.ReturnIterator(iter)

	p := &parser{iter: iter, maxDepth: opts.MaxDepth, keys: newKeyInterner()}
	root := p.value(0)
	if err := p.failure(); err != nil {
		root.Release()
		return nil, err
	}
	return root, nil
}

func describeSyntaxError(data []byte) string {
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return err.Error()
	}
	return "invalid JSON"
}

type parser struct {
	iter     *jsoniter.Iterator
	maxDepth int
	keys     *keyInterner
	err      error
}

// failure reports the first error seen. Reaching end of input is how the
// iterator finishes a trailing number, so io.EOF alone is not a failure.
func (p *parser) failure() error {
	if p.err != nil {
		return p.err
	}
	if p.iter.Error != nil && !errors.Is(p.iter.Error, io.EOF) {
		return errors.Wrap(ErrSyntax, p.iter.Error.Error())
	}
	return nil
}

func (p *parser) fail(err error) *Node {
	if p.err == nil {
		p.err = err
	}
	return nil
}

func (p *parser) value(depth int) *Node {
	if p.failure() != nil {
		return nil
	}

	switch p.iter.WhatIsNext() {
	case jsoniter.ObjectValue:
		return p.object(depth + 1)
	case jsoniter.ArrayValue:
		return p.array(depth + 1)
	case jsoniter.StringValue:
		s := p.iter.ReadString()
		if p.failure() != nil {
			return nil
		}
		return NewString(s)
	case jsoniter.NumberValue:
		return p.number()
	case jsoniter.BoolValue:
		b := p.iter.ReadBool()
		if p.failure() != nil {
			return nil
		}
		return NewBool(b)
	case jsoniter.NilValue:
		p.iter.ReadNil()
		if p.failure() != nil {
			return nil
		}
		return NewNull()
	default:
		return p.fail(errors.Wrap(ErrSyntax, "unexpected token"))
	}
}

func (p *parser) checkDepth(depth int) bool {
	if p.maxDepth > 0 && depth > p.maxDepth {
		p.fail(errors.Wrapf(ErrTooDeep, "depth %d exceeds limit %d", depth, p.maxDepth))
		return false
	}
	return true
}

func (p *parser) object(depth int) *Node {
	if !p.checkDepth(depth) {
		return nil
	}

	obj := NewObject()
	complete := p.iter.ReadObjectCB(func(_ *jsoniter.Iterator, key string) bool {
		child := p.value(depth)
		if child == nil {
			return false
		}
		if err := obj.SetNew(p.keys.intern(key), child); err != nil {
			p.fail(err)
			return false
		}
		return true
	})
	if !complete || p.failure() != nil {
		obj.Release()
		return p.fail(p.failureOr("object"))
	}
	return obj
}

func (p *parser) array(depth int) *Node {
	if !p.checkDepth(depth) {
		return nil
	}

	arr := NewArray()
	complete := p.iter.ReadArrayCB(func(_ *jsoniter.Iterator) bool {
		child := p.value(depth)
		if child == nil {
			return false
		}
		if err := arr.AppendNew(child); err != nil {
			p.fail(err)
			return false
		}
		return true
	})
	if !complete || p.failure() != nil {
		arr.Release()
		return p.fail(p.failureOr("array"))
	}
	return arr
}

func (p *parser) failureOr(what string) error {
	if err := p.failure(); err != nil {
		return err
	}
	return errors.Wrapf(ErrSyntax, "malformed %s", what)
}

// number classifies a numeric token: integral text is an integer and must
// fit in int64, everything else is a real.
func (p *parser) number() *Node {
	text := string(p.iter.ReadNumber())
	if p.failure() != nil {
		return nil
	}

	if IsIntegerText(text) {
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return p.fail(errors.Wrapf(ErrBadNumber, "integer %s out of range", text))
		}
		return NewInteger(i)
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return p.fail(errors.Wrapf(ErrBadNumber, "real %s out of range", text))
	}
	n, err := NewReal(f)
	if err != nil {
		return p.fail(err)
	}
	return n
}
