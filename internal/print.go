package internal

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// PrintOptions controls the compact printer
type PrintOptions struct {
	EscapeHTML bool
}

// AppendJSON appends the compact JSON text of n to dst. Any kind is accepted
// at the root.
func AppendJSON(dst []byte, n *Node, opts PrintOptions) ([]byte, error) {
	if n == nil {
		return dst, errors.Wrap(ErrNilNode, "print")
	}

	stream := jsoniter.NewStream(jsoniter.ConfigDefault, nil, 0)
	stream.SetBuffer(dst)
	if err := write(stream, n, opts); err != nil {
		return dst, err
	}
	if stream.Error != nil {
		return dst, errors.Wrap(stream.Error, "print")
	}
	return stream.Buffer(), nil
}

// Marshal returns the compact JSON text of n
func Marshal(n *Node, opts PrintOptions) ([]byte, error) {
	return AppendJSON(nil, n, opts)
}

func write(stream *jsoniter.Stream, n *Node, opts PrintOptions) error {
	switch n.Kind() {
	case KindNull:
		stream.WriteNil()
	case KindBool:
		stream.WriteBool(n.b)
	case KindInteger:
		stream.WriteInt64(n.i)
	case KindReal:
		if !isFinite(n.f) {
			return errors.Wrapf(ErrBadNumber, "real %v", n.f)
		}
		stream.WriteRaw(FormatReal(n.f))
	case KindString:
		writeString(stream, n.s, opts)
	case KindArray:
		stream.WriteArrayStart()
		for i, item := range n.items {
			if i > 0 {
				stream.WriteMore()
			}
			if err := write(stream, item, opts); err != nil {
				return err
			}
		}
		stream.WriteArrayEnd()
	case KindObject:
		stream.WriteObjectStart()
		for i, key := range n.keys {
			if i > 0 {
				stream.WriteMore()
			}
			writeString(stream, key, opts)
			stream.WriteRaw(":")
			if err := write(stream, n.fields[key], opts); err != nil {
				return err
			}
		}
		stream.WriteObjectEnd()
	default:
		return errors.Wrap(ErrReleased, "print")
	}
	return nil
}

func writeString(stream *jsoniter.Stream, s string, opts PrintOptions) {
	if opts.EscapeHTML {
		stream.WriteStringWithHTMLEscaped(s)
		return
	}
	stream.WriteString(s)
}
