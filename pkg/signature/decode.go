package signature

import (
	"fmt"
	"sort"

	"github.com/arthur-debert/linkrouter/pkg/errors"
)

// Handler decodes one structured value against a complete type whose code
// it was registered for. path names the value for error messages.
type Handler func(d *Decoder, t Type, path string, v interface{}) (Value, error)

// Decoder holds the tag handler registry. The zero value is not usable;
// build one with NewDecoder. A Decoder is not safe for concurrent use.
type Decoder struct {
	handlers map[byte]Handler
	index    int
}

// NewDecoder returns a decoder with every built-in handler registered
func NewDecoder() *Decoder {
	d := &Decoder{handlers: make(map[byte]Handler, len(builtinHandlers))}
	for code, h := range builtinHandlers {
		d.handlers[code] = h
	}
	return d
}

// Register installs or replaces the handler for a type code
func (d *Decoder) Register(code byte, h Handler) {
	d.handlers[code] = h
}

// Unregister removes the handler for a type code, making it unsupported
func (d *Decoder) Unregister(code byte) {
	delete(d.handlers, code)
}

// Decode checks values against sig with the built-in handlers
func Decode(sig string, values []interface{}) ([]Value, error) {
	return NewDecoder().Decode(sig, values)
}

// Decode parses sig and decodes values against it, one complete type per
// value, left to right.
func (d *Decoder) Decode(sig string, values []interface{}) ([]Value, error) {
	types, err := Parse(sig)
	if err != nil {
		return nil, err
	}

	if len(types) != len(values) {
		return nil, errors.Newf(errors.ErrArityMismatch,
			"signature %q describes %d arguments, got %d", sig, len(types), len(values)).
			WithDetail(errors.DetailSignature, sig).
			WithDetail("expected", len(types)).
			WithDetail("actual", len(values))
	}

	out := make([]Value, len(types))
	for i, t := range types {
		d.index = i
		v, err := d.DecodeValue(t, fmt.Sprint(i), values[i])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// DecodeValue dispatches a single value to the handler for t.Code
func (d *Decoder) DecodeValue(t Type, path string, v interface{}) (Value, error) {
	h, ok := d.handlers[t.Code]
	if !ok {
		return nil, errors.Newf(errors.ErrUnsupportedTag, "argument %s: type %q is not supported", path, string(t.Code)).
			WithDetail(errors.DetailTag, string(t.Code)).
			WithDetail(errors.DetailIndex, d.index).
			WithDetail(errors.DetailPath, path)
	}
	return h(d, t, path, v)
}

// Mismatch builds the error for a value of the wrong kind. Handlers
// registered from outside the package use it to stay consistent.
func (d *Decoder) Mismatch(t Type, path string, v interface{}, reason string) error {
	kind := KindOf(v)
	msg := fmt.Sprintf("argument %s: expected %q, got %s", path, t.String(), kind)
	if reason != "" {
		msg += " (" + reason + ")"
	}
	return errors.New(errors.ErrTypeMismatch, msg).
		WithDetail(errors.DetailIndex, d.index).
		WithDetail(errors.DetailPath, path).
		WithDetail(errors.DetailExpectedTag, t.String()).
		WithDetail(errors.DetailActualKind, kind)
}

func sortEntries(entries []DictEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return keyLess(entries[i].Key, entries[j].Key)
	})
}

// keyLess orders dict keys of the same basic type
func keyLess(a, b Value) bool {
	switch x := a.(type) {
	case Bool:
		return !bool(x) && bool(b.(Bool))
	case Byte:
		return x < b.(Byte)
	case Int16:
		return x < b.(Int16)
	case Uint16:
		return x < b.(Uint16)
	case Int32:
		return x < b.(Int32)
	case Uint32:
		return x < b.(Uint32)
	case Int64:
		return x < b.(Int64)
	case Uint64:
		return x < b.(Uint64)
	case Double:
		return x < b.(Double)
	case String:
		return x < b.(String)
	case ObjectPath:
		return x < b.(ObjectPath)
	case Signature:
		return x < b.(Signature)
	}
	return false
}
