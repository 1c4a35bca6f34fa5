package signature

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/linkrouter/pkg/errors"
	"github.com/godbus/dbus/v5"
)

var builtinHandlers = map[byte]Handler{
	TypeBoolean:    decodeBool,
	TypeByte:       unsignedHandler(8, func(n uint64) Value { return Byte(n) }),
	TypeUint16:     unsignedHandler(16, func(n uint64) Value { return Uint16(n) }),
	TypeUint32:     unsignedHandler(32, func(n uint64) Value { return Uint32(n) }),
	TypeUint64:     unsignedHandler(64, func(n uint64) Value { return Uint64(n) }),
	TypeInt16:      signedHandler(16, func(n int64) Value { return Int16(n) }),
	TypeInt32:      signedHandler(32, func(n int64) Value { return Int32(n) }),
	TypeInt64:      signedHandler(64, func(n int64) Value { return Int64(n) }),
	TypeDouble:     decodeDouble,
	TypeString:     decodeString,
	TypeObjectPath: decodeObjectPath,
	TypeSignature:  decodeSignature,
	TypeArray:      decodeArray,
	TypeStruct:     decodeStruct,
	TypeVariant:    decodeVariant,
	// TypeUnixFD has no handler: a config file cannot hand over an open descriptor
}

func decodeBool(d *Decoder, t Type, path string, v interface{}) (Value, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, d.Mismatch(t, path, v, "")
	}
	return Bool(b), nil
}

func unsignedHandler(bits uint, wrap func(uint64) Value) Handler {
	return func(d *Decoder, t Type, path string, v interface{}) (Value, error) {
		n, ok := integerOf(v)
		if !ok {
			return nil, d.Mismatch(t, path, v, "")
		}
		u, ok := n.unsigned(bits)
		if !ok {
			return nil, d.Mismatch(t, path, v, fmt.Sprintf("%v does not fit an unsigned %d-bit integer", v, bits))
		}
		return wrap(u), nil
	}
}

func signedHandler(bits uint, wrap func(int64) Value) Handler {
	return func(d *Decoder, t Type, path string, v interface{}) (Value, error) {
		n, ok := integerOf(v)
		if !ok {
			return nil, d.Mismatch(t, path, v, "")
		}
		i, ok := n.signed(bits)
		if !ok {
			return nil, d.Mismatch(t, path, v, fmt.Sprintf("%v does not fit a signed %d-bit integer", v, bits))
		}
		return wrap(i), nil
	}
}

func decodeDouble(d *Decoder, t Type, path string, v interface{}) (Value, error) {
	f, ok := floatOf(v)
	if !ok {
		return nil, d.Mismatch(t, path, v, "")
	}
	return Double(f), nil
}

func stringOf(d *Decoder, t Type, path string, v interface{}) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", d.Mismatch(t, path, v, "")
	}
	if !utf8.ValidString(s) || strings.IndexByte(s, 0) >= 0 {
		return "", d.Mismatch(t, path, v, "strings must be valid UTF-8 without NUL bytes")
	}
	return s, nil
}

func decodeString(d *Decoder, t Type, path string, v interface{}) (Value, error) {
	s, err := stringOf(d, t, path, v)
	if err != nil {
		return nil, err
	}
	return String(s), nil
}

func decodeObjectPath(d *Decoder, t Type, path string, v interface{}) (Value, error) {
	s, err := stringOf(d, t, path, v)
	if err != nil {
		return nil, err
	}
	if !dbus.ObjectPath(s).IsValid() {
		return nil, d.Mismatch(t, path, v, fmt.Sprintf("%q is not a valid object path", s))
	}
	return ObjectPath(s), nil
}

func decodeSignature(d *Decoder, t Type, path string, v interface{}) (Value, error) {
	s, err := stringOf(d, t, path, v)
	if err != nil {
		return nil, err
	}
	if !Valid(s) {
		return nil, d.Mismatch(t, path, v, fmt.Sprintf("%q is not a valid signature", s))
	}
	return Signature(s), nil
}

func decodeArray(d *Decoder, t Type, path string, v interface{}) (Value, error) {
	if t.IsDict() {
		return decodeDict(d, t, path, v)
	}

	items, ok := sequenceOf(v)
	if !ok {
		return nil, d.Mismatch(t, path, v, "")
	}

	arr := Array{Elem: *t.Elem, Items: make([]Value, len(items))}
	for i, item := range items {
		val, err := d.DecodeValue(*t.Elem, fmt.Sprintf("%s[%d]", path, i), item)
		if err != nil {
			return nil, err
		}
		arr.Items[i] = val
	}
	return arr, nil
}

func decodeDict(d *Decoder, t Type, path string, v interface{}) (Value, error) {
	entries, ok := mappingOf(v)
	if !ok {
		return nil, d.Mismatch(t, path, v, "")
	}

	keyType, elemType := t.Elem.Fields[0], t.Elem.Fields[1]
	dict := Dict{Key: keyType, Elem: elemType, Entries: make([]DictEntry, 0, len(entries))}
	for _, e := range entries {
		entryPath := fmt.Sprintf("%s{%v}", path, e.key)
		key, err := d.DecodeValue(keyType, entryPath, e.key)
		if err != nil {
			return nil, err
		}
		val, err := d.DecodeValue(elemType, entryPath, e.value)
		if err != nil {
			return nil, err
		}
		dict.Entries = append(dict.Entries, DictEntry{Key: key, Value: val})
	}
	sortEntries(dict.Entries)
	return dict, nil
}

func decodeStruct(d *Decoder, t Type, path string, v interface{}) (Value, error) {
	items, ok := sequenceOf(v)
	if !ok {
		return nil, d.Mismatch(t, path, v, "")
	}
	if len(items) != len(t.Fields) {
		return nil, errors.Newf(errors.ErrArityMismatch,
			"argument %s: struct %q has %d fields, got %d values", path, t.String(), len(t.Fields), len(items)).
			WithDetail(errors.DetailIndex, d.index).
			WithDetail(errors.DetailPath, path).
			WithDetail("expected", len(t.Fields)).
			WithDetail("actual", len(items))
	}

	s := Struct{Fields: make([]Value, len(items))}
	for i, item := range items {
		val, err := d.DecodeValue(t.Fields[i], fmt.Sprintf("%s.%d", path, i), item)
		if err != nil {
			return nil, err
		}
		s.Fields[i] = val
	}
	return s, nil
}

// decodeVariant infers the wire type from the value's kind
func decodeVariant(d *Decoder, t Type, path string, v interface{}) (Value, error) {
	innerType := inferType(v)
	if innerType.Code == TypeVariant {
		return nil, d.Mismatch(t, path, v, "no wire type for this value")
	}
	inner, err := d.DecodeValue(innerType, path, v)
	if err != nil {
		return nil, err
	}
	return Variant{Value: inner}, nil
}

var (
	variantArray = Type{Code: TypeArray, Elem: &Type{Code: TypeVariant}}
	variantDict  = Type{Code: TypeArray, Elem: &Type{
		Code:   TypeDictEntry,
		Fields: []Type{{Code: TypeString}, {Code: TypeVariant}},
	}}
)

func inferType(v interface{}) Type {
	switch KindOf(v) {
	case KindBool:
		return Type{Code: TypeBoolean}
	case KindString:
		return Type{Code: TypeString}
	case KindNumber:
		if n, ok := integerOf(v); ok {
			if _, fits := n.signed(64); fits {
				return Type{Code: TypeInt64}
			}
			return Type{Code: TypeUint64}
		}
		return Type{Code: TypeDouble}
	case KindSequence:
		return variantArray
	case KindMapping:
		return variantDict
	}
	// null and unknown values have no wire type
	return Type{Code: TypeVariant}
}
