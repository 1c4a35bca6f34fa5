package signature

import (
	"strings"

	"github.com/arthur-debert/linkrouter/pkg/errors"
)

// Type codes of the D-Bus wire format
const (
	TypeByte       byte = 'y'
	TypeBoolean    byte = 'b'
	TypeInt16      byte = 'n'
	TypeUint16     byte = 'q'
	TypeInt32      byte = 'i'
	TypeUint32     byte = 'u'
	TypeInt64      byte = 'x'
	TypeUint64     byte = 't'
	TypeDouble     byte = 'd'
	TypeUnixFD     byte = 'h'
	TypeString     byte = 's'
	TypeObjectPath byte = 'o'
	TypeSignature  byte = 'g'
	TypeVariant    byte = 'v'
	TypeArray      byte = 'a'
	TypeStruct     byte = '('
	TypeDictEntry  byte = '{'

	structEnd    byte = ')'
	dictEntryEnd byte = '}'
)

const (
	// MaxSignatureLength is the wire format limit on signature strings
	MaxSignatureLength = 255
	maxDepth           = 32
)

var basicCodes = map[byte]bool{
	TypeByte: true, TypeBoolean: true, TypeInt16: true, TypeUint16: true,
	TypeInt32: true, TypeUint32: true, TypeInt64: true, TypeUint64: true,
	TypeDouble: true, TypeUnixFD: true, TypeString: true, TypeObjectPath: true,
	TypeSignature: true,
}

// Type is one complete type from a signature
type Type struct {
	Code byte
	// Elem is the element type of an array
	Elem *Type
	// Fields are the members of a struct, or key and value of a dict entry
	Fields []Type
}

// IsBasic reports whether t is a fixed-size or string-like basic type
func (t Type) IsBasic() bool {
	return basicCodes[t.Code]
}

// IsDict reports whether t is an array of dict entries
func (t Type) IsDict() bool {
	return t.Code == TypeArray && t.Elem != nil && t.Elem.Code == TypeDictEntry
}

// String renders t back into signature form
func (t Type) String() string {
	var b strings.Builder
	t.write(&b)
	return b.String()
}

func (t Type) write(b *strings.Builder) {
	switch t.Code {
	case TypeArray:
		b.WriteByte(TypeArray)
		if t.Elem != nil {
			t.Elem.write(b)
		}
	case TypeStruct, TypeDictEntry:
		b.WriteByte(t.Code)
		for _, f := range t.Fields {
			f.write(b)
		}
		if t.Code == TypeStruct {
			b.WriteByte(structEnd)
		} else {
			b.WriteByte(dictEntryEnd)
		}
	default:
		b.WriteByte(t.Code)
	}
}

// Join renders a list of types as one signature
func Join(types []Type) string {
	var b strings.Builder
	for _, t := range types {
		t.write(&b)
	}
	return b.String()
}

// Parse splits sig into complete types. Any grammar violation fails with
// ErrSignatureSyntax carrying the byte position of the problem.
func Parse(sig string) ([]Type, error) {
	if len(sig) > MaxSignatureLength {
		return nil, syntaxError(sig, MaxSignatureLength, "signature longer than %d bytes", MaxSignatureLength)
	}

	p := &parser{sig: sig}
	var types []Type
	for p.pos < len(sig) {
		t, err := p.complete(0, 0, false)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}

// Valid reports whether sig parses
func Valid(sig string) bool {
	_, err := Parse(sig)
	return err == nil
}

type parser struct {
	sig string
	pos int
}

// complete parses one complete type. inArray allows a dict entry.
func (p *parser) complete(arrays, structs int, inArray bool) (Type, error) {
	if p.pos >= len(p.sig) {
		return Type{}, syntaxError(p.sig, p.pos, "missing type")
	}
	start := p.pos
	c := p.sig[p.pos]
	p.pos++

	switch {
	case basicCodes[c] || c == TypeVariant:
		return Type{Code: c}, nil

	case c == TypeArray:
		if arrays+1 > maxDepth {
			return Type{}, syntaxError(p.sig, start, "arrays nested too deeply")
		}
		if p.pos >= len(p.sig) {
			return Type{}, syntaxError(p.sig, p.pos, "array without element type")
		}
		elem, err := p.complete(arrays+1, structs, true)
		if err != nil {
			return Type{}, err
		}
		return Type{Code: TypeArray, Elem: &elem}, nil

	case c == TypeStruct:
		if structs+1 > maxDepth {
			return Type{}, syntaxError(p.sig, start, "structs nested too deeply")
		}
		var fields []Type
		for {
			if p.pos >= len(p.sig) {
				return Type{}, syntaxError(p.sig, p.pos, "unterminated struct opened at %d", start)
			}
			if p.sig[p.pos] == structEnd {
				p.pos++
				break
			}
			f, err := p.complete(arrays, structs+1, false)
			if err != nil {
				return Type{}, err
			}
			fields = append(fields, f)
		}
		if len(fields) == 0 {
			return Type{}, syntaxError(p.sig, start, "empty struct")
		}
		return Type{Code: TypeStruct, Fields: fields}, nil

	case c == TypeDictEntry:
		if !inArray {
			return Type{}, syntaxError(p.sig, start, "dict entry outside an array")
		}
		if p.pos >= len(p.sig) {
			return Type{}, syntaxError(p.sig, p.pos, "unterminated dict entry opened at %d", start)
		}
		if !basicCodes[p.sig[p.pos]] {
			return Type{}, syntaxError(p.sig, p.pos, "dict key must be a basic type")
		}
		key := Type{Code: p.sig[p.pos]}
		p.pos++
		value, err := p.complete(arrays, structs+1, false)
		if err != nil {
			return Type{}, err
		}
		if p.pos >= len(p.sig) || p.sig[p.pos] != dictEntryEnd {
			return Type{}, syntaxError(p.sig, p.pos, "dict entry must hold exactly one key and one value")
		}
		p.pos++
		return Type{Code: TypeDictEntry, Fields: []Type{key, value}}, nil

	case c == structEnd || c == dictEntryEnd:
		return Type{}, syntaxError(p.sig, start, "unbalanced %q", c)
	}

	return Type{}, syntaxError(p.sig, start, "unknown type code %q", c)
}

func syntaxError(sig string, pos int, format string, args ...interface{}) error {
	return errors.Newf(errors.ErrSignatureSyntax, "signature %q at %d: "+format, append([]interface{}{sig, pos}, args...)...).
		WithDetail(errors.DetailSignature, sig).
		WithDetail(errors.DetailPosition, pos)
}
