package signature

// Value is a wire value that has been checked against its wire type
type Value interface {
	Type() Type
}

type (
	Byte       byte
	Bool       bool
	Int16      int16
	Uint16     uint16
	Int32      int32
	Uint32     uint32
	Int64      int64
	Uint64     uint64
	Double     float64
	String     string
	ObjectPath string
	Signature  string
)

func (Byte) Type() Type       { return Type{Code: TypeByte} }
func (Bool) Type() Type       { return Type{Code: TypeBoolean} }
func (Int16) Type() Type      { return Type{Code: TypeInt16} }
func (Uint16) Type() Type     { return Type{Code: TypeUint16} }
func (Int32) Type() Type      { return Type{Code: TypeInt32} }
func (Uint32) Type() Type     { return Type{Code: TypeUint32} }
func (Int64) Type() Type      { return Type{Code: TypeInt64} }
func (Uint64) Type() Type     { return Type{Code: TypeUint64} }
func (Double) Type() Type     { return Type{Code: TypeDouble} }
func (String) Type() Type     { return Type{Code: TypeString} }
func (ObjectPath) Type() Type { return Type{Code: TypeObjectPath} }
func (Signature) Type() Type  { return Type{Code: TypeSignature} }

// Array is a homogeneous sequence. Elem is kept so empty arrays still
// carry their type.
type Array struct {
	Elem  Type
	Items []Value
}

func (a Array) Type() Type {
	elem := a.Elem
	return Type{Code: TypeArray, Elem: &elem}
}

// Struct is a fixed sequence of differently typed fields
type Struct struct {
	Fields []Value
}

func (s Struct) Type() Type {
	fields := make([]Type, len(s.Fields))
	for i, f := range s.Fields {
		fields[i] = f.Type()
	}
	return Type{Code: TypeStruct, Fields: fields}
}

// DictEntry is one key/value pair of a Dict
type DictEntry struct {
	Key   Value
	Value Value
}

// Dict is an array of dict entries. Entries are sorted by key.
type Dict struct {
	Key     Type
	Elem    Type
	Entries []DictEntry
}

func (d Dict) Type() Type {
	entry := Type{Code: TypeDictEntry, Fields: []Type{d.Key, d.Elem}}
	return Type{Code: TypeArray, Elem: &entry}
}

// Variant wraps a value whose type travels with it
type Variant struct {
	Value Value
}

func (Variant) Type() Type { return Type{Code: TypeVariant} }

// SignatureOf renders the signature of a value list
func SignatureOf(values []Value) string {
	types := make([]Type, len(values))
	for i, v := range values {
		types[i] = v.Type()
	}
	return Join(types)
}
