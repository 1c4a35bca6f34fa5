package bus

import (
	"fmt"
	"reflect"

	"github.com/arthur-debert/linkrouter/pkg/errors"
	"github.com/arthur-debert/linkrouter/pkg/signature"
	"github.com/godbus/dbus/v5"
)

var (
	byteType       = reflect.TypeOf(byte(0))
	boolType       = reflect.TypeOf(false)
	int16Type      = reflect.TypeOf(int16(0))
	uint16Type     = reflect.TypeOf(uint16(0))
	int32Type      = reflect.TypeOf(int32(0))
	uint32Type     = reflect.TypeOf(uint32(0))
	int64Type      = reflect.TypeOf(int64(0))
	uint64Type     = reflect.TypeOf(uint64(0))
	float64Type    = reflect.TypeOf(float64(0))
	stringType     = reflect.TypeOf("")
	objectPathType = reflect.TypeOf(dbus.ObjectPath(""))
	signatureType  = reflect.TypeOf(dbus.Signature{})
	variantType    = reflect.TypeOf(dbus.Variant{})
)

// ToGo converts typed values into the Go values godbus marshals with the
// same signature
func ToGo(values []signature.Value) ([]interface{}, error) {
	out := make([]interface{}, len(values))
	for i, v := range values {
		g, err := goValue(v)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInternal, "argument %d", i).
				WithDetail(errors.DetailIndex, i)
		}
		out[i] = g
	}
	return out, nil
}

func goValue(v signature.Value) (interface{}, error) {
	switch x := v.(type) {
	case signature.Byte:
		return byte(x), nil
	case signature.Bool:
		return bool(x), nil
	case signature.Int16:
		return int16(x), nil
	case signature.Uint16:
		return uint16(x), nil
	case signature.Int32:
		return int32(x), nil
	case signature.Uint32:
		return uint32(x), nil
	case signature.Int64:
		return int64(x), nil
	case signature.Uint64:
		return uint64(x), nil
	case signature.Double:
		return float64(x), nil
	case signature.String:
		return string(x), nil
	case signature.ObjectPath:
		return dbus.ObjectPath(x), nil
	case signature.Signature:
		return dbus.ParseSignature(string(x))
	case signature.Variant:
		inner, err := goValue(x.Value)
		if err != nil {
			return nil, err
		}
		return dbus.MakeVariant(inner), nil
	case signature.Array:
		return goArray(x)
	case signature.Dict:
		return goDict(x)
	case signature.Struct:
		return goStruct(x)
	}
	return nil, fmt.Errorf("no bus representation for %T", v)
}

func goArray(a signature.Array) (interface{}, error) {
	elemType, err := goType(a.Elem)
	if err != nil {
		return nil, err
	}
	slice := reflect.MakeSlice(reflect.SliceOf(elemType), len(a.Items), len(a.Items))
	for i, item := range a.Items {
		g, err := goValue(item)
		if err != nil {
			return nil, err
		}
		slice.Index(i).Set(reflect.ValueOf(g))
	}
	return slice.Interface(), nil
}

func goDict(d signature.Dict) (interface{}, error) {
	keyType, err := goType(d.Key)
	if err != nil {
		return nil, err
	}
	elemType, err := goType(d.Elem)
	if err != nil {
		return nil, err
	}
	m := reflect.MakeMapWithSize(reflect.MapOf(keyType, elemType), len(d.Entries))
	for _, e := range d.Entries {
		k, err := goValue(e.Key)
		if err != nil {
			return nil, err
		}
		v, err := goValue(e.Value)
		if err != nil {
			return nil, err
		}
		m.SetMapIndex(reflect.ValueOf(k), reflect.ValueOf(v))
	}
	return m.Interface(), nil
}

func goStruct(s signature.Struct) (interface{}, error) {
	st, err := goType(s.Type())
	if err != nil {
		return nil, err
	}
	out := reflect.New(st).Elem()
	for i, f := range s.Fields {
		g, err := goValue(f)
		if err != nil {
			return nil, err
		}
		out.Field(i).Set(reflect.ValueOf(g))
	}
	return out.Interface(), nil
}

// goType is the Go type godbus maps to and from t
func goType(t signature.Type) (reflect.Type, error) {
	switch t.Code {
	case signature.TypeByte:
		return byteType, nil
	case signature.TypeBoolean:
		return boolType, nil
	case signature.TypeInt16:
		return int16Type, nil
	case signature.TypeUint16:
		return uint16Type, nil
	case signature.TypeInt32:
		return int32Type, nil
	case signature.TypeUint32:
		return uint32Type, nil
	case signature.TypeInt64:
		return int64Type, nil
	case signature.TypeUint64:
		return uint64Type, nil
	case signature.TypeDouble:
		return float64Type, nil
	case signature.TypeString:
		return stringType, nil
	case signature.TypeObjectPath:
		return objectPathType, nil
	case signature.TypeSignature:
		return signatureType, nil
	case signature.TypeVariant:
		return variantType, nil
	case signature.TypeArray:
		if t.IsDict() {
			k, err := goType(t.Elem.Fields[0])
			if err != nil {
				return nil, err
			}
			v, err := goType(t.Elem.Fields[1])
			if err != nil {
				return nil, err
			}
			return reflect.MapOf(k, v), nil
		}
		e, err := goType(*t.Elem)
		if err != nil {
			return nil, err
		}
		return reflect.SliceOf(e), nil
	case signature.TypeStruct:
		fields := make([]reflect.StructField, len(t.Fields))
		for i, ft := range t.Fields {
			gt, err := goType(ft)
			if err != nil {
				return nil, err
			}
			fields[i] = reflect.StructField{Name: fmt.Sprintf("F%d", i), Type: gt}
		}
		return reflect.StructOf(fields), nil
	}
	return nil, fmt.Errorf("type %q has no bus representation", t.String())
}
