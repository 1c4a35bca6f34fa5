package signature

import "reflect"

// Kind classifies a generic structured value as produced by the YAML and
// TOML decoders
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// KindOf classifies v
func KindOf(v interface{}) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return KindNumber
	case string:
		return KindString
	case []interface{}:
		return KindSequence
	case map[string]interface{}, map[interface{}]interface{}:
		return KindMapping
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return KindSequence
	case reflect.Map:
		return KindMapping
	case reflect.Ptr:
		rv := reflect.ValueOf(v)
		if rv.IsNil() {
			return KindNull
		}
		return KindOf(rv.Elem().Interface())
	}
	return KindUnknown
}

// sequenceOf returns the elements of a sequence value
func sequenceOf(v interface{}) ([]interface{}, bool) {
	if s, ok := v.([]interface{}); ok {
		return s, true
	}
	if KindOf(v) != KindSequence {
		return nil, false
	}
	rv := reflect.Indirect(reflect.ValueOf(v))
	out := make([]interface{}, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

type mapEntry struct {
	key, value interface{}
}

// mappingOf returns the entries of a mapping value in no particular order
func mappingOf(v interface{}) ([]mapEntry, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		out := make([]mapEntry, 0, len(m))
		for k, val := range m {
			out = append(out, mapEntry{k, val})
		}
		return out, true
	case map[interface{}]interface{}:
		out := make([]mapEntry, 0, len(m))
		for k, val := range m {
			out = append(out, mapEntry{k, val})
		}
		return out, true
	}
	if KindOf(v) != KindMapping {
		return nil, false
	}
	rv := reflect.Indirect(reflect.ValueOf(v))
	out := make([]mapEntry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out = append(out, mapEntry{iter.Key().Interface(), iter.Value().Interface()})
	}
	return out, true
}
