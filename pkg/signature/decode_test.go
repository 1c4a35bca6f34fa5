package signature_test

import (
	"math"
	"testing"

	"github.com/arthur-debert/linkrouter/pkg/errors"
	"github.com/arthur-debert/linkrouter/pkg/signature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Scalars(t *testing.T) {
	got, err := signature.Decode("bus", []interface{}{true, 42, "hi"})
	require.NoError(t, err)
	assert.Equal(t, []signature.Value{
		signature.Bool(true),
		signature.Uint32(42),
		signature.String("hi"),
	}, got)
}

func TestDecode_TypeMismatch(t *testing.T) {
	_, err := signature.Decode("u", []interface{}{"not a number"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTypeMismatch))

	details := errors.GetErrorDetails(err)
	assert.Equal(t, 0, details[errors.DetailIndex])
	assert.Equal(t, "u", details[errors.DetailExpectedTag])
	assert.Equal(t, signature.KindString, details[errors.DetailActualKind])
}

func TestDecode_Integers(t *testing.T) {
	tests := []struct {
		name  string
		sig   string
		value interface{}
		want  signature.Value
		ok    bool
	}{
		{"byte", "y", 255, signature.Byte(255), true},
		{"byte overflow", "y", 256, nil, false},
		{"int16 min", "n", -32768, signature.Int16(-32768), true},
		{"int16 underflow", "n", -32769, nil, false},
		{"uint16", "q", uint16(7), signature.Uint16(7), true},
		{"int32 from int64", "i", int64(-5), signature.Int32(-5), true},
		{"int32 overflow", "i", int64(math.MaxInt32) + 1, nil, false},
		{"uint32 max", "u", uint64(math.MaxUint32), signature.Uint32(math.MaxUint32), true},
		{"uint32 overflow", "u", uint64(math.MaxUint32) + 1, nil, false},
		{"uint32 negative", "u", -1, nil, false},
		{"uint32 rejects float", "u", 42.0, nil, false},
		{"uint32 rejects bool", "u", true, nil, false},
		{"int64 min", "x", int64(math.MinInt64), signature.Int64(math.MinInt64), true},
		{"uint64 max", "t", uint64(math.MaxUint64), signature.Uint64(math.MaxUint64), true},
		{"uint64 negative", "t", int64(-1), nil, false},
		{"double from float", "d", 1.5, signature.Double(1.5), true},
		{"double from int", "d", -3, signature.Double(-3), true},
		{"double rejects string", "d", "1.5", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := signature.Decode(tt.sig, []interface{}{tt.value})
			if !tt.ok {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrTypeMismatch), err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []signature.Value{tt.want}, got)
		})
	}
}

func TestDecode_Strings(t *testing.T) {
	got, err := signature.Decode("sog", []interface{}{"plain", "/org/example/Obj", "a{sv}"})
	require.NoError(t, err)
	assert.Equal(t, []signature.Value{
		signature.String("plain"),
		signature.ObjectPath("/org/example/Obj"),
		signature.Signature("a{sv}"),
	}, got)

	for _, tt := range []struct {
		name, sig string
		value     interface{}
	}{
		{"bad object path", "o", "not/a/path"},
		{"trailing slash object path", "o", "/org/"},
		{"bad signature", "g", "a{"},
		{"nul in string", "s", "a\x00b"},
		{"invalid utf8", "s", "\xff"},
		{"number as string", "s", 12},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := signature.Decode(tt.sig, []interface{}{tt.value})
			assert.True(t, errors.IsErrorCode(err, errors.ErrTypeMismatch))
		})
	}
}

func TestDecode_Array(t *testing.T) {
	got, err := signature.Decode("as", []interface{}{[]interface{}{"a", "b"}})
	require.NoError(t, err)
	require.Len(t, got, 1)

	arr, ok := got[0].(signature.Array)
	require.True(t, ok)
	assert.Equal(t, []signature.Value{signature.String("a"), signature.String("b")}, arr.Items)
	assert.Equal(t, "as", arr.Type().String())

	t.Run("empty array keeps element type", func(t *testing.T) {
		got, err := signature.Decode("au", []interface{}{[]interface{}{}})
		require.NoError(t, err)
		assert.Equal(t, "au", signature.SignatureOf(got))
	})

	t.Run("typed go slice", func(t *testing.T) {
		got, err := signature.Decode("as", []interface{}{[]string{"x"}})
		require.NoError(t, err)
		assert.Equal(t, "as", signature.SignatureOf(got))
	})

	t.Run("nested element mismatch reports path", func(t *testing.T) {
		_, err := signature.Decode("sau", []interface{}{"x", []interface{}{1, "two"}})
		require.Error(t, err)
		details := errors.GetErrorDetails(err)
		assert.Equal(t, 1, details[errors.DetailIndex])
		assert.Equal(t, "1[1]", details[errors.DetailPath])
		assert.Equal(t, "u", details[errors.DetailExpectedTag])
	})

	t.Run("scalar where array expected", func(t *testing.T) {
		_, err := signature.Decode("as", []interface{}{"x"})
		assert.True(t, errors.IsErrorCode(err, errors.ErrTypeMismatch))
		assert.Equal(t, "as", errors.GetErrorDetails(err)[errors.DetailExpectedTag])
	})
}

func TestDecode_Struct(t *testing.T) {
	got, err := signature.Decode("(sib)", []interface{}{[]interface{}{"a", -1, false}})
	require.NoError(t, err)
	assert.Equal(t, []signature.Value{signature.Struct{Fields: []signature.Value{
		signature.String("a"), signature.Int32(-1), signature.Bool(false),
	}}}, got)
	assert.Equal(t, "(sib)", signature.SignatureOf(got))

	_, err = signature.Decode("(si)", []interface{}{[]interface{}{"a"}})
	assert.True(t, errors.IsErrorCode(err, errors.ErrArityMismatch))

	_, err = signature.Decode("(si)", []interface{}{map[string]interface{}{"a": 1}})
	assert.True(t, errors.IsErrorCode(err, errors.ErrTypeMismatch))
}

func TestDecode_Dict(t *testing.T) {
	value := map[string]interface{}{"b": 2, "a": 1, "c": 3}
	got, err := signature.Decode("a{su}", []interface{}{value})
	require.NoError(t, err)

	dict, ok := got[0].(signature.Dict)
	require.True(t, ok)
	assert.Equal(t, []signature.DictEntry{
		{Key: signature.String("a"), Value: signature.Uint32(1)},
		{Key: signature.String("b"), Value: signature.Uint32(2)},
		{Key: signature.String("c"), Value: signature.Uint32(3)},
	}, dict.Entries)
	assert.Equal(t, "a{su}", dict.Type().String())

	t.Run("integer keys sort numerically", func(t *testing.T) {
		got, err := signature.Decode("a{is}", []interface{}{map[interface{}]interface{}{10: "ten", 9: "nine"}})
		require.NoError(t, err)
		entries := got[0].(signature.Dict).Entries
		assert.Equal(t, signature.Int32(9), entries[0].Key)
		assert.Equal(t, signature.Int32(10), entries[1].Key)
	})

	t.Run("bad value reports key", func(t *testing.T) {
		_, err := signature.Decode("a{su}", []interface{}{map[string]interface{}{"k": "v"}})
		require.Error(t, err)
		assert.Equal(t, "0{k}", errors.GetErrorDetails(err)[errors.DetailPath])
	})

	t.Run("sequence where dict expected", func(t *testing.T) {
		_, err := signature.Decode("a{sv}", []interface{}{[]interface{}{"x"}})
		assert.True(t, errors.IsErrorCode(err, errors.ErrTypeMismatch))
	})
}

func TestDecode_Variant(t *testing.T) {
	got, err := signature.Decode("vvvvvv", []interface{}{
		true, "s", 7, 2.5, []interface{}{"x", 1}, map[string]interface{}{"k": false},
	})
	require.NoError(t, err)

	assert.Equal(t, signature.Variant{Value: signature.Bool(true)}, got[0])
	assert.Equal(t, signature.Variant{Value: signature.String("s")}, got[1])
	assert.Equal(t, signature.Variant{Value: signature.Int64(7)}, got[2])
	assert.Equal(t, signature.Variant{Value: signature.Double(2.5)}, got[3])
	assert.Equal(t, "av", got[4].(signature.Variant).Value.Type().String())
	assert.Equal(t, "a{sv}", got[5].(signature.Variant).Value.Type().String())

	t.Run("huge unsigned becomes uint64", func(t *testing.T) {
		got, err := signature.Decode("v", []interface{}{uint64(math.MaxUint64)})
		require.NoError(t, err)
		assert.Equal(t, signature.Variant{Value: signature.Uint64(math.MaxUint64)}, got[0])
	})

	t.Run("null has no wire type", func(t *testing.T) {
		_, err := signature.Decode("v", []interface{}{nil})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrTypeMismatch))
		assert.Equal(t, signature.KindNull, errors.GetErrorDetails(err)[errors.DetailActualKind])
	})

	t.Run("mapping with non string keys", func(t *testing.T) {
		_, err := signature.Decode("v", []interface{}{map[interface{}]interface{}{1: "x"}})
		assert.True(t, errors.IsErrorCode(err, errors.ErrTypeMismatch))
	})
}

func TestDecode_UnsupportedTag(t *testing.T) {
	_, err := signature.Decode("sh", []interface{}{"x", 3})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedTag))
	assert.Equal(t, "h", errors.GetErrorDetails(err)[errors.DetailTag])
	assert.Equal(t, 1, errors.GetErrorDetails(err)[errors.DetailIndex])
}

func TestDecode_Arity(t *testing.T) {
	_, err := signature.Decode("ss", []interface{}{"only one"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrArityMismatch))

	_, err = signature.Decode("", []interface{}{"extra"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrArityMismatch))

	got, err := signature.Decode("", nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecode_SyntaxErrorBeforeValues(t *testing.T) {
	_, err := signature.Decode("(s", []interface{}{"x"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrSignatureSyntax))
}

func TestDecode_Idempotent(t *testing.T) {
	args := []interface{}{
		map[string]interface{}{"z": []interface{}{1, 2}, "a": "x", "m": map[string]interface{}{"q": true}},
		[]interface{}{"s", 1},
	}
	first, err := signature.Decode("a{sv}(su)", args)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := signature.Decode("a{sv}(su)", args)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestDecoder_Registry(t *testing.T) {
	d := signature.NewDecoder()
	d.Unregister('u')

	_, err := d.Decode("u", []interface{}{1})
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedTag))

	d.Register('h', func(d *signature.Decoder, typ signature.Type, path string, v interface{}) (signature.Value, error) {
		n, ok := v.(int)
		if !ok {
			return nil, d.Mismatch(typ, path, v, "")
		}
		return signature.Int32(n), nil
	})
	got, err := d.Decode("h", []interface{}{3})
	require.NoError(t, err)
	assert.Equal(t, []signature.Value{signature.Int32(3)}, got)

	_, err = d.Decode("h", []interface{}{"x"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrTypeMismatch))
}

func TestKindOf(t *testing.T) {
	var nilPtr *string
	s := "x"
	tests := []struct {
		value interface{}
		want  signature.Kind
	}{
		{nil, signature.KindNull},
		{nilPtr, signature.KindNull},
		{&s, signature.KindString},
		{true, signature.KindBool},
		{3, signature.KindNumber},
		{uint8(3), signature.KindNumber},
		{1.5, signature.KindNumber},
		{"x", signature.KindString},
		{[]interface{}{}, signature.KindSequence},
		{[]int{1}, signature.KindSequence},
		{map[string]interface{}{}, signature.KindMapping},
		{map[string]int{}, signature.KindMapping},
		{struct{}{}, signature.KindUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, signature.KindOf(tt.value), "%T", tt.value)
	}
	assert.Equal(t, "string", signature.KindString.String())
	assert.Equal(t, "mapping", signature.KindMapping.String())
}
