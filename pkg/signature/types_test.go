package signature_test

import (
	"strings"
	"testing"

	"github.com/arthur-debert/linkrouter/pkg/errors"
	"github.com/arthur-debert/linkrouter/pkg/signature"
	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		sig   string
		count int
	}{
		{"", 0},
		{"bus", 3},
		{"ynqiuxtdhsogv", 13},
		{"as", 1},
		{"aas", 1},
		{"a{sv}", 1},
		{"a{oa{sa{sv}}}", 1},
		{"(sb)", 1},
		{"(s(ib)as)u", 2},
		{"a(sv)a{ys}", 2},
	}

	for _, tt := range tests {
		t.Run(tt.sig, func(t *testing.T) {
			types, err := signature.Parse(tt.sig)
			require.NoError(t, err)
			assert.Len(t, types, tt.count)
			assert.Equal(t, tt.sig, signature.Join(types), "round trip")

			_, dbusErr := dbus.ParseSignature(tt.sig)
			assert.NoError(t, dbusErr, "godbus agrees the signature is valid")
		})
	}
}

func TestParse_SyntaxErrors(t *testing.T) {
	tests := []struct {
		sig      string
		position int
	}{
		{"z", 0},
		{"bz", 1},
		{"(s", 2},
		{"s)", 1},
		{"()", 0},
		{"a", 1},
		{"aa", 2},
		{"{sv}", 0},
		{"a{vs}", 2},
		{"a{s}", 3},
		{"a{ssv}", 4},
		{"a{s", 3},
		{"(}", 1},
		{strings.Repeat("a", 33) + "s", 32},
	}

	for _, tt := range tests {
		t.Run(tt.sig, func(t *testing.T) {
			_, err := signature.Parse(tt.sig)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrSignatureSyntax), err.Error())
			assert.Equal(t, tt.position, errors.GetErrorDetails(err)[errors.DetailPosition])
			assert.False(t, signature.Valid(tt.sig))
		})
	}
}

func TestParse_TooLong(t *testing.T) {
	_, err := signature.Parse(strings.Repeat("s", signature.MaxSignatureLength+1))
	assert.True(t, errors.IsErrorCode(err, errors.ErrSignatureSyntax))
}

func TestType_Predicates(t *testing.T) {
	types, err := signature.Parse("sa{sv}asv")
	require.NoError(t, err)
	require.Len(t, types, 4)

	assert.True(t, types[0].IsBasic())
	assert.True(t, types[1].IsDict())
	assert.False(t, types[2].IsDict())
	assert.False(t, types[3].IsBasic())
	assert.Equal(t, "a{sv}", types[1].String())
}
