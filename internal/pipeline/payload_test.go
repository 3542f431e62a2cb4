package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "envelope with data", body: `{"data":{"name":"Taco"}}`},
		{name: "empty body", body: ""},
		{name: "empty object", body: `{}`},
		{name: "null data", body: `{"data":null}`},
		{name: "invalid json", body: `{"data":`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Decode(strings.NewReader(tt.body))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			_ = p
		})
	}
}

func TestDecodeMissingEnvelopeHasNoFields(t *testing.T) {
	p, err := Decode(strings.NewReader(`{}`))
	require.NoError(t, err)
	assert.False(t, p.Has("name"))
	assert.Nil(t, p.Field("name"))
}

func TestHasFalsySemantics(t *testing.T) {
	p := FromMap(map[string]any{
		"empty":    "",
		"zero":     float64(0),
		"no":       false,
		"null":     nil,
		"text":     "x",
		"num":      float64(5),
		"yes":      true,
		"emptyArr": []any{},
		"emptyObj": map[string]any{},
	})

	for _, missing := range []string{"empty", "zero", "no", "null", "absent"} {
		assert.False(t, p.Has(missing), missing)
	}
	for _, present := range []string{"text", "num", "yes", "emptyArr", "emptyObj"} {
		assert.True(t, p.Has(present), present)
	}
}

func TestInt(t *testing.T) {
	p := FromMap(map[string]any{
		"whole":    float64(5),
		"negative": float64(-2),
		"frac":     2.5,
		"text":     "5",
	})

	v, ok := p.Int("whole")
	require.True(t, ok)
	assert.Equal(t, 5, v)

	v, ok = p.Int("negative")
	require.True(t, ok)
	assert.Equal(t, -2, v)

	_, ok = p.Int("frac")
	assert.False(t, ok, "fractional numbers are not integers")
	_, ok = p.Int("text")
	assert.False(t, ok, "numeric strings are not integers")
	_, ok = p.Int("absent")
	assert.False(t, ok)
}

func TestSlice(t *testing.T) {
	p := FromMap(map[string]any{
		"arr":  []any{"a"},
		"text": "not an array",
	})

	arr, ok := p.Slice("arr")
	require.True(t, ok)
	assert.Len(t, arr, 1)

	_, ok = p.Slice("text")
	assert.False(t, ok)
	_, ok = p.Slice("absent")
	assert.False(t, ok)
}
