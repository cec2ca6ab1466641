package scanner

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_PreservesOrder(t *testing.T) {
	v, err := ParseJSON([]byte(`{"z": 1, "a": 2, "m": {"y": true, "b": null}}`))
	require.NoError(t, err)

	require.Equal(t, KindObject, v.Kind)
	require.Len(t, v.Fields, 3)
	assert.Equal(t, "z", v.Fields[0].Key)
	assert.Equal(t, "a", v.Fields[1].Key)
	assert.Equal(t, "m", v.Fields[2].Key)

	nested := v.Fields[2].Value
	require.Equal(t, KindObject, nested.Kind)
	assert.Equal(t, "y", nested.Fields[0].Key)
	assert.Equal(t, KindBool, nested.Fields[0].Value.Kind)
	assert.Equal(t, "b", nested.Fields[1].Key)
	assert.Equal(t, KindNull, nested.Fields[1].Value.Kind)
}

func TestParseJSON_Scalars(t *testing.T) {
	v, err := ParseJSON([]byte(`["s", 42, 1.5e3, -0.25, true, false, null]`))
	require.NoError(t, err)
	require.Equal(t, KindArray, v.Kind)
	require.Len(t, v.Items, 7)

	literals := make([]string, 0, len(v.Items))
	for _, item := range v.Items {
		literals = append(literals, item.Literal())
	}
	assert.Equal(t, []string{"s", "42", "1.5e3", "-0.25", "true", "false", "null"}, literals)
	assert.Equal(t, KindNumber, v.Items[1].Kind)
	assert.False(t, v.Items[0].IsContainer())
}

func TestParseJSON_DuplicateKeys(t *testing.T) {
	v, err := ParseJSON([]byte(`{"a": 1, "b": 2, "a": 3}`))
	require.NoError(t, err)

	require.Len(t, v.Fields, 2)
	assert.Equal(t, "a", v.Fields[0].Key)
	assert.Equal(t, "3", v.Fields[0].Value.Literal())
	assert.Equal(t, "b", v.Fields[1].Key)
}

func TestParseJSON_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		is    error
	}{
		{name: "empty", input: ""},
		{name: "truncated", input: `{"a": [1, 2`},
		{name: "missing colon", input: `{"a" 1}`},
		{name: "trailing value", input: `{"a": 1} {"b": 2}`, is: ErrTrailingData},
		{name: "trailing garbage", input: `[1] x`},
		{name: "bare word", input: `hello`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJSON([]byte(tt.input))
			require.Error(t, err)
			if tt.is != nil {
				assert.True(t, errors.Is(err, tt.is), "expected %v, got %v", tt.is, err)
			}
		})
	}
}

func TestParseJSON_DepthCap(t *testing.T) {
	ok := strings.Repeat("[", MaxDepth) + strings.Repeat("]", MaxDepth)
	_, err := ParseJSON([]byte(ok))
	assert.NoError(t, err)

	deep := strings.Repeat("[", MaxDepth+1) + strings.Repeat("]", MaxDepth+1)
	_, err = ParseJSON([]byte(deep))
	assert.ErrorIs(t, err, ErrTooDeep)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "object", KindObject.String())
	assert.Equal(t, "null", KindNull.String())
	assert.Equal(t, "kind(42)", Kind(42).String())
}
