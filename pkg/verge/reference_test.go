package verge_test

import (
	"encoding/json"
	"testing"

	"github.com/fivetwenty-io/verge-client/pkg/verge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReference(t *testing.T) {
	t.Parallel()

	ref, err := verge.NewReference("vms", 42)
	require.NoError(t, err)
	assert.Equal(t, "vms/42", ref.String())

	_, err = verge.NewReference("", 42)
	require.ErrorIs(t, err, verge.ErrEmptyFamily)

	_, err = verge.NewReference("vms", 0)
	require.ErrorIs(t, err, verge.ErrNonPositiveKey)

	_, err = verge.NewReference("vms", -7)
	require.ErrorIs(t, err, verge.ErrNonPositiveKey)
}

func TestParseReference(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		family  string
		key     int
		wantErr bool
	}{
		{name: "valid", input: "vms/42", family: "vms", key: 42},
		{name: "tag", input: "tags/7", family: "tags", key: 7},
		{name: "no slash", input: "vms42", wantErr: true},
		{name: "extra slash", input: "vms/42/7", wantErr: true},
		{name: "non-numeric key", input: "vms/web-01", wantErr: true},
		{name: "zero key", input: "vms/0", wantErr: true},
		{name: "empty family", input: "/42", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ref, err := verge.ParseReference(tt.input)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.family, ref.Family)
			assert.Equal(t, tt.key, ref.Key)
		})
	}
}

func TestReferenceJSONRoundTrip(t *testing.T) {
	t.Parallel()

	ref, err := verge.NewReference("vnets", 9)
	require.NoError(t, err)

	data, err := json.Marshal(ref)
	require.NoError(t, err)
	assert.JSONEq(t, `"vnets/9"`, string(data))

	var decoded verge.Reference

	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, ref, decoded)
}

func TestReferenceInsideBody(t *testing.T) {
	t.Parallel()

	ref, err := verge.NewReference("vms", 42)
	require.NoError(t, err)

	body := map[string]interface{}{
		"tag":    3,
		"member": ref,
	}

	data, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"tag": 3, "member": "vms/42"}`, string(data))
}

func TestReferenceInput(t *testing.T) {
	t.Parallel()

	ref, err := verge.NewReference("vms", 42)
	require.NoError(t, err)

	t.Run("reference variant", func(t *testing.T) {
		t.Parallel()

		input := verge.InputReference(ref)
		got, ok := input.AsReference()
		require.True(t, ok)
		assert.Equal(t, ref, got)
		assert.False(t, input.IsEmpty())

		_, ok = input.AsKey()
		assert.False(t, ok)
	})

	t.Run("key variant", func(t *testing.T) {
		t.Parallel()

		input := verge.InputKey(42)
		key, ok := input.AsKey()
		require.True(t, ok)
		assert.Equal(t, 42, key)

		_, ok = input.AsName()
		assert.False(t, ok)
	})

	t.Run("digit string is a key", func(t *testing.T) {
		t.Parallel()

		input := verge.InputString("42")
		key, ok := input.AsKey()
		require.True(t, ok)
		assert.Equal(t, 42, key)

		_, ok = input.AsName()
		assert.False(t, ok)
	})

	t.Run("name string", func(t *testing.T) {
		t.Parallel()

		input := verge.InputString("web-01")
		name, ok := input.AsName()
		require.True(t, ok)
		assert.Equal(t, "web-01", name)

		_, ok = input.AsKey()
		assert.False(t, ok)
	})

	t.Run("empty variants", func(t *testing.T) {
		t.Parallel()

		assert.True(t, verge.InputString("").IsEmpty())
		assert.True(t, verge.InputKey(0).IsEmpty())
		assert.True(t, verge.InputReference(verge.Reference{}).IsEmpty())
		assert.True(t, verge.ReferenceInput{}.IsEmpty())
	})
}
