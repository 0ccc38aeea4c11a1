package jsonschema_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/chemicaljson/pkg/jsonschema"
)

func TestReflector(t *testing.T) {
	t.Parallel()

	type Point struct {
		XYZ   []float64 `json:"3d"              jsonschema:"required"`
		Label string    `json:"label,omitempty" jsonschema_description:"A label, e.g. 'R' or 'S'."`
	}

	type Shape struct {
		Points []Point `json:"points" jsonschema:"required"`
		Kind   int     `json:"kind"   jsonschema:"default=1"`
		Fill   []bool  `json:"Fill Color,omitempty"`
	}

	t.Run("Draft07", func(t *testing.T) {
		t.Parallel()

		s := jsonschema.NewReflector().Reflect(reflect.TypeOf(Shape{}))
		require.NotNil(t, s)

		assert.Equal(t, jsonschema.Draft07, s.Version)
		assert.Equal(t, "object", s.Type)
		assert.Equal(t, []string{"points"}, s.Required)
	})

	t.Run("WireNames", func(t *testing.T) {
		t.Parallel()

		s := jsonschema.NewReflector().Reflect(reflect.TypeOf(Shape{}))

		fill, ok := jsonschema.Property(s, "Fill Color")
		require.True(t, ok)
		assert.Equal(t, "array", fill.Type)

		xyz, ok := jsonschema.Property(s, "points")
		require.True(t, ok)
		require.NotNil(t, xyz.Items)

		_, ok = xyz.Items.Properties.Get("3d")
		assert.True(t, ok)
		assert.Equal(t, []string{"3d"}, xyz.Items.Required)

		label, ok := xyz.Items.Properties.Get("label")
		require.True(t, ok)
		assert.Equal(t, "A label, e.g. 'R' or 'S'.", label.Description)
	})

	t.Run("Default", func(t *testing.T) {
		t.Parallel()

		s := jsonschema.NewReflector().Reflect(reflect.TypeOf(Shape{}))

		kind, ok := jsonschema.Property(s, "kind")
		require.True(t, ok)

		out, err := json.Marshal(kind)
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"integer","default":1}`, string(out))
	})

	t.Run("MissingProperty", func(t *testing.T) {
		t.Parallel()

		s := jsonschema.NewReflector().Reflect(reflect.TypeOf(Shape{}))

		_, ok := jsonschema.Property(s, "points", "nope")
		assert.False(t, ok)
	})

	t.Run("MarshalIndent", func(t *testing.T) {
		t.Parallel()

		s := jsonschema.NewReflector().Reflect(reflect.TypeOf(Shape{}))

		out, err := jsonschema.MarshalIndent(s)
		require.NoError(t, err)
		assert.True(t, json.Valid(out))
		assert.Contains(t, string(out), "\n  \"$schema\"")
		assert.Equal(t, byte('\n'), out[len(out)-1])
	})
}

func TestStripUnknown(t *testing.T) {
	t.Parallel()

	type Point struct {
		XYZ []float64 `json:"3d"`
	}

	type Shape struct {
		Name   string               `json:"name,omitempty"`
		Points []Point              `json:"points,omitempty"`
		Tags   map[string][]float64 `json:"tags,omitempty"`
		Notes  struct{}             `json:"notes"`
	}

	s := jsonschema.NewReflector().Reflect(reflect.TypeOf(Shape{}))

	notes, ok := jsonschema.Property(s, "notes")
	require.True(t, ok)

	notes.AdditionalProperties = jsonschema.TrueSchema

	tcs := map[string]struct {
		in   string
		want string
	}{
		"ExactNamesKept": {
			in:   `{"name":"a","points":[{"3d":[1,2,3]}]}`,
			want: `{"name":"a","points":[{"3d":[1,2,3]}]}`,
		},
		"CaseVariantsDropped": {
			in:   `{"NAME":"a","Name":42,"name":"b"}`,
			want: `{"name":"b"}`,
		},
		"NestedArrayItems": {
			in:   `{"points":[{"3D":[1],"3d":[2]},{"x":1}]}`,
			want: `{"points":[{"3d":[2]},{}]}`,
		},
		"MapKeysKept": {
			in:   `{"tags":{"Any":[1],"other":[2]}}`,
			want: `{"tags":{"Any":[1],"other":[2]}}`,
		},
		"OpenObjectKept": {
			in:   `{"notes":{"Free":{"Form":true}}}`,
			want: `{"notes":{"Free":{"Form":true}}}`,
		},
		"Scalar": {
			in:   `"text"`,
			want: `"text"`,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			v, err := jsonschema.UnmarshalJSON([]byte(tc.in))
			require.NoError(t, err)

			out, err := json.Marshal(jsonschema.StripUnknown(s, v))
			require.NoError(t, err)
			assert.JSONEq(t, tc.want, string(out))
		})
	}
}
