package yamlvalue_test

import (
	"testing"

	"github.com/devantler-tech/valdedup/pkg/yamlvalue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeScalars(t *testing.T) {
	t.Parallel()

	value, err := yamlvalue.Decode([]byte(`
count: 3
ratio: 2.5
whole: 1.0
name: app
enabled: true
empty: null
quoted: "true"
`))
	require.NoError(t, err)
	require.Equal(t, yamlvalue.KindMap, value.Kind())

	assert.Equal(t, yamlvalue.KindInt, value.GetOrNull("count").Kind())
	assert.Equal(t, int64(3), value.GetOrNull("count").Int())
	assert.Equal(t, yamlvalue.KindReal, value.GetOrNull("ratio").Kind())
	assert.Equal(t, yamlvalue.KindReal, value.GetOrNull("whole").Kind(), "1.0 must stay a real, not collapse to int")
	assert.Equal(t, yamlvalue.KindString, value.GetOrNull("name").Kind())
	assert.Equal(t, yamlvalue.KindBool, value.GetOrNull("enabled").Kind())
	assert.True(t, value.GetOrNull("empty").IsNull())
	assert.Equal(t, yamlvalue.KindString, value.GetOrNull("quoted").Kind())
	assert.Equal(t, "true", value.GetOrNull("quoted").Str())
}

func TestDecodePreservesKeyOrder(t *testing.T) {
	t.Parallel()

	value, err := yamlvalue.Decode([]byte("zeta: 1\nalpha: 2\nmid: 3\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, value.Keys())
}

func TestDecodeCollections(t *testing.T) {
	t.Parallel()

	value, err := yamlvalue.Decode([]byte(`
servers:
  - host: a
    port: 80
  - host: b
    port: 443
flow: [1, 2, 3]
`))
	require.NoError(t, err)

	servers := value.GetOrNull("servers")
	require.Equal(t, yamlvalue.KindArray, servers.Kind())
	require.Len(t, servers.Items(), 2)
	assert.Equal(t, "b", servers.Items()[1].GetOrNull("host").Str())

	flow := value.GetOrNull("flow")
	require.Equal(t, yamlvalue.KindArray, flow.Kind())
	assert.Equal(t, int64(2), flow.Items()[1].Int())
}

func TestDecodeResolvesAnchors(t *testing.T) {
	t.Parallel()

	value, err := yamlvalue.Decode([]byte(`
defaults: &defaults
  replicas: 2
web: *defaults
`))
	require.NoError(t, err)

	assert.Equal(t, int64(2), value.GetOrNull("web").GetOrNull("replicas").Int())
	assert.True(t, yamlvalue.Equal(value.GetOrNull("defaults"), value.GetOrNull("web")))
}

func TestDecodeEmptyDocumentIsNull(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{"empty input", ""},
		{"only comment", "# nothing here\n"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			value, err := yamlvalue.Decode([]byte(testCase.data))
			require.NoError(t, err)
			assert.True(t, value.IsNull())
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     string
		expected error
	}{
		{"multiple documents", "a: 1\n---\nb: 2\n", yamlvalue.ErrMultiDocument},
		{"non-string key", "1: x\n", yamlvalue.ErrNonStringKey},
		{"duplicate key", "a: 1\na: 2\n", yamlvalue.ErrDuplicateKey},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := yamlvalue.Decode([]byte(testCase.data))
			require.ErrorIs(t, err, testCase.expected)
		})
	}
}

func TestDecodeMalformedYAML(t *testing.T) {
	t.Parallel()

	_, err := yamlvalue.Decode([]byte("a: [1, 2\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse yaml")
}

func TestEncodeScalars(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    *yamlvalue.Value
		expected string
	}{
		{"null", yamlvalue.Null(), "null\n"},
		{"bool", yamlvalue.Bool(true), "true\n"},
		{"int", yamlvalue.Int(42), "42\n"},
		{"real keeps float form", yamlvalue.Real(1), "1.0\n"},
		{"real fraction", yamlvalue.Real(2.5), "2.5\n"},
		{"string", yamlvalue.String("app"), "app\n"},
		{"bool-looking string stays quoted", yamlvalue.String("true"), "\"true\"\n"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			data, err := yamlvalue.Encode(testCase.value)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, string(data))
		})
	}
}

func TestEncodeMapKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	m := yamlvalue.Map()
	m.Set("zeta", yamlvalue.Int(1))
	m.Set("alpha", yamlvalue.Int(2))

	data, err := yamlvalue.Encode(m)
	require.NoError(t, err)
	assert.Equal(t, "zeta: 1\nalpha: 2\n", string(data))
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	input := []byte(`
replicas: 3
image:
  repository: nginx
  tag: "1.25"
resources:
  limits:
    cpu: 0.5
ports:
  - 80
  - 443
debug: false
extra: null
`)

	decoded, err := yamlvalue.Decode(input)
	require.NoError(t, err)

	encoded, err := yamlvalue.Encode(decoded)
	require.NoError(t, err)

	again, err := yamlvalue.Decode(encoded)
	require.NoError(t, err)

	assert.True(t, yamlvalue.Equal(decoded, again))
	assert.Equal(t, decoded.Keys(), again.Keys())
}
