package yamlvalue_test

import (
	"testing"

	"github.com/devantler-tech/valdedup/pkg/yamlvalue"
	"github.com/stretchr/testify/assert"
)

func mapOf(pairs ...any) *yamlvalue.Value {
	m := yamlvalue.Map()
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Set(pairs[i].(string), pairs[i+1].(*yamlvalue.Value))
	}

	return m
}

func TestEqual(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        *yamlvalue.Value
		b        *yamlvalue.Value
		expected bool
	}{
		{"nulls", yamlvalue.Null(), yamlvalue.Null(), true},
		{"equal bools", yamlvalue.Bool(true), yamlvalue.Bool(true), true},
		{"differing bools", yamlvalue.Bool(true), yamlvalue.Bool(false), false},
		{"equal ints", yamlvalue.Int(7), yamlvalue.Int(7), true},
		{"differing ints", yamlvalue.Int(7), yamlvalue.Int(8), false},
		{"int is not real", yamlvalue.Int(1), yamlvalue.Real(1), false},
		{"equal reals", yamlvalue.Real(2.5), yamlvalue.Real(2.5), true},
		{"equal strings", yamlvalue.String("a"), yamlvalue.String("a"), true},
		{"string is not null", yamlvalue.String(""), yamlvalue.Null(), false},
		{
			"equal arrays",
			yamlvalue.Array(yamlvalue.Int(1), yamlvalue.Int(2)),
			yamlvalue.Array(yamlvalue.Int(1), yamlvalue.Int(2)),
			true,
		},
		{
			"array length differs",
			yamlvalue.Array(yamlvalue.Int(1)),
			yamlvalue.Array(yamlvalue.Int(1), yamlvalue.Int(2)),
			false,
		},
		{
			"array element differs",
			yamlvalue.Array(yamlvalue.Int(1), yamlvalue.Int(2)),
			yamlvalue.Array(yamlvalue.Int(1), yamlvalue.Int(3)),
			false,
		},
		{
			"equal maps regardless of key order",
			mapOf("a", yamlvalue.Int(1), "b", yamlvalue.Int(2)),
			mapOf("b", yamlvalue.Int(2), "a", yamlvalue.Int(1)),
			true,
		},
		{
			"map key set differs",
			mapOf("a", yamlvalue.Int(1)),
			mapOf("b", yamlvalue.Int(1)),
			false,
		},
		{
			"map value differs",
			mapOf("a", yamlvalue.Int(1)),
			mapOf("a", yamlvalue.Int(2)),
			false,
		},
		{
			"nested trees",
			mapOf("a", yamlvalue.Array(mapOf("x", yamlvalue.Real(1.5)))),
			mapOf("a", yamlvalue.Array(mapOf("x", yamlvalue.Real(1.5)))),
			true,
		},
		{"nil value equals null", nil, yamlvalue.Null(), true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, yamlvalue.Equal(testCase.a, testCase.b))
			assert.Equal(t, testCase.expected, yamlvalue.Equal(testCase.b, testCase.a))
		})
	}
}
