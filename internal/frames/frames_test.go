package frames

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		input     string
		expectErr bool
		expected  Range
	}{
		{name: "range", input: "1001-1005", expected: Range{1001, 1005}},
		{name: "single frame", input: "1001", expected: Range{1001, 1001}},
		{name: "spaces tolerated", input: " 1001 - 1005 ", expected: Range{1001, 1005}},
		{name: "error - empty", input: "", expectErr: true},
		{name: "error - not a number", input: "abc", expectErr: true},
		{name: "error - end missing", input: "1001-", expectErr: true},
		{name: "error - end before start", input: "1005-1001", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rng, err := Parse(tc.input)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, rng)
		})
	}
}

func TestRange_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1001-1005", Range{1001, 1005}.String())
	assert.Equal(t, "1001", Range{1001, 1001}.String())
}

func TestRange_Len(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, Range{1001, 1005}.Len())
	assert.Equal(t, 1, Range{1001, 1001}.Len())
}

func TestOutput(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Range{1001, 1100}, Output(true, 1001, 1100, 1042))
	assert.Equal(t, Range{1042, 1042}, Output(false, 1001, 1100, 1042))
}
