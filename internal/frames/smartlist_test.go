package frames

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmartList(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		taskSize int
		expected string
	}{
		{
			name:     "five frames single task size",
			input:    "1001-1005",
			taskSize: 1,
			expected: "1001,1005,1003,1002,1004",
		},
		{
			name:     "even chunking",
			input:    "1001-1010",
			taskSize: 2,
			expected: "1001-1002,1009-1010,1005-1006,1003-1004,1007-1008",
		},
		{
			name:     "leftover frames end up in a short task",
			input:    "1001-1005",
			taskSize: 2,
			expected: "1001-1002,1005-1005,1003-1004",
		},
		{
			name:     "single frame passes through",
			input:    "1001",
			taskSize: 1,
			expected: "1001",
		},
		{
			name:     "two frames cannot be rearranged",
			input:    "1001-1002",
			taskSize: 1,
			expected: "1001,1002",
		},
		{
			name:     "degenerate range collapses to one task",
			input:    "1001-1001",
			taskSize: 1,
			expected: "1001",
		},
		{
			name:     "range smaller than task size",
			input:    "1001-1003",
			taskSize: 10,
			expected: "1001-1003",
		},
		{
			name:     "four frames round to even midpoints",
			input:    "1-4",
			taskSize: 1,
			expected: "1,4,3,2",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			list, err := SmartList(tc.input, tc.taskSize)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, list)
		})
	}
}

func TestSmartList_CoversEveryFrameExactlyOnce(t *testing.T) {
	t.Parallel()

	list, err := SmartList("1-100", 7)
	require.NoError(t, err)

	covered := make(map[int]int)
	for _, entry := range strings.Split(list, ",") {
		rng, err := Parse(entry)
		require.NoError(t, err)
		for f := rng.Start; f <= rng.End; f++ {
			covered[f]++
		}
	}

	require.Len(t, covered, 100)
	for f := 1; f <= 100; f++ {
		assert.Equal(t, 1, covered[f], "frame %d", f)
	}
}

func TestSmartList_InvalidRange(t *testing.T) {
	t.Parallel()

	_, err := SmartList("10-abc", 1)
	require.Error(t, err)
}
