// Package frames computes the frame ranges and farm task lists used when
// submitting renders.
package frames

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is an inclusive frame range.
type Range struct {
	Start int
	End   int
}

// Parse reads a frame range of the form "1001-1005" or a single frame
// "1001".
func Parse(s string) (Range, error) {
	if s == "" {
		return Range{}, fmt.Errorf("frame range is empty")
	}

	start, end, found := strings.Cut(s, "-")
	first, err := strconv.Atoi(strings.TrimSpace(start))
	if err != nil {
		return Range{}, fmt.Errorf("invalid frame range %q: %w", s, err)
	}
	if !found {
		return Range{Start: first, End: first}, nil
	}

	last, err := strconv.Atoi(strings.TrimSpace(end))
	if err != nil {
		return Range{}, fmt.Errorf("invalid frame range %q: %w", s, err)
	}
	if last < first {
		return Range{}, fmt.Errorf("invalid frame range %q: end frame before start frame", s)
	}
	return Range{Start: first, End: last}, nil
}

// Len returns the number of frames in the range.
func (r Range) Len() int {
	return r.End - r.Start + 1
}

// String formats the range the way farm submissions expect it.
func (r Range) String() string {
	if r.Start == r.End {
		return strconv.Itoa(r.Start)
	}
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// Output selects the frame range a render node will produce: the node's
// configured range when the range toggle is on, otherwise the single
// current playbar frame.
func Output(useRange bool, first, last, current int) Range {
	if useRange {
		return Range{Start: first, End: last}
	}
	return Range{Start: current, End: current}
}
