package frames

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// SmartList reorders a frame range into a farm task list that renders the
// first frame, the last frame, and then repeatedly the frame halfway into
// the largest remaining gap. Spreading tasks across the range like this
// surfaces render problems long before a linear pass would.
//
// The range is first chunked by taskSize, so each emitted entry covers one
// farm task. Example: ("1001-1005", 1) yields "1001,1005,1003,1002,1004".
func SmartList(frameRange string, taskSize int) (string, error) {
	if !strings.Contains(frameRange, "-") {
		// Single frames can't be rearranged.
		return frameRange, nil
	}

	rng, err := Parse(frameRange)
	if err != nil {
		return "", err
	}
	if taskSize < 1 {
		taskSize = 1
	}

	totalFrames := rng.Len()
	if totalFrames == 2 {
		// Two frames can't be rearranged.
		return strconv.Itoa(rng.Start) + "," + strconv.Itoa(rng.End), nil
	}

	fullTasks := totalFrames / taskSize
	leftoverFrames := totalFrames - fullTasks*taskSize

	var taskList []string
	if taskSize > 1 {
		for task := 0; task < fullTasks; task++ {
			first := task*taskSize + rng.Start
			last := task*taskSize + taskSize + rng.Start - 1
			taskList = append(taskList, strconv.Itoa(first)+"-"+strconv.Itoa(last))
		}
	} else {
		for task := 0; task < fullTasks; task++ {
			taskList = append(taskList, strconv.Itoa(task+rng.Start))
		}
	}
	if leftoverFrames >= 1 {
		first := fullTasks*taskSize + rng.Start
		taskList = append(taskList, strconv.Itoa(first)+"-"+strconv.Itoa(rng.End))
	}

	if len(taskList) == 1 {
		return taskList[0], nil
	}

	// Walk the task indices from both ends inwards: start with the first
	// and last task, then keep inserting the midpoint of the widest gap
	// until every task is placed.
	indices := []int{0, len(taskList) - 1}
	for task := 0; task < len(taskList)-2; task++ {
		sorted := make([]int, len(indices))
		copy(sorted, indices)
		sort.Ints(sorted)

		biggestGap := 0
		lo, hi := sorted[0], sorted[len(sorted)-1]
		for i := 0; i < len(sorted)-1; i++ {
			gap := sorted[i+1] - sorted[i]
			if gap > biggestGap {
				lo, hi = sorted[i], sorted[i+1]
				biggestGap = gap
			}
		}

		indices = append(indices, int(math.RoundToEven(float64(lo+hi)/2)))
	}

	ordered := make([]string, 0, len(indices))
	for _, idx := range indices {
		ordered = append(ordered, taskList[idx])
	}
	return strings.Join(ordered, ","), nil
}
