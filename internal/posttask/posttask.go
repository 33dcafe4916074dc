// Package posttask implements the script run after each farm render task
// completes. Denoised output is rendered under the beauty name, so the
// task's frames are renamed into their denoise filenames before anything
// downstream picks them up.
package posttask

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/renderpipe/renderconf/internal/ctxlog"
	"github.com/renderpipe/renderconf/internal/frames"
)

// paddingToken is the frame-number placeholder in farm output filenames.
const paddingToken = "%04d"

// Task describes one completed render task: where its output landed and
// which frames it covered.
type Task struct {
	OutputDirectory string
	OutputFilename  string
	Frames          frames.Range
}

// Run processes every task of a finished job. Only denoise outputs are
// touched; a missing source frame fails the run, while an already renamed
// frame is only warned about.
func Run(ctx context.Context, tasks []Task) error {
	logger := ctxlog.FromContext(ctx)

	for _, task := range tasks {
		if !strings.HasSuffix(task.OutputDirectory, "denoise") {
			continue
		}

		for frame := task.Frames.Start; frame <= task.Frames.End; frame++ {
			filename := strings.ReplaceAll(task.OutputFilename, paddingToken, fmt.Sprintf("%04d", frame))
			fromPath := filepath.Join(task.OutputDirectory, strings.ReplaceAll(filename, "_denoise_", "_beauty_"))
			toPath := filepath.Join(task.OutputDirectory, filename)

			if _, err := os.Stat(fromPath); err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("can't find frame %d to denoise: %s", frame, fromPath)
				}
				return fmt.Errorf("checking frame %d: %w", frame, err)
			}

			if _, err := os.Stat(toPath); err == nil {
				logger.Warn("Renamed denoise frame already found.", "frame", frame, "path", toPath)
				continue
			}

			if err := os.Rename(fromPath, toPath); err != nil {
				return fmt.Errorf("renaming frame %d: %w", frame, err)
			}
			logger.Info("Renamed denoised frame.", "frame", frame)
		}
	}

	return nil
}
