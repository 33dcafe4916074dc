package posttask

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renderpipe/renderconf/internal/ctxlog"
	"github.com/renderpipe/renderconf/internal/frames"
)

func testContext() context.Context {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return ctxlog.WithLogger(context.Background(), logger)
}

func writeFrame(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("exr"), 0o644))
	return path
}

func TestRun_RenamesBeautyFrames(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "denoise")
	require.NoError(t, os.Mkdir(dir, 0o755))

	for frame := 1001; frame <= 1003; frame++ {
		writeFrame(t, dir, fmt.Sprintf("shot010_beauty_v001.%04d.exr", frame))
	}

	tasks := []Task{{
		OutputDirectory: dir,
		OutputFilename:  "shot010_denoise_v001.%04d.exr",
		Frames:          frames.Range{Start: 1001, End: 1003},
	}}
	require.NoError(t, Run(testContext(), tasks))

	for frame := 1001; frame <= 1003; frame++ {
		assert.NoFileExists(t, filepath.Join(dir, fmt.Sprintf("shot010_beauty_v001.%04d.exr", frame)))
		assert.FileExists(t, filepath.Join(dir, fmt.Sprintf("shot010_denoise_v001.%04d.exr", frame)))
	}
}

func TestRun_SkipsNonDenoiseDirectories(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "beauty")
	require.NoError(t, os.Mkdir(dir, 0o755))
	original := writeFrame(t, dir, "shot010_beauty_v001.1001.exr")

	tasks := []Task{{
		OutputDirectory: dir,
		OutputFilename:  "shot010_denoise_v001.%04d.exr",
		Frames:          frames.Range{Start: 1001, End: 1001},
	}}
	require.NoError(t, Run(testContext(), tasks))

	assert.FileExists(t, original)
}

func TestRun_SkipsAlreadyRenamedFrames(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "denoise")
	require.NoError(t, os.Mkdir(dir, 0o755))
	source := writeFrame(t, dir, "shot010_beauty_v001.1001.exr")
	target := writeFrame(t, dir, "shot010_denoise_v001.1001.exr")

	tasks := []Task{{
		OutputDirectory: dir,
		OutputFilename:  "shot010_denoise_v001.%04d.exr",
		Frames:          frames.Range{Start: 1001, End: 1001},
	}}
	require.NoError(t, Run(testContext(), tasks))

	// Both files survive untouched.
	assert.FileExists(t, source)
	assert.FileExists(t, target)
}

func TestRun_MissingSourceFrameFails(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "denoise")
	require.NoError(t, os.Mkdir(dir, 0o755))
	writeFrame(t, dir, "shot010_beauty_v001.1001.exr")

	tasks := []Task{{
		OutputDirectory: dir,
		OutputFilename:  "shot010_denoise_v001.%04d.exr",
		Frames:          frames.Range{Start: 1001, End: 1002},
	}}
	err := Run(testContext(), tasks)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "can't find frame 1002")
}
