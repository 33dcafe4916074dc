package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renderpipe/renderconf/internal/app"
	"github.com/renderpipe/renderconf/internal/testutil"
)

func TestValidSettings_PassValidation(t *testing.T) {
	t.Parallel()

	result := testutil.RunSettingsTest(t, testutil.ValidSettingsHCL(), app.Config{})

	require.NoError(t, result.Err)
	require.NotNil(t, result.App)

	// The loaded model is queryable through the registry afterwards.
	items := result.App.Registry().MetadataItems()
	require.Len(t, items, 2)
	assert.Equal(t, "camera", items[0].Key)
	assert.Equal(t, "fps", items[1].Key)
}

func TestValidSettings_SplitAcrossFiles(t *testing.T) {
	t.Parallel()

	// The same blocks arranged differently across files load identically.
	files := testutil.ValidSettingsHCL()
	files["extra/metadata.hcl"] = `
render_metadata "shot" {
  type  = "string"
  value = "sq010_sh020"
}
`

	result := testutil.RunSettingsTest(t, files, app.Config{})

	require.NoError(t, result.Err)
	require.NotNil(t, result.App)
	assert.Len(t, result.App.Registry().MetadataItems(), 3)
}

func TestValidSettings_OptionalOptionsOmitted(t *testing.T) {
	t.Parallel()

	// deadline_batch_name and render_metadata may be absent entirely.
	files := testutil.ValidSettingsHCL()
	files["settings.hcl"] = `
settings "work_file_template" {
  value = "houdini_shot_work"
}

settings "output_render_template" {
  value = "houdini_shot_render"
}

settings "post_task_script" {
  value = "scripts/denoise_rename.py"
}
`

	result := testutil.RunSettingsTest(t, files, app.Config{})

	require.NoError(t, result.Err)
	assert.Nil(t, result.App.Registry().MetadataItems())
}
