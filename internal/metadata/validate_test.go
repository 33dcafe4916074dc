package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renderpipe/renderconf/internal/settings"
)

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		items     []settings.MetadataItem
		expectErr string
	}{
		{
			name: "valid entries",
			items: []settings.MetadataItem{
				{Key: "renderedBy", Type: "string", Value: "pipeline"},
				{Key: "focal", Type: "float", Expression: `ch("focal")`},
				{Key: "iteration", Type: "int", Value: "3"},
			},
		},
		{
			name:  "empty config is fine",
			items: nil,
		},
		{
			name: "reserved key",
			items: []settings.MetadataItem{
				{Key: "RenderLightGroups", Type: "string", Value: "x"},
			},
			expectErr: `reserved metadata key "RenderLightGroups"`,
		},
		{
			name: "reserved key case insensitive",
			items: []settings.MetadataItem{
				{Key: "postrendergroups", Type: "string", Value: "x"},
			},
			expectErr: "reserved metadata key",
		},
		{
			name: "invalid type",
			items: []settings.MetadataItem{
				{Key: "notes", Type: "bool", Value: "true"},
			},
			expectErr: `invalid metadata type for key "notes"`,
		},
		{
			name: "invalid key characters",
			items: []settings.MetadataItem{
				{Key: "bad key!", Type: "string", Value: "x"},
			},
			expectErr: "only letters, numbers and underscores",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateConfig(tc.items)
			if tc.expectErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectErr)
		})
	}
}

func TestValidateConfig_ReportsEveryViolation(t *testing.T) {
	t.Parallel()

	err := ValidateConfig([]settings.MetadataItem{
		{Key: "PostRenderGroups", Type: "string", Value: "x"},
		{Key: "shot name", Type: "vector", Value: "y"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reserved metadata key")
	assert.Contains(t, err.Error(), "only letters, numbers and underscores")
	assert.Contains(t, err.Error(), "invalid metadata type")
}
