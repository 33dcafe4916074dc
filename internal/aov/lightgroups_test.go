package aov

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLightGroupTag(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "LG_key", LightGroupTag("key"))
	assert.Equal(t, "C.*<L.'LG_key'>", LightGroupLPE("key"))
}

func TestIsManagedTag(t *testing.T) {
	t.Parallel()

	assert.True(t, IsManagedTag("LG_fill"))
	assert.False(t, IsManagedTag("artistTag"))
	assert.False(t, IsManagedTag(""))
}

func TestValidateLightGroups(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		groups  []LightGroup
		wantErr string
	}{
		{
			name: "valid groups",
			groups: []LightGroup{
				{Name: "key", Lights: []string{"/obj/key_light"}},
				{Name: "fill_2", Lights: []string{"/obj/fill_a", "/obj/fill_b"}},
			},
		},
		{
			name:    "empty name",
			groups:  []LightGroup{{Name: ""}},
			wantErr: "invalid light group name",
		},
		{
			name:    "name with spaces",
			groups:  []LightGroup{{Name: "key light"}},
			wantErr: "invalid light group name",
		},
		{
			name: "light in two groups",
			groups: []LightGroup{
				{Name: "key", Lights: []string{"/obj/key_light"}},
				{Name: "fill", Lights: []string{"/obj/key_light"}},
			},
			wantErr: "can only be in one group",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateLightGroups(tc.groups)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestValidateRenderName(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateRenderName("beautyA01"))

	err := ValidateRenderName("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not defined")

	err = ValidateRenderName("beauty_main")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not alphanumeric")
}
