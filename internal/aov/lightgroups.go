package aov

import (
	"fmt"
	"regexp"
	"strings"
)

// lightGroupPrefix marks AOVs and LPE tags the integration manages itself,
// so user-authored tags survive a light-group rebuild.
const lightGroupPrefix = "LG_"

var (
	groupNamePattern  = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	renderNamePattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)
)

// LightGroupTag returns the managed LPE tag for a light group.
func LightGroupTag(group string) string {
	return lightGroupPrefix + group
}

// LightGroupLPE returns the light path expression selecting the group's
// contribution.
func LightGroupLPE(group string) string {
	return fmt.Sprintf("C.*<L.'%s'>", LightGroupTag(group))
}

// IsManagedTag reports whether an LPE tag was written by the integration.
// Only managed tags are cleared when light groups are rebuilt.
func IsManagedTag(tag string) bool {
	return strings.HasPrefix(tag, lightGroupPrefix)
}

// LightGroup is a named selection of lights rendered into its own AOV.
type LightGroup struct {
	Name   string
	Lights []string
}

// ValidateLightGroups checks group names against the allowed character set
// and rejects lights assigned to more than one group.
func ValidateLightGroups(groups []LightGroup) error {
	assigned := make(map[string]string)

	for _, group := range groups {
		if !groupNamePattern.MatchString(group.Name) {
			return fmt.Errorf("invalid light group name %q: only letters, numbers and underscores are allowed", group.Name)
		}
		for _, light := range group.Lights {
			if other, ok := assigned[light]; ok {
				return fmt.Errorf("light %q is in groups %q and %q: a light can only be in one group", light, other, group.Name)
			}
			assigned[light] = group.Name
		}
	}
	return nil
}

// ValidateRenderName checks the render name a node was given before any
// paths are derived from it.
func ValidateRenderName(name string) error {
	if name == "" {
		return fmt.Errorf("name is not defined, set the name parameter before submitting")
	}
	if !renderNamePattern.MatchString(name) {
		return fmt.Errorf("name %q is not alphanumeric, only use letters (a-z) and numbers (0-9)", name)
	}
	return nil
}
