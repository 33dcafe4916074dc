package metadata

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/renderpipe/renderconf/internal/settings"
)

// Prefix is prepended to every site-configured metadata key when applied.
const Prefix = "rmd_"

// Keys written by the pipeline itself; site configuration may not claim them.
var reservedKeys = []string{"renderlightgroups", "postrendergroups"}

// validTypes are the value types a metadata entry may declare.
var validTypes = []string{"string", "int", "float"}

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// ValidateConfig checks every configured metadata entry and reports all
// violations at once: reserved keys, unknown value types, and keys outside
// the allowed character set.
func ValidateConfig(items []settings.MetadataItem) error {
	var errs []string

	for _, item := range items {
		lower := strings.ToLower(item.Key)
		for _, reserved := range reservedKeys {
			if lower == reserved {
				errs = append(errs, fmt.Sprintf("reserved metadata key %q was used", item.Key))
			}
		}

		if !keyPattern.MatchString(item.Key) {
			errs = append(errs, fmt.Sprintf("metadata key %q is invalid: only letters, numbers and underscores are allowed", item.Key))
		}

		if !validType(item.Type) {
			errs = append(errs, fmt.Sprintf("invalid metadata type for key %q: %q", item.Key, item.Type))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("metadata config validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func validType(t string) bool {
	for _, v := range validTypes {
		if t == v {
			return true
		}
	}
	return false
}
