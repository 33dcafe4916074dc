package metadata

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/zclconf/go-cty/cty"

	"github.com/renderpipe/renderconf/internal/settings"
)

// Fixed pipeline-side entries.
const (
	colorspaceKey   = "colorspace"
	colorspaceValue = "ACES - ACEScg"
	groupsKey       = Prefix + "PostRenderGroups"
	versionsKey     = Prefix + "UsedPublishVersions"
)

// Item is a fully assembled metadata entry as applied to a render. A Value
// wrapped in backticks is a channel expression, anything else a constant.
type Item struct {
	Key   string
	Type  string
	Value string
}

// IsExpression reports whether the item's value is a channel expression.
func (i Item) IsExpression() bool {
	return len(i.Value) >= 2 && i.Value[0] == '`' && i.Value[len(i.Value)-1] == '`'
}

// PublishedVersion describes a publish referenced by the scene, recorded so
// renders can be traced back to the exact inputs they were made with.
type PublishedVersion struct {
	Name          string `json:"name"`
	Type          string `json:"type"`
	Version       int    `json:"version"`
	LatestVersion int    `json:"latest_version"`
	Published     bool   `json:"published"`
}

// Assemble builds the final metadata item list from the validated site
// configuration. Configured keys gain the rmd_ prefix, expressions are
// carried backtick-wrapped, and group membership is encoded into the
// rmd_PostRenderGroups JSON map. The versions list, when present, is
// recorded under rmd_UsedPublishVersions.
func Assemble(cfg []settings.MetadataItem, versions []PublishedVersion) ([]Item, error) {
	items := []Item{
		{Key: colorspaceKey, Type: "string", Value: colorspaceValue},
	}

	groups := make(map[string][]string)
	for _, md := range cfg {
		key := Prefix + md.Key

		value := md.Value
		if md.Expression != "" {
			value = "`" + md.Expression + "`"
		}
		items = append(items, Item{Key: key, Type: md.Type, Value: value})

		// Ungrouped entries are still recorded, under the empty group name.
		groups[md.Group] = append(groups[md.Group], key)
	}

	groupsJSON, err := json.Marshal(groups)
	if err != nil {
		return nil, fmt.Errorf("failed to encode metadata group map: %w", err)
	}
	items = append(items, Item{Key: groupsKey, Type: "string", Value: string(groupsJSON)})

	if len(versions) > 0 {
		versionsJSON, err := json.Marshal(versions)
		if err != nil {
			return nil, fmt.Errorf("failed to encode used publish versions: %w", err)
		}
		items = append(items, Item{Key: versionsKey, Type: "string", Value: string(versionsJSON)})
	}

	return items, nil
}

// chRefPattern matches the opening of a Houdini channel-reference call,
// e.g. ch("name") or chsop('path').
var chRefPattern = regexp.MustCompile(`(ch[a-z]*)\((["'])`)

// RewriteExpression rebases channel references in a metadata expression one
// node up, so expressions authored against the render node evaluate from
// the embedded metadata node.
func RewriteExpression(expr string) string {
	return chRefPattern.ReplaceAllString(expr, `$1($2../`)
}

// CtyType maps a metadata value type to its cty equivalent.
func CtyType(mdType string) (cty.Type, error) {
	switch mdType {
	case "string":
		return cty.String, nil
	case "int", "float":
		return cty.Number, nil
	default:
		return cty.NilType, fmt.Errorf("unknown metadata type %q", mdType)
	}
}

// TypedValue converts a constant metadata entry into a cty.Value of its
// declared type. Expression entries cannot be typed until render time and
// are rejected.
func TypedValue(item settings.MetadataItem) (cty.Value, error) {
	if item.Expression != "" {
		return cty.NilVal, fmt.Errorf("metadata key %q holds an expression, not a constant", item.Key)
	}

	switch item.Type {
	case "string":
		return cty.StringVal(item.Value), nil
	case "int":
		n, err := strconv.ParseInt(item.Value, 10, 64)
		if err != nil {
			return cty.NilVal, fmt.Errorf("metadata key %q: value %q is not an int", item.Key, item.Value)
		}
		return cty.NumberIntVal(n), nil
	case "float":
		f, err := strconv.ParseFloat(item.Value, 64)
		if err != nil {
			return cty.NilVal, fmt.Errorf("metadata key %q: value %q is not a float", item.Key, item.Value)
		}
		return cty.NumberFloatVal(f), nil
	default:
		return cty.NilVal, fmt.Errorf("unknown metadata type %q", item.Type)
	}
}
