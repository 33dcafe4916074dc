// This file reads render-node parameter snapshots, the second kind of HCL
// input the tool accepts. A snapshot is a flat file of parameter = value
// attributes mirroring the node's parm names.

package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/renderpipe/renderconf/internal/aov"
	"github.com/renderpipe/renderconf/internal/ctxlog"
)

// NodeParms is a render node's parameter snapshot. It implements
// aov.Evaluator; absent parameters read as zero values, matching a node
// whose toggles were never touched.
type NodeParms struct {
	ints  map[string]int
	bools map[string]bool
	strs  map[string]string
}

// Int returns the integer parameter's value, or 0 when unset.
func (n *NodeParms) Int(parm string) int { return n.ints[parm] }

// Bool returns the toggle parameter's value, or false when unset.
func (n *NodeParms) Bool(parm string) bool { return n.bools[parm] }

// String returns the string parameter's value, or "" when unset.
func (n *NodeParms) String(parm string) string { return n.strs[parm] }

// LoadNode reads a node parameter snapshot from an HCL file. Attribute
// types map directly onto the evaluator: bools to toggles, numbers to
// integer parameters, strings to string parameters.
func (l *Loader) LoadNode(ctx context.Context, path string) (aov.Evaluator, error) {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse node parameter file %s: %w", path, diags)
	}

	body, ok := hclFile.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("node parameter file %s is not native HCL syntax", path)
	}

	parms := &NodeParms{
		ints:  make(map[string]int),
		bools: make(map[string]bool),
		strs:  make(map[string]string),
	}

	for name, attr := range body.Attributes {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to evaluate node parameter %q: %w", name, diags)
		}

		switch val.Type() {
		case cty.Bool:
			parms.bools[name] = val.True()
		case cty.Number:
			n, _ := val.AsBigFloat().Int64()
			parms.ints[name] = int(n)
		case cty.String:
			parms.strs[name] = val.AsString()
		default:
			return nil, fmt.Errorf("node parameter %q has unsupported type %s", name, val.Type().FriendlyName())
		}
	}

	logger.Debug("Node parameters loaded.", "path", path, "count", len(body.Attributes))
	return parms, nil
}
