package aov

import (
	"fmt"
	"strings"
)

// Identifier names one of the fixed render output files.
type Identifier string

const (
	Beauty      Identifier = "Beauty"
	Shading     Identifier = "Shading"
	Lighting    Identifier = "Lighting"
	Utility     Identifier = "Utility"
	Deep        Identifier = "Deep"
	Cryptomatte Identifier = "Cryptomatte"
)

// Lower returns the identifier in the form used inside parameter names and
// output paths.
func (id Identifier) Lower() string {
	return strings.ToLower(string(id))
}

// Bitdepth of an output file.
type Bitdepth string

const (
	Half Bitdepth = "half"
	Full Bitdepth = "float"
)

// Compression of an output file.
type Compression string

const (
	ZIPS Compression = "zips"
	DWAA Compression = "dwaa"
)

// Evaluator supplies render-node parameter values. Implementations wrap
// whatever session actually holds the node; tests use a map.
type Evaluator interface {
	Int(parm string) int
	Bool(parm string) bool
	String(parm string) string
}

// Option is one selectable AOV toggle on an output file.
type Option struct {
	Key     string
	Name    string
	AOVs    []string
	Default bool
	Group   string
}

// ParmName returns the node parameter backing this option.
func (o Option) ParmName() string {
	if o.Group != "" {
		return o.Group + "_" + o.Key
	}
	return o.Key
}

// Active reports whether the option is enabled on the node.
func (o Option) Active(ev Evaluator) bool {
	return ev.Bool(o.ParmName())
}

// CustomAOV is a user-defined AOV with a light path expression.
type CustomAOV struct {
	Name string
	Type string
	LPE  string
}

// Format maps the custom AOV's type to the render var data format.
func (c CustomAOV) Format() string {
	switch c.Type {
	case "color":
		return "color3f"
	case "float":
		return "float"
	case "integer":
		return "int"
	case "vector", "normal", "point":
		return "color3f"
	}
	return ""
}

// File is one render output file and its AOV options.
type File struct {
	Identifier  Identifier
	AsRGBA      bool
	Bitdepth    Bitdepth
	Compression Compression
	Options     []Option
	Notes       map[string]string
	HasCustom   bool
	CanDenoise  bool
}

// AOVs returns every AOV the file can carry.
func (f File) AOVs() []string {
	var aovs []string
	for _, opt := range f.Options {
		aovs = append(aovs, opt.AOVs...)
	}
	return aovs
}

// ActiveAOVs returns the AOVs of every enabled option.
func (f File) ActiveAOVs(ev Evaluator) []string {
	var active []string
	for _, opt := range f.Options {
		if opt.Active(ev) {
			active = append(active, opt.AOVs...)
		}
	}
	return active
}

// InactiveAOVs returns the AOVs of every disabled option.
func (f File) InactiveAOVs(ev Evaluator) []string {
	var inactive []string
	for _, opt := range f.Options {
		if !opt.Active(ev) {
			inactive = append(inactive, opt.AOVs...)
		}
	}
	return inactive
}

// HasActiveAOVs reports whether any option of the file is enabled.
func (f File) HasActiveAOVs(ev Evaluator) bool {
	for _, opt := range f.Options {
		if opt.Active(ev) {
			return true
		}
	}
	return false
}

// HasActiveCustomAOVs reports whether the node defines any enabled custom
// AOV slot for this file.
func (f File) HasActiveCustomAOVs(ev Evaluator) bool {
	if !f.HasCustom {
		return false
	}
	count := ev.Int(f.Identifier.Lower() + "CustomAOVs")
	for i := 1; i <= count; i++ {
		if !ev.Bool(fmt.Sprintf("aov%sCustomDisable_%d", f.Identifier, i)) {
			return true
		}
	}
	return false
}

// ActiveCustomAOVs collects the enabled custom AOV slots, the light-group
// AOVs on the Lighting file and the tee AOVs on the Utility file. LOP and
// ROP networks spell light path expressions differently, so the caller
// states which one the node lives in.
func (f File) ActiveCustomAOVs(ev Evaluator, isLOP bool) ([]CustomAOV, error) {
	var aovs []CustomAOV

	if f.HasCustom {
		count := ev.Int(f.Identifier.Lower() + "CustomAOVs")
		for i := 1; i <= count; i++ {
			if ev.Bool(fmt.Sprintf("aov%sCustomDisable_%d", f.Identifier, i)) {
				continue
			}
			name := ev.String(fmt.Sprintf("aov%sCustomName_%d", f.Identifier, i))
			if strings.Contains(name, " ") {
				return nil, fmt.Errorf("a custom aov under %s has an invalid name: %q", f.Identifier, name)
			}
			aovs = append(aovs, CustomAOV{
				Name: name,
				Type: ev.String(fmt.Sprintf("aov%sCustomSource_%d", f.Identifier, i)),
				LPE:  ev.String(fmt.Sprintf("aov%sCustomLPE_%d", f.Identifier, i)),
			})
		}
	}

	if f.Identifier == Lighting {
		count := ev.Int("light_groups_select")
		for j := 1; j <= count; j++ {
			group := ev.String(fmt.Sprintf("light_group_name_%d", j))

			prefix := ""
			if !isLOP {
				prefix = "color lpe:"
			}
			aovs = append(aovs, CustomAOV{
				Name: LightGroupTag(group),
				Type: "color",
				LPE:  prefix + LightGroupLPE(group),
			})
		}
	}

	if f.Identifier == Utility {
		count := ev.Int("tees")
		for j := 1; j <= count; j++ {
			name := ev.String(fmt.Sprintf("teeName_%d", j))
			lpe := ""
			if isLOP {
				lpe = name
			}
			aovs = append(aovs, CustomAOV{
				Name: name,
				Type: ev.String(fmt.Sprintf("teeType_%d", j)),
				LPE:  lpe,
			})
		}
	}

	return aovs, nil
}

// ActiveFiles selects the output files a render of the given node will
// produce. It returns the number of distinct image products alongside;
// Cryptomatte renders through sample filters and does not count as one.
func ActiveFiles(ev Evaluator) (int, []File) {
	products := 0
	var active []File

	for _, file := range Catalog() {
		if file.HasActiveAOVs(ev) || file.HasActiveCustomAOVs(ev) {
			active = append(active, file)
			if file.Identifier != Cryptomatte {
				products++
			}
			continue
		}

		// Lighting earns its file from light groups alone.
		if file.Identifier == Lighting && ev.Int("light_groups_select") > 0 {
			active = append(active, file)
			products++
			continue
		}

		// Utility earns its file from tees alone.
		if file.Identifier == Utility && ev.Int("tees") > 0 {
			active = append(active, file)
			products++
			continue
		}
	}

	return products, active
}
