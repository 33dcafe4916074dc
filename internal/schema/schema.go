package schema

import (
	"fmt"
	"strings"
)

// OptionType identifies the shape of a configuration option.
type OptionType string

const (
	// TypeTemplate options reference a named path template by name. The
	// referenced template must bind the option's required fields.
	TypeTemplate OptionType = "template"
	// TypeList options carry repeated items, each conforming to the
	// option's item schema.
	TypeList OptionType = "list"
	// TypeString options carry a single plain string value.
	TypeString OptionType = "string"
)

// EngineHoudini is the only host engine this integration supports.
const EngineHoudini = "tk-houdini"

// FieldSpec names a template token the bound template must carry.
type FieldSpec struct {
	Name     string
	Optional bool
}

// Option declares a single recognized configuration option.
type Option struct {
	Name        string
	Type        OptionType
	Description string

	// Fields lists the template tokens a template option requires. Only
	// meaningful for TypeTemplate. Templates may carry further free tokens
	// beyond the ones listed here.
	Fields []FieldSpec

	// ItemSchema lists the sub-keys each item of a list option must carry,
	// all string-typed. Only meaningful for TypeList.
	ItemSchema []string

	// AllowsEmpty permits the option to be absent or empty in a site
	// configuration.
	AllowsEmpty bool
}

// RequiredFields returns the names of the non-optional template fields.
func (o Option) RequiredFields() []string {
	var req []string
	for _, f := range o.Fields {
		if !f.Optional {
			req = append(req, f.Name)
		}
	}
	return req
}

// Manifest is the full configuration declaration of the integration,
// including the descriptive metadata the hosting runtime reads at load time.
type Manifest struct {
	DisplayName      string
	Description      string
	SupportedEngines []string
	Options          []Option
}

// Option looks up a declared option by name.
func (m Manifest) Option(name string) (Option, bool) {
	for _, o := range m.Options {
		if o.Name == name {
			return o, true
		}
	}
	return Option{}, false
}

// Validate checks the internal consistency of the declaration: unique
// option names, template options enumerating at least one required field
// including context, list options carrying a non-empty item schema, and
// exactly one supported engine. It accumulates all violations into a
// single error.
func (m Manifest) Validate() error {
	var errs []string

	if len(m.SupportedEngines) != 1 {
		errs = append(errs, fmt.Sprintf("manifest must declare exactly one supported engine, got %d", len(m.SupportedEngines)))
	}

	seen := make(map[string]struct{})
	for _, o := range m.Options {
		if _, dup := seen[o.Name]; dup {
			errs = append(errs, fmt.Sprintf("option %q is declared more than once", o.Name))
		}
		seen[o.Name] = struct{}{}

		switch o.Type {
		case TypeTemplate:
			required := o.RequiredFields()
			if len(required) == 0 {
				errs = append(errs, fmt.Sprintf("template option %q must enumerate at least one required field", o.Name))
				continue
			}
			hasContext := false
			for _, f := range required {
				if f == "context" {
					hasContext = true
				}
			}
			if !hasContext {
				errs = append(errs, fmt.Sprintf("template option %q must require the 'context' field", o.Name))
			}
		case TypeList:
			if len(o.ItemSchema) == 0 {
				errs = append(errs, fmt.Sprintf("list option %q must declare an item schema", o.Name))
			}
		case TypeString:
			// no structural constraints beyond the name
		default:
			errs = append(errs, fmt.Sprintf("option %q has unknown type %q", o.Name, o.Type))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("schema validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
