// Package schema declares the configuration contract of the RenderMan
// render-submission integration: the set of named options a site
// configuration must supply, their shapes, and the invariants the
// declaration itself must hold.
//
// The declaration is static. It is built once via Default() at application
// startup, validated, and never mutated afterwards. Validation of a
// site-provided settings model against this schema lives in the registry
// package.
package schema
