// Package registry glues the declared configuration schema to a loaded
// site settings model.
//
// The Registry holds the integration's option declarations alongside the
// bindings a site configuration provides for them. During application
// startup it is populated and then validated, so that every mismatch
// between what the integration expects and what the site supplies is
// reported before any pipeline logic runs.
package registry
