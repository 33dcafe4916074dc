// Package settings defines the format-agnostic model of a site-provided
// configuration, along with the Loader interface for reading it from disk.
//
// The settings.Model is the single source of truth for the registry's
// parity validation and for the metadata and post-task pipelines. Concrete
// loaders, such as the HCL one, live in separate packages.
package settings
