// Package metadata validates and assembles the render metadata (RMD)
// entries attached to rendered frames.
//
// Site-configured entries are validated against the integration's rules
// (reserved keys, allowed value types, key character set) and then
// assembled into the final item list: each configured key gains the fixed
// "rmd_" prefix, group membership is collected into a JSON group map, and
// the pipeline's fixed entries (colorspace, post-render groups, used
// publish versions) are appended.
package metadata
