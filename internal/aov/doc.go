// Package aov models the render output files the integration produces and
// the AOVs each one carries.
//
// The catalog mirrors the RenderMan node's fixed output layout: Beauty,
// Shading, Lighting, Utility, Deep and Cryptomatte files, each with its
// bit depth, compression and selectable AOV options. Which options are
// active on a given node is read through the Evaluator interface, so the
// package stays independent of any particular host session.
package aov
