// Package rig owns the provider contracts consumed by the scaffolding
// toolkit.
//
// Ownership boundary:
// - config-file and tool provider interfaces
//
// - provider registry primitives
//
// - dependency merge primitives (append for lists, upsert for mappings)
//
// - the toolkit's base providers and standard dev-dependency set
package rig
