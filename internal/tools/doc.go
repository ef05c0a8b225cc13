// Package tools provides command execution helpers for toolkit tools
// that shell out to the host.
//
// Ownership boundary:
// - command runner abstraction
//
// - local host execution
package tools
