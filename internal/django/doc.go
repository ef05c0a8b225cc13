// Package django owns the Django-specific toolkit extension.
//
// Ownership boundary:
// - Django dev-dependency additions to the manifest and tool providers
//
// - stubs compatibility patch
//
// - one-time minimal settings bootstrap for isolated test runs
package django
