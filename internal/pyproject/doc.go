// Package pyproject owns the dependency declaration data model.
//
// Ownership boundary:
// - version specifier shape (bare string or qualified table)
//
// - ordered dependency-name to specifier mapping primitives
//
// - manifest fragment rendering and manifest reading
package pyproject
