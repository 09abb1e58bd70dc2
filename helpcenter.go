// Package helpcenter provides the search and listing logic behind a static
// help-center site: incremental substring search over a small article index,
// listing-page filtering and sorting, table-of-contents generation, theme
// preference and article feedback.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, lipgloss/).
package helpcenter
