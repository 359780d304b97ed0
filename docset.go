// Package docset indexes a directory tree of versioned, localized markdown
// documentation and answers queries for the pages of one version and locale.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, yaml/, slog/).
package docset
