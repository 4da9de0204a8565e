// Package bibliofind provides a small web front end for searching an
// article catalog with a large-language-model assistant. It loads a CSV
// catalog from a remote sheet or a local directory, caches it with a TTL,
// sends user questions to a completion API with the catalog as context,
// and renders the titles the model returns as HTML result cards.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., gemini/, sqlite/, http/).
package bibliofind
