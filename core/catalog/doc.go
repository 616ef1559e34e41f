// Package catalog loads the list of selectable report templates. The catalog
// is reference data: fetched once per owning screen, never cached across
// mounts, and never mutated by the client.
//
// Template selection is caller-local state. The selected id is handed to the
// upload orchestrator as-is; the server is the authority on whether it names
// a real template.
package catalog
