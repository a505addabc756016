// Package transform maps raw upstream entries to canonical snapshot records.
//
// Each transformer is a pure function of one fetch payload. Cardinality is 1:1 and
// response order is preserved: an entry with missing or malformed fields still yields
// a record, filled with safe defaults (empty string, empty list, zero).
//
// Slugs come from the explicit slug field, else the slugified display name, else the
// entry id; the result is always lower-case letters, digits and hyphens.
package transform
