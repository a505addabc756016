// Package utils provides the coercion helpers used when reading upstream content.
//
// Upstream entries carry no enforced schema, so every field read goes through one of
// these functions: unknown shape in, coerced and defaulted value out. None of them
// return errors; malformed input degrades to the empty string, the supplied numeric
// fallback, or an empty object.
package utils
