// Package query filters, searches and sorts the in-memory catalog lists.
//
// Every function is pure: inputs are never mutated, results preserve the
// relative order of the input, and an empty result is a non-nil, zero-length
// slice. Unrecognized categories match nothing and unrecognized sort modes
// fall back to SortPopular, so no call returns an error.
package query
