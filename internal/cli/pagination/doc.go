// Package pagination provides the shared --limit/--offset/--page/--page-size
// handling for list commands.
//
// Offset-based (--limit, --offset) and page-based (--page, --page-size)
// modes are mutually exclusive. Apply slices any list and NewPaginationMeta
// describes the result for JSON output.
package pagination
