// Package catalog holds the read-only reference data behind the dashboard:
// challenges, community events, marketplace products and the sample user
// profile.
//
// Every category-like attribute is a closed enum type with an explicit
// Unknown member. Parse functions never fail; labels outside the domain map
// to Unknown so downstream lookups stay total.
//
// Collections are returned as fresh copies. Callers may reorder or truncate
// what they receive without affecting any other caller.
package catalog
