// Package naming provides consistent naming functions for launched resources.
//
// Instance names follow the pattern {prefix}-{yyyymmdd}-{hhmmss} in UTC so
// every launch gets a fresh, sortable, hostname-safe display name.
package naming
