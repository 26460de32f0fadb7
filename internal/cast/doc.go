// Package cast converts interpolated and argument values into the strings and
// integers the pattern builder works with.
//
// Integer inputs go through [safemath] so out-of-range values are rejected
// instead of silently truncated. Everything else goes through [cast].
package cast
