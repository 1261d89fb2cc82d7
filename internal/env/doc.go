// Package env provides the variable-set value type threaded through
// environment resolution.
//
// The resolver never mutates the real process environment while it works.
// Instead it captures a snapshot once, clones it, and merges each source
// into the clone in precedence order. The final Set is only materialized
// into a process environment when the child command is launched, which
// keeps the merge order auditable and testable without touching os.Setenv.
package env
