// Package ui provides semantic text formatting for CLI output.
//
// Formatters carry meaning, not just color: Code for runnable commands,
// Path for files, Highlight for user-supplied values, and so on. When
// color is unavailable (NO_COLOR, dumb terminal, piped output) each
// formatter falls back to a plain-text decoration that preserves the
// distinction, e.g. backticks around commands.
//
// All resolver status output goes to the resolver's own stdio before the
// child command is launched; nothing here writes after the exec handoff.
package ui
