// Package workflows orchestrates environment resolution for the run
// command, independent of CLI concerns like flag parsing, spinners, and
// output formatting.
//
// The cmd/ package is a thin layer that parses flags, calls Run, formats
// the outcome, and hands the resolved environment to the launcher.
// Everything between — the re-entrancy guard, the skip decision, the
// two-phase default dotenv load, the secrets fetch, extra-file merging,
// and the shell-snapshot reapply — lives here, against an injected
// secrets.Client so the whole precedence contract is testable with a
// fake.
//
// Run returns typed errors from the internal/errors package; callers use
// errors.Is() to pick a user-facing message.
package workflows
