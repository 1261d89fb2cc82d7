// Package logger provides leveled logging for infisical-run.
//
// The logger supports multiple verbosity levels controlled by command-line
// flags. Output is formatted with semantic prefixes and colors.
//
// # Verbosity Levels
//
// Logging behavior is controlled by two flags:
//
//   - --verbose: Shows info messages
//   - --debug: Shows all messages including debug details
//
// Without flags, only warnings and errors are shown.
//
// # Usage
//
// Create a logger with the desired verbosity:
//
//	log := logger.Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Loaded %d variables from %s", count, path)
//
// The root command creates a logger in its PersistentPreRun and passes it
// into the run workflow. Resolved secret values are never logged, only
// variable names and counts.
package logger
