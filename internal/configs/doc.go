// Package configs centralizes the configuration surface of infisical-run:
// the names of every environment variable the tool reads, the project
// config file (.infisical.json) discovery and parsing, and the truthiness
// rules for the already-loaded indicator variables.
//
// Every resolvable input follows the same ordering: flag, then environment
// variable, then project config file, then fallback. The project config
// file is entirely optional and parsed tolerantly; a missing file, missing
// fields, or even unparseable contents never fail an invocation.
package configs
