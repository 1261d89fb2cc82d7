// Package dotenv loads KEY=VALUE files into variable sets.
//
// Parsing (including shell-compatible quoting and escaping) is delegated
// to github.com/joho/godotenv. What this package adds is the two absence
// contracts the resolver needs: the default .env file silently no-ops
// when missing, while a file named on the command line fails the run.
package dotenv
