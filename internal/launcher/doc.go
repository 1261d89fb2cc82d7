// Package launcher hands control to the target command.
//
// On unix the launch is a true execve: the resolver's process image is
// replaced, so signals, the terminal, and the exit code all belong to the
// child with no supervision layer in between. Elsewhere the replacement
// is emulated with a supervised child whose exit code is propagated.
package launcher
