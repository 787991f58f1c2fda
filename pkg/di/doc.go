// Package di wires the command dependencies with samber/do.
//
// A Runtime holds the modules that register providers. Each command invocation gets its own
// injector, so state never leaks between commands or tests.
package di
