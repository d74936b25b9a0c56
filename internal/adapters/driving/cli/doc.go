// Package cli implements the adsclient command line.
//
// Commands are registered on rootCmd from init functions. Services are
// package-level so tests can swap them before executing a command.
package cli
