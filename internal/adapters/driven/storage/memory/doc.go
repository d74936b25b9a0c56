// Package memory provides in-memory implementations of driven port interfaces
// for tests and for running without a config file.
package memory
