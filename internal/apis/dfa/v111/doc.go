// Package v111 contains the typed clients for version v1.11 of the DFA API.
// Clients of this version accept a user token but no RequestHeader.
package v111
