// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and adapters implement them.
//
//   - Client: a constructed service handle
//   - SupportsAuthHeader: clients that carry a token and request header
//   - LoginService: the service that issues user tokens
//   - ConfigStore: application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or generated service package
package driven
