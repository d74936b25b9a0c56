// Package driving defines the interfaces that callers use to drive the core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The CLI and library users depend on them; core services implement them.
//
//   - ServiceFactory: creates authenticated service clients
//
// # Import Rules
//
//   - Can Import: domain and driven packages
//   - Cannot Import: Any adapter package
package driving
