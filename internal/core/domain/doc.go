// Package domain defines the core types of the ads API client library.
//
// This package is the innermost layer of the hexagonal layout.
// It has NO external dependencies and defines the fundamental types:
//
//   - ServiceSignature: identifies a remote service and protocol version
//   - AppConfig: per-application settings (credentials, servers, proxy)
//   - UserToken: the cached login token attached to service clients
//   - HeaderMap: authentication and application headers
//   - RequestHeader: the SOAP request header sent with each call
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
