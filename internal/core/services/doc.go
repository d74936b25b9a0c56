// Package services implements the driving port interfaces.
//
// The service factories here turn a signature and a user into a ready-to-call
// client: they resolve the endpoint, acquire the auth token once per factory
// and attach the request header bound to the service's namespace.
package services
