// Package soap implements the document/literal SOAP 1.1 transport used by the
// generated DFA and DFP service clients.
//
// # Clients
//
// Client sends envelopes to a single endpoint URL on behalf of a user.
// AuthClient embeds Client and adds the two header blocks the ads APIs expect:
//
//   - a WS-Security UsernameToken carrying the DFA user token
//   - a RequestHeader serialized in the namespace of the target service
//
// Generated services embed one of the two and declare their binding namespace:
//
//	type UserRemoteService struct {
//	    *soap.AuthClient
//	}
//
//	func (s *UserRemoteService) BindingNamespace() string { return Namespace }
//
// # Errors
//
// Every failed call is reported as domain.ErrRemoteCall wrapping the cause:
// a *Fault when the server answered with a SOAP fault, a *googleapi.Error for
// any other non-2xx status. Calls are never retried.
package soap
