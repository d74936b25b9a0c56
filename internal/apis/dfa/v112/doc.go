// Package v112 contains the typed clients for version v1.12 of the DFA API.
//
// Every service type reports its WSDL target namespace through
// BindingNamespace so the factory can bind the RequestHeader to it.
package v112
