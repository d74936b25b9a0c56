package v111

import (
	"github.com/custodia-labs/adsclient/internal/adapters/driven/soap"
	"github.com/custodia-labs/adsclient/internal/apis"
	"github.com/custodia-labs/adsclient/internal/core/domain"
	"github.com/custodia-labs/adsclient/internal/core/ports/driven"
)

// Signatures of the services in this version.
var (
	LoginRemoteServiceSignature = domain.NewDfaServiceSignature(Version, "LoginRemoteService")
	UserRemoteServiceSignature  = domain.NewDfaServiceSignature(Version, "UserRemoteService")
)

// Builders maps each service name to its constructor.
var Builders = map[string]apis.Builder{
	"LoginRemoteService": func(url string, user *domain.User, opts soap.Options) driven.Client {
		return NewLoginRemoteService(url, user, opts)
	},
	"UserRemoteService": func(url string, user *domain.User, opts soap.Options) driven.Client {
		return NewUserRemoteService(url, user, opts)
	},
}
