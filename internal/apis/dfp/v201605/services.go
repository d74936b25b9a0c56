package v201605

import (
	"github.com/custodia-labs/adsclient/internal/adapters/driven/soap"
	"github.com/custodia-labs/adsclient/internal/apis"
	"github.com/custodia-labs/adsclient/internal/core/domain"
	"github.com/custodia-labs/adsclient/internal/core/ports/driven"
)

// LineItemServiceSignature identifies LineItemService in this version.
var LineItemServiceSignature = domain.NewDfpServiceSignature(Version, "LineItemService")

// Builders maps each service name to its constructor.
var Builders = map[string]apis.Builder{
	"LineItemService": func(url string, user *domain.User, opts soap.Options) driven.Client {
		return NewLineItemService(url, user, opts)
	},
}
