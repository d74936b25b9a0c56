// Package dfp registers the DFP API service clients by version.
package dfp

import (
	"github.com/custodia-labs/adsclient/internal/apis"
	"github.com/custodia-labs/adsclient/internal/apis/dfp/v201605"
)

// Product names the DFP API.
const Product = "dfp"

// LatestVersion is the newest supported protocol version.
const LatestVersion = v201605.Version

var registry = newRegistry()

func newRegistry() *apis.Registry {
	r := apis.NewRegistry(Product)
	r.RegisterAll(v201605.Version, v201605.Builders)
	return r
}

// Registry returns the static DFP registration table.
func Registry() *apis.Registry {
	return registry
}
