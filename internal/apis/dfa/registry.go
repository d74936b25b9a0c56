// Package dfa registers the DFA API service clients by version.
package dfa

import (
	"github.com/custodia-labs/adsclient/internal/apis"
	"github.com/custodia-labs/adsclient/internal/apis/dfa/v111"
	"github.com/custodia-labs/adsclient/internal/apis/dfa/v112"
)

// Product is the path segment naming the DFA API ("{server}{version}/api/dfa-api/...").
const Product = "dfa"

// LatestVersion is the newest supported protocol version.
const LatestVersion = v112.Version

var registry = newRegistry()

func newRegistry() *apis.Registry {
	r := apis.NewRegistry(Product)
	r.RegisterAll(v111.Version, v111.Builders)
	r.RegisterAll(v112.Version, v112.Builders)
	return r
}

// Registry returns the static DFA registration table.
func Registry() *apis.Registry {
	return registry
}
