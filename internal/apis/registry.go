// Package apis holds the static registration tables that map a protocol
// version and service name to the generated client type serving it.
//
// Each generated version package exports its builders; the product packages
// (dfa, dfp) collect them into a Registry. Lookups never use reflection.
package apis

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/adsclient/internal/adapters/driven/soap"
	"github.com/custodia-labs/adsclient/internal/core/domain"
	"github.com/custodia-labs/adsclient/internal/core/ports/driven"
)

// Builder constructs a raw client for url. The returned client has no token
// or request header attached yet.
type Builder func(url string, user *domain.User, opts soap.Options) driven.Client

// Registry maps (version, service name) to a Builder for one API product.
type Registry struct {
	product  string
	services map[string]map[string]Builder
}

// NewRegistry creates an empty registry for product (e.g. "dfa").
func NewRegistry(product string) *Registry {
	return &Registry{
		product:  product,
		services: make(map[string]map[string]Builder),
	}
}

// Register adds a builder for a service in a version.
func (r *Registry) Register(version, serviceName string, builder Builder) {
	if r.services[version] == nil {
		r.services[version] = make(map[string]Builder)
	}
	r.services[version][serviceName] = builder
}

// RegisterAll adds every builder of a version package.
func (r *Registry) RegisterAll(version string, builders map[string]Builder) {
	for name, b := range builders {
		r.Register(version, name, b)
	}
}

// Lookup returns the builder for a service. Unknown pairs return ErrUnsupportedType.
func (r *Registry) Lookup(version, serviceName string) (Builder, error) {
	b, ok := r.services[version][serviceName]
	if !ok {
		return nil, fmt.Errorf("%w: %s service %s/%s", domain.ErrUnsupportedType, r.product, version, serviceName)
	}
	return b, nil
}

// Product returns the product the registry serves.
func (r *Registry) Product() string {
	return r.product
}

// Versions returns all registered versions in sorted order.
func (r *Registry) Versions() []string {
	versions := make([]string, 0, len(r.services))
	for v := range r.services {
		versions = append(versions, v)
	}
	sort.Strings(versions)
	return versions
}

// Services returns the service names registered for version in sorted order.
func (r *Registry) Services(version string) []string {
	names := make([]string, 0, len(r.services[version]))
	for name := range r.services[version] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
