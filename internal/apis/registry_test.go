package apis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/adsclient/internal/adapters/driven/soap"
	"github.com/custodia-labs/adsclient/internal/core/domain"
	"github.com/custodia-labs/adsclient/internal/core/ports/driven"
)

type stubClient struct {
	*soap.Client
}

func (stubClient) BindingNamespace() string { return "urn:stub" }

func stubBuilder(url string, user *domain.User, opts soap.Options) driven.Client {
	return stubClient{soap.NewClient(url, user, opts)}
}

func TestRegistry_LookupRegistered(t *testing.T) {
	r := NewRegistry("dfa")
	r.Register("v1.12", "UserRemoteService", stubBuilder)

	b, err := r.Lookup("v1.12", "UserRemoteService")

	require.NoError(t, err)
	client := b("http://host/x", &domain.User{ID: "1"}, soap.Options{})
	assert.Equal(t, "http://host/x", client.URL())
	assert.Equal(t, "urn:stub", client.BindingNamespace())
}

func TestRegistry_LookupUnknown(t *testing.T) {
	r := NewRegistry("dfa")
	r.Register("v1.12", "UserRemoteService", stubBuilder)

	tests := []struct {
		name        string
		version     string
		serviceName string
	}{
		{"unknown version", "v9.99", "UserRemoteService"},
		{"unknown service", "v1.12", "NoSuchService"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Lookup(tt.version, tt.serviceName)
			assert.True(t, errors.Is(err, domain.ErrUnsupportedType))
			assert.Contains(t, err.Error(), "dfa service")
		})
	}
}

func TestRegistry_VersionsAndServices(t *testing.T) {
	r := NewRegistry("dfa")
	r.RegisterAll("v1.12", map[string]Builder{
		"UserRemoteService":  stubBuilder,
		"LoginRemoteService": stubBuilder,
	})
	r.Register("v1.11", "LoginRemoteService", stubBuilder)

	assert.Equal(t, "dfa", r.Product())
	assert.Equal(t, []string{"v1.11", "v1.12"}, r.Versions())
	assert.Equal(t, []string{"LoginRemoteService", "UserRemoteService"}, r.Services("v1.12"))
	assert.Empty(t, r.Services("v0"))
}
