package services

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/adsclient/internal/adapters/driven/soap"
	"github.com/custodia-labs/adsclient/internal/core/domain"
)

// newHTTPClient builds the base HTTP client shared by every client a factory creates.
func newHTTPClient(cfg domain.AppConfig) (*http.Client, error) {
	proxy, err := cfg.Proxy()
	if err != nil {
		return nil, err
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if proxy != nil {
		transport.Proxy = http.ProxyURL(proxy)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = domain.DefaultTimeout
	}

	return &http.Client{Transport: transport, Timeout: timeout}, nil
}

// newLimiter returns the throttle for cfg, or nil when throttling is off.
func newLimiter(cfg domain.AppConfig) *soap.RateLimiter {
	return soap.NewRateLimiter(cfg.RequestsPerSecond)
}

// NewUser creates a user reference with a fresh ID.
func NewUser(name string) *domain.User {
	return &domain.User{ID: uuid.NewString(), Name: name}
}

// serverOrDefault picks the first non-empty server and ends it with a slash.
func serverOrDefault(explicit, configured, fallback string) string {
	server := fallback
	switch {
	case explicit != "":
		server = explicit
	case configured != "":
		server = configured
	}
	if !strings.HasSuffix(server, "/") {
		server += "/"
	}
	return server
}
