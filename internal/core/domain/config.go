package domain

import (
	"fmt"
	"net/url"
	"runtime"
	"time"
)

// LibraryVersion is reported in the request header application name.
const LibraryVersion = "1.0.0"

// Default server and transport settings.
const (
	DefaultDfaServer = "https://advertisersapi.doubleclick.net/"
	DefaultDfpServer = "https://ads.google.com/"
	DefaultTimeout   = 100 * time.Second
)

// OAuth2Config holds the installed-app OAuth2 credentials used by DFP.
type OAuth2Config struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	// AccessToken, when set, is used as the bearer token instead of refreshing.
	AccessToken string
}

// AppConfig holds per-application settings. It is loaded once when a factory is
// created and treated as read-only afterwards.
type AppConfig struct {
	// UserName and Password are the DFA login credentials.
	UserName string
	Password string

	// AuthToken, when set, is used directly instead of logging in.
	AuthToken string

	// ApplicationName identifies the calling application in request headers.
	ApplicationName string

	// DfaServer is the DFA API server, including the trailing slash.
	DfaServer string

	// DfpServer is the DFP API server, including the trailing slash.
	DfpServer string

	// NetworkCode is the DFP network the requests act on.
	NetworkCode string

	// OAuth2 holds DFP OAuth2 credentials.
	OAuth2 OAuth2Config

	// ProxyURL routes API traffic through an HTTP proxy. Empty means no proxy.
	ProxyURL string

	// Timeout bounds each HTTP request.
	Timeout time.Duration

	// RequestsPerSecond throttles outgoing calls. Zero disables throttling.
	RequestsPerSecond float64
}

// DefaultAppConfig returns a config with server and transport defaults filled in.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DfaServer: DefaultDfaServer,
		DfpServer: DefaultDfpServer,
		Timeout:   DefaultTimeout,
	}
}

// Proxy parses ProxyURL. It returns nil when no proxy is configured.
func (c AppConfig) Proxy() (*url.URL, error) {
	if c.ProxyURL == "" {
		return nil, nil
	}
	u, err := url.Parse(c.ProxyURL)
	if err != nil {
		return nil, fmt.Errorf("%w: proxy url: %v", ErrInvalidInput, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: proxy url %q must be absolute", ErrInvalidInput, c.ProxyURL)
	}
	return u, nil
}

// Signature returns the library signature prefixed to the application name,
// e.g. "DfaApi-Go/1.0.0|go1.24.0|linux".
func (c AppConfig) Signature(product string) string {
	return fmt.Sprintf("%s-Go/%s|%s|%s", product, LibraryVersion, runtime.Version(), runtime.GOOS)
}
