package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/adsclient/internal/core/domain"
	"github.com/custodia-labs/adsclient/internal/core/ports/driven"
)

// Config keys for application settings.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	KeyApplicationName    = "application_name"
	KeyDfaUserName        = "dfa.user_name"
	KeyDfaPassword        = "dfa.password"
	KeyDfaAuthToken       = "dfa.auth_token"
	KeyDfaServer          = "dfa.server"
	KeyDfpServer          = "dfp.server"
	KeyDfpNetworkCode     = "dfp.network_code"
	KeyOAuth2ClientID     = "oauth2.client_id"
	KeyOAuth2ClientSecret = "oauth2.client_secret"
	KeyOAuth2RefreshToken = "oauth2.refresh_token"
	KeyOAuth2AccessToken  = "oauth2.access_token"
	KeyProxyURL           = "proxy.url"
	KeyHTTPTimeout        = "http.timeout_seconds"
	KeyHTTPRequestsPerSec = "http.requests_per_second"
)

// SecretKeys are masked when settings are displayed.
var SecretKeys = map[string]bool{
	KeyDfaPassword:        true,
	KeyDfaAuthToken:       true,
	KeyOAuth2ClientSecret: true,
	KeyOAuth2RefreshToken: true,
	KeyOAuth2AccessToken:  true,
}

var knownKeys = []string{
	KeyApplicationName, KeyDfaUserName, KeyDfaPassword, KeyDfaAuthToken, KeyDfaServer,
	KeyDfpServer, KeyDfpNetworkCode, KeyOAuth2ClientID, KeyOAuth2ClientSecret,
	KeyOAuth2RefreshToken, KeyOAuth2AccessToken, KeyProxyURL, KeyHTTPTimeout, KeyHTTPRequestsPerSec,
}

// ConfigService maps the config store onto domain.AppConfig.
type ConfigService struct {
	configStore driven.ConfigStore
}

// NewConfigService creates a new config service.
func NewConfigService(configStore driven.ConfigStore) *ConfigService {
	return &ConfigService{configStore: configStore}
}

// LoadAppConfig reads the application config from store.
func LoadAppConfig(store driven.ConfigStore) (domain.AppConfig, error) {
	return NewConfigService(store).Get()
}

// Get builds the application config, filling unset values with defaults.
func (s *ConfigService) Get() (domain.AppConfig, error) {
	cfg := domain.DefaultAppConfig()

	cfg.ApplicationName = s.configStore.GetString(KeyApplicationName)
	cfg.UserName = s.configStore.GetString(KeyDfaUserName)
	cfg.Password = s.configStore.GetString(KeyDfaPassword)
	cfg.AuthToken = s.configStore.GetString(KeyDfaAuthToken)
	cfg.DfaServer = s.getServer(KeyDfaServer, cfg.DfaServer)
	cfg.DfpServer = s.getServer(KeyDfpServer, cfg.DfpServer)
	cfg.NetworkCode = s.getNetworkCode()
	cfg.OAuth2 = domain.OAuth2Config{
		ClientID:     s.configStore.GetString(KeyOAuth2ClientID),
		ClientSecret: s.configStore.GetString(KeyOAuth2ClientSecret),
		RefreshToken: s.configStore.GetString(KeyOAuth2RefreshToken),
		AccessToken:  s.configStore.GetString(KeyOAuth2AccessToken),
	}
	cfg.ProxyURL = s.configStore.GetString(KeyProxyURL)

	if secs := s.configStore.GetInt(KeyHTTPTimeout); secs > 0 {
		cfg.Timeout = time.Duration(secs) * time.Second
	}

	rps := s.configStore.GetFloat(KeyHTTPRequestsPerSec)
	if rps < 0 {
		return cfg, fmt.Errorf("%w: %s must not be negative", domain.ErrInvalidInput, KeyHTTPRequestsPerSec)
	}
	cfg.RequestsPerSecond = rps

	if _, err := cfg.Proxy(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Set validates and stores a single setting given as text, as typed on the command line.
func (s *ConfigService) Set(key, value string) error {
	var stored any = value

	switch key {
	case KeyHTTPTimeout:
		secs, err := strconv.Atoi(value)
		if err != nil || secs < 0 {
			return fmt.Errorf("%w: %s must be a non-negative integer", domain.ErrInvalidInput, key)
		}
		stored = int64(secs)
	case KeyHTTPRequestsPerSec:
		rps, err := strconv.ParseFloat(value, 64)
		if err != nil || rps < 0 {
			return fmt.Errorf("%w: %s must be a non-negative number", domain.ErrInvalidInput, key)
		}
		stored = rps
	case KeyProxyURL:
		if _, err := (domain.AppConfig{ProxyURL: value}).Proxy(); err != nil {
			return err
		}
	default:
		if !isKnownKey(key) {
			return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
		}
	}

	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns every setting name in sorted order.
func (s *ConfigService) Keys() []string {
	return ConfigKeys()
}

// ConfigKeys returns every setting name in sorted order.
func ConfigKeys() []string {
	keys := append([]string(nil), knownKeys...)
	sort.Strings(keys)
	return keys
}

// Path returns where settings are stored.
func (s *ConfigService) Path() string {
	return s.configStore.Path()
}

func (s *ConfigService) getServer(key, fallback string) string {
	server := s.configStore.GetString(key)
	if server == "" {
		return fallback
	}
	if !strings.HasSuffix(server, "/") {
		server += "/"
	}
	return server
}

// getNetworkCode accepts the code as a TOML string or integer.
func (s *ConfigService) getNetworkCode() string {
	val, ok := s.configStore.Get(KeyDfpNetworkCode)
	if !ok {
		return ""
	}
	switch v := val.(type) {
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}

func isKnownKey(key string) bool {
	for _, k := range knownKeys {
		if k == key {
			return true
		}
	}
	return false
}
