package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/adsclient/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/adsclient/internal/core/domain"
)

func TestConfigService_Get_ReturnsDefaults(t *testing.T) {
	cfg, err := LoadAppConfig(memory.NewConfigStore())

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppConfig(), cfg)
}

func TestConfigService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStoreFrom(map[string]any{
		KeyApplicationName:    "reporting-tool",
		KeyDfaUserName:        "alice",
		KeyDfaPassword:        "secret",
		KeyDfaAuthToken:       "tok",
		KeyDfaServer:          "https://dfa.example",
		KeyDfpServer:          "https://dfp.example/",
		KeyDfpNetworkCode:     int64(1234),
		KeyOAuth2ClientID:     "cid",
		KeyOAuth2ClientSecret: "cs",
		KeyOAuth2RefreshToken: "rt",
		KeyOAuth2AccessToken:  "at",
		KeyProxyURL:           "http://proxy:3128",
		KeyHTTPTimeout:        int64(30),
		KeyHTTPRequestsPerSec: 2.5,
	})

	cfg, err := NewConfigService(store).Get()

	require.NoError(t, err)
	assert.Equal(t, domain.AppConfig{
		UserName:          "alice",
		Password:          "secret",
		AuthToken:         "tok",
		ApplicationName:   "reporting-tool",
		DfaServer:         "https://dfa.example/",
		DfpServer:         "https://dfp.example/",
		NetworkCode:       "1234",
		OAuth2:            domain.OAuth2Config{ClientID: "cid", ClientSecret: "cs", RefreshToken: "rt", AccessToken: "at"},
		ProxyURL:          "http://proxy:3128",
		Timeout:           30 * time.Second,
		RequestsPerSecond: 2.5,
	}, cfg)
}

func TestConfigService_Get_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
	}{
		{"relative proxy", KeyProxyURL, "proxy:3128"},
		{"negative rate", KeyHTTPRequestsPerSec, -1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStoreFrom(map[string]any{tt.key: tt.value})
			_, err := LoadAppConfig(store)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		})
	}
}

func TestConfigService_Set(t *testing.T) {
	store := memory.NewConfigStore()
	svc := NewConfigService(store)

	require.NoError(t, svc.Set(KeyDfaUserName, "bob"))
	require.NoError(t, svc.Set(KeyHTTPTimeout, "45"))
	require.NoError(t, svc.Set(KeyHTTPRequestsPerSec, "0.5"))
	require.NoError(t, svc.Set(KeyProxyURL, "http://proxy:8080"))

	cfg, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, "bob", cfg.UserName)
	assert.Equal(t, 45*time.Second, cfg.Timeout)
	assert.Equal(t, 0.5, cfg.RequestsPerSecond)
	assert.Equal(t, "http://proxy:8080", cfg.ProxyURL)
	assert.Equal(t, ":memory:", svc.Path())
}

func TestConfigService_Set_Rejects(t *testing.T) {
	svc := NewConfigService(memory.NewConfigStore())

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown key", "dfa.nope", "x"},
		{"non-numeric timeout", KeyHTTPTimeout, "soon"},
		{"negative timeout", KeyHTTPTimeout, "-1"},
		{"non-numeric rate", KeyHTTPRequestsPerSec, "fast"},
		{"relative proxy", KeyProxyURL, "proxy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Set(tt.key, tt.value)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		})
	}
}

func TestConfigService_Keys(t *testing.T) {
	keys := NewConfigService(memory.NewConfigStore()).Keys()

	assert.Len(t, keys, 14)
	assert.IsIncreasing(t, keys)
	for key := range SecretKeys {
		assert.Contains(t, keys, key)
	}
}
