package domain

import (
	"errors"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAppConfig(t *testing.T) {
	cfg := DefaultAppConfig()

	assert.Equal(t, DefaultDfaServer, cfg.DfaServer)
	assert.Equal(t, DefaultDfpServer, cfg.DfpServer)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Empty(t, cfg.ProxyURL)
}

func TestAppConfig_Proxy(t *testing.T) {
	cfg := AppConfig{ProxyURL: "http://proxy.local:3128"}

	u, err := cfg.Proxy()

	require.NoError(t, err)
	assert.Equal(t, "proxy.local:3128", u.Host)
}

func TestAppConfig_Proxy_Empty(t *testing.T) {
	u, err := AppConfig{}.Proxy()

	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestAppConfig_Proxy_Invalid(t *testing.T) {
	for _, raw := range []string{"proxy.local", "://bad"} {
		t.Run(raw, func(t *testing.T) {
			_, err := AppConfig{ProxyURL: raw}.Proxy()
			assert.True(t, errors.Is(err, ErrInvalidInput))
		})
	}
}

func TestAppConfig_Signature(t *testing.T) {
	sig := AppConfig{}.Signature("DfaApi")

	assert.True(t, strings.HasPrefix(sig, "DfaApi-Go/"+LibraryVersion+"|"))
	assert.Contains(t, sig, runtime.Version())
	assert.True(t, strings.HasSuffix(sig, "|"+runtime.GOOS))
}
