package driving

import (
	"context"

	"github.com/custodia-labs/adsclient/internal/core/domain"
	"github.com/custodia-labs/adsclient/internal/core/ports/driven"
)

// ServiceFactory creates authenticated service clients for one API product.
//
// Implementations cache at most one auth token and are not safe for concurrent
// use: callers sharing a factory across goroutines must serialise CreateService
// and SetHeaders.
type ServiceFactory interface {
	// CreateService builds a client for the given signature and user.
	// An empty serverURL selects the configured server.
	CreateService(ctx context.Context, signature domain.ServiceSignature, user *domain.User, serverURL string) (driven.Client, error)

	// SetHeaders replaces the active headers and invalidates the cached token.
	SetHeaders(headers domain.HeaderMap)

	// Headers returns a copy of the active headers.
	Headers() domain.HeaderMap

	// ReadHeadersFromConfig derives the headers for this product from config.
	ReadHeadersFromConfig(cfg domain.AppConfig) domain.HeaderMap

	// Config returns the configuration the factory was created with.
	Config() domain.AppConfig
}
