package services

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/custodia-labs/adsclient/internal/adapters/driven/soap"
	"github.com/custodia-labs/adsclient/internal/apis"
	"github.com/custodia-labs/adsclient/internal/apis/dfp"
	"github.com/custodia-labs/adsclient/internal/core/domain"
	"github.com/custodia-labs/adsclient/internal/core/ports/driven"
	"github.com/custodia-labs/adsclient/internal/core/ports/driving"
	"github.com/custodia-labs/adsclient/internal/logger"
)

// Ensure DfpServiceFactory implements the interface.
var _ driving.ServiceFactory = (*DfpServiceFactory)(nil)

// DfpProduct prefixes the library signature in DFP request headers.
const DfpProduct = "DfpApi"

// DfpScope is the OAuth2 scope for the DFP API.
const DfpScope = "https://www.googleapis.com/auth/dfp"

// DfpOption configures a DfpServiceFactory.
type DfpOption func(*DfpServiceFactory)

// WithOAuth2Endpoint overrides the Google token endpoint.
func WithOAuth2Endpoint(endpoint oauth2.Endpoint) DfpOption {
	return func(f *DfpServiceFactory) {
		f.endpoint = endpoint
	}
}

// DfpServiceFactory creates DFP service clients authorised with OAuth2 bearer tokens.
//
// It keeps one token source, which holds the single cached access token and
// refreshes it when it expires. The refresh made by CreateService honours the
// caller's context. SetHeaders replaces the source. It is not safe
// for concurrent use.
type DfpServiceFactory struct {
	config      domain.AppConfig
	registry    *apis.Registry
	baseClient  *http.Client
	limiter     *soap.RateLimiter
	endpoint    oauth2.Endpoint
	headers     domain.HeaderMap
	tokenSource oauth2.TokenSource
}

// NewDfpServiceFactory creates a factory for cfg.
func NewDfpServiceFactory(cfg domain.AppConfig, opts ...DfpOption) (*DfpServiceFactory, error) {
	httpClient, err := newHTTPClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("create dfp factory: %w", err)
	}

	f := &DfpServiceFactory{
		config:     cfg,
		registry:   dfp.Registry(),
		baseClient: httpClient,
		limiter:    newLimiter(cfg),
		endpoint:   google.Endpoint,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.SetHeaders(f.ReadHeadersFromConfig(cfg))
	return f, nil
}

// CreateService builds a DFP client for signature at
// {server}apis/ads/publisher/{version}/{serviceName}.
//
// An access token is obtained before the client is returned, so credential
// problems surface here as *domain.AuthenticationError.
func (f *DfpServiceFactory) CreateService(
	ctx context.Context,
	signature domain.ServiceSignature,
	user *domain.User,
	serverURL string,
) (driven.Client, error) {
	if user == nil {
		return nil, fmt.Errorf("%w: user is nil", domain.ErrInvalidInput)
	}
	sig, err := dfpSignature(signature)
	if err != nil {
		return nil, err
	}

	build, err := f.registry.Lookup(sig.Version(), sig.ServiceName())
	if err != nil {
		return nil, err
	}

	if _, err := f.tokenContext(ctx); err != nil {
		return nil, &domain.AuthenticationError{Cause: err}
	}

	server := serverOrDefault(serverURL, f.config.DfpServer, domain.DefaultDfpServer)
	url := server + "apis/ads/publisher/" + sig.Version() + "/" + sig.ServiceName()
	client := build(url, user, soap.Options{
		HTTPClient: f.bearerClient(ctx),
		Limiter:    f.limiter,
	})

	if authClient, ok := client.(driven.SupportsAuthHeader); ok {
		header := &domain.RequestHeader{NetworkCode: f.headers.Value(domain.HeaderNetworkCode)}
		if appName, ok := f.headers.Get(domain.HeaderApplicationName); ok {
			header.ApplicationName = f.config.Signature(DfpProduct) + "|" + appName
		}
		authClient.SetRequestHeader(header)
		setRequestHeaderNamespace(authClient)
	}

	logger.Debug("dfp: created %s at %s", sig, url)
	return client, nil
}

// SetHeaders replaces the active headers and rebuilds the token source.
func (f *DfpServiceFactory) SetHeaders(headers domain.HeaderMap) {
	f.headers = headers.Clone()
	f.tokenSource = f.newTokenSource()
}

// Headers returns a copy of the active headers.
func (f *DfpServiceFactory) Headers() domain.HeaderMap {
	return f.headers.Clone()
}

// ReadHeadersFromConfig returns networkCode and applicationName from cfg,
// plus the OAuth2 access token as authToken when one is configured.
func (f *DfpServiceFactory) ReadHeadersFromConfig(cfg domain.AppConfig) domain.HeaderMap {
	headers := domain.HeaderMap{
		domain.HeaderNetworkCode:     cfg.NetworkCode,
		domain.HeaderApplicationName: cfg.ApplicationName,
	}
	if cfg.OAuth2.AccessToken != "" {
		headers[domain.HeaderAuthToken] = cfg.OAuth2.AccessToken
	}
	return headers
}

// Config returns the configuration the factory was created with.
func (f *DfpServiceFactory) Config() domain.AppConfig {
	return f.config
}

// newTokenSource returns a static source for an explicit authToken header,
// otherwise a refreshing source for the configured refresh token.
func (f *DfpServiceFactory) newTokenSource() oauth2.TokenSource {
	if token := f.headers.Value(domain.HeaderAuthToken); token != "" {
		return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
	}

	return &refreshTokenSource{
		conf: &oauth2.Config{
			ClientID:     f.config.OAuth2.ClientID,
			ClientSecret: f.config.OAuth2.ClientSecret,
			Endpoint:     f.endpoint,
			Scopes:       []string{DfpScope},
		},
		client:       f.baseClient,
		refreshToken: f.config.OAuth2.RefreshToken,
	}
}

// tokenContext fetches the current token, aborting a refresh when ctx ends.
func (f *DfpServiceFactory) tokenContext(ctx context.Context) (*oauth2.Token, error) {
	if src, ok := f.tokenSource.(*refreshTokenSource); ok {
		return src.TokenContext(ctx)
	}
	return f.tokenSource.Token()
}

// refreshTokenSource holds the factory's single cached access token and
// refreshes it with the configured refresh token once it expires.
type refreshTokenSource struct {
	conf   *oauth2.Config
	client *http.Client

	mu           sync.Mutex
	refreshToken string
	token        *oauth2.Token
}

// Token is called by the bearer transport. Refreshes there are bounded by
// the base client's timeout.
func (s *refreshTokenSource) Token() (*oauth2.Token, error) {
	return s.TokenContext(context.Background())
}

// TokenContext returns the cached token while it is valid, otherwise
// refreshes it with a request bound to ctx.
func (s *refreshTokenSource) TokenContext(ctx context.Context) (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token.Valid() {
		return s.token, nil
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.client)
	token, err := s.conf.TokenSource(ctx, &oauth2.Token{RefreshToken: s.refreshToken}).Token()
	if err != nil {
		return nil, err
	}
	if token.RefreshToken != "" {
		s.refreshToken = token.RefreshToken
	}
	s.token = token
	logger.Debug("dfp: refreshed access token")
	return token, nil
}

// bearerClient wraps the base client's transport with the factory's token source.
func (f *DfpServiceFactory) bearerClient(ctx context.Context) *http.Client {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, f.baseClient)
	client := oauth2.NewClient(ctx, f.tokenSource)
	client.Timeout = f.baseClient.Timeout
	return client
}

func dfpSignature(signature domain.ServiceSignature) (*domain.DfpServiceSignature, error) {
	if signature == nil {
		return nil, fmt.Errorf("%w: signature is nil", domain.ErrInvalidInput)
	}
	sig, ok := signature.(*domain.DfpServiceSignature)
	if !ok {
		return nil, &domain.TypeMismatchError{
			Expected: "*domain.DfpServiceSignature",
			Actual:   fmt.Sprintf("%T", signature),
		}
	}
	if sig == nil {
		return nil, fmt.Errorf("%w: signature is nil", domain.ErrInvalidInput)
	}
	return sig, nil
}
