package services

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/custodia-labs/adsclient/internal/adapters/driven/soap"
	"github.com/custodia-labs/adsclient/internal/apis"
	"github.com/custodia-labs/adsclient/internal/apis/dfa"
	"github.com/custodia-labs/adsclient/internal/core/domain"
	"github.com/custodia-labs/adsclient/internal/core/ports/driven"
	"github.com/custodia-labs/adsclient/internal/core/ports/driving"
	"github.com/custodia-labs/adsclient/internal/logger"
)

// Ensure DfaServiceFactory implements the interface.
var _ driving.ServiceFactory = (*DfaServiceFactory)(nil)

// DfaProduct prefixes the library signature in DFA request headers.
const DfaProduct = "DfaApi"

// Versions above this one accept a RequestHeader.
var requestHeaderMinVersion = big.NewRat(111, 100)

// DfaServiceFactory creates DFA service clients.
//
// It caches one login token, obtained on the first non-login CreateService
// and reused until SetHeaders replaces the headers. It is not safe for
// concurrent use.
type DfaServiceFactory struct {
	config   domain.AppConfig
	registry *apis.Registry
	options  soap.Options
	headers  domain.HeaderMap
	token    *domain.UserToken
}

// NewDfaServiceFactory creates a factory for cfg. Its headers start as
// ReadHeadersFromConfig(cfg).
func NewDfaServiceFactory(cfg domain.AppConfig) (*DfaServiceFactory, error) {
	httpClient, err := newHTTPClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("create dfa factory: %w", err)
	}

	f := &DfaServiceFactory{
		config:   cfg,
		registry: dfa.Registry(),
		options: soap.Options{
			HTTPClient: httpClient,
			Limiter:    newLimiter(cfg),
		},
	}
	f.headers = f.ReadHeadersFromConfig(cfg)
	return f, nil
}

// CreateService builds a DFA client for signature.
//
// The login service is returned bare. Every other service gets the cached
// token, logging in first if there is none, and for versions above v1.11 a
// RequestHeader in the service's namespace.
func (f *DfaServiceFactory) CreateService(
	ctx context.Context,
	signature domain.ServiceSignature,
	user *domain.User,
	serverURL string,
) (driven.Client, error) {
	if user == nil {
		return nil, fmt.Errorf("%w: user is nil", domain.ErrInvalidInput)
	}
	sig, err := dfaSignature(signature)
	if err != nil {
		return nil, err
	}

	version, err := sig.VersionNumber()
	if err != nil {
		return nil, err
	}

	client, err := f.createServiceWithoutAuthHeaders(sig, user, serverURL)
	if err != nil {
		return nil, err
	}
	if sig.IsLogin() {
		return client, nil
	}

	if f.token == nil {
		logger.Debug("dfa: no cached token, logging in for %s", sig)
		token, err := f.GetAuthenticationToken(ctx, sig, user, serverURL)
		if err != nil {
			return nil, err
		}
		f.token = &token
	} else {
		logger.Debug("dfa: reusing cached token for %s", sig)
	}

	authClient, ok := client.(driven.SupportsAuthHeader)
	if !ok {
		logger.Warn("dfa: %s (%T) cannot carry auth headers; returned without token", sig, client)
		return client, nil
	}
	authClient.SetToken(*f.token)

	if version.Cmp(requestHeaderMinVersion) > 0 {
		header := &domain.RequestHeader{}
		if appName, ok := f.headers.Get(domain.HeaderApplicationName); ok {
			header.ApplicationName = f.config.Signature(DfaProduct) + "|" + appName
		}
		authClient.SetRequestHeader(header)
		setRequestHeaderNamespace(authClient)
	}

	logger.Debug("dfa: created %s at %s", sig, client.URL())
	return client, nil
}

// GetAuthenticationToken returns the token for the active headers.
//
// A non-empty authToken header is used as is. Otherwise the login service of
// the same version is called with the userName and password headers. Any
// failure is reported as *domain.AuthenticationError.
func (f *DfaServiceFactory) GetAuthenticationToken(
	ctx context.Context,
	signature *domain.DfaServiceSignature,
	user *domain.User,
	serverURL string,
) (domain.UserToken, error) {
	if token := f.headers.Value(domain.HeaderAuthToken); token != "" {
		return domain.UserToken{UserName: f.headers.Value(domain.HeaderUserName), Token: token}, nil
	}
	if signature == nil {
		return domain.UserToken{}, &domain.AuthenticationError{
			Cause: fmt.Errorf("%w: signature is nil", domain.ErrInvalidInput),
		}
	}

	loginSignature := domain.NewDfaServiceSignature(signature.Version(), domain.LoginServiceName)
	client, err := f.createServiceWithoutAuthHeaders(loginSignature, user, serverURL)
	if err != nil {
		return domain.UserToken{}, &domain.AuthenticationError{Cause: err}
	}

	login, ok := client.(driven.LoginService)
	if !ok {
		return domain.UserToken{}, &domain.AuthenticationError{Cause: &domain.TypeMismatchError{
			Expected: "driven.LoginService",
			Actual:   fmt.Sprintf("%T", client),
		}}
	}

	profile, err := login.Authenticate(ctx, f.headers.Value(domain.HeaderUserName), f.headers.Value(domain.HeaderPassword))
	if err != nil {
		return domain.UserToken{}, &domain.AuthenticationError{Cause: err}
	}
	if profile == nil || profile.Token == "" {
		return domain.UserToken{}, &domain.AuthenticationError{Cause: errors.New("login returned no token")}
	}

	logger.Debug("dfa: logged in as %s", profile.Name)
	return profile.UserToken(), nil
}

// SetHeaders replaces the active headers and drops the cached token.
func (f *DfaServiceFactory) SetHeaders(headers domain.HeaderMap) {
	f.headers = headers.Clone()
	f.token = nil
}

// Headers returns a copy of the active headers.
func (f *DfaServiceFactory) Headers() domain.HeaderMap {
	return f.headers.Clone()
}

// ReadHeadersFromConfig returns userName, password and applicationName from
// cfg, plus authToken when one is configured.
func (f *DfaServiceFactory) ReadHeadersFromConfig(cfg domain.AppConfig) domain.HeaderMap {
	headers := domain.HeaderMap{
		domain.HeaderUserName:        cfg.UserName,
		domain.HeaderPassword:        cfg.Password,
		domain.HeaderApplicationName: cfg.ApplicationName,
	}
	if cfg.AuthToken != "" {
		headers[domain.HeaderAuthToken] = cfg.AuthToken
	}
	return headers
}

// Config returns the configuration the factory was created with.
func (f *DfaServiceFactory) Config() domain.AppConfig {
	return f.config
}

// createServiceWithoutAuthHeaders builds the raw client at
// {server}{version}/api/dfa-api/{endpoint}.
func (f *DfaServiceFactory) createServiceWithoutAuthHeaders(
	sig *domain.DfaServiceSignature,
	user *domain.User,
	serverURL string,
) (driven.Client, error) {
	build, err := f.registry.Lookup(sig.Version(), sig.ServiceName())
	if err != nil {
		return nil, err
	}

	server := serverOrDefault(serverURL, f.config.DfaServer, domain.DefaultDfaServer)
	url := server + sig.Version() + "/api/" + dfa.Product + "-api/" + sig.Endpoint()
	return build(url, user, f.options), nil
}

func dfaSignature(signature domain.ServiceSignature) (*domain.DfaServiceSignature, error) {
	if signature == nil {
		return nil, fmt.Errorf("%w: signature is nil", domain.ErrInvalidInput)
	}
	sig, ok := signature.(*domain.DfaServiceSignature)
	if !ok {
		return nil, &domain.TypeMismatchError{
			Expected: "*domain.DfaServiceSignature",
			Actual:   fmt.Sprintf("%T", signature),
		}
	}
	if sig == nil {
		return nil, fmt.Errorf("%w: signature is nil", domain.ErrInvalidInput)
	}
	return sig, nil
}

// setRequestHeaderNamespace binds the client's request header to the
// client's binding namespace. Clients without a request header are left as is.
func setRequestHeaderNamespace(client driven.Client) {
	authClient, ok := client.(driven.SupportsAuthHeader)
	if !ok {
		return
	}
	if header := authClient.RequestHeader(); header != nil {
		header.TargetNamespace = client.BindingNamespace()
	}
}
