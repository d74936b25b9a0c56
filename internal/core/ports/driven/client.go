package driven

import (
	"context"

	"github.com/custodia-labs/adsclient/internal/core/domain"
)

// Client is a constructed, ready-to-call service handle.
// The caller owns it exclusively once a factory returns it.
type Client interface {
	// URL returns the endpoint the client sends requests to.
	URL() string

	// User returns the identity the client was created for.
	User() *domain.User

	// BindingNamespace returns the XML namespace declared by the service binding.
	// Each generated service type returns a constant.
	BindingNamespace() string
}

// SupportsAuthHeader is implemented by clients that carry a user token and a
// request header. Services without the capability do not implement it and are
// left untouched by the factory.
type SupportsAuthHeader interface {
	Client

	// SetToken attaches the login token sent with every call.
	SetToken(token domain.UserToken)

	// Token returns the attached token, or nil if none was attached.
	Token() *domain.UserToken

	// SetRequestHeader attaches the request header sent with every call.
	SetRequestHeader(header *domain.RequestHeader)

	// RequestHeader returns the attached request header, or nil.
	RequestHeader() *domain.RequestHeader
}

// LoginService issues user tokens for a user name and password.
type LoginService interface {
	Client

	// Authenticate logs in and returns the user's profile with its token.
	Authenticate(ctx context.Context, userName, password string) (*domain.UserProfile, error)
}
