package v112

import (
	"context"
	"encoding/xml"

	"github.com/custodia-labs/adsclient/internal/adapters/driven/soap"
	"github.com/custodia-labs/adsclient/internal/core/domain"
)

// LoginRemoteService issues user tokens. It is called without auth headers.
type LoginRemoteService struct {
	*soap.Client
}

// NewLoginRemoteService creates a login client for url.
func NewLoginRemoteService(url string, user *domain.User, opts soap.Options) *LoginRemoteService {
	return &LoginRemoteService{Client: soap.NewClient(url, user, opts)}
}

// BindingNamespace returns the service's target namespace.
func (s *LoginRemoteService) BindingNamespace() string { return Namespace }

type authenticate struct {
	XMLName  xml.Name `xml:"http://www.doubleclick.net/dfa-api/v1.12 authenticate"`
	Username string   `xml:"username"`
	Password string   `xml:"password"`
}

type authenticateResponse struct {
	Return domain.UserProfile `xml:"authenticateReturn"`
}

// Authenticate exchanges a user name and password for a user profile carrying a token.
func (s *LoginRemoteService) Authenticate(ctx context.Context, userName, password string) (*domain.UserProfile, error) {
	var resp authenticateResponse
	req := authenticate{Username: userName, Password: password}
	if err := s.Call(ctx, "authenticate", &req, &resp); err != nil {
		return nil, err
	}
	return &resp.Return, nil
}
