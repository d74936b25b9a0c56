package v111

import (
	"context"
	"encoding/xml"

	"github.com/custodia-labs/adsclient/internal/adapters/driven/soap"
	"github.com/custodia-labs/adsclient/internal/core/domain"
)

// UserRemoteService manages DFA users.
type UserRemoteService struct {
	*soap.AuthClient
}

// NewUserRemoteService creates a user service client for url.
func NewUserRemoteService(url string, user *domain.User, opts soap.Options) *UserRemoteService {
	return &UserRemoteService{AuthClient: soap.NewAuthClient(url, user, opts)}
}

// BindingNamespace returns the service's target namespace.
func (s *UserRemoteService) BindingNamespace() string { return Namespace }

type getUsersByCriteria struct {
	XMLName  xml.Name           `xml:"http://www.doubleclick.net/dfa-api/v1.11 getUsersByCriteria"`
	Criteria UserSearchCriteria `xml:"userSearchCriteria"`
}

type getUsersByCriteriaResponse struct {
	Return UserRecordSet `xml:"getUsersByCriteriaReturn"`
}

// GetUsersByCriteria returns the page of users matching criteria.
func (s *UserRemoteService) GetUsersByCriteria(ctx context.Context, criteria UserSearchCriteria) (*UserRecordSet, error) {
	var resp getUsersByCriteriaResponse
	if err := s.Call(ctx, "getUsersByCriteria", &getUsersByCriteria{Criteria: criteria}, &resp); err != nil {
		return nil, err
	}
	return &resp.Return, nil
}
