package v112

import (
	"context"
	"encoding/xml"

	"github.com/custodia-labs/adsclient/internal/adapters/driven/soap"
	"github.com/custodia-labs/adsclient/internal/core/domain"
)

// SpotlightRemoteService exposes spotlight configuration.
type SpotlightRemoteService struct {
	*soap.AuthClient
}

// NewSpotlightRemoteService creates a spotlight service client for url.
func NewSpotlightRemoteService(url string, user *domain.User, opts soap.Options) *SpotlightRemoteService {
	return &SpotlightRemoteService{AuthClient: soap.NewAuthClient(url, user, opts)}
}

// BindingNamespace returns the service's target namespace.
func (s *SpotlightRemoteService) BindingNamespace() string { return Namespace }

type getSpotlightActivityTypes struct {
	XMLName xml.Name `xml:"http://www.doubleclick.net/dfa-api/v1.12 getSpotlightActivityTypes"`
}

type getSpotlightActivityTypesResponse struct {
	Return []SpotlightActivityType `xml:"getSpotlightActivityTypesReturn"`
}

// GetSpotlightActivityTypes lists all spotlight activity types.
func (s *SpotlightRemoteService) GetSpotlightActivityTypes(ctx context.Context) ([]SpotlightActivityType, error) {
	var resp getSpotlightActivityTypesResponse
	if err := s.Call(ctx, "getSpotlightActivityTypes", &getSpotlightActivityTypes{}, &resp); err != nil {
		return nil, err
	}
	return resp.Return, nil
}
