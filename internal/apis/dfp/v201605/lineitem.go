package v201605

import (
	"context"
	"encoding/xml"

	"github.com/custodia-labs/adsclient/internal/adapters/driven/soap"
	"github.com/custodia-labs/adsclient/internal/core/domain"
)

// LineItemService reads line items.
type LineItemService struct {
	*soap.AuthClient
}

// NewLineItemService creates a line item service client for url.
func NewLineItemService(url string, user *domain.User, opts soap.Options) *LineItemService {
	return &LineItemService{AuthClient: soap.NewAuthClient(url, user, opts)}
}

// BindingNamespace returns the service's target namespace.
func (s *LineItemService) BindingNamespace() string { return Namespace }

type getLineItemsByStatement struct {
	XMLName   xml.Name  `xml:"https://www.google.com/apis/ads/publisher/v201605 getLineItemsByStatement"`
	Statement Statement `xml:"filterStatement"`
}

type getLineItemsByStatementResponse struct {
	Return LineItemPage `xml:"rval"`
}

// GetLineItemsByStatement returns the page of line items selected by the statement.
func (s *LineItemService) GetLineItemsByStatement(ctx context.Context, filter Statement) (*LineItemPage, error) {
	var resp getLineItemsByStatementResponse
	if err := s.Call(ctx, "getLineItemsByStatement", &getLineItemsByStatement{Statement: filter}, &resp); err != nil {
		return nil, err
	}
	return &resp.Return, nil
}
