package v112

import (
	"context"
	"encoding/xml"

	"github.com/custodia-labs/adsclient/internal/adapters/driven/soap"
	"github.com/custodia-labs/adsclient/internal/core/domain"
)

// ReportRemoteService runs and fetches reports. Its endpoint is "Reporting",
// which differs from the default derived from the service name.
type ReportRemoteService struct {
	*soap.AuthClient
}

// ReportEndpoint is the path the report service is served under.
const ReportEndpoint = "Reporting"

// NewReportRemoteService creates a report service client for url.
func NewReportRemoteService(url string, user *domain.User, opts soap.Options) *ReportRemoteService {
	return &ReportRemoteService{AuthClient: soap.NewAuthClient(url, user, opts)}
}

// BindingNamespace returns the service's target namespace.
func (s *ReportRemoteService) BindingNamespace() string { return Namespace }

type getReport struct {
	XMLName xml.Name      `xml:"http://www.doubleclick.net/dfa-api/v1.12 getReport"`
	Request ReportRequest `xml:"reportRequest"`
}

type getReportResponse struct {
	Return ReportInfo `xml:"getReportReturn"`
}

// GetReport returns the state of a report run.
func (s *ReportRemoteService) GetReport(ctx context.Context, request ReportRequest) (*ReportInfo, error) {
	var resp getReportResponse
	if err := s.Call(ctx, "getReport", &getReport{Request: request}, &resp); err != nil {
		return nil, err
	}
	return &resp.Return, nil
}
