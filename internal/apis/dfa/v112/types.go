package v112

// Version is the protocol version these clients speak.
const Version = "v1.12"

// Namespace is the target namespace of every v1.12 service binding.
const Namespace = "http://www.doubleclick.net/dfa-api/v1.12"

// UserSearchCriteria filters users returned by UserRemoteService.
type UserSearchCriteria struct {
	PageSize     int    `xml:"pageSize"`
	PageNumber   int    `xml:"pageNumber,omitempty"`
	SearchString string `xml:"searchString,omitempty"`
}

// User is a DFA user record.
type User struct {
	ID           int64  `xml:"id"`
	Name         string `xml:"name"`
	Email        string `xml:"email"`
	NetworkID    int64  `xml:"networkId"`
	SubnetworkID int64  `xml:"subnetworkId"`
	UserGroupID  int64  `xml:"userGroupId"`
	Active       bool   `xml:"active"`
}

// UserRecordSet is one page of users.
type UserRecordSet struct {
	Records              []User `xml:"records"`
	TotalNumberOfPages   int    `xml:"totalNumberOfPages"`
	TotalNumberOfRecords int    `xml:"totalNumberOfRecords"`
}

// SpotlightActivityType is a category of spotlight activity.
type SpotlightActivityType struct {
	ID   int64  `xml:"id"`
	Name string `xml:"name"`
}

// ReportStatus is the processing state of a report.
type ReportStatus struct {
	ID   int64  `xml:"id"`
	Name string `xml:"name"`
}

// ReportInfo describes a report run.
type ReportInfo struct {
	ReportID int64        `xml:"reportId"`
	QueryID  int64        `xml:"queryId"`
	Name     string       `xml:"name"`
	Status   ReportStatus `xml:"status"`
	URL      string       `xml:"url"`
}

// ReportRequest selects a report run.
type ReportRequest struct {
	ReportID int64 `xml:"reportId"`
	QueryID  int64 `xml:"queryId,omitempty"`
}
