package v111

// Version is the protocol version these clients speak.
const Version = "v1.11"

// Namespace is the target namespace of every v1.11 service binding.
const Namespace = "http://www.doubleclick.net/dfa-api/v1.11"

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
}

// UserRecordSet is one page of users.
type UserRecordSet struct {
	Records              []User `xml:"records"`
	TotalNumberOfPages   int    `xml:"totalNumberOfPages"`
	TotalNumberOfRecords int    `xml:"totalNumberOfRecords"`
}
