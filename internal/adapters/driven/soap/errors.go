package soap

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/api/googleapi"
)

// Fault is a SOAP 1.1 fault returned by a service.
type Fault struct {
	Code   string      `xml:"faultcode"`
	String string      `xml:"faultstring"`
	Actor  string      `xml:"faultactor,omitempty"`
	Detail FaultDetail `xml:"detail"`
}

// FaultDetail keeps the raw detail element, which is service specific.
type FaultDetail struct {
	Raw string `xml:",innerxml"`
}

func (f *Fault) Error() string {
	return fmt.Sprintf("soap: fault %s: %s", f.Code, f.String)
}

// IsFault returns true if the error carries a SOAP fault.
func IsFault(err error) bool {
	var fault *Fault
	return errors.As(err, &fault)
}

// IsUnauthorized returns true if the error indicates rejected credentials.
// DFA reports bad tokens as faults mentioning an authentication exception.
func IsUnauthorized(err error) bool {
	var fault *Fault
	if errors.As(err, &fault) {
		return strings.Contains(fault.String, "Authentication") ||
			strings.Contains(fault.Detail.Raw, "AuthenticationException")
	}
	return hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden returns true if the error indicates insufficient permissions.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

// IsNotFound returns true if the endpoint does not exist.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

func hasStatus(err error, code int) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == code
	}
	return false
}

func statusError(resp *http.Response, body []byte) error {
	return &googleapi.Error{
		Code:    resp.StatusCode,
		Message: http.StatusText(resp.StatusCode),
		Body:    string(body),
		Header:  resp.Header,
	}
}
