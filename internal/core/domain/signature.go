package domain

import (
	"fmt"
	"math/big"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ServiceSignature identifies a remote service and the protocol version to talk to.
type ServiceSignature interface {
	// ServiceName is the name of the remote service (e.g. "UserRemoteService").
	ServiceName() string
	// Version is the protocol version (e.g. "v1.12", "v201605").
	Version() string
	// Endpoint is the path segment the service is served under.
	Endpoint() string
}

// LoginServiceName is the DFA service that issues user tokens.
const LoginServiceName = "LoginRemoteService"

const remoteServiceSuffix = "RemoteService"

// DfaServiceSignature identifies a DFA API service. Immutable once built.
type DfaServiceSignature struct {
	serviceName string
	version     string
	endpoint    string
}

// NewDfaServiceSignature creates a DFA signature whose endpoint is derived from the
// service name: "SpotlightRemoteService" is served under "spotlight".
func NewDfaServiceSignature(version, serviceName string) *DfaServiceSignature {
	return &DfaServiceSignature{
		serviceName: serviceName,
		version:     version,
		endpoint:    dfaEndpoint(serviceName),
	}
}

// NewDfaServiceSignatureWithEndpoint creates a DFA signature with an explicit endpoint path.
func NewDfaServiceSignatureWithEndpoint(version, serviceName, endpoint string) *DfaServiceSignature {
	return &DfaServiceSignature{
		serviceName: serviceName,
		version:     version,
		endpoint:    endpoint,
	}
}

// ServiceName returns the service name.
func (s *DfaServiceSignature) ServiceName() string { return s.serviceName }

// Version returns the protocol version.
func (s *DfaServiceSignature) Version() string { return s.version }

// Endpoint returns the endpoint path segment.
func (s *DfaServiceSignature) Endpoint() string { return s.endpoint }

// IsLogin returns true if the signature names the login service.
func (s *DfaServiceSignature) IsLogin() bool {
	return s.serviceName == LoginServiceName
}

// VersionNumber parses the version without its leading "v" as an exact decimal.
// "v1.12" yields 1.12; "v1.9" yields 1.9, which compares greater than 1.11.
func (s *DfaServiceSignature) VersionNumber() (*big.Rat, error) {
	digits := strings.TrimPrefix(s.version, "v")
	if digits == s.version || !isDecimal(digits) {
		return nil, fmt.Errorf("%w: malformed DFA version %q", ErrInvalidInput, s.version)
	}
	n, ok := new(big.Rat).SetString(digits)
	if !ok {
		return nil, fmt.Errorf("%w: malformed DFA version %q", ErrInvalidInput, s.version)
	}
	return n, nil
}

// isDecimal reports whether s is digits with at most one inner dot.
func isDecimal(s string) bool {
	intPart, frac, hasDot := strings.Cut(s, ".")
	return allDigits(intPart) && (!hasDot || allDigits(frac))
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (s *DfaServiceSignature) String() string {
	return s.version + "/" + s.serviceName
}

func dfaEndpoint(serviceName string) string {
	name := strings.TrimSuffix(serviceName, remoteServiceSuffix)
	if name == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToLower(r)) + name[size:]
}

// DfpServiceSignature identifies a DFP API service. Immutable once built.
type DfpServiceSignature struct {
	serviceName string
	version     string
}

// NewDfpServiceSignature creates a DFP signature. DFP services are served under their own name.
func NewDfpServiceSignature(version, serviceName string) *DfpServiceSignature {
	return &DfpServiceSignature{serviceName: serviceName, version: version}
}

// ServiceName returns the service name.
func (s *DfpServiceSignature) ServiceName() string { return s.serviceName }

// Version returns the protocol version.
func (s *DfpServiceSignature) Version() string { return s.version }

// Endpoint returns the endpoint path segment.
func (s *DfpServiceSignature) Endpoint() string { return s.serviceName }

func (s *DfpServiceSignature) String() string {
	return s.version + "/" + s.serviceName
}
