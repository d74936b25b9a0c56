package services

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// recordedCall is one SOAP request received by fakeSOAPServer.
type recordedCall struct {
	Path          string
	Action        string
	Body          string
	Authorization string
}

// fakeSOAPServer answers DFA and DFP calls with canned envelopes.
type fakeSOAPServer struct {
	*httptest.Server

	mu         sync.Mutex
	calls      []recordedCall
	logins     int
	loginFault bool
	emptyToken bool
}

func newFakeSOAPServer(t *testing.T) *fakeSOAPServer {
	t.Helper()
	s := &fakeSOAPServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// Base returns the server URL with the trailing slash factories expect.
func (s *fakeSOAPServer) Base() string {
	return s.URL + "/"
}

func (s *fakeSOAPServer) Logins() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logins
}

func (s *fakeSOAPServer) Calls() []recordedCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]recordedCall(nil), s.calls...)
}

func (s *fakeSOAPServer) LastCall(t *testing.T) recordedCall {
	t.Helper()
	calls := s.Calls()
	require.NotEmpty(t, calls)
	return calls[len(calls)-1]
}

func (s *fakeSOAPServer) handle(w http.ResponseWriter, r *http.Request) {
	data, _ := io.ReadAll(r.Body)
	action := strings.Trim(r.Header.Get("SOAPAction"), `"`)

	s.mu.Lock()
	s.calls = append(s.calls, recordedCall{
		Path:          r.URL.Path,
		Action:        action,
		Body:          string(data),
		Authorization: r.Header.Get("Authorization"),
	})
	var body string
	status := http.StatusOK
	switch action {
	case "authenticate":
		s.logins++
		if s.loginFault {
			status = http.StatusInternalServerError
			body = `<soapenv:Fault><faultcode>soapenv:Server</faultcode>` +
				`<faultstring>Authentication failed</faultstring></soapenv:Fault>`
			break
		}
		token := fmt.Sprintf("tok-%d", s.logins)
		if s.emptyToken {
			token = ""
		}
		user := between(string(data), "<username>", "</username>")
		body = `<authenticateResponse><authenticateReturn><name>` + user + `</name><token>` + token +
			`</token></authenticateReturn></authenticateResponse>`
	case "getUsersByCriteria":
		body = `<getUsersByCriteriaResponse><getUsersByCriteriaReturn><records><id>1</id><name>alice</name></records>` +
			`<totalNumberOfRecords>1</totalNumberOfRecords></getUsersByCriteriaReturn></getUsersByCriteriaResponse>`
	case "getLineItemsByStatement":
		body = `<getLineItemsByStatementResponse><rval><totalResultSetSize>1</totalResultSetSize>` +
			`<startIndex>0</startIndex><results><id>9</id><name>li</name></results></rval></getLineItemsByStatementResponse>`
	default:
		status = http.StatusNotFound
	}
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	w.WriteHeader(status)
	if body != "" {
		_, _ = io.WriteString(w, `<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/">`+
			`<soapenv:Body>`+body+`</soapenv:Body></soapenv:Envelope>`)
	}
}

func between(s, start, end string) string {
	i := strings.Index(s, start)
	if i < 0 {
		return ""
	}
	s = s[i+len(start):]
	if j := strings.Index(s, end); j >= 0 {
		return s[:j]
	}
	return s
}
