package cli

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/adsclient/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/adsclient/internal/core/services"
	"github.com/custodia-labs/adsclient/internal/logger"
)

// executeCommand runs rootCmd with args and returns everything it printed.
// Flags are reset to their defaults first so tests do not leak into each other.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// useConfig points the commands at an in-memory config for the duration of the test.
func useConfig(t *testing.T, values map[string]any) *memory.ConfigStore {
	t.Helper()
	oldConfig, oldDfa, oldDfp, oldReader := configService, dfaFactory, dfpFactory, passwordReader

	store := memory.NewConfigStoreFrom(values)
	configService = services.NewConfigService(store)
	dfaFactory, dfpFactory = nil, nil

	t.Cleanup(func() {
		configService, dfaFactory, dfpFactory, passwordReader = oldConfig, oldDfa, oldDfp, oldReader
	})
	return store
}

// fakeAPI answers the SOAP calls made by the example commands.
type fakeAPI struct {
	*httptest.Server

	mu         sync.Mutex
	actions    []string
	bodies     []string
	passwords  []string
	fault      string
	emptyUsers bool
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	api := &fakeAPI{}
	api.Server = httptest.NewServer(http.HandlerFunc(api.handle))
	t.Cleanup(api.Close)
	return api
}

func (a *fakeAPI) Base() string {
	return a.URL + "/"
}

func (a *fakeAPI) Actions() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.actions...)
}

func (a *fakeAPI) handle(w http.ResponseWriter, r *http.Request) {
	data, _ := io.ReadAll(r.Body)
	body := string(data)
	action := strings.Trim(r.Header.Get("SOAPAction"), `"`)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.actions = append(a.actions, action)
	a.bodies = append(a.bodies, body)

	if a.fault != "" && action != "authenticate" {
		w.WriteHeader(http.StatusInternalServerError)
		writeEnvelope(w, `<soapenv:Fault><faultcode>soapenv:Server</faultcode><faultstring>`+a.fault+
			`</faultstring></soapenv:Fault>`)
		return
	}

	switch action {
	case "authenticate":
		a.passwords = append(a.passwords, between(body, "<password>", "</password>"))
		writeEnvelope(w, `<authenticateResponse><authenticateReturn><name>`+between(body, "<username>", "</username>")+
			`</name><token>token-0123456789</token></authenticateReturn></authenticateResponse>`)
	case "getUsersByCriteria":
		records := `<records><id>7</id><name>alice</name><networkId>1</networkId><subnetworkId>2</subnetworkId>` +
			`<userGroupId>3</userGroupId></records>`
		if a.emptyUsers {
			records = ""
		}
		writeEnvelope(w, `<getUsersByCriteriaResponse><getUsersByCriteriaReturn>`+records+
			`</getUsersByCriteriaReturn></getUsersByCriteriaResponse>`)
	case "getSpotlightActivityTypes":
		writeEnvelope(w, `<getSpotlightActivityTypesResponse>`+
			`<getSpotlightActivityTypesReturn><id>1</id><name>Counter</name></getSpotlightActivityTypesReturn>`+
			`<getSpotlightActivityTypesReturn><id>2</id><name>Sales</name></getSpotlightActivityTypesReturn>`+
			`</getSpotlightActivityTypesResponse>`)
	case "getReport":
		writeEnvelope(w, `<getReportResponse><getReportReturn><reportId>42</reportId><name>weekly</name>`+
			`<status><name>COMPLETE</name></status><url>https://example.com/r/42</url></getReportReturn></getReportResponse>`)
	case "getLineItemsByStatement":
		// three line items served two per page
		results := `<startIndex>0</startIndex><results><id>1</id><name>one</name></results><results><id>2</id><name>two</name></results>`
		if strings.Contains(body, "OFFSET 2") {
			results = `<startIndex>2</startIndex><results><id>3</id><name>three</name></results>`
		}
		writeEnvelope(w, `<getLineItemsByStatementResponse><rval><totalResultSetSize>3</totalResultSetSize>`+
			results+`</rval></getLineItemsByStatementResponse>`)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func writeEnvelope(w io.Writer, body string) {
	_, _ = fmt.Fprintf(w, `<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/">`+
		`<soapenv:Body>%s</soapenv:Body></soapenv:Envelope>`, body)
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
