package soap

import (
	"context"
	"encoding/xml"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/adsclient/internal/core/domain"
)

const testNamespace = "http://www.doubleclick.net/dfa-api/v1.12"

type echoRequest struct {
	XMLName xml.Name `xml:"http://www.doubleclick.net/dfa-api/v1.12 echo"`
	Message string   `xml:"message"`
}

type echoResponse struct {
	Return string `xml:"echoReturn"`
}

func envelopeWith(body string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>` +
		`<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/">` +
		`<soapenv:Body>` + body + `</soapenv:Body></soapenv:Envelope>`
}

// recordingServer captures the last request body and answers with status and body.
func recordingServer(t *testing.T, status int, reply string, captured *string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		if captured != nil {
			*captured = string(data)
		}
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "text/xml; charset=utf-8", r.Header.Get("Content-Type"))
		assert.Equal(t, `"echo"`, r.Header.Get("SOAPAction"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Call_DecodesResponse(t *testing.T) {
	var sent string
	srv := recordingServer(t, http.StatusOK,
		envelopeWith(`<ns1:echoResponse xmlns:ns1="`+testNamespace+`"><echoReturn>hello</echoReturn></ns1:echoResponse>`),
		&sent)
	user := &domain.User{ID: "1", Name: "u"}
	client := NewClient(srv.URL, user, Options{})

	var resp echoResponse
	err := client.Call(context.Background(), "echo", &echoRequest{Message: "hello"}, &resp)

	require.NoError(t, err)
	assert.Equal(t, "hello", resp.Return)
	assert.Equal(t, srv.URL, client.URL())
	assert.Same(t, user, client.User())
	assert.Contains(t, sent, `<echo xmlns="`+testNamespace+`"><message>hello</message></echo>`)
	assert.NotContains(t, sent, "Header")
}

func TestClient_Call_Fault(t *testing.T) {
	srv := recordingServer(t, http.StatusInternalServerError,
		envelopeWith(`<soapenv:Fault><faultcode>soapenv:Server.userException</faultcode>`+
			`<faultstring>Authentication failed</faultstring>`+
			`<detail><ns1:ApiException xmlns:ns1="x">AuthenticationException</ns1:ApiException></detail>`+
			`</soapenv:Fault>`),
		nil)
	client := NewClient(srv.URL, &domain.User{}, Options{})

	err := client.Call(context.Background(), "echo", &echoRequest{}, &echoResponse{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRemoteCall))
	var fault *Fault
	require.True(t, errors.As(err, &fault))
	assert.Equal(t, "soapenv:Server.userException", fault.Code)
	assert.Equal(t, "Authentication failed", fault.String)
	assert.Contains(t, fault.Detail.Raw, "AuthenticationException")
	assert.True(t, IsFault(err))
	assert.True(t, IsUnauthorized(err))
}

func TestClient_Call_HTTPStatusWithoutFault(t *testing.T) {
	srv := recordingServer(t, http.StatusUnauthorized, "not xml", nil)
	client := NewClient(srv.URL, &domain.User{}, Options{})

	err := client.Call(context.Background(), "echo", &echoRequest{}, &echoResponse{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRemoteCall))
	var gerr *googleapi.Error
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, http.StatusUnauthorized, gerr.Code)
	assert.Equal(t, "not xml", gerr.Body)
	assert.True(t, IsUnauthorized(err))
	assert.False(t, IsForbidden(err))
	assert.False(t, IsFault(err))
}

func TestClient_Call_MalformedResponse(t *testing.T) {
	srv := recordingServer(t, http.StatusOK, "<<garbage", nil)
	client := NewClient(srv.URL, &domain.User{}, Options{})

	err := client.Call(context.Background(), "echo", &echoRequest{}, &echoResponse{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRemoteCall))
	assert.Contains(t, err.Error(), "decode response")
}

func TestClient_Call_EmptyBody(t *testing.T) {
	srv := recordingServer(t, http.StatusOK, envelopeWith(""), nil)
	client := NewClient(srv.URL, &domain.User{}, Options{})

	err := client.Call(context.Background(), "echo", &echoRequest{}, &echoResponse{})

	assert.True(t, errors.Is(err, ErrEmptyResponse))
}

func TestClient_Call_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	client := NewClient(url, &domain.User{}, Options{})

	err := client.Call(context.Background(), "echo", &echoRequest{}, &echoResponse{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRemoteCall))
	assert.Contains(t, err.Error(), "send request")
}

func TestClient_Call_CancelledContext(t *testing.T) {
	srv := recordingServer(t, http.StatusOK, envelopeWith(""), nil)
	client := NewClient(srv.URL, &domain.User{}, Options{Limiter: NewRateLimiter(1)})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.Call(ctx, "echo", &echoRequest{}, &echoResponse{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestClient_DefaultUserAgent(t *testing.T) {
	var agent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		agent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(envelopeWith(`<echoResponse><echoReturn/></echoResponse>`)))
	}))
	defer srv.Close()

	err := NewClient(srv.URL, &domain.User{}, Options{}).Call(context.Background(), "echo", &echoRequest{}, &echoResponse{})

	require.NoError(t, err)
	assert.Equal(t, DefaultUserAgent, agent)
}

func TestAuthClient_Call_WritesHeaderBlocks(t *testing.T) {
	var sent string
	srv := recordingServer(t, http.StatusOK,
		envelopeWith(`<echoResponse><echoReturn>ok</echoReturn></echoResponse>`), &sent)
	client := NewAuthClient(srv.URL, &domain.User{}, Options{})
	client.SetToken(domain.UserToken{UserName: "u", Token: "T"})
	client.SetRequestHeader(&domain.RequestHeader{ApplicationName: "sig|app", TargetNamespace: testNamespace})

	var resp echoResponse
	err := client.Call(context.Background(), "echo", &echoRequest{Message: "x"}, &resp)

	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Return)
	assert.Contains(t, sent, `<Security xmlns="`+SecurityNamespace+`">`)
	assert.Contains(t, sent, `<UsernameToken><Username>u</Username><Password>T</Password></UsernameToken>`)
	assert.Contains(t, sent, `<RequestHeader xmlns="`+testNamespace+`"><applicationName>sig|app</applicationName></RequestHeader>`)
	assert.Less(t, strings.Index(sent, "Security"), strings.Index(sent, "RequestHeader"))
}

func TestAuthClient_Call_TokenOnly(t *testing.T) {
	var sent string
	srv := recordingServer(t, http.StatusOK,
		envelopeWith(`<echoResponse><echoReturn>ok</echoReturn></echoResponse>`), &sent)
	client := NewAuthClient(srv.URL, &domain.User{}, Options{})
	client.SetToken(domain.UserToken{UserName: "u", Token: "T"})

	err := client.Call(context.Background(), "echo", &echoRequest{}, &echoResponse{})

	require.NoError(t, err)
	assert.Contains(t, sent, "UsernameToken")
	assert.NotContains(t, sent, "RequestHeader")
}

func TestAuthClient_Accessors(t *testing.T) {
	client := NewAuthClient("http://example.invalid", &domain.User{}, Options{})
	assert.Nil(t, client.Token())
	assert.Nil(t, client.RequestHeader())

	client.SetToken(domain.UserToken{UserName: "u", Token: "T"})
	header := &domain.RequestHeader{NetworkCode: "123"}
	client.SetRequestHeader(header)

	require.NotNil(t, client.Token())
	assert.Equal(t, "T", client.Token().Token)
	assert.Same(t, header, client.RequestHeader())
}
