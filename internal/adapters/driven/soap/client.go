package soap

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/custodia-labs/adsclient/internal/core/domain"
	"github.com/custodia-labs/adsclient/internal/logger"
)

// DefaultUserAgent is sent when Options.UserAgent is empty.
const DefaultUserAgent = "adsclient-go/" + domain.LibraryVersion

// Options configures how a client reaches its endpoint.
type Options struct {
	// HTTPClient performs the requests. Defaults to http.DefaultClient.
	HTTPClient *http.Client
	// Limiter throttles calls. Nil disables throttling.
	Limiter *RateLimiter
	// UserAgent overrides DefaultUserAgent.
	UserAgent string
}

// Client sends SOAP envelopes to one endpoint on behalf of one user.
type Client struct {
	url        string
	user       *domain.User
	httpClient *http.Client
	limiter    *RateLimiter
	userAgent  string
}

// NewClient creates a client for the endpoint url.
func NewClient(url string, user *domain.User, opts Options) *Client {
	c := &Client{
		url:        url,
		user:       user,
		httpClient: opts.HTTPClient,
		limiter:    opts.Limiter,
		userAgent:  opts.UserAgent,
	}
	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}
	if c.userAgent == "" {
		c.userAgent = DefaultUserAgent
	}
	return c
}

// URL returns the endpoint URL.
func (c *Client) URL() string {
	return c.url
}

// User returns the user the client was created for.
func (c *Client) User() *domain.User {
	return c.user
}

// Call sends request without header blocks and decodes the reply into response.
func (c *Client) Call(ctx context.Context, action string, request, response any) error {
	return c.Invoke(ctx, action, nil, request, response)
}

// Invoke sends request with the given header blocks and decodes the reply into
// response, which may be nil for one-way operations.
func (c *Client) Invoke(ctx context.Context, action string, blocks []any, request, response any) error {
	if err := c.invoke(ctx, action, blocks, request, response); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrRemoteCall, action, err)
	}
	return nil
}

func (c *Client) invoke(ctx context.Context, action string, blocks []any, request, response any) error {
	callID := uuid.NewString()

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	payload, err := encodeEnvelope(blocks, request)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("SOAPAction", `"`+action+`"`)
	req.Header.Set("User-Agent", c.userAgent)

	logger.Debug("soap %s: %s -> %s", callID, action, c.url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	logger.Debug("soap %s: HTTP %d, %d bytes", callID, resp.StatusCode, len(body))

	return decodeResponse(resp, body, response)
}

func decodeResponse(resp *http.Response, body []byte, response any) error {
	env := responseEnvelope{Body: responseBody{Content: response}}
	parseErr := xml.Unmarshal(body, &env)

	if parseErr == nil && env.Body.Fault != nil {
		return env.Body.Fault
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp, body)
	}
	if parseErr != nil {
		return fmt.Errorf("decode response: %w", parseErr)
	}
	if response != nil && !env.Body.decoded {
		return ErrEmptyResponse
	}
	return nil
}

// AuthClient is a Client that sends a user token and a request header with every call.
type AuthClient struct {
	*Client

	token         *domain.UserToken
	requestHeader *domain.RequestHeader
}

// NewAuthClient creates an AuthClient for the endpoint url.
func NewAuthClient(url string, user *domain.User, opts Options) *AuthClient {
	return &AuthClient{Client: NewClient(url, user, opts)}
}

// SetToken attaches the token sent in the WS-Security header.
func (c *AuthClient) SetToken(token domain.UserToken) {
	c.token = &token
}

// Token returns the attached token, or nil.
func (c *AuthClient) Token() *domain.UserToken {
	return c.token
}

// SetRequestHeader attaches the RequestHeader block.
func (c *AuthClient) SetRequestHeader(header *domain.RequestHeader) {
	c.requestHeader = header
}

// RequestHeader returns the attached request header, or nil.
func (c *AuthClient) RequestHeader() *domain.RequestHeader {
	return c.requestHeader
}

// Call sends request with the attached header blocks.
func (c *AuthClient) Call(ctx context.Context, action string, request, response any) error {
	return c.Invoke(ctx, action, c.headerBlocks(), request, response)
}

func (c *AuthClient) headerBlocks() []any {
	var blocks []any
	if c.token != nil {
		blocks = append(blocks, newSecurityHeader(*c.token))
	}
	if c.requestHeader != nil {
		blocks = append(blocks, newRequestHeader(c.requestHeader))
	}
	return blocks
}
