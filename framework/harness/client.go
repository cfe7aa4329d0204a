package harness

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/qa-tech/product-contract-tests/framework"
	"github.com/qa-tech/product-contract-tests/productdef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Client sends requests to the API under test. The base URL is fixed when the Client is created;
// request specs only name a method and a path.
//
// A Client carries no state between requests other than the connection pool of its *http.Client,
// so it can be shared by all tests. Use WithLogger to get a copy that writes its diagnostics to
// a particular test's debug log.
type Client struct {
	baseURL string
	session *http.Client
	logger  framework.Logger
}

// Response is the outcome of a single request.
type Response struct {
	Method     string
	StatusCode int
	Header     http.Header
	Body       []byte

	// JSON is the parsed response body, or a null value if the body was not valid JSON.
	JSON ldvalue.Value
}

// NewClient creates a Client for the API at baseURL. A single trailing slash is removed from
// baseURL. If session is nil, a new *http.Client with default settings is used.
func NewClient(baseURL string, session *http.Client) *Client {
	if session == nil {
		session = &http.Client{}
	}
	return &Client{
		baseURL: NormalizeBaseURL(baseURL),
		session: session,
		logger:  framework.NullLogger(),
	}
}

// NormalizeBaseURL strips one trailing slash, so that paths beginning with a slash can be
// appended to the result.
func NormalizeBaseURL(baseURL string) string {
	return strings.TrimSuffix(baseURL, "/")
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Session returns the *http.Client that requests are sent with.
func (c *Client) Session() *http.Client {
	return c.session
}

// WithLogger returns a copy of the Client, sharing the same session, that writes each request
// as a curl command (and each response) to logger.
func (c *Client) WithLogger(logger framework.Logger) *Client {
	if logger == nil {
		logger = framework.NullLogger()
	}
	c1 := *c
	c1.logger = logger
	return &c1
}

// Build creates a request from a spec of the form "METHOD /path". The path is appended to the
// base URL as is.
func (c *Client) Build(spec string, opts ...RequestOption) (*http.Request, error) {
	method, path, ok := strings.Cut(spec, " ")
	if !ok || method == "" {
		return nil, fmt.Errorf("request spec %q is not of the form \"METHOD /path\"", spec)
	}

	var params requestParams
	for _, o := range opts {
		o(&params)
	}
	if params.err != nil {
		return nil, params.err
	}

	var body io.Reader
	if params.body != "" {
		body = strings.NewReader(params.body)
	}
	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if params.body != "" {
		// The API expects the old form encoding whenever there is a body, even a malformed one.
		req.Header.Set("Content-Type", productdef.FormContentType)
	}
	for name, values := range params.headers {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}
	return req, nil
}

// Do builds a request with Build, logs it as a curl command, and sends it. The response status
// is not checked; a non-nil error means that no response was received.
func (c *Client) Do(spec string, opts ...RequestOption) (*Response, error) {
	req, err := c.Build(spec, opts...)
	if err != nil {
		return nil, err
	}
	c.logger.Printf("%s", FormatCurl(req))

	resp, err := c.session.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body from %s: %w", req.URL, err)
	}
	c.logger.Printf("<< HTTP %d %s", resp.StatusCode, string(data))

	return &Response{
		Method:     req.Method,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
		JSON:       parseJSON(data),
	}, nil
}

// AwaitService polls the base URL until the service returns any HTTP response, whatever its
// status, or the timeout passes.
func (c *Client) AwaitService(timeout time.Duration, output io.Writer) error {
	fmt.Fprintf(output, "Connecting to product API at %s", c.baseURL)

	deadline := time.Now().Add(timeout)
	for {
		fmt.Fprintf(output, ".")
		resp, err := c.session.Get(c.baseURL)
		if err == nil {
			_ = resp.Body.Close()
			fmt.Fprintf(output, " responded with status %d\n", resp.StatusCode)
			return nil
		}
		if !time.Now().Before(deadline) {
			fmt.Fprintln(output)
			return fmt.Errorf("timed out, result of last query was: %w", err)
		}
		time.Sleep(time.Millisecond * 100)
	}
}

func parseJSON(data []byte) ldvalue.Value {
	var v ldvalue.Value
	if err := json.Unmarshal(data, &v); err != nil {
		return ldvalue.Null()
	}
	return v
}
