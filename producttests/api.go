package producttests

import (
	"github.com/qa-tech/product-contract-tests/framework"
	"github.com/qa-tech/product-contract-tests/framework/harness"
	"github.com/qa-tech/product-contract-tests/productdef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// T represents a test or subtest in the product API contract test suite.
//
// It implements the same basic functionality as Go's testing.T, but in an environment that is outside
// of the Go test runner, and with per-test debug output. Those features are provided by the lower-level
// framework package.
//
// It also has methods for talking to the product API. Every request is logged to the test's debug output
// as an equivalent curl command, followed by the response. To make assertions, use the assert and require
// packages, passing the *T as if it were a *testing.T.
type T struct {
	context *framework.Context
	client  *harness.Client
	http    *harness.Client
}

func newTestScope(context *framework.Context, client *harness.Client) *T {
	return &T{
		context: context,
		client:  client,
		http:    client.WithLogger(framework.LoggerWithPrefix(context.DebugLogger(), "[http] ")),
	}
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately exit. The methods in
// the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

func (t *T) Helper() {}

// Run runs a subtest. This is equivalent to the Run method of testing.T.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(newTestScope(c, t.client))
	})
}

// Debug logs some debug output for the test. The output will be passed to the test logger at
// the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// Request sends a request described by spec, such as "GET /product/1", and returns the response.
// The test fails and immediately exits if no response is received.
func (t *T) Request(spec string, opts ...harness.RequestOption) *harness.Response {
	resp, err := t.http.Do(spec, opts...)
	require.NoError(t, err, "request %q failed", spec)
	return resp
}

// RequireStatus fails the test and immediately exits if the response status is not the expected one.
func (t *T) RequireStatus(resp *harness.Response, status int) {
	require.Equal(t, status, resp.StatusCode, "unexpected status for %s request, response body: %s",
		resp.Method, string(resp.Body))
}

// RequireProduct checks the response status and returns the product in the response body. The test
// fails and immediately exits if the status is wrong or the body is not a JSON object with an id.
func (t *T) RequireProduct(resp *harness.Response, status int) ldvalue.Value {
	t.RequireStatus(resp, status)
	require.Equal(t, ldvalue.ObjectType, resp.JSON.Type(), "response body is not a JSON object: %s",
		string(resp.Body))
	_, ok := productdef.ID(resp.JSON)
	require.True(t, ok, "product has no numeric id: %s", resp.JSON.JSONString())
	return resp.JSON
}

// AssertProductEqual compares two products field by field.
func (t *T) AssertProductEqual(expected, actual ldvalue.Value) bool {
	if expected.Equal(actual) {
		return true
	}
	return assert.Fail(t, "products are not equal",
		"expected: %s\nactual:   %s", expected.JSONString(), actual.JSONString())
}

// CreateProduct posts a product and returns what the API stored. The test fails and immediately
// exits if the product was not created.
func (t *T) CreateProduct(payload ldvalue.Value) ldvalue.Value {
	return t.RequireProduct(t.Request("POST /product", harness.JSON(payload)), 201)
}

// FetchProduct gets a product that is expected to exist.
func (t *T) FetchProduct(id int) ldvalue.Value {
	return t.RequireProduct(t.Request(productPath("GET", id)), 200)
}
