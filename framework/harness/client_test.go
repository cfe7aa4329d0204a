package harness

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/qa-tech/product-contract-tests/framework"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBaseURLStripsOneSlash(t *testing.T) {
	assert.Equal(t, "http://host", NormalizeBaseURL("http://host"))
	assert.Equal(t, "http://host", NormalizeBaseURL("http://host/"))
	assert.Equal(t, "http://host/", NormalizeBaseURL("http://host//"))
}

func TestBuildSplitsSpecOnFirstSpace(t *testing.T) {
	c := NewClient("http://host/api/", nil)

	req, err := c.Build("GET /product/1")
	require.NoError(t, err)
	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, "http://host/api/product/1", req.URL.String())
	assert.Nil(t, req.Body)
	assert.Empty(t, req.Header.Get("Content-Type"))
}

func TestBuildRejectsMalformedSpec(t *testing.T) {
	c := NewClient("http://host", nil)
	for _, spec := range []string{"GET", "", " /product"} {
		_, err := c.Build(spec)
		assert.Error(t, err, "spec %q", spec)
	}
}

func TestBuildReportsUnmarshalablePayload(t *testing.T) {
	_, err := NewClient("http://host", nil).Build("POST /product", JSON(make(chan int)))
	assert.Error(t, err)
}

func TestDoSendsJSONAsFormField(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(
		httphelpers.HandlerWithResponse(201, nil, []byte(`{"id":2,"name":"dead parrot"}`)))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		c := NewClient(server.URL+"/", nil)
		payload := ldvalue.ObjectBuild().Set("name", ldvalue.String("dead parrot")).Build()

		resp, err := c.Do("POST /product", JSON(payload))
		require.NoError(t, err)

		assert.Equal(t, "POST", resp.Method)
		assert.Equal(t, 201, resp.StatusCode)
		assert.Equal(t, 2, resp.JSON.GetByKey("id").IntValue())

		r := <-requestsCh
		assert.Equal(t, "/product", r.Request.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Request.Header.Get("Content-Type"))
		assert.Equal(t, `json_data={"name":"dead parrot"}`, string(r.Body))
	})
}

func TestDoSendsRawBodyVerbatim(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(400))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		c := NewClient(server.URL, nil)

		resp, err := c.Do("PATCH /product/1", RawBody(`{"name": fruit}`))
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		assert.True(t, resp.JSON.IsNull())

		r := <-requestsCh
		assert.Equal(t, "PATCH", r.Request.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Request.Header.Get("Content-Type"))
		assert.Equal(t, `{"name": fruit}`, string(r.Body))
	})
}

func TestDoWithEmptyRawBodySendsNoBody(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(400))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		_, err := NewClient(server.URL, nil).Do("POST /product", RawBody(""))
		require.NoError(t, err)

		r := <-requestsCh
		assert.Empty(t, r.Body)
		assert.Empty(t, r.Request.Header.Get("Content-Type"))
	})
}

func TestDoAddsHeaders(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(200))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		_, err := NewClient(server.URL, nil).Do("GET /product/1", Header("X-Test", "yes"))
		require.NoError(t, err)

		r := <-requestsCh
		assert.Equal(t, "yes", r.Request.Header.Get("X-Test"))
	})
}

func TestDoLogsCurlCommandAndResponse(t *testing.T) {
	handler := httphelpers.HandlerWithJSONResponse(map[string]interface{}{"id": 1}, nil)
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		var logger framework.CapturingLogger
		c := NewClient(server.URL, nil).WithLogger(&logger)

		_, err := c.Do("PATCH /product/1", JSON(map[string]interface{}{"price": 22}))
		require.NoError(t, err)

		output := logger.Output()
		require.Len(t, output, 2)
		assert.Equal(t,
			"curl -X PATCH -H 'Content-Type: application/x-www-form-urlencoded' -d 'json_data={\"price\":22}' "+
				server.URL+"/product/1",
			output[0].Message)
		assert.Contains(t, output[1].Message, "<< HTTP 200")
	})
}

func TestWithLoggerSharesSession(t *testing.T) {
	session := &http.Client{}
	c := NewClient("http://host", session)
	c1 := c.WithLogger(nil)
	assert.Same(t, session, c1.Session())
	assert.Equal(t, c.BaseURL(), c1.BaseURL())
}

func TestDoReturnsErrorWhenNoResponse(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithStatus(200))
	server.Close()

	_, err := NewClient(server.URL, nil).Do("GET /product/1")
	assert.Error(t, err)
}

func TestAwaitServiceAcceptsAnyStatus(t *testing.T) {
	httphelpers.WithServer(httphelpers.HandlerWithStatus(404), func(server *httptest.Server) {
		var out bytes.Buffer
		err := NewClient(server.URL, nil).AwaitService(time.Second, &out)
		require.NoError(t, err)
		assert.Contains(t, out.String(), "responded with status 404")
	})
}

func TestAwaitServiceTimesOut(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithStatus(200))
	server.Close()

	var out bytes.Buffer
	err := NewClient(server.URL, nil).AwaitService(time.Millisecond*200, &out)
	assert.Error(t, err)
}
