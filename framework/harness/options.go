package harness

import (
	"encoding/json"
	"net/http"

	"github.com/qa-tech/product-contract-tests/productdef"
)

// RequestOption adds a body or headers to a request built by Client.Build.
type RequestOption func(*requestParams)

type requestParams struct {
	body    string
	headers http.Header
	err     error
}

// JSON sends payload as a json_data form field. The JSON text is not URL-escaped: the API under
// test reads everything after "json_data=" as JSON.
func JSON(payload interface{}) RequestOption {
	return func(p *requestParams) {
		data, err := json.Marshal(payload)
		if err != nil {
			p.err = err
			return
		}
		p.body = productdef.JSONDataField + "=" + string(data)
	}
}

// RawBody sends body exactly as given, with no json_data wrapping. This is how malformed
// payloads are sent.
func RawBody(body string) RequestOption {
	return func(p *requestParams) {
		p.body = body
	}
}

// Header adds a request header.
func Header(name, value string) RequestOption {
	return func(p *requestParams) {
		if p.headers == nil {
			p.headers = make(http.Header)
		}
		p.headers.Add(name, value)
	}
}
