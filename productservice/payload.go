package productservice

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/qa-tech/product-contract-tests/productdef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const maxPayloadBody = 1 << 20

var jsonDataPrefix = []byte(productdef.JSONDataField + "=")

func decodePayload(w http.ResponseWriter, r *http.Request) (ldvalue.Value, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxPayloadBody)
	defer func() { _ = r.Body.Close() }()

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return ldvalue.Null(), errInvalidJSON
	}
	return parsePayload(raw)
}

// parsePayload accepts either a json_data form body or a plain JSON body. Legacy clients do not
// escape the form value, so it is tried verbatim before being URL-decoded.
func parsePayload(raw []byte) (ldvalue.Value, error) {
	rest, isForm := bytes.CutPrefix(raw, jsonDataPrefix)
	if !isForm {
		return parseObject(raw)
	}
	if v, err := parseObject(rest); err == nil {
		return v, nil
	}
	unescaped, err := url.QueryUnescape(string(rest))
	if err != nil {
		return ldvalue.Null(), errInvalidJSON
	}
	return parseObject([]byte(unescaped))
}

func parseObject(data []byte) (ldvalue.Value, error) {
	var v ldvalue.Value
	if err := json.Unmarshal(data, &v); err != nil {
		return ldvalue.Null(), errInvalidJSON
	}
	if v.Type() != ldvalue.ObjectType {
		return ldvalue.Null(), errInvalidJSON
	}
	return v, nil
}
