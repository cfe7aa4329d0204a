package producttests

import (
	"fmt"

	"github.com/qa-tech/product-contract-tests/framework/harness"

	"github.com/stretchr/testify/assert"
)

var invalidPayloads = []string{
	"",
	"text",
	`{"name": fruit}`,
}

// DoInvalidPayloadTests sends bodies that are not JSON, without the json_data wrapping, to every
// endpoint that takes a payload.
func DoInvalidPayloadTests(t *T) {
	for _, spec := range []string{"PATCH /product/1", "POST /product"} {
		for _, body := range invalidPayloads {
			t.Run(fmt.Sprintf("%s with %q is 400", spec, body), func(t *T) {
				resp := t.Request(spec, harness.RawBody(body))
				assert.Equal(t, 400, resp.StatusCode)
			})
		}
	}
}
