package producttests

import (
	"fmt"

	"github.com/qa-tech/product-contract-tests/framework"
	"github.com/qa-tech/product-contract-tests/framework/harness"
)

// RunTestSuite runs every contract test against the API that client points to.
//
// The tests run in a fixed order. The seed product is checked before any test changes it.
func RunTestSuite(
	client *harness.Client,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := newTestScope(c, client)

		t.Run("get", DoGetTests)
		t.Run("post", DoPostTests)
		t.Run("patch", DoPatchTests)
		t.Run("delete", DoDeleteTests)
		t.Run("invalid payload", DoInvalidPayloadTests)
		t.Run("scenarios", DoScenarioTests)
	})
}

func productPath(method string, id int) string {
	return fmt.Sprintf("%s /product/%d", method, id)
}
