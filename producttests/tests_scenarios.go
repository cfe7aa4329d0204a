package producttests

import (
	"github.com/qa-tech/product-contract-tests/framework/harness"
	"github.com/qa-tech/product-contract-tests/productdef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/stretchr/testify/assert"
)

// DoScenarioTests chain several requests to check that what one request reports is what later
// requests see.
func DoScenarioTests(t *T) {
	t.Run("created product can be fetched", func(t *T) {
		product := t.CreateProduct(productdef.NewProduct())
		id, _ := productdef.ID(product)

		t.AssertProductEqual(product, t.FetchProduct(id))
	})

	t.Run("patched product can be fetched", func(t *T) {
		product := t.CreateProduct(productdef.NewProduct())
		id, _ := productdef.ID(product)

		patch := ldvalue.ObjectBuild().Set(productdef.FieldPrice, ldvalue.Int(2)).Build()
		patched := t.RequireProduct(t.Request(productPath("PATCH", id), harness.JSON(patch)), 200)

		t.AssertProductEqual(productdef.Merge(product, patch), patched)
		t.AssertProductEqual(patched, t.FetchProduct(id))
	})

	t.Run("failed patch does not change the product", func(t *T) {
		product := t.CreateProduct(productdef.NewProduct())
		id, _ := productdef.ID(product)

		patch := ldvalue.ObjectBuild().
			Set(productdef.FieldPrice, ldvalue.Int(-1)).
			Set(productdef.FieldName, ldvalue.String("shoe")).
			Build()
		resp := t.Request(productPath("PATCH", id), harness.JSON(patch))
		assert.Equal(t, 400, resp.StatusCode)

		t.AssertProductEqual(product, t.FetchProduct(id))
	})

	t.Run("rejected id patch does not change the product", func(t *T) {
		product := t.CreateProduct(productdef.NewProduct())
		id, _ := productdef.ID(product)

		patch := ldvalue.ObjectBuild().
			Set(productdef.FieldID, ldvalue.Int(id+1000)).
			Set(productdef.FieldName, ldvalue.String("shoe")).
			Build()
		resp := t.Request(productPath("PATCH", id), harness.JSON(patch))
		assert.Equal(t, 404, resp.StatusCode)

		t.AssertProductEqual(product, t.FetchProduct(id))
	})

	t.Run("rejected product is not stored", func(t *T) {
		// Assumes no other client is creating products at the same time.
		product := t.CreateProduct(productdef.NewProduct())
		id, _ := productdef.ID(product)

		payload := productdef.With(productdef.NewProduct(), productdef.FieldPrice, ldvalue.Int(-1))
		resp := t.Request("POST /product", harness.JSON(payload))
		assert.Equal(t, 400, resp.StatusCode)

		resp = t.Request(productPath("GET", id+1))
		assert.Equal(t, 404, resp.StatusCode)
	})
}
