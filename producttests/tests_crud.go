package producttests

import (
	"github.com/qa-tech/product-contract-tests/framework/harness"
	"github.com/qa-tech/product-contract-tests/productdef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/stretchr/testify/assert"
)

const unknownProductID = 111

func DoGetTests(t *T) {
	t.Run("existing product", func(t *T) {
		product := t.FetchProduct(productdef.SeedProductID)
		t.AssertProductEqual(productdef.SeedProduct(), product)
	})

	t.Run("unknown product is 404", func(t *T) {
		resp := t.Request(productPath("GET", unknownProductID))
		assert.Equal(t, 404, resp.StatusCode)
	})
}

func DoPostTests(t *T) {
	t.Run("product is returned with its new id", func(t *T) {
		payload := productdef.NewProduct()
		product := t.CreateProduct(payload)

		id, _ := productdef.ID(product)
		t.AssertProductEqual(productdef.With(payload, productdef.FieldID, ldvalue.Int(id)), product)
	})

	t.Run("negative price is 400", func(t *T) {
		payload := productdef.With(productdef.NewProduct(), productdef.FieldPrice, ldvalue.Int(-42))
		resp := t.Request("POST /product", harness.JSON(payload))
		assert.Equal(t, 400, resp.StatusCode)
	})
}

func DoPatchTests(t *T) {
	t.Run("fields are updated", func(t *T) {
		patch := ldvalue.ObjectBuild().Set(productdef.FieldPrice, ldvalue.Int(22)).Build()
		product := t.RequireProduct(t.Request(productPath("PATCH", productdef.SeedProductID), harness.JSON(patch)), 200)
		t.AssertProductEqual(productdef.Merge(productdef.SeedProduct(), patch), product)
	})

	t.Run("patching the id is 404", func(t *T) {
		patch := ldvalue.ObjectBuild().Set(productdef.FieldID, ldvalue.Int(2)).Build()
		resp := t.Request(productPath("PATCH", productdef.SeedProductID), harness.JSON(patch))
		assert.Equal(t, 404, resp.StatusCode)
	})

	t.Run("unknown product is 404", func(t *T) {
		patch := ldvalue.ObjectBuild().Set(productdef.FieldName, ldvalue.String("blue table")).Build()
		resp := t.Request(productPath("PATCH", unknownProductID), harness.JSON(patch))
		assert.Equal(t, 404, resp.StatusCode)
	})

	t.Run("negative price is 400", func(t *T) {
		patch := productdef.With(productdef.NewProduct(), productdef.FieldPrice, ldvalue.Int(-42))
		resp := t.Request(productPath("PATCH", productdef.SeedProductID), harness.JSON(patch))
		assert.Equal(t, 400, resp.StatusCode)
	})
}

func DoDeleteTests(t *T) {
	// 405 would be more accurate, but the API documents 404.
	for _, id := range []int{productdef.SeedProductID, unknownProductID} {
		t.Run(productPath("DELETE", id)+" is 404", func(t *T) {
			resp := t.Request(productPath("DELETE", id))
			assert.Equal(t, 404, resp.StatusCode)
		})
	}
}
