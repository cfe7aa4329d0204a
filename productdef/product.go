// Package productdef contains the wire-level definitions shared by the product service and the
// contract tests: field names, the legacy form encoding of write payloads, and fixture records.
package productdef

import "gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

const (
	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
)

// JSONDataField is the form field that carries the JSON payload of a POST or PATCH request. The
// value is the raw JSON text; it is not URL-escaped.
const JSONDataField = "json_data"

const (
	FormContentType = "application/x-www-form-urlencoded"
	JSONContentType = "application/json"
)

// SeedProductID is the id of the product that exists when the service starts. Ids assigned by
// the service start at FirstAssignedID.
const (
	SeedProductID   = 1
	FirstAssignedID = 2
)

// DefaultBaseURL is the reference deployment of the product API.
const DefaultBaseURL = "https://python-qa-tech-test.herokuapp.com"

const seedDescription = "The Nike LunarEpic Low Flyknit Running Shoe is " +
	"lightweight and breathable with targeted cushioning " +
	"for a soft, effortless sensation underfoot."

// SeedProduct returns the product that the service is seeded with.
func SeedProduct() ldvalue.Value {
	return ldvalue.ObjectBuild().
		Set(FieldID, ldvalue.Int(SeedProductID)).
		Set(FieldName, ldvalue.String("Nike Shoes")).
		Set(FieldDescription, ldvalue.String(seedDescription)).
		Set(FieldPrice, ldvalue.Float64(23.89)).
		Build()
}

// NewProduct returns a valid creation payload that has no id.
func NewProduct() ldvalue.Value {
	return ldvalue.ObjectBuild().
		Set(FieldName, ldvalue.String("dead parrot")).
		Set(FieldDescription, ldvalue.String("Norwegian Blue")).
		Set(FieldPrice, ldvalue.Float64(9.99)).
		Build()
}

// Merge returns a new object with the fields of base overwritten by the fields of patch. Fields
// only present in base are retained.
func Merge(base, patch ldvalue.Value) ldvalue.Value {
	b := ldvalue.ObjectBuild()
	for _, k := range base.Keys() {
		b.Set(k, base.GetByKey(k))
	}
	for _, k := range patch.Keys() {
		b.Set(k, patch.GetByKey(k))
	}
	return b.Build()
}

// With is shorthand for merging a single field into a product.
func With(product ldvalue.Value, field string, value ldvalue.Value) ldvalue.Value {
	return Merge(product, ldvalue.ObjectBuild().Set(field, value).Build())
}

// ID returns the id field of a product, and false if it is missing or not a number.
func ID(product ldvalue.Value) (int, bool) {
	v := product.GetByKey(FieldID)
	if !v.IsNumber() {
		return 0, false
	}
	return v.IntValue(), true
}

// HasNegativePrice is true if the object has a numeric price below zero. Non-numeric prices are
// not checked.
func HasNegativePrice(product ldvalue.Value) bool {
	v := product.GetByKey(FieldPrice)
	return v.IsNumber() && v.Float64Value() < 0
}

// HasField is true if the object has the field, whatever its value.
func HasField(product ldvalue.Value, field string) bool {
	for _, k := range product.Keys() {
		if k == field {
			return true
		}
	}
	return false
}
