package productdef

import (
	"testing"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/stretchr/testify/assert"
)

func TestMergeOverwritesAndRetainsFields(t *testing.T) {
	patch := ldvalue.ObjectBuild().
		Set(FieldPrice, ldvalue.Int(22)).
		Set("color", ldvalue.String("red")).
		Build()
	merged := Merge(SeedProduct(), patch)

	assert.Equal(t, 22.0, merged.GetByKey(FieldPrice).Float64Value())
	assert.Equal(t, "red", merged.GetByKey("color").StringValue())
	assert.Equal(t, "Nike Shoes", merged.GetByKey(FieldName).StringValue())
	assert.Equal(t, 23.89, SeedProduct().GetByKey(FieldPrice).Float64Value(), "base must not change")
}

func TestWith(t *testing.T) {
	p := With(NewProduct(), FieldID, ldvalue.Int(7))
	id, ok := ID(p)
	assert.True(t, ok)
	assert.Equal(t, 7, id)
	assert.Len(t, p.Keys(), 4)
}

func TestIDMissingOrNotANumber(t *testing.T) {
	_, ok := ID(NewProduct())
	assert.False(t, ok)

	_, ok = ID(With(NewProduct(), FieldID, ldvalue.String("7")))
	assert.False(t, ok)
}

func TestHasNegativePrice(t *testing.T) {
	for _, tc := range []struct {
		name     string
		price    ldvalue.Value
		negative bool
	}{
		{"positive", ldvalue.Float64(9.99), false},
		{"zero", ldvalue.Int(0), false},
		{"negative", ldvalue.Int(-1), true},
		{"small negative", ldvalue.Float64(-0.01), true},
		{"string", ldvalue.String("-1"), false},
		{"null", ldvalue.Null(), false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p := With(NewProduct(), FieldPrice, tc.price)
			assert.Equal(t, tc.negative, HasNegativePrice(p))
		})
	}

	noPrice := ldvalue.ObjectBuild().Set(FieldName, ldvalue.String("x")).Build()
	assert.False(t, HasNegativePrice(noPrice))
}

func TestHasField(t *testing.T) {
	p := With(NewProduct(), FieldID, ldvalue.Null())
	assert.True(t, HasField(p, FieldID))
	assert.False(t, HasField(NewProduct(), FieldID))
}
