package framework

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func id(path ...string) TestID {
	return TestID{Path: path}
}

func TestRegexFilters(t *testing.T) {
	var f RegexFilters
	assert.True(t, f.AsFilter(id("get", "existing product")))

	require.NoError(t, f.MustMatch.Set("^patch"))
	require.NoError(t, f.MustNotMatch.Set("id"))

	assert.True(t, f.AsFilter(id("patch", "fields are updated")))
	assert.False(t, f.AsFilter(id("patch", "patching the id is 404")))
	assert.False(t, f.AsFilter(id("get", "existing product")))
}

func TestRegexListRejectsBadPattern(t *testing.T) {
	var r RegexList
	assert.Error(t, r.Set("("))
	assert.False(t, r.IsDefined())
}

func TestDescribe(t *testing.T) {
	var buf bytes.Buffer
	var f RegexFilters
	f.Describe(&buf)
	assert.Empty(t, buf.String())

	require.NoError(t, f.MustNotMatch.Set("scenarios"))
	f.Describe(&buf)
	assert.Contains(t, buf.String(), `skip any matching "scenarios"`)
}
