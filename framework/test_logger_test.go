package framework

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConsoleTestLoggerDumpsDebugOutputOnFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := &ConsoleTestLogger{Out: &buf, DebugOutputOnFailure: true}
	output := CapturedOutput{{Time: time.Now(), Message: "curl -X GET http://host/product/1"}}

	logger.TestStarted(id("get"))
	logger.TestError(id("get"), errors.New("line one\nline two"))
	logger.TestFinished(id("get"), true, output)

	s := buf.String()
	assert.Contains(t, s, "[get]\n")
	assert.Contains(t, s, "  line one\n  line two\n")
	assert.Contains(t, s, "FAILED: get")
	assert.Contains(t, s, "    DEBUG [")
	assert.Contains(t, s, "curl -X GET http://host/product/1")
}

func TestConsoleTestLoggerHidesDebugOutputOnSuccess(t *testing.T) {
	var buf bytes.Buffer
	logger := &ConsoleTestLogger{Out: &buf, DebugOutputOnFailure: true}
	logger.TestFinished(id("get"), false, CapturedOutput{{Message: "hidden"}})
	assert.NotContains(t, buf.String(), "hidden")
}

func TestPrintResults(t *testing.T) {
	var buf bytes.Buffer
	PrintResults(&buf, Results{Tests: []TestResult{{TestID: id("a")}}})
	assert.Contains(t, buf.String(), "All tests passed (1 run, 0 skipped)")

	buf.Reset()
	failure := TestResult{TestID: id("b", "c")}
	PrintResults(&buf, Results{Tests: []TestResult{failure}, Failures: []TestResult{failure}})
	assert.Contains(t, buf.String(), "FAILED TESTS (1 of 1)")
	assert.Contains(t, buf.String(), "  * b/c\n")
}
