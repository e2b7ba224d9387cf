package harness

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func describe(result CommandResult) string {
	return "tally " + strings.Join(result.Args, " ") +
		"\nStdout: " + result.Stdout +
		"\nStderr: " + result.Stderr
}

// AssertSuccess verifies the command exited 0
func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Equal(tb, 0, result.ExitCode, "expected success\n%s", describe(result))
}

// AssertFailure verifies the command exited non-zero
func AssertFailure(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.NotEqual(tb, 0, result.ExitCode, "expected failure\n%s", describe(result))
}

// AssertStdoutContains verifies stdout contains every expected fragment
func AssertStdoutContains(tb testing.TB, result CommandResult, expected ...string) {
	tb.Helper()
	for _, want := range expected {
		assert.Contains(tb, result.Stdout, want, "stdout is missing %q\n%s", want, describe(result))
	}
}

// AssertStdoutNotContains verifies stdout does not contain the fragment
func AssertStdoutNotContains(tb testing.TB, result CommandResult, unexpected string) {
	tb.Helper()
	assert.NotContains(tb, result.Stdout, unexpected, "stdout has %q\n%s", unexpected, describe(result))
}

// AssertStderrContains verifies stderr contains the expected fragment
func AssertStderrContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stderr, expected, "stderr is missing %q\n%s", expected, describe(result))
}

// AssertValidJSON unmarshals stdout into target, failing the test when it is not JSON
func AssertValidJSON(tb testing.TB, result CommandResult, target any) {
	tb.Helper()
	require.NoError(tb, json.Unmarshal([]byte(result.Stdout), target), "stdout is not JSON\n%s", describe(result))
}

// AssertJSONContains verifies stdout is a JSON object holding key with the expected value.
// Numbers decode as float64.
func AssertJSONContains(tb testing.TB, result CommandResult, key string, expected any) {
	tb.Helper()
	var data map[string]any
	AssertValidJSON(tb, result, &data)
	assert.Equal(tb, expected, data[key], "JSON key %q mismatch", key)
}
