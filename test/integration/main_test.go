// Package integration_test drives the compiled tally binary end to end.
// TestMain builds it once; every test gets its own TALLY_HOME.
package integration_test

import (
	"log"
	"os"
	"testing"

	"github.com/renato0307/tally/test/integration/harness"
)

func TestMain(m *testing.M) {
	if _, err := harness.BuildBinary(); err != nil {
		log.Fatalf("Failed to build tally: %v", err)
	}

	code := m.Run()

	if err := harness.CleanupBinary(); err != nil {
		log.Printf("Warning: failed to remove test binary: %v", err)
	}
	os.Exit(code)
}
