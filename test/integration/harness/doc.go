// Package harness builds the tally binary and runs it in isolated environments.
//
// Each TestEnvironment owns a temp root that is the working directory of every
// command, so a .env written there is loaded. TALLY_HOME lives under it.
//
// Environment variables managed:
//   - TALLY_HOME: isolated per test
//   - TALLY_DEBUG: disabled to reduce noise
//   - TALLY_TIMEZONE: pinned to UTC unless the test sets it
package harness
