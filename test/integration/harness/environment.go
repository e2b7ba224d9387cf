package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment isolates one test: its own TALLY_HOME, working directory
// and TALLY_* variables
type TestEnvironment struct {
	TallyHome string
	extraEnv  map[string]string
	root      string
	tb        testing.TB
}

// NewTestEnvironment creates a temp root holding TALLY_HOME. The binary runs
// with the root as working directory, so a .env written there is picked up.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	root := tb.TempDir()
	home := filepath.Join(root, "home")
	if err := os.MkdirAll(home, 0755); err != nil {
		tb.Fatalf("Failed to create TALLY_HOME: %v", err)
	}

	return &TestEnvironment{
		TallyHome: home,
		extraEnv:  make(map[string]string),
		root:      root,
		tb:        tb,
	}
}

// Environ returns the process environment without any inherited TALLY_*
// variable, plus TALLY_HOME, debug logging off, UTC reporting and the
// variables added through SetEnv
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+3+len(e.extraEnv))
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "TALLY_") {
			continue
		}
		if _, overridden := e.extraEnv[key]; overridden {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"TALLY_HOME="+e.TallyHome,
		"TALLY_DEBUG=",
	)
	if _, ok := e.extraEnv["TALLY_TIMEZONE"]; !ok {
		env = append(env, "TALLY_TIMEZONE=UTC")
	}
	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}
	return env
}

// DBPath returns the path of the test database
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.TallyHome, "tally.db")
}

// SettingsPath returns the path of the test settings file
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.TallyHome, "settings.json")
}

// WriteSettings writes settings.json into TALLY_HOME
func (e *TestEnvironment) WriteSettings(content string) {
	e.tb.Helper()
	if err := os.WriteFile(e.SettingsPath(), []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// WriteFile writes content to name in the working directory and returns its path
func (e *TestEnvironment) WriteFile(name, content string) string {
	e.tb.Helper()
	path := filepath.Join(e.root, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// TempDir returns the root temp directory, which is also the working directory
func (e *TestEnvironment) TempDir() string {
	return e.root
}

// SetEnv adds or overrides an environment variable for every later command
func (e *TestEnvironment) SetEnv(key, value string) {
	e.extraEnv[key] = value
}
