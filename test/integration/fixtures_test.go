package integration_test

import (
	"testing"

	"github.com/renato0307/tally/test/integration/harness"
)

const activitiesJSON = `[
  {"id": 1, "name": "Deep work", "productivity_level": "very_productive", "tags": ["work"]},
  {"id": 2, "name": "Social feed", "productivity_level": "very_distracting", "tags": ["social"]}
]`

// Monday 2025-01-06: 90 minutes of deep work with a short feed check
const eventsJSONL = `{"activity_id": 1, "event_time": "2025-01-06T09:00:00Z", "event_type": "open"}
{"activity_id": 1, "event_time": "2025-01-06T10:30:00Z", "event_type": "close"}
{"activity_id": 2, "event_time": "2025-01-06T10:40:00Z", "event_type": "open"}
{"activity_id": 2, "event_time": "2025-01-06T10:50:00Z", "event_type": "close"}
`

// seedDay imports the activities and events and assigns them to a window
func seedDay(t *testing.T, env *harness.TestEnvironment) {
	t.Helper()

	path := env.WriteFile("activities.json", activitiesJSON)
	harness.AssertSuccess(t, harness.RunCommand(t, env, "activities", "import", path))
	harness.AssertSuccess(t, harness.RunCommandWithStdin(t, env, eventsJSONL, "ingest"))
	harness.AssertSuccess(t, harness.RunCommand(t, env,
		"windows", "process",
		"--start=2025-01-06T09:00:00Z",
		"--end=2025-01-06T12:00:00Z"))
}
