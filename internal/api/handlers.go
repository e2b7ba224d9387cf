package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/renato0307/tally/internal/domain"
	"github.com/renato0307/tally/internal/intervals"
	"github.com/renato0307/tally/internal/services"
)

// maxBodyBytes bounds ingest payloads
const maxBodyBytes = 10 << 20

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleIngestEvents accepts a JSON array, a single object or JSON lines
func (s *Server) handleIngestEvents(w http.ResponseWriter, r *http.Request) {
	inputs, err := services.DecodeBatch[services.EventInput](http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		respondError(w, r, err)
		return
	}
	report, err := s.svc.Ingest.IngestBatch(r.Context(), inputs)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleImportActivities(w http.ResponseWriter, r *http.Request) {
	inputs, err := services.DecodeBatch[services.ActivityInput](http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		respondError(w, r, err)
		return
	}
	changed, err := s.svc.Ingest.ImportActivities(r.Context(), inputs)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"changed": changed})
}

func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := s.svc.Ingest.ListActivities(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	out := make([]activityView, 0, len(activities))
	for _, a := range activities {
		out = append(out, toActivityView(a))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleIntervals(w http.ResponseWriter, r *http.Request) {
	start, end, err := timeRange(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	perActivity, err := s.svc.Insights.Intervals(r.Context(), start, end)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toActivityIntervalsViews(perActivity))
}

func (s *Server) handleBuckets(w http.ResponseWriter, r *http.Request) {
	start, end, err := timeRange(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	kind, err := intervals.ParseBucketKind(r.URL.Query().Get("kind"))
	if err != nil {
		respondError(w, r, invalid(err.Error()))
		return
	}
	loc := s.location
	if tz := r.URL.Query().Get("tz"); tz != "" {
		if loc, err = time.LoadLocation(tz); err != nil {
			respondError(w, r, errors.Join(domain.ErrInvalidTimezone, err))
			return
		}
	}

	buckets, err := s.svc.Insights.Buckets(r.Context(), start, end, kind, loc)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, buckets)
}

func (s *Server) handleFocusSessions(w http.ResponseWriter, r *http.Request) {
	start, end, err := timeRange(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	report, err := s.svc.Insights.FocusSessions(r.Context(), start, end)
	if err != nil {
		respondError(w, r, err)
		return
	}
	sessions := report.Sessions
	if sessions == nil {
		sessions = []intervals.FocusSession{}
	}
	writeJSON(w, http.StatusOK, focusView{Sessions: sessions, Summary: report.Summary})
}

func (s *Server) handleSessions(w http.ResponseWriter, r *http.Request) {
	start, end, err := timeRange(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	groupings, err := s.svc.Sessions.Groupings(r.Context(), start, end)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toGroupingsView(groupings))
}

func (s *Server) handleWindowStatus(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r, "limit", 10)
	if err != nil {
		respondError(w, r, err)
		return
	}
	status, err := s.svc.Windows.Status(r.Context(), limit)
	if err != nil {
		respondError(w, r, err)
		return
	}

	view := windowStatusView{LateEvents: status.LateEvents, Recent: make([]windowView, 0, len(status.Recent))}
	for _, win := range status.Recent {
		view.Recent = append(view.Recent, toWindowView(win))
	}
	if status.LastWindow != nil {
		last := toWindowView(*status.LastWindow)
		view.LastWindow = &last
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleListGoals(w http.ResponseWriter, r *http.Request) {
	all, err := s.svc.Goals.ListGoals(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	out := make([]goalView, 0, len(all))
	for _, g := range all {
		out = append(out, toGoalView(g, s.svc.Goals.Paused(g)))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	var input services.GoalInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, r, invalid("malformed goal: "+err.Error()))
		return
	}
	created, err := s.svc.Goals.CreateGoal(r.Context(), input)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toGoalView(created, false))
}

func (s *Server) handleGetGoal(w http.ResponseWriter, r *http.Request) {
	id, err := goalID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	g, err := s.svc.Goals.GetGoal(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toGoalView(*g, s.svc.Goals.Paused(*g)))
}

func (s *Server) handleUpdateDefinition(w http.ResponseWriter, r *http.Request) {
	id, err := goalID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	var input services.DefinitionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, r, invalid("malformed definition: "+err.Error()))
		return
	}
	def, err := s.svc.Goals.UpdateDefinition(r.Context(), id, input)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDefinitionView(def))
}

func (s *Server) handlePauseGoal(w http.ResponseWriter, r *http.Request) {
	s.changePause(w, r, s.svc.Goals.Pause)
}

func (s *Server) handleResumeGoal(w http.ResponseWriter, r *http.Request) {
	s.changePause(w, r, s.svc.Goals.Resume)
}

func (s *Server) changePause(w http.ResponseWriter, r *http.Request, change func(context.Context, int64) (domain.GoalPauseEvent, error)) {
	id, err := goalID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	event, err := change(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"at":         event.At,
		"event_type": event.EventType,
		"goal_id":    event.GoalID,
	})
}

func (s *Server) handleEvaluateGoal(w http.ResponseWriter, r *http.Request) {
	id, err := goalID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	force := r.URL.Query().Get("force") == "true"
	status, err := s.svc.Goals.EvaluateGoal(r.Context(), id, force)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toGoalStatusView(status))
}

func (s *Server) handleGoalResults(w http.ResponseWriter, r *http.Request) {
	id, err := goalID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	limit, err := intParam(r, "limit", 30)
	if err != nil {
		respondError(w, r, err)
		return
	}
	results, err := s.svc.Goals.ListResults(r.Context(), id, limit)
	if err != nil {
		respondError(w, r, err)
		return
	}
	out := make([]resultView, 0, len(results))
	for _, res := range results {
		out = append(out, toResultView(res))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGoalProgress(w http.ResponseWriter, r *http.Request) {
	id, err := goalID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	progress, err := s.svc.Goals.Progress(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if progress == nil {
		writeJSON(w, http.StatusNotFound, errorBody{
			Error:     "no progress computed for the current period",
			RequestID: RequestIDFrom(r.Context()),
		})
		return
	}
	writeJSON(w, http.StatusOK, toProgressView(*progress))
}
