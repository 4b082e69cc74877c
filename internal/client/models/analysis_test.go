package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobStatus_Terminal(t *testing.T) {
	tests := []struct {
		status JobStatus
		want   bool
	}{
		{JobStatusPending, false},
		{JobStatusRunning, false},
		{JobStatusCompleted, true},
		{JobStatusFailed, true},
		{JobStatusCancelled, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.Terminal())
		})
	}
}

func TestJobStatus_Cancellable(t *testing.T) {
	tests := []struct {
		status JobStatus
		want   bool
	}{
		{JobStatusPending, true},
		{JobStatusRunning, true},
		{JobStatusCompleted, false},
		{JobStatusFailed, false},
		{JobStatusCancelled, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.Cancellable())
		})
	}
}

func TestJobStatus_Style_CoversEveryStatus(t *testing.T) {
	statuses := []JobStatus{
		JobStatusPending, JobStatusRunning, JobStatusCompleted,
		JobStatusFailed, JobStatusCancelled,
	}

	seen := map[string]bool{}
	for _, s := range statuses {
		st := s.Style()
		assert.NotEmpty(t, st.Icon, "status %s must have an icon", s)
		assert.NotEmpty(t, st.Color, "status %s must have a color", s)
		seen[st.Icon] = true
	}
	// Five distinct statuses render five distinct icons.
	assert.Len(t, seen, len(statuses))

	// An unknown status from a newer server renders neutral, not empty.
	st := JobStatus("queued").Style()
	assert.Equal(t, "?", st.Icon)
}

func TestAnalysisSettings_JSONShape(t *testing.T) {
	s := DefaultAnalysisSettings()

	b, err := json.Marshal(s)
	require.NoError(t, err)

	// Optional dynamic/modal fields are omitted until set.
	assert.NotContains(t, string(b), "time_step")
	assert.NotContains(t, string(b), "num_modes")
	assert.Contains(t, string(b), `"analysis_type":"linear"`)
	assert.Contains(t, string(b), `"solver_type":"sparse"`)

	ts := 0.01
	modes := 10
	s.TimeStep = &ts
	s.NumModes = &modes
	b, err = json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"time_step":0.01`)
	assert.Contains(t, string(b), `"num_modes":10`)
}

func TestAnalysisJob_UnmarshalNullTimestamps(t *testing.T) {
	raw := `{"id":"j1","model_id":"m1","status":"pending","progress":0,
		"started_at":null,"completed_at":null,"error_message":null}`

	var job AnalysisJob
	require.NoError(t, json.Unmarshal([]byte(raw), &job))

	assert.Equal(t, JobStatusPending, job.Status)
	assert.Nil(t, job.StartedAt)
	assert.Nil(t, job.CompletedAt)
	assert.Empty(t, job.ErrorMessage)
}
