package models

import "time"

// JobStatus is the server-owned lifecycle state of an analysis job.
// pending -> running -> {completed | failed | cancelled}; the three
// right-hand states are terminal.
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
	JobStatusCancelled JobStatus = "cancelled"
)

// Terminal reports whether no further automatic transition occurs.
func (s JobStatus) Terminal() bool {
	switch s {
	case JobStatusCompleted, JobStatusFailed, JobStatusCancelled:
		return true
	case JobStatusPending, JobStatusRunning:
		return false
	}
	return false
}

// Cancellable reports whether the server still accepts a cancellation
// request for this status. The server remains the final authority.
func (s JobStatus) Cancellable() bool {
	switch s {
	case JobStatusPending, JobStatusRunning:
		return true
	case JobStatusCompleted, JobStatusFailed, JobStatusCancelled:
		return false
	}
	return false
}

// StatusStyle is the presentation attributes of a job status.
type StatusStyle struct {
	Icon  string
	Color string // ANSI escape sequence
}

const (
	ansiYellow = "\033[33m"
	ansiBlue   = "\033[34m"
	ansiGreen  = "\033[32m"
	ansiRed    = "\033[31m"
	ansiGray   = "\033[90m"
)

// Style maps every known status onto its icon and color. The mapping is
// closed over the five statuses; an unknown value from a newer server
// renders neutral rather than failing.
func (s JobStatus) Style() StatusStyle {
	switch s {
	case JobStatusPending:
		return StatusStyle{Icon: "…", Color: ansiYellow}
	case JobStatusRunning:
		return StatusStyle{Icon: "▶", Color: ansiBlue}
	case JobStatusCompleted:
		return StatusStyle{Icon: "✔", Color: ansiGreen}
	case JobStatusFailed:
		return StatusStyle{Icon: "✘", Color: ansiRed}
	case JobStatusCancelled:
		return StatusStyle{Icon: "⊘", Color: ansiGray}
	}
	return StatusStyle{Icon: "?", Color: ansiGray}
}

// AnalysisSettings is the client-held draft of an analysis configuration,
// submitted as part of a run request. Numeric bounds (iterations 1..10000,
// tolerance > 0, damping 0..1, modes 1..1000) are advisory on the client;
// the server validates authoritatively.
type AnalysisSettings struct {
	AnalysisType         string  `json:"analysis_type"`
	SolverType           string  `json:"solver_type"`
	MaxIterations        int     `json:"max_iterations"`
	ConvergenceTolerance float64 `json:"convergence_tolerance"`

	IncludePDelta                bool `json:"include_pdelta"`
	IncludeGeometricNonlinearity bool `json:"include_geometric_nonlinearity"`
	IncludeMaterialNonlinearity  bool `json:"include_material_nonlinearity"`

	// Dynamic analysis only.
	TimeStep     *float64 `json:"time_step,omitempty"`
	Duration     *float64 `json:"duration,omitempty"`
	DampingRatio *float64 `json:"damping_ratio,omitempty"`

	// Modal analysis only.
	NumModes *int `json:"num_modes,omitempty"`
}

// DefaultAnalysisSettings mirrors the server-side defaults.
func DefaultAnalysisSettings() AnalysisSettings {
	return AnalysisSettings{
		AnalysisType:         "linear",
		SolverType:           "sparse",
		MaxIterations:        100,
		ConvergenceTolerance: 1e-6,
	}
}

// RunRequest is the body of POST /api/analysis/run.
type RunRequest struct {
	ModelID     string           `json:"model_id"`
	LoadCaseIDs []string         `json:"load_case_ids"`
	Settings    AnalysisSettings `json:"settings"`
	SaveResults bool             `json:"save_results"`
}

// AnalysisJob mirrors the server's job record. Progress is 0..100.
type AnalysisJob struct {
	ID           string     `json:"id"`
	ModelID      string     `json:"model_id"`
	Status       JobStatus  `json:"status"`
	Progress     float64    `json:"progress"`
	StartedAt    *time.Time `json:"started_at,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	ErrorMessage string     `json:"error_message,omitempty"`
}

// ResultSummary is one row of GET /api/analysis/models/{id}/results.
type ResultSummary struct {
	ID              string    `json:"id"`
	ModelID         string    `json:"model_id"`
	AnalysisType    string    `json:"analysis_type"`
	LoadCaseID      string    `json:"load_case_id"`
	AnalysisTime    float64   `json:"analysis_time"`
	CreatedAt       time.Time `json:"created_at"`
	MaxDisplacement float64   `json:"max_displacement"`
	MaxStress       float64   `json:"max_stress"`
	MaxReaction     float64   `json:"max_reaction"`
}

// NodeResult holds per-node displacements and reactions keyed by DOF
// (dx..rz, Fx..Mz).
type NodeResult struct {
	NodeID        int                `json:"node_id"`
	Displacements map[string]float64 `json:"displacements"`
	Reactions     map[string]float64 `json:"reactions"`
}

// ElementResult holds per-element forces, stresses and strains.
type ElementResult struct {
	ElementID int                `json:"element_id"`
	Forces    map[string]float64 `json:"forces"`
	Stresses  map[string]float64 `json:"stresses"`
	Strains   map[string]float64 `json:"strains"`
}

// AnalysisResults is the detailed payload of GET /api/analysis/results/{id}.
type AnalysisResults struct {
	ModelID         string          `json:"model_id"`
	LoadCaseID      string          `json:"load_case_id"`
	AnalysisType    string          `json:"analysis_type"`
	NodeResults     []NodeResult    `json:"node_results"`
	ElementResults  []ElementResult `json:"element_results"`
	AnalysisTime    float64         `json:"analysis_time"`
	ConvergenceInfo map[string]any  `json:"convergence_info"`
}
