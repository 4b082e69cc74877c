package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/strumind/console/internal/client/models"
	"github.com/strumind/console/internal/common"
)

// promptSettings collects the analysis configuration. The previous draft
// (initially the server defaults) supplies every default, so a failed
// submit never loses the user's edits. Numeric bounds are advisory.
func (a *App) promptSettings() (models.AnalysisSettings, error) {
	s := models.DefaultAnalysisSettings()
	if a.draft != nil {
		s = *a.draft
	}

	var err error
	if s.AnalysisType, err = GetText(a.reader, "Analysis type (linear/nonlinear/dynamic/modal/buckling)", s.AnalysisType, os.Stdout); err != nil {
		return s, err
	}
	if s.SolverType, err = GetText(a.reader, "Solver type (sparse/dense/iterative)", s.SolverType, os.Stdout); err != nil {
		return s, err
	}
	if s.MaxIterations, err = GetInt(a.reader, "Max iterations", s.MaxIterations, 1, 10000, os.Stdout); err != nil {
		return s, err
	}
	if s.ConvergenceTolerance, err = GetNumber(a.reader, "Convergence tolerance", s.ConvergenceTolerance, 1e-12, 1, os.Stdout); err != nil {
		return s, err
	}
	if s.IncludePDelta, err = GetBool(a.reader, "Include P-Delta effects?", s.IncludePDelta, os.Stdout); err != nil {
		return s, err
	}
	if s.IncludeGeometricNonlinearity, err = GetBool(a.reader, "Include geometric nonlinearity?", s.IncludeGeometricNonlinearity, os.Stdout); err != nil {
		return s, err
	}
	if s.IncludeMaterialNonlinearity, err = GetBool(a.reader, "Include material nonlinearity?", s.IncludeMaterialNonlinearity, os.Stdout); err != nil {
		return s, err
	}

	switch s.AnalysisType {
	case "dynamic":
		if s.TimeStep == nil {
			s.TimeStep = ptr(0.01)
		}
		if *s.TimeStep, err = GetNumber(a.reader, "Time step (s)", *s.TimeStep, 1e-6, 1, os.Stdout); err != nil {
			return s, err
		}
		if s.Duration == nil {
			s.Duration = ptr(10.0)
		}
		if *s.Duration, err = GetNumber(a.reader, "Duration (s)", *s.Duration, 0.1, 3600, os.Stdout); err != nil {
			return s, err
		}
		if s.DampingRatio == nil {
			s.DampingRatio = ptr(0.05)
		}
		if *s.DampingRatio, err = GetNumber(a.reader, "Damping ratio", *s.DampingRatio, 0, 1, os.Stdout); err != nil {
			return s, err
		}
	case "modal":
		n := 10
		if s.NumModes != nil {
			n = *s.NumModes
		}
		if n, err = GetInt(a.reader, "Number of modes", n, 1, 1000, os.Stdout); err != nil {
			return s, err
		}
		s.NumModes = &n
	}

	return s, nil
}

func ptr[T any](v T) *T { return &v }

// runAnalysis submits a run request for the model. On success the job is
// tracked and a background watcher polls it; on failure the settings draft
// is kept for the next attempt.
func (a *App) runAnalysis(ctx context.Context, model *models.StructuralModel) {
	settings, err := a.promptSettings()
	if err != nil {
		printlnFn("error:", err.Error())
		return
	}
	a.draft = &settings

	loadCases, err := GetSimpleText(a.reader, "Load case ids (comma-separated, at least one)", os.Stdout)
	if err != nil {
		return
	}
	var ids []string
	for _, id := range strings.Split(loadCases, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		printlnFn("At least one load case id is required; settings kept for the next attempt")
		return
	}

	job, err := a.analysis.Run(ctx, model.ID, ids, settings)
	if err != nil {
		printlnFn("Run failed:", err.Error())
		return
	}

	st := job.Status.Style()
	printlnFn(fmt.Sprintf("Submitted job %s, status %s%s %s\033[0m", job.ID, st.Color, st.Icon, job.Status))
	a.startWatcher(ctx)
}

func (a *App) jobStatus(ctx context.Context) {
	job, err := a.analysis.Refresh(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNoTrackedJob) {
			printlnFn("No analysis job is being tracked")
			return
		}
		printlnFn("Could not fetch job:", err.Error())
		return
	}

	st := job.Status.Style()
	printlnFn(fmt.Sprintf("Job %s: %s%s %s\033[0m (%.0f%%)", job.ID, st.Color, st.Icon, job.Status, job.Progress))
	if job.StartedAt != nil {
		printlnFn("Started:", job.StartedAt.Local().Format("15:04:05"))
	}
	if job.CompletedAt != nil {
		printlnFn("Completed:", job.CompletedAt.Local().Format("15:04:05"))
	}
	if job.ErrorMessage != "" {
		printlnFn("Error:", job.ErrorMessage)
	}
}

// watchJob restarts the background poller for the tracked job.
func (a *App) watchJob(ctx context.Context) {
	if _, ok := a.analysis.TrackedJob(); !ok {
		printlnFn("No analysis job is being tracked")
		return
	}
	if a.analysis.LastStatus().Terminal() {
		printlnFn("Job already finished")
		return
	}
	a.startWatcher(ctx)
	printlnFn("Watching job; updates print as they arrive")
}

func (a *App) cancelJob(ctx context.Context) {
	if !a.analysis.CancelAllowed() {
		printlnFn("Cancel is only available while the job is pending or running")
		return
	}
	if err := a.analysis.Cancel(ctx); err != nil {
		printlnFn("Cancel failed:", err.Error())
		return
	}
	a.stopWatcher()
	printlnFn("Job cancelled")
}

// listResults shows the result summaries for the model. An empty list is
// a normal state.
func (a *App) listResults(ctx context.Context, modelID string) {
	results, err := a.analysis.Results(ctx, modelID)
	if err != nil {
		printlnFn("Could not load results:", err.Error())
		return
	}
	if len(results) == 0 {
		printlnFn("No analysis results yet")
		return
	}
	for _, r := range results {
		printlnFn(fmt.Sprintf("  %-36s %-10s max disp %.4g, max stress %.4g (%.2fs)",
			r.ID, r.AnalysisType, r.MaxDisplacement, r.MaxStress, r.AnalysisTime))
	}
}

func (a *App) showResult(ctx context.Context, resultID string) {
	res, err := a.analysis.Result(ctx, resultID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("Result not found:", resultID)
			return
		}
		printlnFn("Could not load result:", err.Error())
		return
	}

	printlnFn(fmt.Sprintf("Analysis: %s, load case %s, solved in %.2fs", res.AnalysisType, res.LoadCaseID, res.AnalysisTime))
	printlnFn(fmt.Sprintf("Nodes: %d  Elements: %d", len(res.NodeResults), len(res.ElementResults)))
	for _, n := range res.NodeResults {
		printlnFn(fmt.Sprintf("  node %d: ux=%.4g uy=%.4g uz=%.4g",
			n.NodeID, n.Displacements["dx"], n.Displacements["dy"], n.Displacements["dz"]))
	}
}
