package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/strumind/console/internal/client/models"
)

// designElementIDs resolves the elements a design operation applies to:
// the canvas selection when non-empty, otherwise a prompted list, with
// empty input meaning all elements.
func (a *App) designElementIDs() ([]string, error) {
	if sel := a.selection.Elements(); len(sel) > 0 {
		ids := make([]string, len(sel))
		for i, id := range sel {
			ids[i] = strconv.Itoa(id)
		}
		printlnFn(fmt.Sprintf("Using selected elements: %v", sel))
		return ids, nil
	}

	line, err := GetSimpleText(a.reader, "Element ids (comma-separated, empty for all)", os.Stdout)
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, id := range strings.Split(line, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (a *App) promptDesignSettings() (models.DesignSettings, error) {
	s := models.DefaultDesignSettings()

	var err error
	if s.DesignCode, err = GetText(a.reader, "Design code (AISC_360/EC3/IS_800)", s.DesignCode, os.Stdout); err != nil {
		return s, err
	}
	if s.MaterialType, err = GetText(a.reader, "Material type (steel/concrete)", s.MaterialType, os.Stdout); err != nil {
		return s, err
	}
	if s.LateralTorsionalBuckling, err = GetBool(a.reader, "Check lateral-torsional buckling?", s.LateralTorsionalBuckling, os.Stdout); err != nil {
		return s, err
	}
	if s.LocalBuckling, err = GetBool(a.reader, "Check local buckling?", s.LocalBuckling, os.Stdout); err != nil {
		return s, err
	}
	return s, nil
}

// designCheck runs code checking for the chosen elements against the
// latest analysis result.
func (a *App) designCheck(ctx context.Context, modelID string) {
	ids, err := a.designElementIDs()
	if err != nil {
		return
	}
	settings, err := a.promptDesignSettings()
	if err != nil {
		return
	}
	resultID, err := GetSimpleText(a.reader, "Analysis result id (empty for latest)", os.Stdout)
	if err != nil {
		return
	}

	results, err := a.design.Check(ctx, models.DesignRequest{
		ModelID:          modelID,
		ElementIDs:       ids,
		AnalysisResultID: resultID,
		Settings:         settings,
	})
	if err != nil {
		printlnFn("Design check failed:", err.Error())
		return
	}
	printDesignResults(results)
}

func (a *App) designResults(ctx context.Context, modelID string) {
	results, err := a.design.Results(ctx, modelID)
	if err != nil {
		printlnFn("Could not load design results:", err.Error())
		return
	}
	if len(results) == 0 {
		printlnFn("No design results yet; use 'check' first")
		return
	}
	printDesignResults(results)
}

func (a *App) optimizeDesign(ctx context.Context, modelID string) {
	ids, err := a.designElementIDs()
	if err != nil {
		return
	}
	settings, err := a.promptDesignSettings()
	if err != nil {
		return
	}

	results, err := a.design.Optimize(ctx, models.OptimizeRequest{
		ModelID:    modelID,
		ElementIDs: ids,
		Settings:   settings,
	})
	if err != nil {
		printlnFn("Optimization failed:", err.Error())
		return
	}
	printlnFn("Suggested sections:")
	printDesignResults(results)
}

// detailing is a read-only summary screen: failing and governing checks
// per element, the inputs a detailer needs before producing drawings.
func (a *App) detailing(ctx context.Context, modelID string) {
	results, err := a.design.Results(ctx, modelID)
	if err != nil {
		printlnFn("Could not load design results:", err.Error())
		return
	}
	if len(results) == 0 {
		printlnFn("Nothing to detail yet; run a design check first")
		return
	}

	for _, r := range results {
		printlnFn(fmt.Sprintf("Element %s (%s, %s / %s)", r.ElementID, r.ElementType, r.SectionName, r.MaterialName))
		printlnFn(fmt.Sprintf("  governing: %s, ratio %.3f, %s", r.ControllingCheck, r.ControllingRatio, r.OverallStatus))
		for _, rec := range r.Recommendations {
			printlnFn("  note:", rec)
		}
	}
	printlnFn("Drawings: none generated (connection detailing is produced server-side)")
}

func printDesignResults(results []models.ElementDesignResult) {
	for _, r := range results {
		mark := statusMark(r.OverallStatus)
		printlnFn(fmt.Sprintf("%s element %-6s %-8s ratio %.3f (%s)", mark, r.ElementID, r.OverallStatus, r.ControllingRatio, r.ControllingCheck))
		for _, c := range r.DesignChecks {
			printlnFn(fmt.Sprintf("    %s %-28s D/C %.3f (%g/%g)", statusMark(c.Status), c.CheckType, c.Ratio, c.Demand, c.Capacity))
		}
	}
}

func statusMark(status string) string {
	switch status {
	case "PASS":
		return "\033[32m✔\033[0m"
	case "FAIL":
		return "\033[31m✘\033[0m"
	default:
		return "\033[33m!\033[0m"
	}
}
