package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/strumind/console/internal/client/canvas"
	"github.com/strumind/console/internal/common"
)

// showGeometry prints the model's BIM geometry summary.
func (a *App) showGeometry(ctx context.Context, modelID string) {
	g, err := a.bim.Geometry(ctx, modelID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("Model has no geometry yet")
			return
		}
		printlnFn("Could not load geometry:", err.Error())
		return
	}

	var restrained int
	for _, n := range g.Nodes {
		if n.Restrained() {
			restrained++
		}
	}
	byType := map[string]int{}
	for _, e := range g.Elements {
		byType[e.ElementType]++
	}

	printlnFn(fmt.Sprintf("Nodes: %d (%d restrained)", len(g.Nodes), restrained))
	for typ, n := range byType {
		printlnFn(fmt.Sprintf("Elements: %d %s", n, typ))
	}
}

// seedGeometry uploads the built-in sample frame as the model's geometry,
// giving a fresh model something to analyze.
func (a *App) seedGeometry(ctx context.Context, modelID string) {
	ok, err := GetBool(a.reader, "Replace the model geometry with the sample frame?", false, os.Stdout)
	if err != nil || !ok {
		return
	}
	if err := a.bim.UpdateGeometry(ctx, modelID, canvas.SampleGeometry()); err != nil {
		printlnFn("Update failed:", err.Error())
		return
	}
	printlnFn("Sample frame uploaded")
}

// exportModel asks the server for a BIM export in the given format.
func (a *App) exportModel(ctx context.Context, modelID, format string) {
	switch format {
	case "ifc", "step", "dwg":
	default:
		printlnFn("Unsupported format:", format, "(use ifc, step or dwg)")
		return
	}

	info, err := a.bim.Export(ctx, modelID, format)
	if err != nil {
		printlnFn("Export failed:", err.Error())
		return
	}

	printlnFn(fmt.Sprintf("Exported %s as %s", info.FileName, info.Format))
	if info.URL != "" {
		printlnFn("Download:", info.URL)
	}
}
