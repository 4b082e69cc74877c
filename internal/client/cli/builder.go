package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/strumind/console/internal/client/canvas"
	"github.com/strumind/console/internal/client/models"
	"github.com/strumind/console/internal/common"
)

// showBuilder renders the model's geometry as a textual canvas. A model
// with no server-side geometry yet falls back to the built-in sample frame
// so the screen is never empty.
func (a *App) showBuilder(ctx context.Context, modelID string) {
	geo := a.builderGeometry(ctx, modelID)
	printlnFn(canvas.Render(geo, a.selection))
	if sel := a.selection.Elements(); len(sel) > 0 {
		printlnFn(fmt.Sprintf("Selected elements: %v", sel))
	}
}

func (a *App) builderGeometry(ctx context.Context, modelID string) models.Geometry {
	g, err := a.bim.Geometry(ctx, modelID)
	if err != nil || len(g.Nodes) == 0 {
		if err != nil && !errors.Is(err, common.ErrNotFound) {
			a.log.Warn(ctx, "loading geometry", "model_id", modelID, "error", err)
		}
		return canvas.SampleGeometry()
	}
	return *g
}

// selectElement toggles an element in the canvas selection.
func (a *App) selectElement(ctx context.Context, modelID, arg string) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		printlnFn("Element id must be a number:", arg)
		return
	}

	geo := a.builderGeometry(ctx, modelID)
	known := false
	for _, e := range geo.Elements {
		if e.ElementID == id {
			known = true
			break
		}
	}
	if !known {
		printlnFn("No such element:", arg)
		return
	}

	if a.selection.ClickElement(id) {
		printlnFn(fmt.Sprintf("Element %d selected", id))
	} else {
		printlnFn(fmt.Sprintf("Element %d deselected", id))
	}
}

// clickNode mirrors a node click on the canvas: nothing is selected.
func (a *App) clickNode(arg string) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		printlnFn("Node id must be a number:", arg)
		return
	}
	a.selection.ClickNode(id)
	printlnFn(fmt.Sprintf("Node %d clicked (nodes are not selectable)", id))
}
