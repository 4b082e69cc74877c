// Package canvas renders a structural model's geometry as a textual
// viewport: a fixed sample frame by default, colored by restraint state
// and element type, with click-style selection of elements.
package canvas

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/strumind/console/internal/client/models"
	"github.com/strumind/console/internal/logging"
)

const (
	ansiReset  = "\033[0m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiBlue   = "\033[34m"
	ansiCyan   = "\033[36m"
)

var fullyFixed = map[string]bool{
	"dx": true, "dy": true, "dz": true,
	"rx": true, "ry": true, "rz": true,
}

// SampleGeometry returns the built-in demo structure: a single-storey
// frame of four fixed base nodes, four free top nodes, four columns and
// four beams closing the top ring.
func SampleGeometry() models.Geometry {
	return models.Geometry{
		Nodes: []models.GeometryNode{
			{NodeID: 1, X: 0, Y: 0, Z: 0, Restraints: fullyFixed},
			{NodeID: 2, X: 6, Y: 0, Z: 0, Restraints: fullyFixed},
			{NodeID: 3, X: 6, Y: 6, Z: 0, Restraints: fullyFixed},
			{NodeID: 4, X: 0, Y: 6, Z: 0, Restraints: fullyFixed},
			{NodeID: 5, X: 0, Y: 0, Z: 3},
			{NodeID: 6, X: 6, Y: 0, Z: 3},
			{NodeID: 7, X: 6, Y: 6, Z: 3},
			{NodeID: 8, X: 0, Y: 6, Z: 3},
		},
		Elements: []models.GeometryElement{
			{ElementID: 1, ElementType: "column", StartNodeID: 1, EndNodeID: 5},
			{ElementID: 2, ElementType: "column", StartNodeID: 2, EndNodeID: 6},
			{ElementID: 3, ElementType: "column", StartNodeID: 3, EndNodeID: 7},
			{ElementID: 4, ElementType: "column", StartNodeID: 4, EndNodeID: 8},
			{ElementID: 5, ElementType: "beam", StartNodeID: 5, EndNodeID: 6},
			{ElementID: 6, ElementType: "beam", StartNodeID: 6, EndNodeID: 7},
			{ElementID: 7, ElementType: "beam", StartNodeID: 7, EndNodeID: 8},
			{ElementID: 8, ElementType: "beam", StartNodeID: 8, EndNodeID: 5},
		},
	}
}

// Selection owns the set of picked element ids. Nodes are not selectable;
// a node click is recorded in the log and nothing else.
type Selection struct {
	elements map[int]bool
	log      logging.Logger
}

func NewSelection(log logging.Logger) *Selection {
	return &Selection{elements: make(map[int]bool), log: log}
}

// ClickElement toggles the element's membership in the selection and
// reports the new state.
func (s *Selection) ClickElement(elementID int) bool {
	if s.elements[elementID] {
		delete(s.elements, elementID)
		return false
	}
	s.elements[elementID] = true
	return true
}

// ClickNode does not change the selection.
func (s *Selection) ClickNode(nodeID int) {
	s.log.Debug(context.Background(), "node clicked", "node_id", nodeID)
}

func (s *Selection) Contains(elementID int) bool {
	return s.elements[elementID]
}

// Elements returns the selected ids in ascending order.
func (s *Selection) Elements() []int {
	ids := make([]int, 0, len(s.elements))
	for id := range s.elements {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (s *Selection) Clear() {
	s.elements = make(map[int]bool)
}

func nodeColor(n models.GeometryNode) string {
	if n.Restrained() {
		return ansiRed
	}
	return ansiGreen
}

func elementColor(e models.GeometryElement) string {
	if e.ElementType == "column" {
		return ansiCyan
	}
	return ansiBlue
}

// Render draws the geometry as two framed sections, nodes then elements.
// Restrained nodes are red, free ones green; columns cyan, beams blue;
// a selected element is marked and recolored yellow.
func Render(geo models.Geometry, sel *Selection) string {
	var b strings.Builder

	b.WriteString("── nodes ──\n")
	for _, n := range geo.Nodes {
		state := "free"
		if n.Restrained() {
			state = "fixed"
		}
		fmt.Fprintf(&b, "  %sN%-3d%s (%6.2f, %6.2f, %6.2f) %s\n",
			nodeColor(n), n.NodeID, ansiReset, n.X, n.Y, n.Z, state)
	}

	b.WriteString("── elements ──\n")
	for _, e := range geo.Elements {
		marker := " "
		color := elementColor(e)
		if sel != nil && sel.Contains(e.ElementID) {
			marker = "*"
			color = ansiYellow
		}
		fmt.Fprintf(&b, " %s%sE%-3d%s %-6s N%d → N%d\n",
			marker, color, e.ElementID, ansiReset, e.ElementType, e.StartNodeID, e.EndNodeID)
	}

	return b.String()
}
