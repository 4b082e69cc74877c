package models

// GeometryNode is a node in a model's BIM geometry. Restraints are keyed by
// DOF (dx, dy, dz, rx, ry, rz); a missing key means free.
type GeometryNode struct {
	NodeID     int             `json:"node_id"`
	X          float64         `json:"x"`
	Y          float64         `json:"y"`
	Z          float64         `json:"z"`
	Restraints map[string]bool `json:"restraints,omitempty"`
}

// Restrained reports whether any DOF of the node is fixed.
func (n GeometryNode) Restrained() bool {
	for _, fixed := range n.Restraints {
		if fixed {
			return true
		}
	}
	return false
}

// GeometryElement connects two nodes. ElementType is "beam" or "column"
// for frame models.
type GeometryElement struct {
	ElementID   int    `json:"element_id"`
	ElementType string `json:"element_type"`
	StartNodeID int    `json:"start_node_id"`
	EndNodeID   int    `json:"end_node_id"`
	MaterialID  string `json:"material_id,omitempty"`
	SectionID   string `json:"section_id,omitempty"`
}

// Geometry is the payload of GET/PUT /api/bim/models/{id}/geometry.
type Geometry struct {
	Nodes    []GeometryNode    `json:"nodes"`
	Elements []GeometryElement `json:"elements"`
}

// ExportRequest asks the server to export a model's BIM geometry.
// Supported formats: ifc, step, dwg.
type ExportRequest struct {
	Format string `json:"format"`
}

// ExportInfo describes a finished export.
type ExportInfo struct {
	ModelID  string `json:"model_id"`
	Format   string `json:"format"`
	FileName string `json:"file_name"`
	URL      string `json:"url,omitempty"`
}
