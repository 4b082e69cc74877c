package models

import "time"

// Project is a server-owned project record. The client holds transient,
// cached copies keyed by project id.
type Project struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	ProjectType string     `json:"project_type"`
	Units       string     `json:"units"`
	DesignCode  string     `json:"design_code"`
	OwnerID     string     `json:"owner_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	IsActive    bool       `json:"is_active"`
}

// ProjectDraft carries the user-editable project fields for create/update
// requests. Validation is server-side; the client submits as typed.
type ProjectDraft struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ProjectType string `json:"project_type"`
	Units       string `json:"units"`
	DesignCode  string `json:"design_code"`
}

// NewProjectDraft returns a draft with the server's defaults prefilled.
func NewProjectDraft() ProjectDraft {
	return ProjectDraft{
		ProjectType: "building",
		Units:       "metric",
		DesignCode:  "AISC",
	}
}

// StructuralModel is a structural model inside a project.
type StructuralModel struct {
	ID           string     `json:"id"`
	ProjectID    string     `json:"project_id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	ModelType    string     `json:"model_type"`
	AnalysisType string     `json:"analysis_type"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
	IsActive     bool       `json:"is_active"`
}

// ModelDraft carries user-editable structural model fields.
type ModelDraft struct {
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	ModelType    string `json:"model_type"`
	AnalysisType string `json:"analysis_type"`
}

// NewModelDraft returns a draft with the server's defaults prefilled.
func NewModelDraft() ModelDraft {
	return ModelDraft{
		ModelType:    "3d_frame",
		AnalysisType: "linear",
	}
}
