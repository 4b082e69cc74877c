package models

import "time"

// Material is a material record attached to a structural model.
type Material struct {
	ID                  string    `json:"id"`
	ModelID             string    `json:"model_id"`
	Name                string    `json:"name"`
	MaterialType        string    `json:"material_type"`
	ElasticModulus      float64   `json:"elastic_modulus,omitempty"`
	ShearModulus        float64   `json:"shear_modulus,omitempty"`
	PoissonRatio        float64   `json:"poisson_ratio,omitempty"`
	Density             float64   `json:"density,omitempty"`
	YieldStrength       float64   `json:"yield_strength,omitempty"`
	UltimateStrength    float64   `json:"ultimate_strength,omitempty"`
	CompressiveStrength float64   `json:"compressive_strength,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

// MaterialDraft carries user-editable material fields.
type MaterialDraft struct {
	Name                string  `json:"name"`
	MaterialType        string  `json:"material_type"`
	ElasticModulus      float64 `json:"elastic_modulus,omitempty"`
	ShearModulus        float64 `json:"shear_modulus,omitempty"`
	PoissonRatio        float64 `json:"poisson_ratio,omitempty"`
	Density             float64 `json:"density,omitempty"`
	YieldStrength       float64 `json:"yield_strength,omitempty"`
	UltimateStrength    float64 `json:"ultimate_strength,omitempty"`
	CompressiveStrength float64 `json:"compressive_strength,omitempty"`
}

// Section is a cross-section record attached to a structural model.
type Section struct {
	ID              string    `json:"id"`
	ModelID         string    `json:"model_id"`
	Name            string    `json:"name"`
	SectionType     string    `json:"section_type"`
	Area            float64   `json:"area,omitempty"`
	MomentInertiaY  float64   `json:"moment_inertia_y,omitempty"`
	MomentInertiaZ  float64   `json:"moment_inertia_z,omitempty"`
	TorsionConstant float64   `json:"torsion_constant,omitempty"`
	SectionModulusY float64   `json:"section_modulus_y,omitempty"`
	SectionModulusZ float64   `json:"section_modulus_z,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// SectionDraft carries user-editable section fields.
type SectionDraft struct {
	Name            string  `json:"name"`
	SectionType     string  `json:"section_type"`
	Area            float64 `json:"area,omitempty"`
	MomentInertiaY  float64 `json:"moment_inertia_y,omitempty"`
	MomentInertiaZ  float64 `json:"moment_inertia_z,omitempty"`
	TorsionConstant float64 `json:"torsion_constant,omitempty"`
	SectionModulusY float64 `json:"section_modulus_y,omitempty"`
	SectionModulusZ float64 `json:"section_modulus_z,omitempty"`
}
