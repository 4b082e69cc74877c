package models

// DesignSettings configures code checking for a set of elements.
type DesignSettings struct {
	DesignCode   string `json:"design_code"`
	MaterialType string `json:"material_type"`

	LoadFactors       map[string]float64 `json:"load_factors,omitempty"`
	ResistanceFactors map[string]float64 `json:"resistance_factors,omitempty"`

	EffectiveLengthFactors   map[string]float64 `json:"effective_length_factors,omitempty"`
	LateralTorsionalBuckling bool               `json:"lateral_torsional_buckling"`
	LocalBuckling            bool               `json:"local_buckling"`

	DeflectionLimits map[string]float64 `json:"deflection_limits,omitempty"`
}

// DefaultDesignSettings mirrors the server-side defaults.
func DefaultDesignSettings() DesignSettings {
	return DesignSettings{
		DesignCode:               "AISC_360",
		MaterialType:             "steel",
		LateralTorsionalBuckling: true,
		LocalBuckling:            true,
	}
}

// DesignRequest is the body of POST /api/design/check.
type DesignRequest struct {
	ModelID          string         `json:"model_id"`
	ElementIDs       []string       `json:"element_ids"`
	AnalysisResultID string         `json:"analysis_result_id"`
	Settings         DesignSettings `json:"settings"`
}

// OptimizeRequest is the body of POST /api/design/optimize.
type OptimizeRequest struct {
	ModelID    string         `json:"model_id"`
	ElementIDs []string       `json:"element_ids"`
	Settings   DesignSettings `json:"settings"`
}

// DesignCheck is a single demand/capacity check on an element.
// Status is PASS, FAIL or WARNING as reported by the server.
type DesignCheck struct {
	CheckType         string  `json:"check_type"`
	Demand            float64 `json:"demand"`
	Capacity          float64 `json:"capacity"`
	Ratio             float64 `json:"ratio"`
	Status            string  `json:"status"`
	GoverningEquation string  `json:"governing_equation,omitempty"`
}

// ElementDesignResult aggregates all checks for one element.
type ElementDesignResult struct {
	ElementID    string `json:"element_id"`
	ElementType  string `json:"element_type"`
	SectionName  string `json:"section_name"`
	MaterialName string `json:"material_name"`

	DesignChecks []DesignCheck `json:"design_checks"`

	ControllingRatio float64  `json:"controlling_ratio"`
	ControllingCheck string   `json:"controlling_check,omitempty"`
	OverallStatus    string   `json:"overall_status"`
	Recommendations  []string `json:"recommendations,omitempty"`
}
