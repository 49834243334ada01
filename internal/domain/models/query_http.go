package models

// Requests for the query HTTP endpoints. Defined in domain for consistency and reuse.

type QueryRequest struct {
	Query              string `query:"query" json:"query" validate:"required,min=1,max=512"`
	RecursiveStability bool   `query:"recursive_stability" json:"recursive_stability"`
	MaxIterations      int    `query:"max_iterations" json:"max_iterations" default:"10" validate:"gte=1,lte=100"`
}

// QueryResponse mirrors ExecutionResult/StableResult for the HTTP surface;
// the stability-only fields are omitted on plain executions.
type QueryResponse struct {
	Regime        []float64          `json:"regime"`
	Blueprint     ExecutionBlueprint `json:"blueprint"`
	Provenance    string             `json:"provenance"`
	Iterations    *int               `json:"iterations,omitempty"`
	InitialRegime []float64          `json:"initial_regime,omitempty"`
}
