package models

// ExecutionResult is the outcome of a single blueprint execution.
// Regime holds binary values after AND/OR/XOR, small integers after SUM,
// and floats in [0,1] after AVERAGE; it always matches the source series
// length.
type ExecutionResult struct {
	Regime     []float64          `json:"regime"`
	Blueprint  ExecutionBlueprint `json:"blueprint"`
	Provenance string             `json:"provenance"`
}

// StableResult is the outcome of the recursive stability loop.
// Iterations counts smoothing rounds actually performed.
type StableResult struct {
	Regime        []float64          `json:"regime"`
	Iterations    int                `json:"iterations"`
	InitialRegime []float64          `json:"initial_regime"`
	Blueprint     ExecutionBlueprint `json:"blueprint"`
	Provenance    string             `json:"provenance"`
}

// IterationSnapshot is one stability-loop round, emitted to stream observers.
type IterationSnapshot struct {
	Iteration int       `json:"iteration"`
	Distance  int       `json:"distance"`
	Stable    bool      `json:"stable"`
	Regime    []float64 `json:"regime"`
}
