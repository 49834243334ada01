package models

// Composition is the logic gate used to fold regime series.
type Composition string

const (
	CompositionAND     Composition = "AND"
	CompositionOR      Composition = "OR"
	CompositionXOR     Composition = "XOR"
	CompositionAVERAGE Composition = "AVERAGE"
	CompositionSUM     Composition = "SUM"
)

// FunctionStep is a single registry function call in a blueprint.
// Weight is reserved for weighted composition and is not consumed by the fold.
type FunctionStep struct {
	FunctionName string             `json:"function_name"`
	Args         map[string]float64 `json:"args,omitempty"`
	Weight       float64            `json:"weight"`
}

// ExecutionBlueprint is the structured plan produced by the intent router.
// It is read-only after construction; composition validity is only checked
// at fold time, never here.
type ExecutionBlueprint struct {
	Steps       []FunctionStep `json:"steps"`
	Composition Composition    `json:"composition"`
	Timeframe   string         `json:"timeframe"`
	Assets      []string       `json:"assets"`
	Description string         `json:"description"`
}
