package dto

// Engine identifies one of the cloud LLM backends in the ensemble.
type Engine string

const (
	EngineClaude Engine = "claude"
	EngineGemini Engine = "gemini"
	EngineOpenAI Engine = "openai"
)

// Category is the classification a query received when it was routed.
type Category string

const (
	CategoryCreative Category = "creative"
	CategoryComplex  Category = "complex"
	CategoryData     Category = "data"
	CategoryArabic   Category = "arabic"
	CategoryLong     Category = "long"
	CategorySimple   Category = "simple"
	CategoryDefault  Category = "default"
)

// EngineDecision is the routing outcome for a single query: the engine that
// should answer it, why, and the engine to try if the first one fails.
type EngineDecision struct {
	Engine   Engine   `json:"engine"`
	Category Category `json:"category"`
	Fallback Engine   `json:"fallback"`
}

type GenerateRequest struct {
	System string
	Query  string
}

type GenerateResponse struct {
	Text string
}
