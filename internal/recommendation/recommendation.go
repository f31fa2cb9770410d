package recommendation

import "github.com/PaulElielk/Data-mining-Project/internal/catalog"

// Edge is one precomputed recommendation row: viewing the source product
// suggests the target. Scores are null when the edge table lacks them.
type Edge struct {
	TargetID   string
	Support    *float64
	Confidence *float64
	Lift       *float64
}

// Result is a recommended product plus the scores explaining the suggestion.
type Result struct {
	catalog.Product
	Meta catalog.RecommendationMeta `json:"recommendationMeta"`
}
