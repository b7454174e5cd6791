package model

// Stats summarizes the stored expenses for reporting. Sums exclude
// sentinel amounts; AvgAccuracy covers every stored expense.
type Stats struct {
	ByCategory  map[string]float64 `json:"by_category"`
	ByLanguage  map[string]int     `json:"by_language"`
	TotalAmount float64            `json:"total_amount"`
	AvgAccuracy float64            `json:"avg_accuracy"`
	Count       int                `json:"count"`
	NeedsReview int                `json:"needs_review"`
}
