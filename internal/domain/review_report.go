package domain

// Report sentiment breakdown of the reviews inside a date range
type Report struct {
	StartDate    string       `json:"start_date"`
	EndDate      string       `json:"end_date"`
	TotalReviews int          `json:"total_reviews"`
	Positive     int          `json:"positive"`
	Negative     int          `json:"negative"`
	Neutral      int          `json:"neutral"`
	Unanalyzed   int          `json:"unanalyzed"`
	Reviews      []ReportItem `json:"reviews"`
}

// ReportItem per-review detail. Analyzed=false means the classification
// step never completed for this review and Analysis is nil.
type ReportItem struct {
	ID           int64           `json:"id"`
	CustomerName string          `json:"customer_name"`
	ReviewDate   string          `json:"review_date"`
	ReviewText   string          `json:"review_text"`
	Sentiment    string          `json:"sentiment"`
	Analyzed     bool            `json:"analyzed"`
	Analysis     *ReportAnalysis `json:"analysis"`
}

// ReportAnalysis analysis fields shown in a report item
type ReportAnalysis struct {
	Label       string   `json:"label"`
	Score       float64  `json:"score"`
	Keywords    []string `json:"keywords"`
	Explanation string   `json:"explanation"`
}
