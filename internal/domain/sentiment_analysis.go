package domain

import (
	"strings"
	"time"
)

// DefaultExplanation used when the classifier returns no explanation
const DefaultExplanation = "Análise sem explicação detalhada."

const keywordSeparator = ","

// SentimentAnalysis AI-derived assessment of a review (at most one per review)
type SentimentAnalysis struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ReviewID    int64     `gorm:"column:review_id;not null;uniqueIndex:uq_sentiment_analysis_review_id" json:"review_id"`
	Sentiment   string    `gorm:"column:sentiment;type:varchar(32);not null" json:"sentiment"`
	Score       float64   `gorm:"column:score;not null" json:"score"`
	Keywords    string    `gorm:"column:keywords;type:text" json:"keywords"`
	Explanation string    `gorm:"column:explanation;type:text" json:"explanation"`
	Model       string    `gorm:"column:model;type:varchar(100)" json:"model"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName returns the table name
func (SentimentAnalysis) TableName() string {
	return "sentiment_analysis"
}

// Classification structured result returned by the sentiment classifier
type Classification struct {
	Sentiment   string   `json:"sentiment"`
	Score       float64  `json:"score"`
	Keywords    []string `json:"keywords"`
	Explanation string   `json:"explanation"`
	Model       string   `json:"-"`
}

// NewSentimentAnalysis flattens a classification into a storable analysis
func NewSentimentAnalysis(reviewID int64, c *Classification) *SentimentAnalysis {
	explanation := strings.TrimSpace(c.Explanation)
	if explanation == "" {
		explanation = DefaultExplanation
	}
	return &SentimentAnalysis{
		ReviewID:    reviewID,
		Sentiment:   c.Sentiment,
		Score:       c.Score,
		Keywords:    JoinKeywords(c.Keywords),
		Explanation: explanation,
		Model:       c.Model,
		CreatedAt:   time.Now(),
	}
}

// KeywordList splits the stored keyword field back into a list
func (a *SentimentAnalysis) KeywordList() []string {
	return SplitKeywords(a.Keywords)
}

// JoinKeywords trims keywords, drops empty ones and joins them with a comma
func JoinKeywords(keywords []string) string {
	cleaned := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.TrimSpace(k)
		if k != "" {
			cleaned = append(cleaned, k)
		}
	}
	return strings.Join(cleaned, keywordSeparator)
}

// SplitKeywords inverse of JoinKeywords
func SplitKeywords(s string) []string {
	result := []string{}
	for _, k := range strings.Split(s, keywordSeparator) {
		k = strings.TrimSpace(k)
		if k != "" {
			result = append(result, k)
		}
	}
	return result
}

// AnalysisView analysis as returned by the re-analysis endpoint
type AnalysisView struct {
	ReviewID    int64    `json:"review_id"`
	Sentiment   string   `json:"sentiment"`
	Score       float64  `json:"score"`
	Keywords    []string `json:"keywords"`
	Explanation string   `json:"explanation"`
	Model       string   `json:"model,omitempty"`
}

// ToView converts the analysis for API output
func (a *SentimentAnalysis) ToView() AnalysisView {
	return AnalysisView{
		ReviewID:    a.ReviewID,
		Sentiment:   a.Sentiment,
		Score:       a.Score,
		Keywords:    a.KeywordList(),
		Explanation: a.Explanation,
		Model:       a.Model,
	}
}
