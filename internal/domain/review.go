package domain

import "strings"

// Sentiment 고객이 직접 선택한 감정 (원본 데이터는 포르투갈어 값)
type Sentiment string

const (
	SentimentPositive Sentiment = "positiva"
	SentimentNeutral  Sentiment = "neutra"
	SentimentNegative Sentiment = "negativa"
)

// Valid reports whether s is one of the three accepted values
func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	}
	return false
}

// English maps a Portuguese label to positive/negative/neutral.
// Unknown or empty labels map to neutral.
func English(label string) string {
	switch Sentiment(strings.ToLower(strings.TrimSpace(label))) {
	case SentimentPositive:
		return "positive"
	case SentimentNegative:
		return "negative"
	default:
		return "neutral"
	}
}

// Review a customer's submitted feedback
type Review struct {
	ID           int64              `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CustomerName string             `gorm:"column:customer_name;type:varchar(255);not null" json:"customer_name"`
	ReviewDate   int64              `gorm:"column:review_date;not null;index:idx_reviews_review_date" json:"review_date"`
	ReviewText   string             `gorm:"column:review_text;type:text;not null" json:"review_text"`
	Sentiment    Sentiment          `gorm:"column:sentiment;type:varchar(16);not null;check:chk_reviews_sentiment,sentiment IN ('positiva','neutra','negativa')" json:"sentiment"`
	Analysis     *SentimentAnalysis `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName returns the table name
func (Review) TableName() string {
	return "reviews"
}

// CreateReviewRequest review submission body.
// Field order is the order validation errors are reported in.
type CreateReviewRequest struct {
	CustomerName string `json:"customer_name" validate:"required,notblank"`
	ReviewText   string `json:"review_text" validate:"required,notblank"`
	Sentiment    string `json:"sentiment" validate:"required,oneof=positiva negativa neutra"`
	ReviewDate   string `json:"review_date" validate:"required,notblank"`
}

// ReviewView review as presented to API clients (date in display form)
type ReviewView struct {
	ID           int64     `json:"id"`
	CustomerName string    `json:"customer_name"`
	ReviewText   string    `json:"review_text"`
	Sentiment    Sentiment `json:"sentiment"`
	ReviewDate   string    `json:"review_date"`
}

// ToView converts a stored review using the given date renderer
func (r *Review) ToView(renderDate func(int64) string) ReviewView {
	return ReviewView{
		ID:           r.ID,
		CustomerName: r.CustomerName,
		ReviewText:   r.ReviewText,
		Sentiment:    r.Sentiment,
		ReviewDate:   renderDate(r.ReviewDate),
	}
}

// CreateReviewResponse result of a successful submission
type CreateReviewResponse struct {
	Status string     `json:"status"`
	Review ReviewView `json:"review"`
}

// ReviewPage one page of reviews, newest first
type ReviewPage struct {
	Items []ReviewView `json:"items"`
	Total int64        `json:"total"`
	Page  int          `json:"page"`
	Size  int          `json:"size"`
	Pages int64        `json:"pages"`
}

// NewReviewPage builds a page and computes the page count
func NewReviewPage(items []ReviewView, total int64, page, size int) *ReviewPage {
	pages := total / int64(size)
	if total%int64(size) > 0 {
		pages++
	}
	return &ReviewPage{
		Items: items,
		Total: total,
		Page:  page,
		Size:  size,
		Pages: pages,
	}
}
