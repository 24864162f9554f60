package service

import "github.com/reviewlens/review-sentiment-api/internal/domain"

// AggregateReport counts reviews per analysis sentiment and builds detail items
// in input order. A review without an analysis counts as neutral and unanalyzed.
func AggregateReport(reviews []*domain.Review, renderDate func(int64) string) *domain.Report {
	report := &domain.Report{
		TotalReviews: len(reviews),
		Reviews:      make([]domain.ReportItem, 0, len(reviews)),
	}

	for _, review := range reviews {
		item := domain.ReportItem{
			ID:           review.ID,
			CustomerName: review.CustomerName,
			ReviewDate:   renderDate(review.ReviewDate),
			ReviewText:   review.ReviewText,
		}

		label := ""
		if review.Analysis != nil {
			label = review.Analysis.Sentiment
			item.Analyzed = true
			item.Analysis = &domain.ReportAnalysis{
				Label:       review.Analysis.Sentiment,
				Score:       review.Analysis.Score,
				Keywords:    review.Analysis.KeywordList(),
				Explanation: review.Analysis.Explanation,
			}
		} else {
			report.Unanalyzed++
		}

		item.Sentiment = domain.English(label)
		switch item.Sentiment {
		case "positive":
			report.Positive++
		case "negative":
			report.Negative++
		default:
			report.Neutral++
		}

		report.Reviews = append(report.Reviews, item)
	}

	return report
}
