package migration

import (
	"fmt"

	"github.com/reviewlens/review-sentiment-api/internal/domain"
	"gorm.io/gorm"
)

// Run creates or updates the reviews and sentiment_analysis tables.
// sentiment_analysis is migrated after reviews so its foreign key
// (ON DELETE CASCADE) can reference it.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.Review{}, &domain.SentimentAnalysis{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
