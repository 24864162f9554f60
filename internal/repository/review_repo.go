package repository

import (
	"context"
	"errors"

	"github.com/reviewlens/review-sentiment-api/internal/common"
	"github.com/reviewlens/review-sentiment-api/internal/domain"
	"gorm.io/gorm"
)

// ReviewRepository 리뷰와 감정 분석 저장소
type ReviewRepository interface {
	// 리뷰
	Create(ctx context.Context, review *domain.Review) error
	FindByID(ctx context.Context, id int64) (*domain.Review, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Review, int64, error)
	ListInRange(ctx context.Context, start, end int64) ([]*domain.Review, error)

	// 감정 분석
	CreateAnalysis(ctx context.Context, analysis *domain.SentimentAnalysis) error
	HasAnalysis(ctx context.Context, reviewID int64) (bool, error)
	ListPendingAnalysis(ctx context.Context, limit int) ([]*domain.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new ReviewRepository
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Create inserts a review and assigns its ID
func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) error {
	return r.db.WithContext(ctx).Omit("Analysis").Create(review).Error
}

// FindByID returns gorm.ErrRecordNotFound when the review does not exist
func (r *reviewRepository) FindByID(ctx context.Context, id int64) (*domain.Review, error) {
	var review domain.Review
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// List returns one page of reviews, newest review date first
func (r *reviewRepository) List(ctx context.Context, offset, limit int) ([]*domain.Review, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Review{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []*domain.Review
	if err := r.db.WithContext(ctx).
		Order("review_date DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&reviews).Error; err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

// ListInRange returns reviews with start <= review_date <= end and their
// analyses loaded in one extra query, newest first
func (r *reviewRepository) ListInRange(ctx context.Context, start, end int64) ([]*domain.Review, error) {
	var reviews []*domain.Review
	err := r.db.WithContext(ctx).
		Preload("Analysis").
		Where("review_date >= ? AND review_date <= ?", start, end).
		Order("review_date DESC, id DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// CreateAnalysis inserts an analysis. A second analysis for the same review
// violates the unique index and is reported as common.ErrDuplicateAnalysis.
func (r *reviewRepository) CreateAnalysis(ctx context.Context, analysis *domain.SentimentAnalysis) error {
	err := r.db.WithContext(ctx).Create(analysis).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return common.ErrDuplicateAnalysis
	}
	return err
}

// HasAnalysis reports whether the review already has an analysis
func (r *reviewRepository) HasAnalysis(ctx context.Context, reviewID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.SentimentAnalysis{}).
		Where("review_id = ?", reviewID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListPendingAnalysis returns reviews that never completed classification, oldest first
func (r *reviewRepository) ListPendingAnalysis(ctx context.Context, limit int) ([]*domain.Review, error) {
	var reviews []*domain.Review
	err := r.db.WithContext(ctx).
		Select("reviews.*").
		Joins("LEFT JOIN sentiment_analysis ON sentiment_analysis.review_id = reviews.id").
		Where("sentiment_analysis.id IS NULL").
		Order("reviews.id ASC").
		Limit(limit).
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
