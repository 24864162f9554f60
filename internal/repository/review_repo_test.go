package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/reviewlens/review-sentiment-api/internal/common"
	"github.com/reviewlens/review-sentiment-api/internal/domain"
	"github.com/reviewlens/review-sentiment-api/internal/migration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const day = int64(86400)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, migration.Run(db))
	return db
}

func newReview(name string, date int64, sentiment domain.Sentiment) *domain.Review {
	return &domain.Review{
		CustomerName: name,
		ReviewText:   "texto de " + name,
		Sentiment:    sentiment,
		ReviewDate:   date,
	}
}

func TestCreateAndFindByID(t *testing.T) {
	ctx := context.Background()
	repo := NewReviewRepository(setupTestDB(t))

	review := newReview("Eduardo FG", 1717200000, domain.SentimentPositive)
	require.NoError(t, repo.Create(ctx, review))
	assert.NotZero(t, review.ID)

	found, err := repo.FindByID(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, review.CustomerName, found.CustomerName)
	assert.Equal(t, review.ReviewText, found.ReviewText)
	assert.Equal(t, domain.SentimentPositive, found.Sentiment)
	assert.Equal(t, int64(1717200000), found.ReviewDate)

	_, err = repo.FindByID(ctx, review.ID+100)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestListOrdersNewestFirstAndPaginates(t *testing.T) {
	ctx := context.Background()
	repo := NewReviewRepository(setupTestDB(t))

	base := int64(1717200000)
	for i, name := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, repo.Create(ctx, newReview(name, base+int64(i)*day, domain.SentimentNeutral)))
	}

	page, total, err := repo.List(ctx, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, page, 2)
	assert.Equal(t, "e", page[0].CustomerName)
	assert.Equal(t, "d", page[1].CustomerName)

	page, _, err = repo.List(ctx, 4, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "a", page[0].CustomerName)
}

func TestListInRangeLoadsAnalysis(t *testing.T) {
	ctx := context.Background()
	repo := NewReviewRepository(setupTestDB(t))

	base := int64(1717200000)
	before := newReview("before", base-day, domain.SentimentPositive)
	first := newReview("first", base, domain.SentimentPositive)
	last := newReview("last", base+29*day, domain.SentimentNegative)
	after := newReview("after", base+30*day, domain.SentimentNegative)
	for _, r := range []*domain.Review{before, first, last, after} {
		require.NoError(t, repo.Create(ctx, r))
	}
	require.NoError(t, repo.CreateAnalysis(ctx, &domain.SentimentAnalysis{
		ReviewID: first.ID, Sentiment: "positiva", Score: 0.9, Keywords: "ótimo", Explanation: "elogio",
	}))

	reviews, err := repo.ListInRange(ctx, base, base+29*day)
	require.NoError(t, err)
	require.Len(t, reviews, 2)

	assert.Equal(t, "last", reviews[0].CustomerName)
	assert.Nil(t, reviews[0].Analysis)

	assert.Equal(t, "first", reviews[1].CustomerName)
	require.NotNil(t, reviews[1].Analysis)
	assert.Equal(t, "positiva", reviews[1].Analysis.Sentiment)
	assert.InDelta(t, 0.9, reviews[1].Analysis.Score, 1e-9)
}

func TestCreateAnalysisDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewReviewRepository(setupTestDB(t))

	review := newReview("dup", 1717200000, domain.SentimentNeutral)
	require.NoError(t, repo.Create(ctx, review))

	require.NoError(t, repo.CreateAnalysis(ctx, &domain.SentimentAnalysis{ReviewID: review.ID, Sentiment: "neutra"}))
	err := repo.CreateAnalysis(ctx, &domain.SentimentAnalysis{ReviewID: review.ID, Sentiment: "positiva"})
	assert.True(t, errors.Is(err, common.ErrDuplicateAnalysis))

	has, err := repo.HasAnalysis(ctx, review.ID)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestCreateAnalysisConcurrentOnlyOneWins(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewReviewRepository(db)

	review := newReview("race", 1717200000, domain.SentimentNeutral)
	require.NoError(t, repo.Create(ctx, review))

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			errs[idx] = repo.CreateAnalysis(ctx, &domain.SentimentAnalysis{ReviewID: review.ID, Sentiment: "neutra"})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, errors.Is(err, common.ErrDuplicateAnalysis), "unexpected error: %v", err)
	}
	assert.Equal(t, 1, succeeded)

	var count int64
	require.NoError(t, db.Model(&domain.SentimentAnalysis{}).Where("review_id = ?", review.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestListPendingAnalysis(t *testing.T) {
	ctx := context.Background()
	repo := NewReviewRepository(setupTestDB(t))

	analyzed := newReview("analyzed", 1717200000, domain.SentimentPositive)
	pending1 := newReview("pending1", 1717200000+day, domain.SentimentNegative)
	pending2 := newReview("pending2", 1717200000-day, domain.SentimentNeutral)
	for _, r := range []*domain.Review{analyzed, pending1, pending2} {
		require.NoError(t, repo.Create(ctx, r))
	}
	require.NoError(t, repo.CreateAnalysis(ctx, &domain.SentimentAnalysis{ReviewID: analyzed.ID, Sentiment: "positiva"}))

	pending, err := repo.ListPendingAnalysis(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, pending1.ID, pending[0].ID)
	assert.Equal(t, pending2.ID, pending[1].ID)

	pending, err = repo.ListPendingAnalysis(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

func TestDeletingReviewCascadesToAnalysis(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewReviewRepository(db)

	review := newReview("cascade", 1717200000, domain.SentimentPositive)
	require.NoError(t, repo.Create(ctx, review))
	require.NoError(t, repo.CreateAnalysis(ctx, &domain.SentimentAnalysis{ReviewID: review.ID, Sentiment: "positiva"}))

	require.NoError(t, db.Delete(&domain.Review{}, review.ID).Error)

	var count int64
	require.NoError(t, db.Model(&domain.SentimentAnalysis{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
