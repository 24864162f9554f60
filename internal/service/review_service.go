package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/reviewlens/review-sentiment-api/internal/common"
	"github.com/reviewlens/review-sentiment-api/internal/domain"
	"github.com/reviewlens/review-sentiment-api/internal/repository"
	"github.com/reviewlens/review-sentiment-api/pkg/datecodec"
	"github.com/reviewlens/review-sentiment-api/pkg/logger"
	"gorm.io/gorm"
)

// 리뷰 에러 정의
var (
	ErrReviewNotFound = fmt.Errorf("review %w", common.ErrNotFound)
)

const statusOK = "OK"

// ReviewService 리뷰 서비스 인터페이스
type ReviewService interface {
	// 리뷰
	CreateReview(ctx context.Context, req *domain.CreateReviewRequest) (*domain.CreateReviewResponse, error)
	GetReview(ctx context.Context, id int64) (*domain.ReviewView, error)
	ListReviews(ctx context.Context, page, size int) (*domain.ReviewPage, error)

	// 리포트
	BuildReport(ctx context.Context, startDate, endDate string) (*domain.Report, error)

	// 감정 분석 재시도
	AnalyzeReview(ctx context.Context, id int64) (*domain.AnalysisView, error)
	ReanalyzePending(ctx context.Context, limit int) (ok, failed int, err error)
}

// PageConfig list page size limits
type PageConfig struct {
	DefaultSize int
	MaxSize     int
}

// reviewService 구현체
type reviewService struct {
	repo       repository.ReviewRepository
	classifier Classifier
	codec      *datecodec.Codec
	validate   *validator.Validate
	pages      PageConfig
}

// NewReviewService 생성자
func NewReviewService(
	repo repository.ReviewRepository,
	classifier Classifier,
	codec *datecodec.Codec,
	pages PageConfig,
) ReviewService {
	if pages.DefaultSize <= 0 {
		pages.DefaultSize = 50
	}
	if pages.MaxSize <= 0 {
		pages.MaxSize = 100
	}
	if pages.DefaultSize > pages.MaxSize {
		pages.DefaultSize = pages.MaxSize
	}
	return &reviewService{
		repo:       repo,
		classifier: classifier,
		codec:      codec,
		validate:   newValidator(),
		pages:      pages,
	}
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	// report JSON field names instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// CreateReview 리뷰 저장 후 감정 분석.
// When classification fails the review stays stored; the response is returned
// together with an error wrapping common.ErrClassificationFailed.
func (s *reviewService) CreateReview(ctx context.Context, req *domain.CreateReviewRequest) (*domain.CreateReviewResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	reviewDate, err := s.codec.ToEpoch(req.ReviewDate, datecodec.DateLayout)
	if err != nil {
		return nil, fmt.Errorf("review_date %q: %w", req.ReviewDate, err)
	}

	review := &domain.Review{
		CustomerName: req.CustomerName,
		ReviewText:   req.ReviewText,
		Sentiment:    domain.Sentiment(req.Sentiment),
		ReviewDate:   reviewDate,
	}
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to store review: %w", err)
	}

	view := review.ToView(s.codec.FromEpoch)
	// 응답은 입력된 날짜 문자열을 그대로 돌려준다
	view.ReviewDate = req.ReviewDate
	resp := &domain.CreateReviewResponse{Status: statusOK, Review: view}

	if _, err := s.analyze(ctx, review); err != nil {
		if errors.Is(err, common.ErrDuplicateAnalysis) {
			// stored concurrently by the re-analysis sweep
			return resp, nil
		}
		logger.GetLogger().Warn().
			Err(err).
			Int64("review_id", review.ID).
			Msg("review stored without sentiment analysis")
		return resp, err
	}
	return resp, nil
}

// GetReview 리뷰 단건 조회
func (s *reviewService) GetReview(ctx context.Context, id int64) (*domain.ReviewView, error) {
	review, err := s.findReview(ctx, id)
	if err != nil {
		return nil, err
	}
	view := review.ToView(s.codec.FromEpoch)
	return &view, nil
}

// ListReviews 리뷰 목록 (최신 리뷰 날짜 순)
func (s *reviewService) ListReviews(ctx context.Context, page, size int) (*domain.ReviewPage, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = s.pages.DefaultSize
	}
	if size > s.pages.MaxSize {
		size = s.pages.MaxSize
	}
	// offset must not overflow
	if maxPage := math.MaxInt / size; page > maxPage {
		page = maxPage
	}

	reviews, total, err := s.repo.List(ctx, (page-1)*size, size)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	items := make([]domain.ReviewView, 0, len(reviews))
	for _, r := range reviews {
		items = append(items, r.ToView(s.codec.FromEpoch))
	}
	return domain.NewReviewPage(items, total, page, size), nil
}

// BuildReport 기간 내 리뷰 감정 리포트 (양 끝 포함)
func (s *reviewService) BuildReport(ctx context.Context, startDate, endDate string) (*domain.Report, error) {
	start, err := s.codec.ToEpoch(startDate, datecodec.DateLayout)
	if err != nil {
		return nil, fmt.Errorf("start_date %q: %w", startDate, err)
	}
	end, err := s.codec.ToEpoch(endDate, datecodec.DateLayout)
	if err != nil {
		return nil, fmt.Errorf("end_date %q: %w", endDate, err)
	}
	if start > end {
		return nil, common.NewValidationError("end_date", common.ReasonRange)
	}

	reviews, err := s.repo.ListInRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load reviews for report: %w", err)
	}

	report := AggregateReport(reviews, s.codec.FromEpoch)
	report.StartDate = startDate
	report.EndDate = endDate
	return report, nil
}

// AnalyzeReview 분석이 없는 리뷰를 다시 분류
func (s *reviewService) AnalyzeReview(ctx context.Context, id int64) (*domain.AnalysisView, error) {
	review, err := s.findReview(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.HasAnalysis(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check analysis: %w", err)
	}
	if exists {
		return nil, common.ErrDuplicateAnalysis
	}

	analysis, err := s.analyze(ctx, review)
	if err != nil {
		return nil, err
	}
	view := analysis.ToView()
	return &view, nil
}

// ReanalyzePending 분석 누락 리뷰 일괄 재시도
func (s *reviewService) ReanalyzePending(ctx context.Context, limit int) (ok, failed int, err error) {
	pending, err := s.repo.ListPendingAnalysis(ctx, limit)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to list pending reviews: %w", err)
	}

	log := logger.GetLogger()
	for _, review := range pending {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ok, failed, ctxErr
		}

		if _, err := s.analyze(ctx, review); err != nil {
			if errors.Is(err, common.ErrDuplicateAnalysis) {
				// analyzed concurrently elsewhere
				ok++
				continue
			}
			failed++
			log.Warn().Err(err).Int64("review_id", review.ID).Msg("re-analysis failed")
			continue
		}
		ok++
	}

	log.Info().Int("ok", ok).Int("failed", failed).Int("pending", len(pending)).Msg("re-analysis finished")
	return ok, failed, nil
}

// analyze classifies a stored review and persists the result
func (s *reviewService) analyze(ctx context.Context, review *domain.Review) (*domain.SentimentAnalysis, error) {
	result, err := s.classifier.Classify(ctx, review.ReviewText)
	if err != nil {
		return nil, err
	}

	analysis := domain.NewSentimentAnalysis(review.ID, result)
	if err := s.repo.CreateAnalysis(ctx, analysis); err != nil {
		if errors.Is(err, common.ErrDuplicateAnalysis) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to store analysis: %w", err)
	}
	return analysis, nil
}

func (s *reviewService) findReview(ctx context.Context, id int64) (*domain.Review, error) {
	review, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to load review: %w", err)
	}
	return review, nil
}

// validateRequest returns the first failing field in declaration order
func (s *reviewService) validateRequest(req *domain.CreateReviewRequest) error {
	if req == nil {
		return common.NewValidationError("body", common.ReasonRequired)
	}
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	}
	fe := fieldErrs[0]
	if fe.Tag() == "oneof" {
		return common.NewValidationError(fe.Field(), common.ReasonOneOf)
	}
	return common.NewValidationError(fe.Field(), common.ReasonRequired)
}
