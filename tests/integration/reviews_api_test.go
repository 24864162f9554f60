package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/reviewlens/review-sentiment-api/internal/common"
	"github.com/reviewlens/review-sentiment-api/internal/domain"
	"github.com/reviewlens/review-sentiment-api/internal/handler"
	"github.com/reviewlens/review-sentiment-api/internal/middleware"
	"github.com/reviewlens/review-sentiment-api/internal/migration"
	"github.com/reviewlens/review-sentiment-api/internal/repository"
	"github.com/reviewlens/review-sentiment-api/internal/routes"
	"github.com/reviewlens/review-sentiment-api/internal/service"
	"github.com/reviewlens/review-sentiment-api/pkg/datecodec"
	"github.com/reviewlens/review-sentiment-api/pkg/i18n"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// fakeClassifier labels every text with the configured sentiment
type fakeClassifier struct {
	fail atomic.Bool
}

func (f *fakeClassifier) Classify(_ context.Context, text string) (*domain.Classification, error) {
	if f.fail.Load() {
		return nil, common.ErrClassificationFailed
	}
	return &domain.Classification{
		Sentiment:   "negativa",
		Score:       -0.6,
		Keywords:    []string{"atraso"},
		Explanation: "Cliente insatisfeito",
		Model:       "fake",
	}, nil
}

// ReviewsAPISuite is an integration test suite for the reviews API
type ReviewsAPISuite struct {
	suite.Suite
	db         *gorm.DB
	router     *gin.Engine
	classifier *fakeClassifier
}

func TestReviewsAPISuite(t *testing.T) {
	suite.Run(t, new(ReviewsAPISuite))
}

func (s *ReviewsAPISuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	// SQLite in-memory, one connection so every query sees the same DB
	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{TranslateError: true})
	s.Require().NoError(err)
	sqlDB, err := db.DB()
	s.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)
	s.Require().NoError(migration.Run(db))
	s.db = db

	s.classifier = &fakeClassifier{}
	svc := service.NewReviewService(
		repository.NewReviewRepository(db),
		s.classifier,
		datecodec.New(time.UTC),
		service.PageConfig{DefaultSize: 50, MaxSize: 100},
	)

	messages := i18n.NewDefaultBundle()
	s.router = gin.New()
	s.router.Use(middleware.I18n(messages))
	routes.Setup(s.router, handler.NewReviewHandler(svc, messages), nil)
}

func (s *ReviewsAPISuite) TearDownTest() {
	if sqlDB, err := s.db.DB(); err == nil {
		sqlDB.Close()
	}
}

func (s *ReviewsAPISuite) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *ReviewsAPISuite) decode(w *httptest.ResponseRecorder, v interface{}) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), v))
}

func (s *ReviewsAPISuite) createReview(name, date string) domain.CreateReviewResponse {
	w := s.do(http.MethodPost, "/reviews", map[string]string{
		"customer_name": name,
		"review_text":   "Entrega demorou duas semanas",
		"sentiment":     "negativa",
		"review_date":   date,
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp domain.CreateReviewResponse
	s.decode(w, &resp)
	return resp
}

// --- Create ---

func (s *ReviewsAPISuite) TestCreateReview_Success() {
	resp := s.createReview("Ana", "2024-05-20")

	s.Equal("OK", resp.Status)
	s.NotZero(resp.Review.ID)
	s.Equal("Ana", resp.Review.CustomerName)
	s.Equal("2024-05-20", resp.Review.ReviewDate)
	s.Equal(domain.SentimentNegative, resp.Review.Sentiment)
}

func (s *ReviewsAPISuite) TestCreateReview_TrailingSlash() {
	w := s.do(http.MethodPost, "/reviews/", map[string]string{
		"customer_name": "Ana", "review_text": "ok", "sentiment": "neutra", "review_date": "2024-05-20",
	})
	s.Equal(http.StatusCreated, w.Code)
}

func (s *ReviewsAPISuite) TestCreateReview_MissingField() {
	w := s.do(http.MethodPost, "/reviews", map[string]string{
		"review_text": "ok", "sentiment": "neutra", "review_date": "2024-05-20",
	})

	s.Equal(http.StatusBadRequest, w.Code)
	var body common.ErrorBody
	s.decode(w, &body)
	s.Equal(http.StatusBadRequest, body.Status)
	s.Require().NotNil(body.Error)
	s.Equal("customer_name", body.Error.Field)
	s.Contains(body.Message, "customer_name")
}

func (s *ReviewsAPISuite) TestCreateReview_InvalidSentiment() {
	w := s.do(http.MethodPost, "/reviews", map[string]string{
		"customer_name": "Ana", "review_text": "ok", "sentiment": "feliz", "review_date": "2024-05-20",
	})

	s.Equal(http.StatusBadRequest, w.Code)
	var body common.ErrorBody
	s.decode(w, &body)
	s.Equal("sentiment", body.Error.Field)
}

func (s *ReviewsAPISuite) TestCreateReview_InvalidDate() {
	w := s.do(http.MethodPost, "/reviews", map[string]string{
		"customer_name": "Ana", "review_text": "ok", "sentiment": "neutra", "review_date": "20/05/2024",
	})

	s.Equal(http.StatusBadRequest, w.Code)
	var body common.ErrorBody
	s.decode(w, &body)
	s.Equal("Formato de data inválido. Use YYYY-MM-DD.", body.Message)

	var n int64
	s.Require().NoError(s.db.Model(&domain.Review{}).Count(&n).Error)
	s.Zero(n)
}

func (s *ReviewsAPISuite) TestCreateReview_WrongFieldType() {
	w := s.do(http.MethodPost, "/reviews", map[string]interface{}{
		"customer_name": 42, "review_text": "ok", "sentiment": "neutra", "review_date": "2024-05-20",
	})

	s.Equal(http.StatusBadRequest, w.Code)
	var body common.ErrorBody
	s.decode(w, &body)
	s.Equal("customer_name", body.Error.Field)
}

func (s *ReviewsAPISuite) TestCreateReview_ClassifierDown() {
	s.classifier.fail.Store(true)

	w := s.do(http.MethodPost, "/reviews", map[string]string{
		"customer_name": "Ana", "review_text": "ok", "sentiment": "neutra", "review_date": "2024-05-20",
	})

	s.Equal(http.StatusBadGateway, w.Code)
	var body handler.PendingReviewResponse
	s.decode(w, &body)
	s.Equal("pending", body.AnalysisStatus)
	s.NotZero(body.Review.ID)

	// retry once the classifier is back
	s.classifier.fail.Store(false)
	w = s.do(http.MethodPost, "/reviews/"+itoa(body.Review.ID)+"/analysis", nil)
	s.Equal(http.StatusCreated, w.Code)
	var analysis handler.AnalysisEnvelope
	s.decode(w, &analysis)
	s.Equal(body.Review.ID, analysis.Analysis.ReviewID)

	w = s.do(http.MethodPost, "/reviews/"+itoa(body.Review.ID)+"/analysis", nil)
	s.Equal(http.StatusConflict, w.Code)
}

func (s *ReviewsAPISuite) TestCreateReview_AnalysisNotStored() {
	s.Require().NoError(s.db.Migrator().DropTable(&domain.SentimentAnalysis{}))

	w := s.do(http.MethodPost, "/reviews", map[string]string{
		"customer_name": "Ana", "review_text": "ok", "sentiment": "neutra", "review_date": "2024-05-20",
	})

	s.Equal(http.StatusInternalServerError, w.Code)
	var body handler.PendingReviewResponse
	s.decode(w, &body)
	s.Equal("pending", body.AnalysisStatus)
	s.NotZero(body.Review.ID)

	s.Require().NoError(migration.Run(s.db))
	w = s.do(http.MethodPost, "/reviews/"+itoa(body.Review.ID)+"/analysis", nil)
	s.Equal(http.StatusCreated, w.Code)
}

// --- Read ---

func (s *ReviewsAPISuite) TestGetReview() {
	created := s.createReview("Bruno", "2024-05-21")

	w := s.do(http.MethodGet, "/reviews/"+itoa(created.Review.ID), nil)
	s.Equal(http.StatusOK, w.Code)
	var env handler.ReviewEnvelope
	s.decode(w, &env)
	s.Equal("Bruno", env.Review.CustomerName)
	s.Equal("2024/05/21", env.Review.ReviewDate)

	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/reviews/9999", nil).Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/reviews/abc", nil).Code)
}

func (s *ReviewsAPISuite) TestListReviews() {
	s.createReview("a", "2024-05-01")
	s.createReview("b", "2024-05-03")
	s.createReview("c", "2024-05-02")

	w := s.do(http.MethodGet, "/reviews?size=2", nil)
	s.Equal(http.StatusOK, w.Code)
	var page domain.ReviewPage
	s.decode(w, &page)
	s.Equal(int64(3), page.Total)
	s.Equal(2, page.Size)
	s.Require().Len(page.Items, 2)
	s.Equal("b", page.Items[0].CustomerName)
	s.Equal("c", page.Items[1].CustomerName)

	w = s.do(http.MethodGet, "/reviews/?page=2&size=2", nil)
	s.decode(w, &page)
	s.Require().Len(page.Items, 1)
	s.Equal("a", page.Items[0].CustomerName)
}

// --- Report ---

func (s *ReviewsAPISuite) TestReport() {
	s.createReview("a", "2024-05-01")
	s.createReview("b", "2024-05-31")
	s.createReview("c", "2024-06-01")

	w := s.do(http.MethodGet, "/reviews/report?start_date=2024-05-01&end_date=2024-05-31", nil)
	s.Equal(http.StatusOK, w.Code)
	var report domain.Report
	s.decode(w, &report)
	s.Equal("2024-05-01", report.StartDate)
	s.Equal("2024-05-31", report.EndDate)
	s.Equal(2, report.TotalReviews)
	s.Equal(2, report.Negative)
	s.Equal(0, report.Positive)
	s.Len(report.Reviews, 2)
}

func (s *ReviewsAPISuite) TestReport_BadInput() {
	cases := []string{
		"/reviews/report",
		"/reviews/report?start_date=2024-05-01",
		"/reviews/report?start_date=2024-13-01&end_date=2024-12-31",
		"/reviews/report?start_date=2024-06-01&end_date=2024-05-01",
	}
	for _, path := range cases {
		w := s.do(http.MethodGet, path, nil)
		s.Equal(http.StatusBadRequest, w.Code, path)
	}
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
