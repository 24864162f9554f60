package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reviewlens/review-sentiment-api/internal/common"
	"github.com/reviewlens/review-sentiment-api/internal/domain"
	"github.com/reviewlens/review-sentiment-api/internal/middleware"
	"github.com/reviewlens/review-sentiment-api/internal/service"
	"github.com/reviewlens/review-sentiment-api/pkg/ginutil"
	"github.com/reviewlens/review-sentiment-api/pkg/i18n"
)

const analysisPending = "pending"

// PendingReviewResponse 500/502 body when the review was stored but not analyzed
type PendingReviewResponse struct {
	common.ErrorBody
	Review         domain.ReviewView `json:"review"`
	AnalysisStatus string            `json:"analysis_status"`
}

// ReviewEnvelope single review response
type ReviewEnvelope struct {
	Review domain.ReviewView `json:"review"`
}

// AnalysisEnvelope analysis response
type AnalysisEnvelope struct {
	Analysis domain.AnalysisView `json:"analysis"`
}

// ReviewHandler handles review HTTP requests
type ReviewHandler struct {
	service  service.ReviewService
	messages *i18n.Bundle
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(svc service.ReviewService, messages *i18n.Bundle) *ReviewHandler {
	if messages == nil {
		messages = i18n.NewDefaultBundle()
	}
	return &ReviewHandler{service: svc, messages: messages}
}

// CreateReview handles POST /reviews
// @Summary 리뷰 등록
// @Description Stores a customer review and classifies its sentiment
// @Tags reviews
// @Accept json
// @Produce json
// @Param request body domain.CreateReviewRequest true "review"
// @Success 201 {object} domain.CreateReviewResponse
// @Failure 400 {object} common.ErrorBody
// @Failure 500 {object} handler.PendingReviewResponse
// @Failure 502 {object} handler.PendingReviewResponse
// @Router /reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req domain.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	resp, err := h.service.CreateReview(c.Request.Context(), &req)
	if err != nil {
		if resp != nil {
			h.pending(c, resp, err)
			return
		}
		h.fail(c, err)
		return
	}

	common.Created(c, resp)
}

// pending answers for a review that is stored but has no analysis.
// The body carries the review id so the client can retry the analysis.
func (h *ReviewHandler) pending(c *gin.Context, resp *domain.CreateReviewResponse, err error) {
	_ = c.Error(err)
	status, key := http.StatusInternalServerError, "review.analysis_not_stored"
	if errors.Is(err, common.ErrClassificationFailed) {
		status, key = http.StatusBadGateway, "review.classification_failed"
	}
	c.JSON(status, PendingReviewResponse{
		ErrorBody:      common.NewErrorBody(status, h.t(c, key), err),
		Review:         resp.Review,
		AnalysisStatus: analysisPending,
	})
}

// ListReviews handles GET /reviews
// @Summary 리뷰 목록
// @Description Lists reviews, newest review date first
// @Tags reviews
// @Produce json
// @Param page query int false "page (default 1)"
// @Param size query int false "page size (default 50, max 100)"
// @Success 200 {object} domain.ReviewPage
// @Router /reviews [get]
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	page := ginutil.QueryInt(c, "page", 1)
	size := ginutil.QueryInt(c, "size", 0)

	result, err := h.service.ListReviews(c.Request.Context(), page, size)
	if err != nil {
		h.fail(c, err)
		return
	}

	common.OK(c, result)
}

// GetReport handles GET /reviews/report
// @Summary 기간별 감정 리포트
// @Description Sentiment breakdown of reviews whose date falls inside [start_date, end_date]
// @Tags reviews
// @Produce json
// @Param start_date query string true "YYYY-MM-DD"
// @Param end_date query string true "YYYY-MM-DD"
// @Success 200 {object} domain.Report
// @Failure 400 {object} common.ErrorBody
// @Router /reviews/report [get]
func (h *ReviewHandler) GetReport(c *gin.Context) {
	report, err := h.service.BuildReport(c.Request.Context(), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		h.fail(c, err)
		return
	}

	common.OK(c, report)
}

// GetReview handles GET /reviews/:id
// @Summary 리뷰 조회
// @Tags reviews
// @Produce json
// @Param id path int true "review ID"
// @Success 200 {object} handler.ReviewEnvelope
// @Failure 400 {object} common.ErrorBody
// @Failure 404 {object} common.ErrorBody
// @Router /reviews/{id} [get]
func (h *ReviewHandler) GetReview(c *gin.Context) {
	id, ok := h.reviewID(c)
	if !ok {
		return
	}

	review, err := h.service.GetReview(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	common.OK(c, ReviewEnvelope{Review: *review})
}

// AnalyzeReview handles POST /reviews/:id/analysis
// @Summary 감정 분석 재시도
// @Description Classifies a stored review that has no analysis yet
// @Tags reviews
// @Produce json
// @Param id path int true "review ID"
// @Success 201 {object} handler.AnalysisEnvelope
// @Failure 404 {object} common.ErrorBody
// @Failure 409 {object} common.ErrorBody
// @Failure 502 {object} common.ErrorBody
// @Router /reviews/{id}/analysis [post]
func (h *ReviewHandler) AnalyzeReview(c *gin.Context) {
	id, ok := h.reviewID(c)
	if !ok {
		return
	}

	analysis, err := h.service.AnalyzeReview(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	common.Created(c, AnalysisEnvelope{Analysis: *analysis})
}

func (h *ReviewHandler) reviewID(c *gin.Context) (int64, bool) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil || id <= 0 {
		common.ErrorResponse(c, http.StatusBadRequest, h.t(c, "review.invalid_id"),
			common.NewValidationError("id", common.ReasonType))
		return 0, false
	}
	return id, true
}

// bindError maps JSON decoding failures to 400 responses
func (h *ReviewHandler) bindError(c *gin.Context, err error) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		verr := common.NewValidationError(typeErr.Field, common.ReasonType)
		common.ErrorResponse(c, http.StatusBadRequest, h.t(c, "review.field_type", typeErr.Field), verr)
		return
	}
	if errors.Is(err, io.EOF) {
		verr := common.NewValidationError("body", common.ReasonRequired)
		common.ErrorResponse(c, http.StatusBadRequest, h.t(c, "error.bad_request"), verr)
		return
	}
	common.ErrorResponse(c, http.StatusBadRequest, h.t(c, "error.bad_request"), err)
}

// fail maps service errors to HTTP responses
func (h *ReviewHandler) fail(c *gin.Context, err error) {
	var verr *common.ValidationError
	switch {
	case errors.As(err, &verr):
		common.ErrorResponse(c, http.StatusBadRequest, h.validationMessage(c, verr), verr)
	case errors.Is(err, common.ErrValidation):
		common.ErrorResponse(c, http.StatusBadRequest, h.t(c, "error.validation"), err)
	case errors.Is(err, common.ErrInvalidDateFormat):
		common.ErrorResponse(c, http.StatusBadRequest, h.t(c, "review.invalid_date"), err)
	case errors.Is(err, common.ErrNotFound):
		common.ErrorResponse(c, http.StatusNotFound, h.t(c, "review.not_found"), err)
	case errors.Is(err, common.ErrDuplicateAnalysis):
		common.ErrorResponse(c, http.StatusConflict, h.t(c, "review.analysis_exists"), err)
	case errors.Is(err, common.ErrClassificationFailed):
		_ = c.Error(err)
		common.ErrorResponse(c, http.StatusBadGateway, h.t(c, "review.analysis_failed"), err)
	default:
		_ = c.Error(err)
		common.ErrorResponse(c, http.StatusInternalServerError, h.t(c, "error.internal"), err)
	}
}

func (h *ReviewHandler) validationMessage(c *gin.Context, verr *common.ValidationError) string {
	switch verr.Reason {
	case common.ReasonOneOf:
		return h.t(c, "review.invalid_sentiment")
	case common.ReasonType:
		return h.t(c, "review.field_type", verr.Field)
	case common.ReasonRange:
		return h.t(c, "review.invalid_range")
	default:
		return h.t(c, "review.field_required", verr.Field)
	}
}

func (h *ReviewHandler) t(c *gin.Context, key string, args ...interface{}) string {
	return h.messages.T(middleware.GetLocale(c), key, args...)
}
