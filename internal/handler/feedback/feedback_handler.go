// Package feedback 提供评价相关的 HTTP Handler
package feedback

import (
	"github.com/gin-gonic/gin"

	"github.com/dumeirei/hotel-ops-backend/internal/common/handler"
	"github.com/dumeirei/hotel-ops-backend/internal/common/response"
	"github.com/dumeirei/hotel-ops-backend/internal/models"
	"github.com/dumeirei/hotel-ops-backend/internal/repository"
)

// Handler 评价处理器
type Handler struct {
	feedbackRepo *repository.FeedbackRepository
}

// NewHandler 创建评价处理器
func NewHandler(feedbackRepo *repository.FeedbackRepository) *Handler {
	return &Handler{
		feedbackRepo: feedbackRepo,
	}
}

// FeedbackRequest 评价创建/更新请求
type FeedbackRequest struct {
	HotelID int64  `json:"hotel_id"`
	StayID  int64  `json:"stay_id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

func (req *FeedbackRequest) toModel() *models.Feedback {
	return &models.Feedback{
		HotelID: req.HotelID,
		StayID:  req.StayID,
		Name:    req.Name,
		Address: req.Address,
	}
}

// ListFeedbacks 获取评价列表
// @Summary 获取评价列表
// @Tags 评价
// @Produce json
// @Success 200 {object} response.Response{data=[]models.Feedback}
// @Router /api/v1/feedbacks [get]
func (h *Handler) ListFeedbacks(c *gin.Context) {
	feedbacks, err := h.feedbackRepo.List(c.Request.Context())
	handler.MustSucceed(c, err, feedbacks)
}

// GetFeedback 获取评价详情
// @Summary 获取评价详情
// @Tags 评价
// @Produce json
// @Param id path int true "评价ID"
// @Success 200 {object} response.Response{data=models.Feedback}
// @Router /api/v1/feedbacks/{id} [get]
func (h *Handler) GetFeedback(c *gin.Context) {
	id, ok := handler.ParseID(c, "评价")
	if !ok {
		return
	}

	feedback, err := h.feedbackRepo.GetByID(c.Request.Context(), id)
	handler.MustSucceed(c, err, feedback)
}

// CreateFeedback 创建评价
// @Summary 创建评价
// @Tags 评价
// @Accept json
// @Produce json
// @Param request body FeedbackRequest true "评价信息"
// @Success 201 {object} response.Response{data=models.Feedback}
// @Router /api/v1/feedbacks [post]
func (h *Handler) CreateFeedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	feedback, err := h.feedbackRepo.Create(c.Request.Context(), req.toModel())
	handler.MustCreate(c, err, feedback)
}

// UpdateFeedback 更新评价
// @Summary 更新评价
// @Tags 评价
// @Accept json
// @Produce json
// @Param id path int true "评价ID"
// @Param request body FeedbackRequest true "评价信息"
// @Success 200 {object} response.Response{data=models.Feedback}
// @Router /api/v1/feedbacks/{id} [put]
func (h *Handler) UpdateFeedback(c *gin.Context) {
	id, ok := handler.ParseID(c, "评价")
	if !ok {
		return
	}

	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	feedback, err := h.feedbackRepo.Update(c.Request.Context(), id, req.toModel())
	handler.MustSucceed(c, err, feedback)
}

// DeleteFeedback 删除评价
// @Summary 删除评价
// @Tags 评价
// @Produce json
// @Param id path int true "评价ID"
// @Success 200 {object} response.Response
// @Router /api/v1/feedbacks/{id} [delete]
func (h *Handler) DeleteFeedback(c *gin.Context) {
	id, ok := handler.ParseID(c, "评价")
	if !ok {
		return
	}

	err := h.feedbackRepo.Delete(c.Request.Context(), id)
	handler.MustSucceed(c, err, nil)
}
