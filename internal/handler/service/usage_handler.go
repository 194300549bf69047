package service

import (
	"github.com/gin-gonic/gin"

	"github.com/dumeirei/hotel-ops-backend/internal/common/handler"
	"github.com/dumeirei/hotel-ops-backend/internal/common/response"
	"github.com/dumeirei/hotel-ops-backend/internal/models"
)

// ServiceUsageRequest 服务使用记录创建/更新请求
type ServiceUsageRequest struct {
	StayID     int64   `json:"stay_id"`
	ServiceID  int64   `json:"service_id"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
}

func (req *ServiceUsageRequest) toModel() *models.ServiceUsage {
	return &models.ServiceUsage{
		StayID:     req.StayID,
		ServiceID:  req.ServiceID,
		Quantity:   req.Quantity,
		TotalPrice: req.TotalPrice,
	}
}

// ListServiceUsages 获取服务使用记录列表
// @Summary 获取服务使用记录列表
// @Tags 服务使用
// @Produce json
// @Success 200 {object} response.Response{data=[]models.ServiceUsage}
// @Router /api/v1/service-usages [get]
func (h *Handler) ListServiceUsages(c *gin.Context) {
	usages, err := h.serviceUsageRepo.List(c.Request.Context())
	handler.MustSucceed(c, err, usages)
}

// GetServiceUsage 获取服务使用记录详情
// @Summary 获取服务使用记录详情
// @Tags 服务使用
// @Produce json
// @Param id path int true "服务使用记录ID"
// @Success 200 {object} response.Response{data=models.ServiceUsage}
// @Router /api/v1/service-usages/{id} [get]
func (h *Handler) GetServiceUsage(c *gin.Context) {
	id, ok := handler.ParseID(c, "服务使用记录")
	if !ok {
		return
	}

	usage, err := h.serviceUsageRepo.GetByID(c.Request.Context(), id)
	handler.MustSucceed(c, err, usage)
}

// CreateServiceUsage 创建服务使用记录
// @Summary 创建服务使用记录
// @Tags 服务使用
// @Accept json
// @Produce json
// @Param request body ServiceUsageRequest true "服务使用记录信息"
// @Success 201 {object} response.Response{data=models.ServiceUsage}
// @Router /api/v1/service-usages [post]
func (h *Handler) CreateServiceUsage(c *gin.Context) {
	var req ServiceUsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	usage, err := h.serviceUsageRepo.Create(c.Request.Context(), req.toModel())
	handler.MustCreate(c, err, usage)
}

// UpdateServiceUsage 更新服务使用记录
// @Summary 更新服务使用记录
// @Tags 服务使用
// @Accept json
// @Produce json
// @Param id path int true "服务使用记录ID"
// @Param request body ServiceUsageRequest true "服务使用记录信息"
// @Success 200 {object} response.Response{data=models.ServiceUsage}
// @Router /api/v1/service-usages/{id} [put]
func (h *Handler) UpdateServiceUsage(c *gin.Context) {
	id, ok := handler.ParseID(c, "服务使用记录")
	if !ok {
		return
	}

	var req ServiceUsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	usage, err := h.serviceUsageRepo.Update(c.Request.Context(), id, req.toModel())
	handler.MustSucceed(c, err, usage)
}

// DeleteServiceUsage 删除服务使用记录
// @Summary 删除服务使用记录
// @Tags 服务使用
// @Produce json
// @Param id path int true "服务使用记录ID"
// @Success 200 {object} response.Response
// @Router /api/v1/service-usages/{id} [delete]
func (h *Handler) DeleteServiceUsage(c *gin.Context) {
	id, ok := handler.ParseID(c, "服务使用记录")
	if !ok {
		return
	}

	err := h.serviceUsageRepo.Delete(c.Request.Context(), id)
	handler.MustSucceed(c, err, nil)
}
