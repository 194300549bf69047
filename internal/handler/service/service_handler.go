// Package service 提供服务项目和服务使用记录相关的 HTTP Handler
package service

import (
	"github.com/gin-gonic/gin"

	"github.com/dumeirei/hotel-ops-backend/internal/common/handler"
	"github.com/dumeirei/hotel-ops-backend/internal/common/response"
	"github.com/dumeirei/hotel-ops-backend/internal/models"
	"github.com/dumeirei/hotel-ops-backend/internal/repository"
)

// Handler 服务项目处理器
type Handler struct {
	serviceRepo      *repository.ServiceRepository
	serviceUsageRepo *repository.ServiceUsageRepository
}

// NewHandler 创建服务项目处理器
func NewHandler(
	serviceRepo *repository.ServiceRepository,
	serviceUsageRepo *repository.ServiceUsageRepository,
) *Handler {
	return &Handler{
		serviceRepo:      serviceRepo,
		serviceUsageRepo: serviceUsageRepo,
	}
}

// ServiceRequest 服务项目创建/更新请求
type ServiceRequest struct {
	ServiceName string  `json:"service_name"`
	Price       float64 `json:"price"`
}

func (req *ServiceRequest) toModel() *models.Service {
	return &models.Service{
		ServiceName: req.ServiceName,
		Price:       req.Price,
	}
}

// ListServices 获取服务项目列表
// @Summary 获取服务项目列表
// @Tags 服务项目
// @Produce json
// @Success 200 {object} response.Response{data=[]models.Service}
// @Router /api/v1/services [get]
func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.serviceRepo.List(c.Request.Context())
	handler.MustSucceed(c, err, services)
}

// GetService 获取服务项目详情
// @Summary 获取服务项目详情
// @Tags 服务项目
// @Produce json
// @Param id path int true "服务项目ID"
// @Success 200 {object} response.Response{data=models.Service}
// @Router /api/v1/services/{id} [get]
func (h *Handler) GetService(c *gin.Context) {
	id, ok := handler.ParseID(c, "服务项目")
	if !ok {
		return
	}

	service, err := h.serviceRepo.GetByID(c.Request.Context(), id)
	handler.MustSucceed(c, err, service)
}

// CreateService 创建服务项目
// @Summary 创建服务项目
// @Tags 服务项目
// @Accept json
// @Produce json
// @Param request body ServiceRequest true "服务项目信息"
// @Success 201 {object} response.Response{data=models.Service}
// @Router /api/v1/services [post]
func (h *Handler) CreateService(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	service, err := h.serviceRepo.Create(c.Request.Context(), req.toModel())
	handler.MustCreate(c, err, service)
}

// UpdateService 更新服务项目
// @Summary 更新服务项目
// @Tags 服务项目
// @Accept json
// @Produce json
// @Param id path int true "服务项目ID"
// @Param request body ServiceRequest true "服务项目信息"
// @Success 200 {object} response.Response{data=models.Service}
// @Router /api/v1/services/{id} [put]
func (h *Handler) UpdateService(c *gin.Context) {
	id, ok := handler.ParseID(c, "服务项目")
	if !ok {
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	service, err := h.serviceRepo.Update(c.Request.Context(), id, req.toModel())
	handler.MustSucceed(c, err, service)
}

// DeleteService 删除服务项目
// @Summary 删除服务项目
// @Tags 服务项目
// @Produce json
// @Param id path int true "服务项目ID"
// @Success 200 {object} response.Response
// @Router /api/v1/services/{id} [delete]
func (h *Handler) DeleteService(c *gin.Context) {
	id, ok := handler.ParseID(c, "服务项目")
	if !ok {
		return
	}

	err := h.serviceRepo.Delete(c.Request.Context(), id)
	handler.MustSucceed(c, err, nil)
}
