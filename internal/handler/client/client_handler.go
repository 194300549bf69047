// Package client 提供客户相关的 HTTP Handler
package client

import (
	"github.com/gin-gonic/gin"

	"github.com/dumeirei/hotel-ops-backend/internal/common/handler"
	"github.com/dumeirei/hotel-ops-backend/internal/common/response"
	"github.com/dumeirei/hotel-ops-backend/internal/models"
	"github.com/dumeirei/hotel-ops-backend/internal/repository"
)

// Handler 客户处理器
type Handler struct {
	clientRepo *repository.ClientRepository
}

// NewHandler 创建客户处理器
func NewHandler(clientRepo *repository.ClientRepository) *Handler {
	return &Handler{
		clientRepo: clientRepo,
	}
}

// ClientRequest 客户创建/更新请求
type ClientRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

func (req *ClientRequest) toModel() *models.Client {
	return &models.Client{
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
	}
}

// ListClients 获取客户列表
// @Summary 获取客户列表
// @Tags 客户
// @Produce json
// @Success 200 {object} response.Response{data=[]models.Client}
// @Router /api/v1/clients [get]
func (h *Handler) ListClients(c *gin.Context) {
	clients, err := h.clientRepo.List(c.Request.Context())
	handler.MustSucceed(c, err, clients)
}

// GetClient 获取客户详情
// @Summary 获取客户详情
// @Tags 客户
// @Produce json
// @Param id path int true "客户ID"
// @Success 200 {object} response.Response{data=models.Client}
// @Router /api/v1/clients/{id} [get]
func (h *Handler) GetClient(c *gin.Context) {
	id, ok := handler.ParseID(c, "客户")
	if !ok {
		return
	}

	client, err := h.clientRepo.GetByID(c.Request.Context(), id)
	handler.MustSucceed(c, err, client)
}

// CreateClient 创建客户
// @Summary 创建客户
// @Tags 客户
// @Accept json
// @Produce json
// @Param request body ClientRequest true "客户信息"
// @Success 201 {object} response.Response{data=models.Client}
// @Router /api/v1/clients [post]
func (h *Handler) CreateClient(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	client, err := h.clientRepo.Create(c.Request.Context(), req.toModel())
	handler.MustCreate(c, err, client)
}

// UpdateClient 更新客户
// @Summary 更新客户
// @Tags 客户
// @Accept json
// @Produce json
// @Param id path int true "客户ID"
// @Param request body ClientRequest true "客户信息"
// @Success 200 {object} response.Response{data=models.Client}
// @Router /api/v1/clients/{id} [put]
func (h *Handler) UpdateClient(c *gin.Context) {
	id, ok := handler.ParseID(c, "客户")
	if !ok {
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	client, err := h.clientRepo.Update(c.Request.Context(), id, req.toModel())
	handler.MustSucceed(c, err, client)
}

// DeleteClient 删除客户
// @Summary 删除客户
// @Tags 客户
// @Produce json
// @Param id path int true "客户ID"
// @Success 200 {object} response.Response
// @Router /api/v1/clients/{id} [delete]
func (h *Handler) DeleteClient(c *gin.Context) {
	id, ok := handler.ParseID(c, "客户")
	if !ok {
		return
	}

	err := h.clientRepo.Delete(c.Request.Context(), id)
	handler.MustSucceed(c, err, nil)
}
