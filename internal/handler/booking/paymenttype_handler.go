package booking

import (
	"github.com/gin-gonic/gin"

	"github.com/dumeirei/hotel-ops-backend/internal/common/handler"
	"github.com/dumeirei/hotel-ops-backend/internal/common/response"
	"github.com/dumeirei/hotel-ops-backend/internal/models"
)

// PaymentTypeRequest 支付方式创建/更新请求
type PaymentTypeRequest struct {
	NamePayment string `json:"name_payment"`
}

func (req *PaymentTypeRequest) toModel() *models.PaymentType {
	return &models.PaymentType{
		NamePayment: req.NamePayment,
	}
}

// ListPaymentTypes 获取支付方式列表
// @Summary 获取支付方式列表
// @Tags 支付方式
// @Produce json
// @Success 200 {object} response.Response{data=[]models.PaymentType}
// @Router /api/v1/payment-types [get]
func (h *Handler) ListPaymentTypes(c *gin.Context) {
	paymentTypes, err := h.paymentTypeRepo.List(c.Request.Context())
	handler.MustSucceed(c, err, paymentTypes)
}

// GetPaymentType 获取支付方式详情
// @Summary 获取支付方式详情
// @Tags 支付方式
// @Produce json
// @Param id path int true "支付方式ID"
// @Success 200 {object} response.Response{data=models.PaymentType}
// @Router /api/v1/payment-types/{id} [get]
func (h *Handler) GetPaymentType(c *gin.Context) {
	id, ok := handler.ParseID(c, "支付方式")
	if !ok {
		return
	}

	paymentType, err := h.paymentTypeRepo.GetByID(c.Request.Context(), id)
	handler.MustSucceed(c, err, paymentType)
}

// CreatePaymentType 创建支付方式
// @Summary 创建支付方式
// @Tags 支付方式
// @Accept json
// @Produce json
// @Param request body PaymentTypeRequest true "支付方式信息"
// @Success 201 {object} response.Response{data=models.PaymentType}
// @Router /api/v1/payment-types [post]
func (h *Handler) CreatePaymentType(c *gin.Context) {
	var req PaymentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	paymentType, err := h.paymentTypeRepo.Create(c.Request.Context(), req.toModel())
	handler.MustCreate(c, err, paymentType)
}

// UpdatePaymentType 更新支付方式
// @Summary 更新支付方式
// @Tags 支付方式
// @Accept json
// @Produce json
// @Param id path int true "支付方式ID"
// @Param request body PaymentTypeRequest true "支付方式信息"
// @Success 200 {object} response.Response{data=models.PaymentType}
// @Router /api/v1/payment-types/{id} [put]
func (h *Handler) UpdatePaymentType(c *gin.Context) {
	id, ok := handler.ParseID(c, "支付方式")
	if !ok {
		return
	}

	var req PaymentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	paymentType, err := h.paymentTypeRepo.Update(c.Request.Context(), id, req.toModel())
	handler.MustSucceed(c, err, paymentType)
}

// DeletePaymentType 删除支付方式
// @Summary 删除支付方式
// @Tags 支付方式
// @Produce json
// @Param id path int true "支付方式ID"
// @Success 200 {object} response.Response
// @Router /api/v1/payment-types/{id} [delete]
func (h *Handler) DeletePaymentType(c *gin.Context) {
	id, ok := handler.ParseID(c, "支付方式")
	if !ok {
		return
	}

	err := h.paymentTypeRepo.Delete(c.Request.Context(), id)
	handler.MustSucceed(c, err, nil)
}
