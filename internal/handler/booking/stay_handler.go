package booking

import (
	"github.com/gin-gonic/gin"

	"github.com/dumeirei/hotel-ops-backend/internal/common/handler"
	"github.com/dumeirei/hotel-ops-backend/internal/common/response"
	"github.com/dumeirei/hotel-ops-backend/internal/models"
)

// StayRequest 入住记录创建/更新请求
type StayRequest struct {
	RoomID        int64   `json:"room_id"`
	BookingID     int64   `json:"booking_id"`
	Payment       float64 `json:"payment"`
	CheckInDate   string  `json:"check_in_date"`
	CheckOutDate  string  `json:"check_out_date"`
	TypePaymentID int64   `json:"type_payment_id"`
	TotalPrice    float64 `json:"total_price"`
}

// bindStay 解析请求体并转换日期，失败时已发送响应
func bindStay(c *gin.Context) (*models.Stay, bool) {
	var req StayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return nil, false
	}

	checkIn, ok := handler.BindDate(c, req.CheckInDate, "check_in_date")
	if !ok {
		return nil, false
	}
	checkOut, ok := handler.BindDate(c, req.CheckOutDate, "check_out_date")
	if !ok {
		return nil, false
	}

	return &models.Stay{
		RoomID:        req.RoomID,
		BookingID:     req.BookingID,
		Payment:       req.Payment,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		TypePaymentID: req.TypePaymentID,
		TotalPrice:    req.TotalPrice,
	}, true
}

// ListStays 获取入住记录列表
// @Summary 获取入住记录列表
// @Tags 入住
// @Produce json
// @Success 200 {object} response.Response{data=[]models.Stay}
// @Router /api/v1/stays [get]
func (h *Handler) ListStays(c *gin.Context) {
	stays, err := h.stayRepo.List(c.Request.Context())
	handler.MustSucceed(c, err, stays)
}

// GetStay 获取入住记录详情
// @Summary 获取入住记录详情
// @Tags 入住
// @Produce json
// @Param id path int true "入住记录ID"
// @Success 200 {object} response.Response{data=models.Stay}
// @Router /api/v1/stays/{id} [get]
func (h *Handler) GetStay(c *gin.Context) {
	id, ok := handler.ParseID(c, "入住记录")
	if !ok {
		return
	}

	stay, err := h.stayRepo.GetByID(c.Request.Context(), id)
	handler.MustSucceed(c, err, stay)
}

// CreateStay 创建入住记录
// @Summary 创建入住记录
// @Tags 入住
// @Accept json
// @Produce json
// @Param request body StayRequest true "入住记录信息"
// @Success 201 {object} response.Response{data=models.Stay}
// @Router /api/v1/stays [post]
func (h *Handler) CreateStay(c *gin.Context) {
	stay, ok := bindStay(c)
	if !ok {
		return
	}

	created, err := h.stayRepo.Create(c.Request.Context(), stay)
	handler.MustCreate(c, err, created)
}

// UpdateStay 更新入住记录
// @Summary 更新入住记录
// @Tags 入住
// @Accept json
// @Produce json
// @Param id path int true "入住记录ID"
// @Param request body StayRequest true "入住记录信息"
// @Success 200 {object} response.Response{data=models.Stay}
// @Router /api/v1/stays/{id} [put]
func (h *Handler) UpdateStay(c *gin.Context) {
	id, ok := handler.ParseID(c, "入住记录")
	if !ok {
		return
	}

	stay, ok := bindStay(c)
	if !ok {
		return
	}

	updated, err := h.stayRepo.Update(c.Request.Context(), id, stay)
	handler.MustSucceed(c, err, updated)
}

// DeleteStay 删除入住记录
// @Summary 删除入住记录
// @Tags 入住
// @Produce json
// @Param id path int true "入住记录ID"
// @Success 200 {object} response.Response
// @Router /api/v1/stays/{id} [delete]
func (h *Handler) DeleteStay(c *gin.Context) {
	id, ok := handler.ParseID(c, "入住记录")
	if !ok {
		return
	}

	err := h.stayRepo.Delete(c.Request.Context(), id)
	handler.MustSucceed(c, err, nil)
}
