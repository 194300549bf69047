// Package booking 提供预订、入住和支付方式相关的 HTTP Handler
package booking

import (
	"github.com/gin-gonic/gin"

	"github.com/dumeirei/hotel-ops-backend/internal/common/handler"
	"github.com/dumeirei/hotel-ops-backend/internal/common/response"
	"github.com/dumeirei/hotel-ops-backend/internal/models"
	"github.com/dumeirei/hotel-ops-backend/internal/repository"
)

// Handler 预订处理器
type Handler struct {
	bookingRepo     *repository.BookingRepository
	stayRepo        *repository.StayRepository
	paymentTypeRepo *repository.PaymentTypeRepository
}

// NewHandler 创建预订处理器
func NewHandler(
	bookingRepo *repository.BookingRepository,
	stayRepo *repository.StayRepository,
	paymentTypeRepo *repository.PaymentTypeRepository,
) *Handler {
	return &Handler{
		bookingRepo:     bookingRepo,
		stayRepo:        stayRepo,
		paymentTypeRepo: paymentTypeRepo,
	}
}

// BookingRequest 预订创建/更新请求
type BookingRequest struct {
	ClientID     int64  `json:"client_id"`
	RoomTypeID   int64  `json:"room_type_id"`
	HotelID      int64  `json:"hotel_id"`
	BookingDate  string `json:"booking_date"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
}

// bindBooking 解析请求体并转换日期，失败时已发送响应
func bindBooking(c *gin.Context) (*models.Booking, bool) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return nil, false
	}

	bookingDate, ok := handler.BindDate(c, req.BookingDate, "booking_date")
	if !ok {
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

	return &models.Booking{
		ClientID:     req.ClientID,
		RoomTypeID:   req.RoomTypeID,
		HotelID:      req.HotelID,
		BookingDate:  bookingDate,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
	}, true
}

// ListBookings 获取预订列表
// @Summary 获取预订列表
// @Tags 预订
// @Produce json
// @Success 200 {object} response.Response{data=[]models.Booking}
// @Router /api/v1/bookings [get]
func (h *Handler) ListBookings(c *gin.Context) {
	bookings, err := h.bookingRepo.List(c.Request.Context())
	handler.MustSucceed(c, err, bookings)
}

// GetBooking 获取预订详情
// @Summary 获取预订详情
// @Tags 预订
// @Produce json
// @Param id path int true "预订ID"
// @Success 200 {object} response.Response{data=models.Booking}
// @Router /api/v1/bookings/{id} [get]
func (h *Handler) GetBooking(c *gin.Context) {
	id, ok := handler.ParseID(c, "预订")
	if !ok {
		return
	}

	booking, err := h.bookingRepo.GetByID(c.Request.Context(), id)
	handler.MustSucceed(c, err, booking)
}

// CreateBooking 创建预订
// @Summary 创建预订
// @Tags 预订
// @Accept json
// @Produce json
// @Param request body BookingRequest true "预订信息"
// @Success 201 {object} response.Response{data=models.Booking}
// @Router /api/v1/bookings [post]
func (h *Handler) CreateBooking(c *gin.Context) {
	booking, ok := bindBooking(c)
	if !ok {
		return
	}

	created, err := h.bookingRepo.Create(c.Request.Context(), booking)
	handler.MustCreate(c, err, created)
}

// UpdateBooking 更新预订
// @Summary 更新预订
// @Tags 预订
// @Accept json
// @Produce json
// @Param id path int true "预订ID"
// @Param request body BookingRequest true "预订信息"
// @Success 200 {object} response.Response{data=models.Booking}
// @Router /api/v1/bookings/{id} [put]
func (h *Handler) UpdateBooking(c *gin.Context) {
	id, ok := handler.ParseID(c, "预订")
	if !ok {
		return
	}

	booking, ok := bindBooking(c)
	if !ok {
		return
	}

	updated, err := h.bookingRepo.Update(c.Request.Context(), id, booking)
	handler.MustSucceed(c, err, updated)
}

// DeleteBooking 删除预订
// @Summary 删除预订
// @Tags 预订
// @Produce json
// @Param id path int true "预订ID"
// @Success 200 {object} response.Response
// @Router /api/v1/bookings/{id} [delete]
func (h *Handler) DeleteBooking(c *gin.Context) {
	id, ok := handler.ParseID(c, "预订")
	if !ok {
		return
	}

	err := h.bookingRepo.Delete(c.Request.Context(), id)
	handler.MustSucceed(c, err, nil)
}
