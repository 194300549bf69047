// Package hotel 提供酒店、房型和房间相关的 HTTP Handler
package hotel

import (
	"github.com/gin-gonic/gin"

	"github.com/dumeirei/hotel-ops-backend/internal/common/handler"
	"github.com/dumeirei/hotel-ops-backend/internal/common/response"
	"github.com/dumeirei/hotel-ops-backend/internal/models"
	"github.com/dumeirei/hotel-ops-backend/internal/repository"
)

// Handler 酒店处理器
type Handler struct {
	hotelRepo    *repository.HotelRepository
	roomTypeRepo *repository.RoomTypeRepository
	roomRepo     *repository.RoomRepository
}

// NewHandler 创建酒店处理器
func NewHandler(
	hotelRepo *repository.HotelRepository,
	roomTypeRepo *repository.RoomTypeRepository,
	roomRepo *repository.RoomRepository,
) *Handler {
	return &Handler{
		hotelRepo:    hotelRepo,
		roomTypeRepo: roomTypeRepo,
		roomRepo:     roomRepo,
	}
}

// HotelRequest 酒店创建/更新请求
type HotelRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

func (req *HotelRequest) toModel() *models.Hotel {
	return &models.Hotel{
		Name:    req.Name,
		Address: req.Address,
	}
}

// ListHotels 获取酒店列表
// @Summary 获取酒店列表
// @Tags 酒店
// @Produce json
// @Success 200 {object} response.Response{data=[]models.Hotel}
// @Router /api/v1/hotels [get]
func (h *Handler) ListHotels(c *gin.Context) {
	hotels, err := h.hotelRepo.List(c.Request.Context())
	handler.MustSucceed(c, err, hotels)
}

// GetHotel 获取酒店详情
// @Summary 获取酒店详情
// @Tags 酒店
// @Produce json
// @Param id path int true "酒店ID"
// @Success 200 {object} response.Response{data=models.Hotel}
// @Router /api/v1/hotels/{id} [get]
func (h *Handler) GetHotel(c *gin.Context) {
	id, ok := handler.ParseID(c, "酒店")
	if !ok {
		return
	}

	hotel, err := h.hotelRepo.GetByID(c.Request.Context(), id)
	handler.MustSucceed(c, err, hotel)
}

// CreateHotel 创建酒店
// @Summary 创建酒店
// @Tags 酒店
// @Accept json
// @Produce json
// @Param request body HotelRequest true "酒店信息"
// @Success 201 {object} response.Response{data=models.Hotel}
// @Router /api/v1/hotels [post]
func (h *Handler) CreateHotel(c *gin.Context) {
	var req HotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	hotel, err := h.hotelRepo.Create(c.Request.Context(), req.toModel())
	handler.MustCreate(c, err, hotel)
}

// UpdateHotel 更新酒店
// @Summary 更新酒店
// @Tags 酒店
// @Accept json
// @Produce json
// @Param id path int true "酒店ID"
// @Param request body HotelRequest true "酒店信息"
// @Success 200 {object} response.Response{data=models.Hotel}
// @Router /api/v1/hotels/{id} [put]
func (h *Handler) UpdateHotel(c *gin.Context) {
	id, ok := handler.ParseID(c, "酒店")
	if !ok {
		return
	}

	var req HotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	hotel, err := h.hotelRepo.Update(c.Request.Context(), id, req.toModel())
	handler.MustSucceed(c, err, hotel)
}

// DeleteHotel 删除酒店
// @Summary 删除酒店
// @Tags 酒店
// @Produce json
// @Param id path int true "酒店ID"
// @Success 200 {object} response.Response
// @Router /api/v1/hotels/{id} [delete]
func (h *Handler) DeleteHotel(c *gin.Context) {
	id, ok := handler.ParseID(c, "酒店")
	if !ok {
		return
	}

	err := h.hotelRepo.Delete(c.Request.Context(), id)
	handler.MustSucceed(c, err, nil)
}
