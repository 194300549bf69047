package hotel

import (
	"github.com/gin-gonic/gin"

	"github.com/dumeirei/hotel-ops-backend/internal/common/handler"
	"github.com/dumeirei/hotel-ops-backend/internal/common/response"
	"github.com/dumeirei/hotel-ops-backend/internal/models"
)

// RoomTypeRequest 房型创建/更新请求
type RoomTypeRequest struct {
	HotelID       int64   `json:"hotel_id"`
	RoomNumber    string  `json:"room_number"`
	TypeName      string  `json:"room_type"`
	PricePerNight float64 `json:"price_per_night"`
	Capacity      int     `json:"capacity"`
}

func (req *RoomTypeRequest) toModel() *models.RoomType {
	return &models.RoomType{
		HotelID:       req.HotelID,
		RoomNumber:    req.RoomNumber,
		TypeName:      req.TypeName,
		PricePerNight: req.PricePerNight,
		Capacity:      req.Capacity,
	}
}

// ListRoomTypes 获取房型列表
// @Summary 获取房型列表
// @Tags 房型
// @Produce json
// @Success 200 {object} response.Response{data=[]models.RoomType}
// @Router /api/v1/room-types [get]
func (h *Handler) ListRoomTypes(c *gin.Context) {
	roomTypes, err := h.roomTypeRepo.List(c.Request.Context())
	handler.MustSucceed(c, err, roomTypes)
}

// GetRoomType 获取房型详情
// @Summary 获取房型详情
// @Tags 房型
// @Produce json
// @Param id path int true "房型ID"
// @Success 200 {object} response.Response{data=models.RoomType}
// @Router /api/v1/room-types/{id} [get]
func (h *Handler) GetRoomType(c *gin.Context) {
	id, ok := handler.ParseID(c, "房型")
	if !ok {
		return
	}

	roomType, err := h.roomTypeRepo.GetByID(c.Request.Context(), id)
	handler.MustSucceed(c, err, roomType)
}

// CreateRoomType 创建房型
// @Summary 创建房型
// @Tags 房型
// @Accept json
// @Produce json
// @Param request body RoomTypeRequest true "房型信息"
// @Success 201 {object} response.Response{data=models.RoomType}
// @Router /api/v1/room-types [post]
func (h *Handler) CreateRoomType(c *gin.Context) {
	var req RoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	roomType, err := h.roomTypeRepo.Create(c.Request.Context(), req.toModel())
	handler.MustCreate(c, err, roomType)
}

// UpdateRoomType 更新房型
// @Summary 更新房型
// @Tags 房型
// @Accept json
// @Produce json
// @Param id path int true "房型ID"
// @Param request body RoomTypeRequest true "房型信息"
// @Success 200 {object} response.Response{data=models.RoomType}
// @Router /api/v1/room-types/{id} [put]
func (h *Handler) UpdateRoomType(c *gin.Context) {
	id, ok := handler.ParseID(c, "房型")
	if !ok {
		return
	}

	var req RoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	roomType, err := h.roomTypeRepo.Update(c.Request.Context(), id, req.toModel())
	handler.MustSucceed(c, err, roomType)
}

// DeleteRoomType 删除房型
// @Summary 删除房型
// @Tags 房型
// @Produce json
// @Param id path int true "房型ID"
// @Success 200 {object} response.Response
// @Router /api/v1/room-types/{id} [delete]
func (h *Handler) DeleteRoomType(c *gin.Context) {
	id, ok := handler.ParseID(c, "房型")
	if !ok {
		return
	}

	err := h.roomTypeRepo.Delete(c.Request.Context(), id)
	handler.MustSucceed(c, err, nil)
}
