package hotel

import (
	"github.com/gin-gonic/gin"

	"github.com/dumeirei/hotel-ops-backend/internal/common/handler"
	"github.com/dumeirei/hotel-ops-backend/internal/common/response"
	"github.com/dumeirei/hotel-ops-backend/internal/models"
)

// RoomRequest 房间创建/更新请求
type RoomRequest struct {
	HotelID       int64   `json:"hotel_id"`
	RoomTypeID    int64   `json:"room_type_id"`
	RoomNumber    string  `json:"room_number"`
	PricePerNight float64 `json:"price_per_night"`
	Capacity      int     `json:"capacity"`
}

func (req *RoomRequest) toModel() *models.Room {
	return &models.Room{
		HotelID:       req.HotelID,
		RoomTypeID:    req.RoomTypeID,
		RoomNumber:    req.RoomNumber,
		PricePerNight: req.PricePerNight,
		Capacity:      req.Capacity,
	}
}

// ListRooms 获取房间列表
// @Summary 获取房间列表
// @Tags 房间
// @Produce json
// @Success 200 {object} response.Response{data=[]models.Room}
// @Router /api/v1/rooms [get]
func (h *Handler) ListRooms(c *gin.Context) {
	rooms, err := h.roomRepo.List(c.Request.Context())
	handler.MustSucceed(c, err, rooms)
}

// GetRoom 获取房间详情
// @Summary 获取房间详情
// @Tags 房间
// @Produce json
// @Param id path int true "房间ID"
// @Success 200 {object} response.Response{data=models.Room}
// @Router /api/v1/rooms/{id} [get]
func (h *Handler) GetRoom(c *gin.Context) {
	id, ok := handler.ParseID(c, "房间")
	if !ok {
		return
	}

	room, err := h.roomRepo.GetByID(c.Request.Context(), id)
	handler.MustSucceed(c, err, room)
}

// CreateRoom 创建房间
// @Summary 创建房间
// @Tags 房间
// @Accept json
// @Produce json
// @Param request body RoomRequest true "房间信息"
// @Success 201 {object} response.Response{data=models.Room}
// @Router /api/v1/rooms [post]
func (h *Handler) CreateRoom(c *gin.Context) {
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	room, err := h.roomRepo.Create(c.Request.Context(), req.toModel())
	handler.MustCreate(c, err, room)
}

// UpdateRoom 更新房间
// @Summary 更新房间
// @Tags 房间
// @Accept json
// @Produce json
// @Param id path int true "房间ID"
// @Param request body RoomRequest true "房间信息"
// @Success 200 {object} response.Response{data=models.Room}
// @Router /api/v1/rooms/{id} [put]
func (h *Handler) UpdateRoom(c *gin.Context) {
	id, ok := handler.ParseID(c, "房间")
	if !ok {
		return
	}

	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	room, err := h.roomRepo.Update(c.Request.Context(), id, req.toModel())
	handler.MustSucceed(c, err, room)
}

// DeleteRoom 删除房间
// @Summary 删除房间
// @Tags 房间
// @Produce json
// @Param id path int true "房间ID"
// @Success 200 {object} response.Response
// @Router /api/v1/rooms/{id} [delete]
func (h *Handler) DeleteRoom(c *gin.Context) {
	id, ok := handler.ParseID(c, "房间")
	if !ok {
		return
	}

	err := h.roomRepo.Delete(c.Request.Context(), id)
	handler.MustSucceed(c, err, nil)
}
