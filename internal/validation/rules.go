// Package validation 提供与存储无关的实体字段校验规则
package validation

import (
	"strings"

	"github.com/dumeirei/hotel-ops-backend/internal/common/errors"
	"github.com/dumeirei/hotel-ops-backend/internal/models"
)

// RoomType 校验房型字段
func RoomType(rt *models.RoomType) *errors.AppError {
	if rt.Capacity < 1 {
		return errors.InvalidField(errors.EntityRoomType, "capacity", "容量必须大于等于 1")
	}
	if rt.PricePerNight <= 0 {
		return errors.InvalidField(errors.EntityRoomType, "price_per_night", "每晚价格必须大于 0")
	}
	if strings.TrimSpace(rt.TypeName) == "" {
		return errors.InvalidField(errors.EntityRoomType, "room_type", "房型名称不能为空")
	}
	return nil
}

// Room 校验房间字段
// 注意房间价格下限为 1，与房型不同，保持现有业务口径
func Room(room *models.Room) *errors.AppError {
	if room.Capacity < 1 {
		return errors.InvalidField(errors.EntityRoom, "capacity", "容量必须大于等于 1")
	}
	if room.PricePerNight < 1 {
		return errors.InvalidField(errors.EntityRoom, "price_per_night", "每晚价格必须大于等于 1")
	}
	return nil
}

// Booking 校验预订字段
func Booking(booking *models.Booking) *errors.AppError {
	if !booking.CheckOutDate.After(booking.CheckInDate) {
		return errors.InvalidField(errors.EntityBooking, "check_out_date", "退房日期必须晚于入住日期")
	}
	return nil
}

// Stay 校验入住记录字段
func Stay(stay *models.Stay) *errors.AppError {
	if !stay.CheckOutDate.After(stay.CheckInDate) {
		return errors.InvalidField(errors.EntityStay, "check_out_date", "退房日期必须晚于入住日期")
	}
	if stay.Payment < 0 {
		return errors.InvalidField(errors.EntityStay, "payment", "支付金额必须大于等于 0")
	}
	if stay.TotalPrice < 0 {
		return errors.InvalidField(errors.EntityStay, "total_price", "总价必须大于等于 0")
	}
	return nil
}

// Service 校验服务项目字段
func Service(service *models.Service) *errors.AppError {
	if service.Price <= 0 {
		return errors.InvalidField(errors.EntityService, "price", "服务价格必须大于 0")
	}
	return nil
}

// ServiceUsage 校验服务使用记录字段
func ServiceUsage(usage *models.ServiceUsage) *errors.AppError {
	if usage.Quantity <= 0 {
		return errors.InvalidField(errors.EntityServiceUsage, "quantity", "数量必须大于 0")
	}
	if usage.TotalPrice < 0 {
		return errors.InvalidField(errors.EntityServiceUsage, "total_price", "总价必须大于等于 0")
	}
	return nil
}
