package models

import (
	"time"
)

// Booking 预订模型
type Booking struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ClientID     int64     `gorm:"index;not null" json:"client_id"`
	RoomTypeID   int64     `gorm:"index;not null" json:"room_type_id"`
	HotelID      int64     `gorm:"index;not null" json:"hotel_id"`
	BookingDate  time.Time `gorm:"type:date;not null" json:"booking_date"`
	CheckInDate  time.Time `gorm:"type:date;not null" json:"check_in_date"`
	CheckOutDate time.Time `gorm:"type:date;not null" json:"check_out_date"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// 关联
	Client   *Client   `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	RoomType *RoomType `gorm:"foreignKey:RoomTypeID" json:"room_type,omitempty"`
	Hotel    *Hotel    `gorm:"foreignKey:HotelID" json:"hotel,omitempty"`
}

// TableName 表名
func (Booking) TableName() string {
	return "bookings"
}
