package models

import (
	"time"
)

// Hotel 酒店模型
type Hotel struct {
	ID      int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"type:varchar(100);not null;uniqueIndex:idx_hotels_name_address" json:"name"`
	Address string `gorm:"type:varchar(200);uniqueIndex:idx_hotels_name_address" json:"address"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// 关联
	RoomTypes []RoomType `gorm:"foreignKey:HotelID" json:"room_types,omitempty"`
	Rooms     []Room     `gorm:"foreignKey:HotelID" json:"rooms,omitempty"`
	Bookings  []Booking  `gorm:"foreignKey:HotelID" json:"bookings,omitempty"`
	Feedbacks []Feedback `gorm:"foreignKey:HotelID" json:"feedbacks,omitempty"`
}

// TableName 表名
func (Hotel) TableName() string {
	return "hotels"
}

// RoomType 房型模型
type RoomType struct {
	ID            int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	HotelID       int64   `gorm:"index;not null" json:"hotel_id"`
	RoomNumber    string  `gorm:"type:varchar(20);not null" json:"room_number"`
	TypeName      string  `gorm:"column:room_type;type:varchar(50);not null" json:"room_type"`
	PricePerNight float64 `gorm:"type:decimal(10,2);not null" json:"price_per_night"`
	Capacity      int     `gorm:"not null" json:"capacity"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// 关联
	Hotel *Hotel `gorm:"foreignKey:HotelID" json:"hotel,omitempty"`
	Rooms []Room `gorm:"foreignKey:RoomTypeID" json:"rooms,omitempty"`
}

// TableName 表名
func (RoomType) TableName() string {
	return "room_types"
}

// Room 房间模型
type Room struct {
	ID            int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	HotelID       int64   `gorm:"index;not null" json:"hotel_id"`
	RoomTypeID    int64   `gorm:"index;not null" json:"room_type_id"`
	RoomNumber    string  `gorm:"type:varchar(20);not null;uniqueIndex" json:"room_number"`
	PricePerNight float64 `gorm:"type:decimal(10,2);not null" json:"price_per_night"`
	Capacity      int     `gorm:"not null" json:"capacity"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// 关联
	Hotel    *Hotel    `gorm:"foreignKey:HotelID" json:"hotel,omitempty"`
	RoomType *RoomType `gorm:"foreignKey:RoomTypeID" json:"room_type,omitempty"`
}

// TableName 表名
func (Room) TableName() string {
	return "rooms"
}
