package models

import (
	"time"
)

// PaymentType 支付方式模型
type PaymentType struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	NamePayment string `gorm:"type:varchar(50);not null;uniqueIndex" json:"name_payment"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 表名
func (PaymentType) TableName() string {
	return "payment_types"
}

// Stay 入住记录模型
type Stay struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	RoomID        int64     `gorm:"index;not null" json:"room_id"`
	BookingID     int64     `gorm:"index;not null" json:"booking_id"`
	Payment       float64   `gorm:"type:decimal(10,2);not null" json:"payment"`
	CheckInDate   time.Time `gorm:"type:date;not null" json:"check_in_date"`
	CheckOutDate  time.Time `gorm:"type:date;not null" json:"check_out_date"`
	TypePaymentID int64     `gorm:"index;not null" json:"type_payment_id"`
	TotalPrice    float64   `gorm:"type:decimal(10,2);not null" json:"total_price"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// 关联
	Room        *Room        `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Booking     *Booking     `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
	PaymentType *PaymentType `gorm:"foreignKey:TypePaymentID" json:"payment_type,omitempty"`
}

// TableName 表名
func (Stay) TableName() string {
	return "stays"
}
