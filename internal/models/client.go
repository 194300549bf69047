// Package models 定义数据库模型
package models

import (
	"time"
)

// Client 客户模型
type Client struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName string `gorm:"type:varchar(100);not null" json:"full_name"`
	Phone    string `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Email    string `gorm:"type:varchar(100)" json:"email,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// 关联
	Bookings []Booking `gorm:"foreignKey:ClientID" json:"bookings,omitempty"`
}

// TableName 表名
func (Client) TableName() string {
	return "clients"
}
