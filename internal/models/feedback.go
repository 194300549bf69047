package models

import (
	"time"
)

// Feedback 评价模型
type Feedback struct {
	ID      int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	HotelID int64  `gorm:"not null;uniqueIndex:idx_feedback_hotel_stay" json:"hotel_id"`
	StayID  int64  `gorm:"not null;uniqueIndex:idx_feedback_hotel_stay" json:"stay_id"`
	Name    string `gorm:"type:varchar(100);not null" json:"name"`
	Address string `gorm:"type:varchar(200);not null" json:"address"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// 关联
	Hotel *Hotel `gorm:"foreignKey:HotelID" json:"hotel,omitempty"`
	Stay  *Stay  `gorm:"foreignKey:StayID" json:"stay,omitempty"`
}

// TableName 表名
func (Feedback) TableName() string {
	return "feedback"
}
