package models

import (
	"time"
)

// Service 服务项目模型
type Service struct {
	ID          int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	ServiceName string  `gorm:"type:varchar(100);not null;uniqueIndex" json:"service_name"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 表名
func (Service) TableName() string {
	return "services"
}

// ServiceUsage 服务使用记录模型
type ServiceUsage struct {
	ID         int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	StayID     int64   `gorm:"index;not null" json:"stay_id"`
	ServiceID  int64   `gorm:"index;not null" json:"service_id"`
	Quantity   int     `gorm:"not null" json:"quantity"`
	TotalPrice float64 `gorm:"type:decimal(10,2);not null" json:"total_price"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// 关联
	Stay    *Stay    `gorm:"foreignKey:StayID" json:"stay,omitempty"`
	Service *Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}

// TableName 表名
func (ServiceUsage) TableName() string {
	return "service_usage"
}
