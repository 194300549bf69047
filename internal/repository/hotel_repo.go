package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dumeirei/hotel-ops-backend/internal/common/errors"
	"github.com/dumeirei/hotel-ops-backend/internal/models"
)

// HotelRepository 酒店仓储
type HotelRepository struct {
	db *gorm.DB
}

// NewHotelRepository 创建酒店仓储
func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

// List 获取全部酒店
func (r *HotelRepository) List(ctx context.Context) ([]*models.Hotel, error) {
	var hotels []*models.Hotel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&hotels).Error; err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return hotels, nil
}

// GetByID 根据 ID 获取酒店
func (r *HotelRepository) GetByID(ctx context.Context, id int64) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := r.db.WithContext(ctx).First(&hotel, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrHotelNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return &hotel, nil
}

// Create 创建酒店，(name, address) 组合要求唯一
func (r *HotelRepository) Create(ctx context.Context, hotel *models.Hotel) (*models.Hotel, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		count, err := countWhere(tx, &models.Hotel{}, "name = ? AND address = ?", hotel.Name, hotel.Address)
		if err != nil {
			return err
		}
		if count > 0 {
			return errors.ErrHotelExists
		}
		if err := tx.Create(hotel).Error; err != nil {
			return errors.ErrDatabaseError.WithError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return hotel, nil
}

// Update 更新酒店，整行替换
func (r *HotelRepository) Update(ctx context.Context, id int64, draft *models.Hotel) (*models.Hotel, error) {
	var updated *models.Hotel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Hotel
		if err := tx.First(&existing, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrHotelNotFound
			}
			return errors.ErrDatabaseError.WithError(err)
		}

		existing.Name = draft.Name
		existing.Address = draft.Address

		if err := tx.Save(&existing).Error; err != nil {
			return errors.ErrDatabaseError.WithError(err)
		}
		updated = &existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete 删除酒店，存在房型、房间、预订或评价时拒绝
func (r *HotelRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var hotel models.Hotel
		if err := tx.First(&hotel, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrHotelNotFound
			}
			return errors.ErrDatabaseError.WithError(err)
		}
		if err := checkNoDependents(tx, &models.RoomType{}, "hotel_id", id, errors.EntityHotel); err != nil {
			return err
		}
		if err := checkNoDependents(tx, &models.Room{}, "hotel_id", id, errors.EntityHotel); err != nil {
			return err
		}
		if err := checkNoDependents(tx, &models.Booking{}, "hotel_id", id, errors.EntityHotel); err != nil {
			return err
		}
		if err := checkNoDependents(tx, &models.Feedback{}, "hotel_id", id, errors.EntityHotel); err != nil {
			return err
		}
		if err := tx.Delete(&models.Hotel{}, id).Error; err != nil {
			return errors.ErrDatabaseError.WithError(err)
		}
		return nil
	})
}
