package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dumeirei/hotel-ops-backend/internal/common/errors"
	"github.com/dumeirei/hotel-ops-backend/internal/models"
	"github.com/dumeirei/hotel-ops-backend/internal/validation"
)

// RoomTypeRepository 房型仓储
type RoomTypeRepository struct {
	db *gorm.DB
}

// NewRoomTypeRepository 创建房型仓储
func NewRoomTypeRepository(db *gorm.DB) *RoomTypeRepository {
	return &RoomTypeRepository{db: db}
}

// List 获取可预订的房型，容量不足 1 的行不出现在列表里
func (r *RoomTypeRepository) List(ctx context.Context) ([]*models.RoomType, error) {
	var roomTypes []*models.RoomType
	err := r.db.WithContext(ctx).Where("capacity >= ?", 1).Order("id ASC").Find(&roomTypes).Error
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return roomTypes, nil
}

// GetByID 根据 ID 获取房型，不过滤容量
func (r *RoomTypeRepository) GetByID(ctx context.Context, id int64) (*models.RoomType, error) {
	var roomType models.RoomType
	if err := r.db.WithContext(ctx).First(&roomType, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRoomTypeNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return &roomType, nil
}

// Create 创建房型，要求所属酒店存在
func (r *RoomTypeRepository) Create(ctx context.Context, roomType *models.RoomType) (*models.RoomType, error) {
	if appErr := validation.RoomType(roomType); appErr != nil {
		return nil, appErr
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkReferenced(tx, &models.Hotel{}, roomType.HotelID, errors.EntityHotel); err != nil {
			return err
		}
		if err := tx.Create(roomType).Error; err != nil {
			return errors.ErrDatabaseError.WithError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return roomType, nil
}

// Update 更新房型，整行替换并重跑创建时的校验
func (r *RoomTypeRepository) Update(ctx context.Context, id int64, draft *models.RoomType) (*models.RoomType, error) {
	var updated *models.RoomType
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.RoomType
		if err := tx.First(&existing, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrRoomTypeNotFound
			}
			return errors.ErrDatabaseError.WithError(err)
		}
		if appErr := validation.RoomType(draft); appErr != nil {
			return appErr
		}
		if err := checkReferenced(tx, &models.Hotel{}, draft.HotelID, errors.EntityHotel); err != nil {
			return err
		}

		existing.HotelID = draft.HotelID
		existing.RoomNumber = draft.RoomNumber
		existing.TypeName = draft.TypeName
		existing.PricePerNight = draft.PricePerNight
		existing.Capacity = draft.Capacity

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

// Delete 删除房型，存在房间或预订时拒绝
func (r *RoomTypeRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var roomType models.RoomType
		if err := tx.First(&roomType, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrRoomTypeNotFound
			}
			return errors.ErrDatabaseError.WithError(err)
		}
		if err := checkNoDependents(tx, &models.Room{}, "room_type_id", id, errors.EntityRoomType); err != nil {
			return err
		}
		if err := checkNoDependents(tx, &models.Booking{}, "room_type_id", id, errors.EntityRoomType); err != nil {
			return err
		}
		if err := tx.Delete(&models.RoomType{}, id).Error; err != nil {
			return errors.ErrDatabaseError.WithError(err)
		}
		return nil
	})
}
