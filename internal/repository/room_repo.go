package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dumeirei/hotel-ops-backend/internal/common/errors"
	"github.com/dumeirei/hotel-ops-backend/internal/models"
	"github.com/dumeirei/hotel-ops-backend/internal/validation"
)

// RoomRepository 房间仓储
type RoomRepository struct {
	db *gorm.DB
}

// NewRoomRepository 创建房间仓储
func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// List 获取可预订的房间，容量不足 1 的行不出现在列表里
func (r *RoomRepository) List(ctx context.Context) ([]*models.Room, error) {
	var rooms []*models.Room
	err := r.db.WithContext(ctx).Where("capacity >= ?", 1).Order("id ASC").Find(&rooms).Error
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return rooms, nil
}

// GetByID 根据 ID 获取房间，不过滤容量
func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*models.Room, error) {
	var room models.Room
	if err := r.db.WithContext(ctx).First(&room, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRoomNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return &room, nil
}

// Create 创建房间，要求酒店和房型存在且房间号唯一
func (r *RoomRepository) Create(ctx context.Context, room *models.Room) (*models.Room, error) {
	if appErr := validation.Room(room); appErr != nil {
		return nil, appErr
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkReferenced(tx, &models.Hotel{}, room.HotelID, errors.EntityHotel); err != nil {
			return err
		}
		if err := checkReferenced(tx, &models.RoomType{}, room.RoomTypeID, errors.EntityRoomType); err != nil {
			return err
		}
		count, err := countWhere(tx, &models.Room{}, "room_number = ?", room.RoomNumber)
		if err != nil {
			return err
		}
		if count > 0 {
			return errors.ErrRoomExists
		}
		if err := tx.Create(room).Error; err != nil {
			return errors.ErrDatabaseError.WithError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return room, nil
}

// Update 更新房间，整行替换并重跑创建时的字段与引用校验
func (r *RoomRepository) Update(ctx context.Context, id int64, draft *models.Room) (*models.Room, error) {
	var updated *models.Room
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Room
		if err := tx.First(&existing, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrRoomNotFound
			}
			return errors.ErrDatabaseError.WithError(err)
		}
		if appErr := validation.Room(draft); appErr != nil {
			return appErr
		}
		if err := checkReferenced(tx, &models.Hotel{}, draft.HotelID, errors.EntityHotel); err != nil {
			return err
		}
		if err := checkReferenced(tx, &models.RoomType{}, draft.RoomTypeID, errors.EntityRoomType); err != nil {
			return err
		}

		existing.HotelID = draft.HotelID
		existing.RoomTypeID = draft.RoomTypeID
		existing.RoomNumber = draft.RoomNumber
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

// Delete 删除房间，存在入住记录时拒绝
func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrRoomNotFound
			}
			return errors.ErrDatabaseError.WithError(err)
		}
		if err := checkNoDependents(tx, &models.Stay{}, "room_id", id, errors.EntityRoom); err != nil {
			return err
		}
		if err := tx.Delete(&models.Room{}, id).Error; err != nil {
			return errors.ErrDatabaseError.WithError(err)
		}
		return nil
	})
}
