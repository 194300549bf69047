package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dumeirei/hotel-ops-backend/internal/common/errors"
	"github.com/dumeirei/hotel-ops-backend/internal/models"
	"github.com/dumeirei/hotel-ops-backend/internal/validation"
)

// BookingRepository 预订仓储
type BookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository 创建预订仓储
func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// List 获取全部预订
func (r *BookingRepository) List(ctx context.Context) ([]*models.Booking, error) {
	var bookings []*models.Booking
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&bookings).Error; err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return bookings, nil
}

// GetByID 根据 ID 获取预订
func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).First(&booking, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrBookingNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return &booking, nil
}

// checkRefs 按 客户、房型、酒店 的顺序校验引用
func (r *BookingRepository) checkRefs(tx *gorm.DB, booking *models.Booking) error {
	if err := checkReferenced(tx, &models.Client{}, booking.ClientID, errors.EntityClient); err != nil {
		return err
	}
	if err := checkReferenced(tx, &models.RoomType{}, booking.RoomTypeID, errors.EntityRoomType); err != nil {
		return err
	}
	return checkReferenced(tx, &models.Hotel{}, booking.HotelID, errors.EntityHotel)
}

// Create 创建预订，要求客户、房型、酒店都存在且退房日期晚于入住日期
func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	if appErr := validation.Booking(booking); appErr != nil {
		return nil, appErr
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.checkRefs(tx, booking); err != nil {
			return err
		}
		if err := tx.Create(booking).Error; err != nil {
			return errors.ErrDatabaseError.WithError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// Update 更新预订，整行替换并重跑创建时的校验
func (r *BookingRepository) Update(ctx context.Context, id int64, draft *models.Booking) (*models.Booking, error) {
	var updated *models.Booking
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Booking
		if err := tx.First(&existing, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrBookingNotFound
			}
			return errors.ErrDatabaseError.WithError(err)
		}
		if appErr := validation.Booking(draft); appErr != nil {
			return appErr
		}
		if err := r.checkRefs(tx, draft); err != nil {
			return err
		}

		existing.ClientID = draft.ClientID
		existing.RoomTypeID = draft.RoomTypeID
		existing.HotelID = draft.HotelID
		existing.BookingDate = draft.BookingDate
		existing.CheckInDate = draft.CheckInDate
		existing.CheckOutDate = draft.CheckOutDate

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

// Delete 删除预订，存在入住记录时拒绝
func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrBookingNotFound
			}
			return errors.ErrDatabaseError.WithError(err)
		}
		if err := checkNoDependents(tx, &models.Stay{}, "booking_id", id, errors.EntityBooking); err != nil {
			return err
		}
		if err := tx.Delete(&models.Booking{}, id).Error; err != nil {
			return errors.ErrDatabaseError.WithError(err)
		}
		return nil
	})
}
