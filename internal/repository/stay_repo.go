package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dumeirei/hotel-ops-backend/internal/common/errors"
	"github.com/dumeirei/hotel-ops-backend/internal/models"
	"github.com/dumeirei/hotel-ops-backend/internal/validation"
)

// StayRepository 入住记录仓储
type StayRepository struct {
	db *gorm.DB
}

// NewStayRepository 创建入住记录仓储
func NewStayRepository(db *gorm.DB) *StayRepository {
	return &StayRepository{db: db}
}

// List 获取全部入住记录
func (r *StayRepository) List(ctx context.Context) ([]*models.Stay, error) {
	var stays []*models.Stay
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&stays).Error; err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return stays, nil
}

// GetByID 根据 ID 获取入住记录
func (r *StayRepository) GetByID(ctx context.Context, id int64) (*models.Stay, error) {
	var stay models.Stay
	if err := r.db.WithContext(ctx).First(&stay, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrStayNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return &stay, nil
}

// checkRefs 按 房间、预订、支付方式 的顺序校验引用
func (r *StayRepository) checkRefs(tx *gorm.DB, stay *models.Stay) error {
	if err := checkReferenced(tx, &models.Room{}, stay.RoomID, errors.EntityRoom); err != nil {
		return err
	}
	if err := checkReferenced(tx, &models.Booking{}, stay.BookingID, errors.EntityBooking); err != nil {
		return err
	}
	return checkReferenced(tx, &models.PaymentType{}, stay.TypePaymentID, errors.EntityPaymentType)
}

// Create 创建入住记录，要求房间、预订、支付方式都存在
func (r *StayRepository) Create(ctx context.Context, stay *models.Stay) (*models.Stay, error) {
	if appErr := validation.Stay(stay); appErr != nil {
		return nil, appErr
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.checkRefs(tx, stay); err != nil {
			return err
		}
		if err := tx.Create(stay).Error; err != nil {
			return errors.ErrDatabaseError.WithError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stay, nil
}

// Update 更新入住记录，整行替换并重跑创建时的校验
func (r *StayRepository) Update(ctx context.Context, id int64, draft *models.Stay) (*models.Stay, error) {
	var updated *models.Stay
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Stay
		if err := tx.First(&existing, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrStayNotFound
			}
			return errors.ErrDatabaseError.WithError(err)
		}
		if appErr := validation.Stay(draft); appErr != nil {
			return appErr
		}
		if err := r.checkRefs(tx, draft); err != nil {
			return err
		}

		existing.RoomID = draft.RoomID
		existing.BookingID = draft.BookingID
		existing.Payment = draft.Payment
		existing.CheckInDate = draft.CheckInDate
		existing.CheckOutDate = draft.CheckOutDate
		existing.TypePaymentID = draft.TypePaymentID
		existing.TotalPrice = draft.TotalPrice

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

// Delete 删除入住记录，存在服务使用记录或评价时拒绝
func (r *StayRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var stay models.Stay
		if err := tx.First(&stay, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrStayNotFound
			}
			return errors.ErrDatabaseError.WithError(err)
		}
		if err := checkNoDependents(tx, &models.ServiceUsage{}, "stay_id", id, errors.EntityStay); err != nil {
			return err
		}
		if err := checkNoDependents(tx, &models.Feedback{}, "stay_id", id, errors.EntityStay); err != nil {
			return err
		}
		if err := tx.Delete(&models.Stay{}, id).Error; err != nil {
			return errors.ErrDatabaseError.WithError(err)
		}
		return nil
	})
}
