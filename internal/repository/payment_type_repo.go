package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dumeirei/hotel-ops-backend/internal/common/errors"
	"github.com/dumeirei/hotel-ops-backend/internal/models"
)

// PaymentTypeRepository 支付方式仓储
type PaymentTypeRepository struct {
	db *gorm.DB
}

// NewPaymentTypeRepository 创建支付方式仓储
func NewPaymentTypeRepository(db *gorm.DB) *PaymentTypeRepository {
	return &PaymentTypeRepository{db: db}
}

// List 获取全部支付方式
func (r *PaymentTypeRepository) List(ctx context.Context) ([]*models.PaymentType, error) {
	var paymentTypes []*models.PaymentType
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&paymentTypes).Error; err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return paymentTypes, nil
}

// GetByID 根据 ID 获取支付方式
func (r *PaymentTypeRepository) GetByID(ctx context.Context, id int64) (*models.PaymentType, error) {
	var paymentType models.PaymentType
	if err := r.db.WithContext(ctx).First(&paymentType, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPaymentTypeNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return &paymentType, nil
}

// Create 创建支付方式，名称要求唯一
func (r *PaymentTypeRepository) Create(ctx context.Context, paymentType *models.PaymentType) (*models.PaymentType, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		count, err := countWhere(tx, &models.PaymentType{}, "name_payment = ?", paymentType.NamePayment)
		if err != nil {
			return err
		}
		if count > 0 {
			return errors.ErrPaymentTypeExists
		}
		if err := tx.Create(paymentType).Error; err != nil {
			return errors.ErrDatabaseError.WithError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paymentType, nil
}

// Update 更新支付方式，整行替换
func (r *PaymentTypeRepository) Update(ctx context.Context, id int64, draft *models.PaymentType) (*models.PaymentType, error) {
	var updated *models.PaymentType
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.PaymentType
		if err := tx.First(&existing, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrPaymentTypeNotFound
			}
			return errors.ErrDatabaseError.WithError(err)
		}

		existing.NamePayment = draft.NamePayment

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

// Delete 删除支付方式，存在入住记录时拒绝
func (r *PaymentTypeRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var paymentType models.PaymentType
		if err := tx.First(&paymentType, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrPaymentTypeNotFound
			}
			return errors.ErrDatabaseError.WithError(err)
		}
		if err := checkNoDependents(tx, &models.Stay{}, "type_payment_id", id, errors.EntityPaymentType); err != nil {
			return err
		}
		if err := tx.Delete(&models.PaymentType{}, id).Error; err != nil {
			return errors.ErrDatabaseError.WithError(err)
		}
		return nil
	})
}
