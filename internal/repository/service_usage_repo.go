package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dumeirei/hotel-ops-backend/internal/common/errors"
	"github.com/dumeirei/hotel-ops-backend/internal/models"
	"github.com/dumeirei/hotel-ops-backend/internal/validation"
)

// ServiceUsageRepository 服务使用记录仓储
type ServiceUsageRepository struct {
	db *gorm.DB
}

// NewServiceUsageRepository 创建服务使用记录仓储
func NewServiceUsageRepository(db *gorm.DB) *ServiceUsageRepository {
	return &ServiceUsageRepository{db: db}
}

// List 获取全部服务使用记录
func (r *ServiceUsageRepository) List(ctx context.Context) ([]*models.ServiceUsage, error) {
	var usages []*models.ServiceUsage
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&usages).Error; err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return usages, nil
}

// GetByID 根据 ID 获取服务使用记录
func (r *ServiceUsageRepository) GetByID(ctx context.Context, id int64) (*models.ServiceUsage, error) {
	var usage models.ServiceUsage
	if err := r.db.WithContext(ctx).First(&usage, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrServiceUsageNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return &usage, nil
}

// checkRefs 按 入住记录、服务项目 的顺序校验引用
func (r *ServiceUsageRepository) checkRefs(tx *gorm.DB, usage *models.ServiceUsage) error {
	if err := checkReferenced(tx, &models.Stay{}, usage.StayID, errors.EntityStay); err != nil {
		return err
	}
	return checkReferenced(tx, &models.Service{}, usage.ServiceID, errors.EntityService)
}

// Create 创建服务使用记录，要求入住记录和服务项目都存在
func (r *ServiceUsageRepository) Create(ctx context.Context, usage *models.ServiceUsage) (*models.ServiceUsage, error) {
	if appErr := validation.ServiceUsage(usage); appErr != nil {
		return nil, appErr
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.checkRefs(tx, usage); err != nil {
			return err
		}
		if err := tx.Create(usage).Error; err != nil {
			return errors.ErrDatabaseError.WithError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return usage, nil
}

// Update 更新服务使用记录，整行替换并重跑创建时的校验
func (r *ServiceUsageRepository) Update(ctx context.Context, id int64, draft *models.ServiceUsage) (*models.ServiceUsage, error) {
	var updated *models.ServiceUsage
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.ServiceUsage
		if err := tx.First(&existing, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrServiceUsageNotFound
			}
			return errors.ErrDatabaseError.WithError(err)
		}
		if appErr := validation.ServiceUsage(draft); appErr != nil {
			return appErr
		}
		if err := r.checkRefs(tx, draft); err != nil {
			return err
		}

		existing.StayID = draft.StayID
		existing.ServiceID = draft.ServiceID
		existing.Quantity = draft.Quantity
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

// Delete 删除服务使用记录
func (r *ServiceUsageRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var usage models.ServiceUsage
		if err := tx.First(&usage, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrServiceUsageNotFound
			}
			return errors.ErrDatabaseError.WithError(err)
		}
		if err := tx.Delete(&models.ServiceUsage{}, id).Error; err != nil {
			return errors.ErrDatabaseError.WithError(err)
		}
		return nil
	})
}
