package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dumeirei/hotel-ops-backend/internal/common/errors"
	"github.com/dumeirei/hotel-ops-backend/internal/models"
	"github.com/dumeirei/hotel-ops-backend/internal/validation"
)

// ServiceRepository 服务项目仓储
type ServiceRepository struct {
	db *gorm.DB
}

// NewServiceRepository 创建服务项目仓储
func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

// List 获取全部服务项目
func (r *ServiceRepository) List(ctx context.Context) ([]*models.Service, error) {
	var services []*models.Service
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&services).Error; err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return services, nil
}

// GetByID 根据 ID 获取服务项目
func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*models.Service, error) {
	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrServiceNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return &service, nil
}

// Create 创建服务项目，名称要求唯一且价格为正
func (r *ServiceRepository) Create(ctx context.Context, service *models.Service) (*models.Service, error) {
	if appErr := validation.Service(service); appErr != nil {
		return nil, appErr
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		count, err := countWhere(tx, &models.Service{}, "service_name = ?", service.ServiceName)
		if err != nil {
			return err
		}
		if count > 0 {
			return errors.ErrServiceExists
		}
		if err := tx.Create(service).Error; err != nil {
			return errors.ErrDatabaseError.WithError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return service, nil
}

// Update 更新服务项目，整行替换并重跑创建时的字段校验
func (r *ServiceRepository) Update(ctx context.Context, id int64, draft *models.Service) (*models.Service, error) {
	var updated *models.Service
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Service
		if err := tx.First(&existing, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrServiceNotFound
			}
			return errors.ErrDatabaseError.WithError(err)
		}
		if appErr := validation.Service(draft); appErr != nil {
			return appErr
		}

		existing.ServiceName = draft.ServiceName
		existing.Price = draft.Price

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

// Delete 删除服务项目，存在服务使用记录时拒绝
func (r *ServiceRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var service models.Service
		if err := tx.First(&service, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrServiceNotFound
			}
			return errors.ErrDatabaseError.WithError(err)
		}
		if err := checkNoDependents(tx, &models.ServiceUsage{}, "service_id", id, errors.EntityService); err != nil {
			return err
		}
		if err := tx.Delete(&models.Service{}, id).Error; err != nil {
			return errors.ErrDatabaseError.WithError(err)
		}
		return nil
	})
}
