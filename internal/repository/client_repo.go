package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dumeirei/hotel-ops-backend/internal/common/errors"
	"github.com/dumeirei/hotel-ops-backend/internal/models"
)

// ClientRepository 客户仓储
type ClientRepository struct {
	db *gorm.DB
}

// NewClientRepository 创建客户仓储
func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// List 获取全部客户
func (r *ClientRepository) List(ctx context.Context) ([]*models.Client, error) {
	var clients []*models.Client
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&clients).Error; err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return clients, nil
}

// GetByID 根据 ID 获取客户
func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*models.Client, error) {
	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrClientNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return &client, nil
}

// Create 创建客户，邮箱非空时要求唯一
func (r *ClientRepository) Create(ctx context.Context, client *models.Client) (*models.Client, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if client.Email != "" {
			count, err := countWhere(tx, &models.Client{}, "email = ?", client.Email)
			if err != nil {
				return err
			}
			if count > 0 {
				return errors.ErrClientExists
			}
		}
		if err := tx.Create(client).Error; err != nil {
			return errors.ErrDatabaseError.WithError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}

// Update 更新客户，整行替换
func (r *ClientRepository) Update(ctx context.Context, id int64, draft *models.Client) (*models.Client, error) {
	var updated *models.Client
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Client
		if err := tx.First(&existing, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrClientNotFound
			}
			return errors.ErrDatabaseError.WithError(err)
		}

		existing.FullName = draft.FullName
		existing.Phone = draft.Phone
		existing.Email = draft.Email

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

// Delete 删除客户，存在预订时拒绝
func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var client models.Client
		if err := tx.First(&client, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrClientNotFound
			}
			return errors.ErrDatabaseError.WithError(err)
		}
		if err := checkNoDependents(tx, &models.Booking{}, "client_id", id, errors.EntityClient); err != nil {
			return err
		}
		if err := tx.Delete(&models.Client{}, id).Error; err != nil {
			return errors.ErrDatabaseError.WithError(err)
		}
		return nil
	})
}
