package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dumeirei/hotel-ops-backend/internal/common/errors"
	"github.com/dumeirei/hotel-ops-backend/internal/models"
)

// FeedbackRepository 评价仓储
type FeedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository 创建评价仓储
func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// List 获取全部评价
func (r *FeedbackRepository) List(ctx context.Context) ([]*models.Feedback, error) {
	var feedbacks []*models.Feedback
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&feedbacks).Error; err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return feedbacks, nil
}

// GetByID 根据 ID 获取评价
func (r *FeedbackRepository) GetByID(ctx context.Context, id int64) (*models.Feedback, error) {
	var feedback models.Feedback
	if err := r.db.WithContext(ctx).First(&feedback, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrFeedbackNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return &feedback, nil
}

// checkRefs 按 酒店、入住记录 的顺序校验引用
func (r *FeedbackRepository) checkRefs(tx *gorm.DB, feedback *models.Feedback) error {
	if err := checkReferenced(tx, &models.Hotel{}, feedback.HotelID, errors.EntityHotel); err != nil {
		return err
	}
	return checkReferenced(tx, &models.Stay{}, feedback.StayID, errors.EntityStay)
}

// Create 创建评价，同一酒店同一入住记录只能评价一次
func (r *FeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) (*models.Feedback, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.checkRefs(tx, feedback); err != nil {
			return err
		}
		count, err := countWhere(tx, &models.Feedback{}, "hotel_id = ? AND stay_id = ?", feedback.HotelID, feedback.StayID)
		if err != nil {
			return err
		}
		if count > 0 {
			return errors.ErrFeedbackExists
		}
		if err := tx.Create(feedback).Error; err != nil {
			return errors.ErrDatabaseError.WithError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return feedback, nil
}

// Update 更新评价，整行替换并重跑引用校验
func (r *FeedbackRepository) Update(ctx context.Context, id int64, draft *models.Feedback) (*models.Feedback, error) {
	var updated *models.Feedback
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Feedback
		if err := tx.First(&existing, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrFeedbackNotFound
			}
			return errors.ErrDatabaseError.WithError(err)
		}
		if err := r.checkRefs(tx, draft); err != nil {
			return err
		}

		existing.HotelID = draft.HotelID
		existing.StayID = draft.StayID
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

// Delete 删除评价
func (r *FeedbackRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var feedback models.Feedback
		if err := tx.First(&feedback, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrFeedbackNotFound
			}
			return errors.ErrDatabaseError.WithError(err)
		}
		if err := tx.Delete(&models.Feedback{}, id).Error; err != nil {
			return errors.ErrDatabaseError.WithError(err)
		}
		return nil
	})
}
