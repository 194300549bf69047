// Package repository 提供数据访问层
// 每个实体族一个仓储，写操作在单个事务内完成存在性、引用和唯一性校验
package repository

import (
	"gorm.io/gorm"

	"github.com/dumeirei/hotel-ops-backend/internal/common/errors"
)

// checkReferenced 校验被引用的记录存在，不存在时返回引用错误
func checkReferenced(tx *gorm.DB, model interface{}, id int64, entity string) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	if count == 0 {
		return errors.ReferencedNotFound(entity)
	}
	return nil
}

// checkNoDependents 删除前校验目标没有被依赖记录引用
func checkNoDependents(tx *gorm.DB, dependent interface{}, fkColumn string, id int64, entity string) error {
	var count int64
	if err := tx.Model(dependent).Where(fkColumn+" = ?", id).Count(&count).Error; err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	if count > 0 {
		return errors.ReferentialConflict(entity)
	}
	return nil
}

// countWhere 统计满足条件的行数
func countWhere(tx *gorm.DB, model interface{}, query string, args ...interface{}) (int64, error) {
	var count int64
	if err := tx.Model(model).Where(query, args...).Count(&count).Error; err != nil {
		return 0, errors.ErrDatabaseError.WithError(err)
	}
	return count, nil
}
