// Package repository 评价仓储单元测试
package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dumeirei/hotel-ops-backend/internal/common/errors"
	"github.com/dumeirei/hotel-ops-backend/internal/models"
)

func TestFeedbackRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFeedbackRepository(db)
	ctx := context.Background()

	stay := seedStayChain(t, db)
	var hotel models.Hotel
	require.NoError(t, db.First(&hotel).Error)

	created, err := repo.Create(ctx, &models.Feedback{
		HotelID: hotel.ID,
		StayID:  stay.ID,
		Name:    "张三",
		Address: "深圳市",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
}

func TestFeedbackRepository_CreateCheckOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFeedbackRepository(db)
	ctx := context.Background()

	// 酒店和入住记录都不存在时先报酒店
	_, err := repo.Create(ctx, &models.Feedback{
		HotelID: 9999,
		StayID:  8888,
		Name:    "张三",
		Address: "深圳市",
	})
	require.Error(t, err)
	assert.True(t, errors.IsReferencedNotFound(err))
	assert.Equal(t, errors.EntityHotel, errors.GetAppError(err).Entity)
}

func TestFeedbackRepository_CreateStayNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFeedbackRepository(db)
	ctx := context.Background()

	hotel := seedHotel(t, db)

	_, err := repo.Create(ctx, &models.Feedback{
		HotelID: hotel.ID,
		StayID:  8888,
		Name:    "张三",
		Address: "深圳市",
	})
	require.Error(t, err)
	assert.True(t, errors.IsReferencedNotFound(err))
	assert.Equal(t, errors.EntityStay, errors.GetAppError(err).Entity)
}

func TestFeedbackRepository_CreateDuplicate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFeedbackRepository(db)
	ctx := context.Background()

	stay := seedStayChain(t, db)
	var hotel models.Hotel
	require.NoError(t, db.First(&hotel).Error)

	_, err := repo.Create(ctx, &models.Feedback{
		HotelID: hotel.ID,
		StayID:  stay.ID,
		Name:    "张三",
		Address: "深圳市",
	})
	require.NoError(t, err)

	// 同一酒店同一入住记录只能评价一次
	_, err = repo.Create(ctx, &models.Feedback{
		HotelID: hotel.ID,
		StayID:  stay.ID,
		Name:    "李四",
		Address: "广州市",
	})
	require.Error(t, err)
	assert.True(t, errors.IsAlreadyExists(err))
}

func TestFeedbackRepository_GetByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFeedbackRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 9999)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestFeedbackRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFeedbackRepository(db)
	ctx := context.Background()

	stay := seedStayChain(t, db)
	var hotel models.Hotel
	require.NoError(t, db.First(&hotel).Error)
	feedback := &models.Feedback{HotelID: hotel.ID, StayID: stay.ID, Name: "张三", Address: "深圳市"}
	require.NoError(t, db.Create(feedback).Error)

	updated, err := repo.Update(ctx, feedback.ID, &models.Feedback{
		HotelID: hotel.ID,
		StayID:  stay.ID,
		Name:    "张三丰",
		Address: "武当山",
	})
	require.NoError(t, err)
	assert.Equal(t, "张三丰", updated.Name)
	assert.Equal(t, "武当山", updated.Address)
}

func TestFeedbackRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFeedbackRepository(db)
	ctx := context.Background()

	stay := seedStayChain(t, db)
	var hotel models.Hotel
	require.NoError(t, db.First(&hotel).Error)
	feedback := &models.Feedback{HotelID: hotel.ID, StayID: stay.ID, Name: "张三", Address: "深圳市"}
	require.NoError(t, db.Create(feedback).Error)

	err := repo.Delete(ctx, feedback.ID)
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, feedback.ID)
	assert.True(t, errors.IsNotFound(err))
}
