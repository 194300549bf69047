// Package repository 服务项目仓储单元测试
package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dumeirei/hotel-ops-backend/internal/common/errors"
	"github.com/dumeirei/hotel-ops-backend/internal/models"
)

func TestServiceRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewServiceRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.Service{ServiceName: "洗衣", Price: 30})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
}

func TestServiceRepository_CreateInvalidPrice(t *testing.T) {
	db := setupTestDB(t)
	repo := NewServiceRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.Service{ServiceName: "洗衣", Price: 0})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidField(err))
	assert.Equal(t, "price", errors.GetAppError(err).Field)
}

func TestServiceRepository_CreateDuplicateName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewServiceRepository(db)
	ctx := context.Background()

	seedService(t, db)

	_, err := repo.Create(ctx, &models.Service{ServiceName: "早餐", Price: 60})
	require.Error(t, err)
	assert.True(t, errors.IsAlreadyExists(err))
}

func TestServiceRepository_GetByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewServiceRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 9999)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestServiceRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewServiceRepository(db)
	ctx := context.Background()

	service := seedService(t, db)

	updated, err := repo.Update(ctx, service.ID, &models.Service{ServiceName: "自助早餐", Price: 68})
	require.NoError(t, err)
	assert.Equal(t, "自助早餐", updated.ServiceName)
	assert.Equal(t, float64(68), updated.Price)
}

func TestServiceRepository_UpdateInvalidPrice(t *testing.T) {
	db := setupTestDB(t)
	repo := NewServiceRepository(db)
	ctx := context.Background()

	service := seedService(t, db)

	_, err := repo.Update(ctx, service.ID, &models.Service{ServiceName: "早餐", Price: -1})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidField(err))
}

func TestServiceRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewServiceRepository(db)
	ctx := context.Background()

	service := seedService(t, db)

	err := repo.Delete(ctx, service.ID)
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, service.ID)
	assert.True(t, errors.IsNotFound(err))
}

func TestServiceRepository_DeleteBlockedByUsage(t *testing.T) {
	db := setupTestDB(t)
	repo := NewServiceRepository(db)
	ctx := context.Background()

	stay := seedStayChain(t, db)
	service := seedService(t, db)
	require.NoError(t, db.Create(&models.ServiceUsage{
		StayID:     stay.ID,
		ServiceID:  service.ID,
		Quantity:   2,
		TotalPrice: 100,
	}).Error)

	err := repo.Delete(ctx, service.ID)
	require.Error(t, err)
	assert.True(t, errors.IsReferentialConflict(err))
}
