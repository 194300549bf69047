// Package repository 客户仓储单元测试
package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dumeirei/hotel-ops-backend/internal/common/errors"
	"github.com/dumeirei/hotel-ops-backend/internal/models"
)

func TestClientRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.Client{
		FullName: "李四",
		Phone:    "13900139000",
		Email:    "lisi@example.com",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
}

func TestClientRepository_CreateDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	seedClient(t, db)

	_, err := repo.Create(ctx, &models.Client{
		FullName: "另一个张三",
		Email:    "zhangsan@example.com",
	})
	require.Error(t, err)
	assert.True(t, errors.IsAlreadyExists(err))
}

func TestClientRepository_CreateEmptyEmailNotUnique(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	// 邮箱为空时不做唯一性检查，允许多个空邮箱客户
	_, err := repo.Create(ctx, &models.Client{FullName: "客户甲"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &models.Client{FullName: "客户乙"})
	require.NoError(t, err)
}

func TestClientRepository_GetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	client := seedClient(t, db)

	found, err := repo.GetByID(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, client.ID, found.ID)
	assert.Equal(t, "张三", found.FullName)
}

func TestClientRepository_GetByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 9999)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestClientRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	db.Create(&models.Client{FullName: "客户甲"})
	db.Create(&models.Client{FullName: "客户乙"})

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, len(list))
}

func TestClientRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	client := seedClient(t, db)

	updated, err := repo.Update(ctx, client.ID, &models.Client{
		FullName: "张三丰",
		Phone:    "13700137000",
		Email:    "zhangsanfeng@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "张三丰", updated.FullName)

	// 整行替换，旧值全部被覆盖
	var found models.Client
	db.First(&found, client.ID)
	assert.Equal(t, "张三丰", found.FullName)
	assert.Equal(t, "13700137000", found.Phone)
	assert.Equal(t, "zhangsanfeng@example.com", found.Email)
}

func TestClientRepository_UpdateNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	_, err := repo.Update(ctx, 9999, &models.Client{FullName: "无"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestClientRepository_UpdateSkipsUniqueness(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	seedClient(t, db)
	other := &models.Client{FullName: "李四", Email: "lisi@example.com"}
	require.NoError(t, db.Create(other).Error)

	// 更新不重查唯一性，允许改成已占用的邮箱
	_, err := repo.Update(ctx, other.ID, &models.Client{
		FullName: "李四",
		Email:    "zhangsan@example.com",
	})
	require.NoError(t, err)
}

func TestClientRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	client := seedClient(t, db)

	err := repo.Delete(ctx, client.ID)
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, client.ID)
	assert.True(t, errors.IsNotFound(err))
}

func TestClientRepository_DeleteNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	err := repo.Delete(ctx, 9999)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestClientRepository_DeleteBlockedByBooking(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	client := seedClient(t, db)
	hotel := seedHotel(t, db)
	roomType := seedRoomType(t, db, hotel.ID)
	seedBooking(t, db, client.ID, roomType.ID, hotel.ID)

	err := repo.Delete(ctx, client.ID)
	require.Error(t, err)
	assert.True(t, errors.IsReferentialConflict(err))

	// 删除被拒后客户仍然存在
	found, err := repo.GetByID(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, client.ID, found.ID)
}
