// Package database 数据库模块单元测试
package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ==================== getLogLevel 测试 ====================

func TestGetLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		logMode  bool
		expected logger.LogLevel
	}{
		{"log mode enabled", true, logger.Info},
		{"log mode disabled", false, logger.Silent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := getLogLevel(tt.logMode)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// ==================== Migrate 测试 ====================

func TestMigrate(t *testing.T) {
	testDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = Migrate(testDB)
	require.NoError(t, err)

	// 全部业务表都应该建好
	tables := []string{
		"clients", "hotels", "room_types", "rooms", "bookings",
		"payment_types", "stays", "services", "service_usage", "feedback",
	}
	for _, table := range tables {
		assert.True(t, testDB.Migrator().HasTable(table), table)
	}
}

// ==================== GetDB / Close / Transaction / WithContext 测试 ====================

func TestGetDB_ReturnsGlobalDB(t *testing.T) {
	// 设置测试数据库
	testDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	oldDB := db
	db = testDB
	t.Cleanup(func() {
		db = oldDB
	})

	result := GetDB()
	assert.Equal(t, testDB, result)
}

func TestClose_WithNilDB(t *testing.T) {
	oldDB := db
	db = nil
	t.Cleanup(func() {
		db = oldDB
	})

	err := Close()
	assert.NoError(t, err)
}

func TestClose_WithActiveDB(t *testing.T) {
	testDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	oldDB := db
	db = testDB
	t.Cleanup(func() {
		db = oldDB
	})

	err = Close()
	assert.NoError(t, err)
}

func TestTransaction_Success(t *testing.T) {
	testDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	type Counter struct {
		ID    int64
		Value int
	}
	_ = testDB.AutoMigrate(&Counter{})

	oldDB := db
	db = testDB
	t.Cleanup(func() {
		db = oldDB
	})

	err = Transaction(func(tx *gorm.DB) error {
		return tx.Create(&Counter{ID: 1, Value: 100}).Error
	})
	assert.NoError(t, err)

	// 验证数据已提交
	var counter Counter
	testDB.First(&counter, 1)
	assert.Equal(t, 100, counter.Value)
}

func TestTransaction_Rollback(t *testing.T) {
	testDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	type Counter struct {
		ID    int64
		Value int
	}
	_ = testDB.AutoMigrate(&Counter{})

	oldDB := db
	db = testDB
	t.Cleanup(func() {
		db = oldDB
	})

	err = Transaction(func(tx *gorm.DB) error {
		tx.Create(&Counter{ID: 1, Value: 100})
		return assert.AnError // 模拟错误
	})
	assert.Error(t, err)

	// 验证数据已回滚
	var count int64
	testDB.Model(&Counter{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestWithContext(t *testing.T) {
	testDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	oldDB := db
	db = testDB
	t.Cleanup(func() {
		db = oldDB
	})

	ctx := context.Background()
	dbWithCtx := WithContext(ctx)

	assert.NotNil(t, dbWithCtx)
	// 验证返回的是带 context 的新 DB 实例
	assert.NotEqual(t, db, dbWithCtx)
}

// ==================== 并发安全测试 ====================

func TestGetDB_ConcurrentAccess(t *testing.T) {
	testDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	oldDB := db
	db = testDB
	t.Cleanup(func() {
		db = oldDB
	})

	// 并发访问 GetDB
	done := make(chan bool, 10)
	for i := 0; i < 10; i++ {
		go func() {
			result := GetDB()
			assert.NotNil(t, result)
			done <- true
		}()
	}

	// 等待所有 goroutine 完成
	for i := 0; i < 10; i++ {
		<-done
	}
}
