// Package errors 错误模块单元测试
package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	err := New(1001, "参数错误")
	assert.Equal(t, "[1001] 参数错误", err.Error())

	wrapped := Wrap(1004, "数据库错误", assert.AnError)
	assert.Contains(t, wrapped.Error(), "[1004] 数据库错误")
	assert.Contains(t, wrapped.Error(), assert.AnError.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	inner := assert.AnError
	err := Wrap(1004, "数据库错误", inner)

	assert.Equal(t, inner, err.Unwrap())
	assert.True(t, stderrors.Is(err, inner))
}

func TestAppError_WithMessage(t *testing.T) {
	base := ErrDatabaseError
	modified := base.WithMessage("连接超时")

	assert.Equal(t, base.Code, modified.Code)
	assert.Equal(t, "连接超时", modified.Message)
	// 原错误不被修改
	assert.Equal(t, "数据库错误", base.Message)
}

func TestAppError_WithError(t *testing.T) {
	base := ErrDatabaseError
	modified := base.WithError(assert.AnError)

	assert.Equal(t, base.Code, modified.Code)
	assert.Equal(t, assert.AnError, modified.Err)
	// 原错误不被修改
	assert.Nil(t, base.Err)
}

func TestNotFound(t *testing.T) {
	err := NotFound(EntityHotel)

	assert.Equal(t, CodeNotFound, err.Code)
	assert.Equal(t, EntityHotel, err.Entity)
	assert.Equal(t, "酒店不存在", err.Message)
}

func TestAlreadyExists(t *testing.T) {
	err := AlreadyExists(EntityRoom)

	assert.Equal(t, CodeAlreadyExists, err.Code)
	assert.Equal(t, EntityRoom, err.Entity)
	assert.Equal(t, "房间已存在", err.Message)
}

func TestInvalidField(t *testing.T) {
	err := InvalidField(EntityRoom, "capacity", "容量必须大于等于 1")

	assert.Equal(t, CodeInvalidField, err.Code)
	assert.Equal(t, EntityRoom, err.Entity)
	assert.Equal(t, "capacity", err.Field)
	assert.Equal(t, "容量必须大于等于 1", err.Message)
}

func TestReferencedNotFound(t *testing.T) {
	err := ReferencedNotFound(EntityClient)

	assert.Equal(t, CodeReferencedNotFound, err.Code)
	assert.Equal(t, EntityClient, err.Entity)
	assert.Equal(t, "关联的客户不存在", err.Message)
}

func TestReferentialConflict(t *testing.T) {
	err := ReferentialConflict(EntityStay)

	assert.Equal(t, CodeReferentialConflict, err.Code)
	assert.Equal(t, EntityStay, err.Entity)
	assert.Contains(t, err.Message, "入住记录")
}

func TestEntityName_Unregistered(t *testing.T) {
	err := NotFound("warehouse")
	assert.Equal(t, "warehouse不存在", err.Message)
}

func TestIsAppError(t *testing.T) {
	assert.True(t, IsAppError(ErrHotelNotFound))
	assert.False(t, IsAppError(assert.AnError))
	assert.False(t, IsAppError(nil))
}

func TestGetAppError(t *testing.T) {
	appErr := GetAppError(ErrHotelNotFound)
	assert.Equal(t, ErrHotelNotFound, appErr)

	// 非应用错误被包装成未知错误
	wrapped := GetAppError(assert.AnError)
	require.NotNil(t, wrapped)
	assert.Equal(t, CodeUnknown, wrapped.Code)
	assert.Equal(t, assert.AnError, wrapped.Err)
}

func TestCategoryPredicates(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		predicate func(error) bool
		want      bool
	}{
		{"IsNotFound 命中", ErrClientNotFound, IsNotFound, true},
		{"IsNotFound 未命中", ErrClientExists, IsNotFound, false},
		{"IsNotFound 普通错误", assert.AnError, IsNotFound, false},
		{"IsAlreadyExists 命中", ErrRoomExists, IsAlreadyExists, true},
		{"IsAlreadyExists 未命中", ErrRoomNotFound, IsAlreadyExists, false},
		{"IsInvalidField 命中", InvalidField(EntityService, "price", "价格必须大于 0"), IsInvalidField, true},
		{"IsInvalidField 未命中", ErrServiceNotFound, IsInvalidField, false},
		{"IsReferencedNotFound 命中", ReferencedNotFound(EntityHotel), IsReferencedNotFound, true},
		{"IsReferencedNotFound 未命中", NotFound(EntityHotel), IsReferencedNotFound, false},
		{"IsReferentialConflict 命中", ReferentialConflict(EntityBooking), IsReferentialConflict, true},
		{"IsReferentialConflict 未命中", NotFound(EntityBooking), IsReferentialConflict, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.predicate(tt.err))
		})
	}
}

func TestSentinelEntities(t *testing.T) {
	// 预定义错误携带各自的实体标识
	assert.Equal(t, EntityClient, ErrClientNotFound.Entity)
	assert.Equal(t, EntityHotel, ErrHotelExists.Entity)
	assert.Equal(t, EntityRoomType, ErrRoomTypeNotFound.Entity)
	assert.Equal(t, EntityPaymentType, ErrPaymentTypeExists.Entity)
	assert.Equal(t, EntityServiceUsage, ErrServiceUsageNotFound.Entity)
	assert.Equal(t, EntityFeedback, ErrFeedbackExists.Entity)
}
