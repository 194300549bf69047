// Package handler 提供 API Handler 的通用辅助函数
// 用于减少 Handler 层的代码重复，统一错误处理、参数解析等操作
package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dumeirei/hotel-ops-backend/internal/common/errors"
	"github.com/dumeirei/hotel-ops-backend/internal/common/response"
)

// ============================================================================
// 统一错误处理
// ============================================================================

// statusOf 业务错误类别到 HTTP 状态码的映射
func statusOf(appErr *errors.AppError) int {
	switch appErr.Code {
	case errors.CodeInvalidField:
		return http.StatusUnprocessableEntity
	case errors.CodeNotFound, errors.CodeReferencedNotFound:
		return http.StatusNotFound
	case errors.CodeAlreadyExists, errors.CodeReferentialConflict:
		return http.StatusConflict
	case errors.CodeInvalidParams:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// HandleError 处理错误并发送适当的响应
// 如果 err 为 nil，返回 false（表示无错误需要处理）
// 如果 err 不为 nil，发送错误响应并返回 true（表示已处理错误，调用方应该 return）
//
// 使用示例:
//
//	result, err := repo.GetByID(ctx, id)
//	if HandleError(c, err) {
//	    return
//	}
func HandleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}
	if appErr, ok := err.(*errors.AppError); ok {
		response.Error(c, statusOf(appErr), appErr.Code, appErr.Message)
		return true
	}
	response.InternalError(c, err.Error())
	return true
}

// MustSucceed 便捷封装：如果有错误则返回错误响应，否则返回成功响应
// 适用于简单的「调用仓储 -> 返回结果」场景
//
// 使用示例:
//
//	result, err := repo.List(ctx)
//	MustSucceed(c, err, result)
//	return  // 注意：调用 MustSucceed 后必须 return
func MustSucceed(c *gin.Context, err error, data interface{}) {
	if HandleError(c, err) {
		return
	}
	response.Success(c, data)
}

// MustCreate 便捷封装：创建成功时返回 201
func MustCreate(c *gin.Context, err error, data interface{}) {
	if HandleError(c, err) {
		return
	}
	response.Created(c, data)
}

// ============================================================================
// ID 参数解析
// ============================================================================

// ParseID 解析路径参数 "id" 为 int64，非正数视为无效
// 返回 (id, true) 表示解析成功
// 返回 (0, false) 表示解析失败（已发送400响应，调用方应该 return）
//
// 使用示例:
//
//	id, ok := handler.ParseID(c, "酒店")
//	if !ok {
//	    return
//	}
func ParseID(c *gin.Context, resourceName string) (int64, bool) {
	return ParseParamID(c, "id", resourceName)
}

// ParseParamID 解析指定路径参数为 int64
// paramName: 路径参数名称（如 "id", "hotel_id", "room_id"）
// resourceName: 资源名称，用于错误消息（如 "酒店", "房间"）
func ParseParamID(c *gin.Context, paramName, resourceName string) (int64, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id < 1 {
		response.BadRequest(c, "无效的"+resourceName+"ID")
		return 0, false
	}
	return id, true
}

// ============================================================================
// 时间解析辅助
// ============================================================================

// DateFormat 日期格式
const DateFormat = "2006-01-02"

// ParseDate 解析日期字符串 (YYYY-MM-DD)
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}

// BindDate 解析请求体里的日期字符串，失败时发送400响应
// 返回 (t, true) 表示解析成功
// 返回 (zero, false) 表示解析失败（已发送响应，调用方应该 return）
func BindDate(c *gin.Context, value, fieldName string) (time.Time, bool) {
	t, err := ParseDate(value)
	if err != nil {
		response.BadRequest(c, fieldName+" 日期格式错误，应为 YYYY-MM-DD")
		return time.Time{}, false
	}
	return t, true
}
