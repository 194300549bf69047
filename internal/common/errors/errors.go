// Package errors 定义业务错误码和错误处理
package errors

import (
	"fmt"
)

// AppError 应用错误
type AppError struct {
	Code    int    `json:"code"`
	Entity  string `json:"entity,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 实现 errors.Unwrap
func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新的应用错误
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装错误
func Wrap(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// WithMessage 修改错误消息
func (e *AppError) WithMessage(message string) *AppError {
	return &AppError{
		Code:    e.Code,
		Entity:  e.Entity,
		Field:   e.Field,
		Message: message,
		Err:     e.Err,
	}
}

// WithError 添加原始错误
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Code:    e.Code,
		Entity:  e.Entity,
		Field:   e.Field,
		Message: e.Message,
		Err:     err,
	}
}

// 通用错误码 (1000-1999)
const (
	CodeUnknown       = 1000
	CodeInvalidParams = 1001
	CodeDatabaseError = 1004
)

// 业务错误类别码 (2000-2999)，实体信息由 Entity 字段区分
const (
	CodeNotFound            = 2000
	CodeAlreadyExists       = 2001
	CodeInvalidField        = 2002
	CodeReferencedNotFound  = 2003
	CodeReferentialConflict = 2004
)

// 实体种类
const (
	EntityClient       = "client"
	EntityHotel        = "hotel"
	EntityRoomType     = "room_type"
	EntityRoom         = "room"
	EntityBooking      = "booking"
	EntityPaymentType  = "payment_type"
	EntityStay         = "stay"
	EntityService      = "service"
	EntityServiceUsage = "service_usage"
	EntityFeedback     = "feedback"
)

// entityNames 实体中文名
var entityNames = map[string]string{
	EntityClient:       "客户",
	EntityHotel:        "酒店",
	EntityRoomType:     "房型",
	EntityRoom:         "房间",
	EntityBooking:      "预订",
	EntityPaymentType:  "支付方式",
	EntityStay:         "入住记录",
	EntityService:      "服务项目",
	EntityServiceUsage: "服务使用记录",
	EntityFeedback:     "评价",
}

// entityName 返回实体中文名，未登记的实体原样返回
func entityName(entity string) string {
	if name, ok := entityNames[entity]; ok {
		return name
	}
	return entity
}

// NotFound 目标记录不存在
func NotFound(entity string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Entity:  entity,
		Message: entityName(entity) + "不存在",
	}
}

// AlreadyExists 记录已存在（唯一性冲突）
func AlreadyExists(entity string) *AppError {
	return &AppError{
		Code:    CodeAlreadyExists,
		Entity:  entity,
		Message: entityName(entity) + "已存在",
	}
}

// InvalidField 字段校验失败
func InvalidField(entity, field, reason string) *AppError {
	return &AppError{
		Code:    CodeInvalidField,
		Entity:  entity,
		Field:   field,
		Message: reason,
	}
}

// ReferencedNotFound 引用的外键记录不存在
func ReferencedNotFound(entity string) *AppError {
	return &AppError{
		Code:    CodeReferencedNotFound,
		Entity:  entity,
		Message: "关联的" + entityName(entity) + "不存在",
	}
}

// ReferentialConflict 删除被其他记录引用的目标
func ReferentialConflict(entity string) *AppError {
	return &AppError{
		Code:    CodeReferentialConflict,
		Entity:  entity,
		Message: entityName(entity) + "仍被其他记录引用，无法删除",
	}
}

// 通用错误
var (
	ErrUnknown       = New(CodeUnknown, "未知错误")
	ErrInvalidParams = New(CodeInvalidParams, "参数错误")
	ErrDatabaseError = New(CodeDatabaseError, "数据库错误")
)

// 各实体常用错误
var (
	ErrClientNotFound       = NotFound(EntityClient)
	ErrClientExists         = AlreadyExists(EntityClient)
	ErrHotelNotFound        = NotFound(EntityHotel)
	ErrHotelExists          = AlreadyExists(EntityHotel)
	ErrRoomTypeNotFound     = NotFound(EntityRoomType)
	ErrRoomNotFound         = NotFound(EntityRoom)
	ErrRoomExists           = AlreadyExists(EntityRoom)
	ErrBookingNotFound      = NotFound(EntityBooking)
	ErrPaymentTypeNotFound  = NotFound(EntityPaymentType)
	ErrPaymentTypeExists    = AlreadyExists(EntityPaymentType)
	ErrStayNotFound         = NotFound(EntityStay)
	ErrServiceNotFound      = NotFound(EntityService)
	ErrServiceExists        = AlreadyExists(EntityService)
	ErrServiceUsageNotFound = NotFound(EntityServiceUsage)
	ErrFeedbackNotFound     = NotFound(EntityFeedback)
	ErrFeedbackExists       = AlreadyExists(EntityFeedback)
)

// IsAppError 判断是否为应用错误
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetAppError 获取应用错误
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return ErrUnknown.WithError(err)
}

// hasCode 判断错误是否属于指定类别码
func hasCode(err error, code int) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Code == code
}

// IsNotFound 判断是否为目标不存在错误
func IsNotFound(err error) bool {
	return hasCode(err, CodeNotFound)
}

// IsAlreadyExists 判断是否为唯一性冲突错误
func IsAlreadyExists(err error) bool {
	return hasCode(err, CodeAlreadyExists)
}

// IsInvalidField 判断是否为字段校验错误
func IsInvalidField(err error) bool {
	return hasCode(err, CodeInvalidField)
}

// IsReferencedNotFound 判断是否为外键引用不存在错误
func IsReferencedNotFound(err error) bool {
	return hasCode(err, CodeReferencedNotFound)
}

// IsReferentialConflict 判断是否为删除引用冲突错误
func IsReferentialConflict(err error) bool {
	return hasCode(err, CodeReferentialConflict)
}
