package errorx

import (
	"fmt"

	"github.com/pkg/errors"
)

// BizError 业务错误，实现 error 接口
type BizError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error 实现 error 接口
func (e *BizError) Error() string {
	return fmt.Sprintf("BizError: code=%d, message=%s", e.Code, e.Message)
}

// GetCode 获取错误码
func (e *BizError) GetCode() int {
	return e.Code
}

// GetMessage 获取错误消息
func (e *BizError) GetMessage() string {
	return e.Message
}

// New 创建业务错误（使用默认消息）
func New(code int) *BizError {
	return &BizError{
		Code:    code,
		Message: GetMessage(code),
	}
}

// NewWithMessage 创建业务错误（自定义消息）
func NewWithMessage(code int, message string) *BizError {
	return &BizError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装错误，添加上下文信息
func Wrap(code int, err error) *BizError {
	if err == nil {
		return New(code)
	}
	return &BizError{
		Code:    code,
		Message: fmt.Sprintf("%s: %v", GetMessage(code), err),
	}
}

// Is 判断是否为特定错误码（支持 errors.Wrap 包装过的 BizError）
func Is(err error, code int) bool {
	if err == nil {
		return false
	}
	var bizErr *BizError
	if errors.As(err, &bizErr) {
		return bizErr.Code == code
	}
	return false
}

// FromError 从 error 转换为 BizError
// 支持以下错误类型：
//  1. *BizError（含 errors.Wrap 包装）：直接返回
//  2. 其他错误：返回内部错误（隐藏细节）
func FromError(err error) *BizError {
	if err == nil {
		return nil
	}

	// 获取原始错误（支持 errors.Wrap 包装的错误）
	if bizErr, ok := errors.Cause(err).(*BizError); ok {
		return bizErr
	}
	var bizErr *BizError
	if errors.As(err, &bizErr) {
		return bizErr
	}

	return &BizError{
		Code:    CodeInternalError,
		Message: "内部服务器错误",
	}
}

// ============ 常用错误快捷方法 ============

// ErrInternalError 内部错误
func ErrInternalError() *BizError {
	return New(CodeInternalError)
}

// ErrInvalidParams 参数错误
func ErrInvalidParams(msg string) *BizError {
	if msg == "" {
		return New(CodeInvalidParams)
	}
	return NewWithMessage(CodeInvalidParams, msg)
}

// ErrNotFound 资源不存在
func ErrNotFound() *BizError {
	return New(CodeNotFound)
}

// ============ 活动探索相关错误 ============

// ErrActivityNotFound 活动不存在
func ErrActivityNotFound(id string) *BizError {
	return NewWithMessage(CodeActivityNotFound, fmt.Sprintf("活动不存在: %s", id))
}

// ErrUnknownCategory 分类不存在
func ErrUnknownCategory(name string) *BizError {
	return NewWithMessage(CodeUnknownCategory, fmt.Sprintf("分类不存在: %s", name))
}

// ErrUnknownSubcategory 子分类不存在
func ErrUnknownSubcategory(name string) *BizError {
	return NewWithMessage(CodeUnknownSubcategory, fmt.Sprintf("子分类不存在: %s", name))
}

// ErrDraftInvalid 活动草稿校验失败
func ErrDraftInvalid(msg string) *BizError {
	if msg == "" {
		return New(CodeDraftInvalid)
	}
	return NewWithMessage(CodeDraftInvalid, msg)
}

// ErrParticipantNotFound 参与者不存在
func ErrParticipantNotFound(id string) *BizError {
	return NewWithMessage(CodeParticipantNotFound, fmt.Sprintf("参与者不存在: %s", id))
}

// ErrInvalidTab 无效的标签页
func ErrInvalidTab(tab string) *BizError {
	return NewWithMessage(CodeInvalidTab, fmt.Sprintf("无效的标签页: %s", tab))
}

// ErrInvalidProfileField 无效的资料字段
func ErrInvalidProfileField(field string) *BizError {
	return NewWithMessage(CodeInvalidProfileField, fmt.Sprintf("无效的资料字段: %s", field))
}

// ErrUnknownIntent 无法识别的操作
func ErrUnknownIntent(name string) *BizError {
	return NewWithMessage(CodeUnknownIntent, fmt.Sprintf("无法识别的操作: %s", name))
}
