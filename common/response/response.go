package response

import (
	"context"
	"net/http"

	"activity-discovery/common/errorx"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"
)

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 成功响应
func Success(w http.ResponseWriter, data interface{}) {
	httpx.OkJson(w, &Response{
		Code:    errorx.CodeSuccess,
		Message: "success",
		Data:    data,
	})
}

// SuccessCtx 成功响应（带上下文，用于 handler 层）
func SuccessCtx(ctx context.Context, w http.ResponseWriter, data interface{}) {
	httpx.OkJsonCtx(ctx, w, &Response{
		Code:    errorx.CodeSuccess,
		Message: "success",
		Data:    data,
	})
}

// Fail 失败响应（使用 BizError）
func Fail(w http.ResponseWriter, err error) {
	bizErr := errorx.FromError(err)
	httpx.WriteJson(w, HttpStatus(bizErr.Code), &Response{
		Code:    bizErr.Code,
		Message: bizErr.Message,
	})
}

// FailWithCode 失败响应（指定错误码）
func FailWithCode(w http.ResponseWriter, code int) {
	httpx.WriteJson(w, HttpStatus(code), &Response{
		Code:    code,
		Message: errorx.GetMessage(code),
	})
}

// HttpStatus 根据业务错误码映射 HTTP 状态码
func HttpStatus(code int) int {
	switch code {
	case errorx.CodeSuccess:
		return http.StatusOK
	case errorx.CodeInvalidParams,
		errorx.CodeUnknownCategory,
		errorx.CodeUnknownSubcategory,
		errorx.CodeDraftInvalid,
		errorx.CodeInvalidTab,
		errorx.CodeInvalidProfileField,
		errorx.CodeUnknownIntent:
		return http.StatusBadRequest
	case errorx.CodeNotFound,
		errorx.CodeActivityNotFound,
		errorx.CodeParticipantNotFound:
		return http.StatusNotFound
	case errorx.CodeTooManyRequests:
		return http.StatusTooManyRequests
	case errorx.CodeServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// SetupGlobalErrorHandler 设置 httpx 全局错误处理器
// 必须在 server.Start() 之前调用，之后所有 httpx.ErrorCtx 都输出统一结构
func SetupGlobalErrorHandler() {
	httpx.SetErrorHandlerCtx(func(ctx context.Context, err error) (int, any) {
		bizErr := errorx.FromError(err)
		if bizErr.Code == errorx.CodeInternalError {
			logx.WithContext(ctx).Errorf("[Response] 内部错误: %+v", err)
		}
		return HttpStatus(bizErr.Code), &Response{
			Code:    bizErr.Code,
			Message: bizErr.Message,
		}
	})
}
