package ctxdata

import (
	"context"
)

// 定义上下文 key 类型，避免冲突
type contextKey string

const (
	// CtxKeyRequestID 请求ID
	CtxKeyRequestID contextKey = "requestId"
	// CtxKeyTraceID 追踪ID
	CtxKeyTraceID contextKey = "traceId"
	// CtxKeyParticipantID 发起请求的参与者（为空表示当前用户）
	CtxKeyParticipantID contextKey = "participantId"
)

// 请求头
const (
	HeaderRequestID     = "X-Request-ID"
	HeaderTraceID       = "X-Trace-ID"
	HeaderParticipantID = "X-Participant-ID"
)

// GetRequestIDFromCtx 从上下文中获取请求ID
func GetRequestIDFromCtx(ctx context.Context) string {
	return getString(ctx, CtxKeyRequestID)
}

// GetTraceIDFromCtx 从上下文中获取追踪ID
func GetTraceIDFromCtx(ctx context.Context) string {
	return getString(ctx, CtxKeyTraceID)
}

// GetParticipantIDFromCtx 从上下文中获取参与者ID
func GetParticipantIDFromCtx(ctx context.Context) string {
	return getString(ctx, CtxKeyParticipantID)
}

// WithRequestID 将请求ID注入上下文
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, CtxKeyRequestID, requestID)
}

// WithTraceID 将追踪ID注入上下文
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, CtxKeyTraceID, traceID)
}

// WithParticipantID 将参与者ID注入上下文
func WithParticipantID(ctx context.Context, participantID string) context.Context {
	return context.WithValue(ctx, CtxKeyParticipantID, participantID)
}

func getString(ctx context.Context, key contextKey) string {
	if ctx == nil {
		return ""
	}
	if val, ok := ctx.Value(key).(string); ok {
		return val
	}
	return ""
}
