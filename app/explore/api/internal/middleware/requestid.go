package middleware

import (
	"net/http"

	"activity-discovery/common/ctxdata"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"
)

// RequestIDMiddleware 请求ID中间件
// 为每个请求生成唯一ID，并把请求头中的参与者ID注入上下文
type RequestIDMiddleware struct{}

// NewRequestIDMiddleware 创建请求ID中间件
func NewRequestIDMiddleware() *RequestIDMiddleware {
	return &RequestIDMiddleware{}
}

// Handle 处理请求ID
func (m *RequestIDMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// 优先从请求头获取，支持上游传递
		requestID := r.Header.Get(ctxdata.HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		traceID := r.Header.Get(ctxdata.HeaderTraceID)
		if traceID == "" {
			traceID = requestID
		}

		ctx := r.Context()
		ctx = ctxdata.WithRequestID(ctx, requestID)
		ctx = ctxdata.WithTraceID(ctx, traceID)
		if pid := r.Header.Get(ctxdata.HeaderParticipantID); pid != "" {
			ctx = ctxdata.WithParticipantID(ctx, pid)
		}
		ctx = logx.ContextWithFields(ctx, logx.Field("request_id", requestID))

		w.Header().Set(ctxdata.HeaderRequestID, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}
