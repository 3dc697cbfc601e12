package messaging

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/trace"
)

// 元数据 key
const (
	MetadataKeyTopic         = "topic"
	MetadataKeyTraceID       = "trace_id"
	MetadataKeySpanID        = "span_id"
	MetadataKeySourceService = "source_service"
	MetadataKeySequence      = "seq" // 发布端单调递增的事件序号
)

type serviceNameKey struct{}

// WithServiceName 将服务名称注入到上下文
func WithServiceName(ctx context.Context, serviceName string) context.Context {
	return context.WithValue(ctx, serviceNameKey{}, serviceName)
}

// ServiceNameFromContext 从上下文中获取服务名称
func ServiceNameFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	name, _ := ctx.Value(serviceNameKey{}).(string)
	return name
}

// InjectTraceID 发布消息时把 go-zero 的 trace_id/span_id 写入消息元数据
func InjectTraceID(ctx context.Context, msg *message.Message) {
	if ctx == nil {
		return
	}
	if traceID := trace.TraceIDFromContext(ctx); traceID != "" {
		msg.Metadata.Set(MetadataKeyTraceID, traceID)
	}
	if spanID := trace.SpanIDFromContext(ctx); spanID != "" {
		msg.Metadata.Set(MetadataKeySpanID, spanID)
	}
	if name := ServiceNameFromContext(ctx); name != "" {
		msg.Metadata.Set(MetadataKeySourceService, name)
	}
}

// TraceMiddleware 消费时把消息元数据中的追踪信息挂到 logx 上下文字段
func TraceMiddleware(serviceName string) message.HandlerMiddleware {
	return func(h message.HandlerFunc) message.HandlerFunc {
		return func(msg *message.Message) ([]*message.Message, error) {
			ctx := msg.Context()

			fields := []logx.LogField{logx.Field("msg_id", msg.UUID)}
			if traceID := msg.Metadata.Get(MetadataKeyTraceID); traceID != "" {
				fields = append(fields, logx.Field(MetadataKeyTraceID, traceID))
			}
			if src := msg.Metadata.Get(MetadataKeySourceService); src != "" {
				fields = append(fields, logx.Field(MetadataKeySourceService, src))
			}
			ctx = logx.ContextWithFields(ctx, fields...)
			if serviceName != "" {
				ctx = WithServiceName(ctx, serviceName)
			}

			msg.SetContext(ctx)
			return h(msg)
		}
	}
}
