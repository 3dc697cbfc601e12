package messaging

import (
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 包级注册，避免多个 Client 重复注册同名指标
var (
	processTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "messaging",
			Name:      "process_total",
			Help:      "Total number of processed messages",
		},
		[]string{"service", "topic", "status"},
	)

	processDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "messaging",
			Name:      "process_duration_seconds",
			Help:      "Message process duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "topic"},
	)

	messageSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "messaging",
			Name:      "message_size_bytes",
			Help:      "Message payload size in bytes",
			Buckets:   prometheus.ExponentialBuckets(64, 4, 6),
		},
		[]string{"service", "topic"},
	)
)

// MetricsMiddleware 收集消息处理指标
func MetricsMiddleware(serviceName string) message.HandlerMiddleware {
	return func(h message.HandlerFunc) message.HandlerFunc {
		return func(msg *message.Message) ([]*message.Message, error) {
			topic := message.SubscribeTopicFromCtx(msg.Context())
			messageSize.WithLabelValues(serviceName, topic).Observe(float64(len(msg.Payload)))

			start := time.Now()
			msgs, err := h(msg)
			processDuration.WithLabelValues(serviceName, topic).Observe(time.Since(start).Seconds())

			status := "success"
			if err != nil {
				status = "error"
			}
			processTotal.WithLabelValues(serviceName, topic, status).Inc()

			return msgs, err
		}
	}
}
