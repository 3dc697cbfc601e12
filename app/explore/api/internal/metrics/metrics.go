package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 意图处理结果
const (
	ResultOK       = "ok"
	ResultRejected = "rejected" // 业务错误
	ResultNoop     = "noop"     // 成功但状态未变化（满员、重复加入等）
)

var (
	// IntentTotal 意图处理计数
	IntentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "explore",
			Name:      "intent_total",
			Help:      "Total number of dispatched intents",
		},
		[]string{"intent", "result"},
	)

	// JoinRejectedTotal 加入被拒绝计数（满员 / 已加入）
	JoinRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "explore",
			Name:      "join_rejected_total",
			Help:      "Total number of join attempts that did not add a participant",
		},
		[]string{"outcome"},
	)

	// EventsConsumedTotal 事件流消费计数
	EventsConsumedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "explore",
			Name:      "events_consumed_total",
			Help:      "Total number of domain events recorded in the feed",
		},
		[]string{"topic"},
	)

	// ActivitiesGauge 当前活动数
	ActivitiesGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "explore",
			Name:      "activities",
			Help:      "Number of activities in the store",
		},
	)
)
