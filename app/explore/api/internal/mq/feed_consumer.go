package mq

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"time"

	"activity-discovery/app/explore/api/internal/metrics"
	"activity-discovery/app/explore/api/internal/types"
	"activity-discovery/common/messaging"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/zeromicro/go-zero/core/collection"
	"github.com/zeromicro/go-zero/core/logx"
)

const defaultFeedSize = 100

// FeedConsumer 最近事件流消费者
// 订阅全部探索事件，保留最近 N 条供 /events 查询
type FeedConsumer struct {
	ring   *collection.Ring
	logger logx.Logger
}

// NewFeedConsumer 创建事件流消费者
func NewFeedConsumer(size int) *FeedConsumer {
	if size <= 0 {
		size = defaultFeedSize
	}
	return &FeedConsumer{
		ring:   collection.NewRing(size),
		logger: logx.WithContext(context.Background()),
	}
}

// Subscribe 订阅全部主题
func (c *FeedConsumer) Subscribe(msgClient *messaging.Client) {
	for _, topic := range messaging.AllTopics {
		msgClient.Subscribe(topic, "explore-feed-"+topic, c.handle)
	}
	c.logger.Infof("[MQ-Feed] 已订阅 %d 个主题", len(messaging.AllTopics))
}

func (c *FeedConsumer) handle(msg *message.Message) error {
	topic := msg.Metadata.Get(messaging.MetadataKeyTopic)
	if topic == "" {
		topic = message.SubscribeTopicFromCtx(msg.Context())
	}

	var payload map[string]any
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		logx.WithContext(msg.Context()).Errorf("[MQ-Feed] 解析事件失败: %v, payload: %s", err, string(msg.Payload))
		return messaging.NewNonRetryableError(fmt.Errorf("解析事件失败: %w", err))
	}

	seq, _ := strconv.ParseUint(msg.Metadata.Get(messaging.MetadataKeySequence), 10, 64)

	c.Record(types.EventEntry{
		ID:         msg.UUID,
		Seq:        seq,
		Topic:      topic,
		Payload:    payload,
		ReceivedAt: time.Now().UnixMilli(),
	})
	return nil
}

// Record 记录一条事件
func (c *FeedConsumer) Record(entry types.EventEntry) {
	c.ring.Add(entry)
	metrics.EventsConsumedTotal.WithLabelValues(entry.Topic).Inc()
}

// Recent 最近的事件（最新在前）
// 不同主题由不同 handler 并发消费，到达顺序不可靠，按发布序号排序
func (c *FeedConsumer) Recent(limit int) []types.EventEntry {
	items := c.ring.Take()
	entries := make([]types.EventEntry, 0, len(items))
	for _, item := range items {
		if e, ok := item.(types.EventEntry); ok {
			entries = append(entries, e)
		}
	}
	slices.Reverse(entries)
	slices.SortStableFunc(entries, func(a, b types.EventEntry) int {
		return cmp.Compare(b.Seq, a.Seq)
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
