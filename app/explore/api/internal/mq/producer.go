package mq

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"activity-discovery/common/messaging"

	"github.com/pkg/errors"
	"github.com/zeromicro/go-zero/core/breaker"
	"github.com/zeromicro/go-zero/core/logx"
)

const (
	publishTimeout = 3 * time.Second
	queueSize      = 256
)

type outbound struct {
	ctx     context.Context
	topic   string
	payload any
}

// Producer 探索服务领域事件发布器，实现 state.EventSink
//
// 事件先进入有界队列，由唯一的 worker 按入队顺序逐条发布，
// 每条事件带上递增序号，消费端据此还原意图处理顺序。
// nil 安全：Producer 为 nil 时所有方法静默返回
type Producer struct {
	client *messaging.Client
	brk    breaker.Breaker

	queue     chan outbound
	done      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once

	seq uint64 // 仅 worker 访问
}

// NewProducer 创建消息发布器并启动发布 worker
func NewProducer(client *messaging.Client) *Producer {
	if client == nil {
		return nil
	}
	p := &Producer{
		client:  client,
		brk:     breaker.NewBreaker(breaker.WithName("explore-events")),
		queue:   make(chan outbound, queueSize),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go p.run()
	return p
}

// Publish 事件入队，不阻塞意图处理
//   - 脱离请求生命周期，但保留追踪信息
//   - 队列满或已关闭时丢弃并记录日志，不影响主业务
func (p *Producer) Publish(ctx context.Context, topic string, payload any) {
	if p == nil {
		return
	}

	ev := outbound{ctx: context.WithoutCancel(ctx), topic: topic, payload: payload}
	select {
	case <-p.done:
		logx.WithContext(ctx).Errorf("[MQ-Producer] 已关闭，丢弃事件: topic=%s", topic)
	case p.queue <- ev:
	default:
		logx.WithContext(ctx).Errorf("[MQ-Producer] 队列已满，丢弃事件: topic=%s", topic)
	}
}

// run 唯一的发布 worker，关闭时先发完队列中剩余事件
func (p *Producer) run() {
	defer close(p.stopped)
	for {
		select {
		case ev := <-p.queue:
			p.send(ev)
		case <-p.done:
			for {
				select {
				case ev := <-p.queue:
					p.send(ev)
				default:
					return
				}
			}
		}
	}
}

// send 发布单条事件
//   - defer recover 防 panic 中断 worker
//   - 3 秒超时防止卡住后续事件
//   - 熔断打开时直接丢弃，后端恢复前不再等待超时
func (p *Producer) send(ev outbound) {
	defer func() {
		if r := recover(); r != nil {
			logx.Errorf("[MQ-Producer] panic recovered: topic=%s, err=%v", ev.topic, r)
		}
	}()

	p.seq++
	seq := p.seq

	data, err := json.Marshal(ev.payload)
	if err != nil {
		logx.Errorf("[MQ-Producer] 序列化失败: topic=%s, err=%v", ev.topic, err)
		return
	}

	ctx, cancel := context.WithTimeout(ev.ctx, publishTimeout)
	defer cancel()

	metadata := map[string]string{messaging.MetadataKeySequence: strconv.FormatUint(seq, 10)}
	err = p.brk.DoWithAcceptable(func() error {
		return p.client.PublishWithMetadata(ctx, ev.topic, data, metadata)
	}, acceptable)
	if errors.Is(err, breaker.ErrServiceUnavailable) {
		logx.WithContext(ctx).Slowf("[MQ-Producer] 熔断中，丢弃事件: topic=%s", ev.topic)
		return
	}
	if err != nil {
		logx.WithContext(ctx).Errorf("[MQ-Producer] 发布失败: topic=%s, err=%v", ev.topic, err)
		return
	}

	logx.WithContext(ctx).Debugf("[MQ-Producer] 发布成功: topic=%s, seq=%d, size=%d", ev.topic, seq, len(data))
}

// acceptable 不可重试的错误（参数问题）不计入熔断统计
func acceptable(err error) bool {
	return err == nil || !messaging.IsRetryable(err)
}

// Close 停止 worker（发完已入队事件）并关闭底层客户端
func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	p.closeOnce.Do(func() {
		close(p.done)
	})
	<-p.stopped
	return p.client.Close()
}
