// ============================================================================
// 服务上下文（Service Context）
// ============================================================================
//
// 功能说明：
//   ServiceContext 负责初始化和管理：
//   - 配置信息
//   - 应用状态容器（所有意图的唯一写入口）
//   - 消息客户端、事件发布器、事件流消费者
//   - 中间件实例
//
// ============================================================================

package svc

import (
	"activity-discovery/app/explore/api/internal/config"
	"activity-discovery/app/explore/api/internal/metrics"
	"activity-discovery/app/explore/api/internal/middleware"
	"activity-discovery/app/explore/api/internal/mq"
	"activity-discovery/app/explore/model"
	"activity-discovery/app/explore/state"
	"activity-discovery/common/messaging"

	"github.com/pkg/errors"
)

// ServiceContext 探索服务上下文
type ServiceContext struct {
	Config config.Config

	// ==================== 状态 ====================
	State *state.AppState

	// ==================== 消息 ====================
	MsgClient *messaging.Client
	Producer  *mq.Producer
	Feed      *mq.FeedConsumer

	// ==================== 中间件 ====================
	CorsMiddleware      *middleware.CorsMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// NewServiceContext 创建服务上下文
func NewServiceContext(c config.Config) (*ServiceContext, error) {
	// 1. 消息客户端
	msgClient, err := messaging.NewClient(c.Events)
	if err != nil {
		return nil, errors.Wrap(err, "init messaging client")
	}
	producer := mq.NewProducer(msgClient)

	// 2. 应用状态
	opts := state.Options{
		CurrentUserID: c.Seed.CurrentUserID,
		Participants:  model.SeedParticipants(),
		Sink:          producer,
		CacheExpire:   c.FilterCache.Expire,
		CacheLimit:    c.FilterCache.Limit,
	}
	if c.Seed.Enabled {
		opts.Activities = model.SeedActivities()
	}
	appState, err := state.New(opts)
	if err != nil {
		_ = msgClient.Close()
		return nil, errors.Wrap(err, "init app state")
	}
	metrics.ActivitiesGauge.Set(float64(len(opts.Activities)))

	// 3. 中间件
	rateLimit, err := middleware.NewRateLimitMiddleware(
		float64(c.RateLimit.Rate),
		c.RateLimit.Burst,
		float64(c.RateLimit.IPRate),
		c.RateLimit.IPBurst,
		c.RateLimit.TrustProxy,
	)
	if err != nil {
		_ = msgClient.Close()
		return nil, errors.Wrap(err, "init rate limiter")
	}

	return &ServiceContext{
		Config:    c,
		State:     appState,
		MsgClient: msgClient,
		Producer:  producer,
		Feed:      mq.NewFeedConsumer(c.EventFeed.Size),

		CorsMiddleware: middleware.NewCorsMiddleware(
			c.Cors.AllowOrigins,
			c.Cors.AllowMethods,
			c.Cors.AllowHeaders,
		),
		RequestIDMiddleware: middleware.NewRequestIDMiddleware(),
		RateLimitMiddleware: rateLimit,
	}, nil
}

// Close 释放资源
func (s *ServiceContext) Close() error {
	return s.Producer.Close()
}
