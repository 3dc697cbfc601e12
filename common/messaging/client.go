package messaging

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/message"
	wmMiddleware "github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// Client Watermill 消息客户端
type Client struct {
	Publisher   message.Publisher
	Subscriber  message.Subscriber
	Router      *message.Router
	config      Config
	redisClient *redis.Client
}

// NewClient 创建新的消息客户端
func NewClient(config Config) (*Client, error) {
	logger := newWatermillLogger(config.ServiceName)

	c := &Client{config: config}

	// 1. 创建 Publisher / Subscriber
	switch config.Backend {
	case BackendRedis:
		if err := c.initRedis(logger); err != nil {
			return nil, err
		}
	case BackendGoChannel, "":
		ch := gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer: config.OutputBuffer,
		}, logger)
		c.Publisher = ch
		c.Subscriber = ch
	default:
		return nil, errors.Wrapf(ErrInvalidBackend, "backend=%s", config.Backend)
	}

	// 2. 创建 Router（用于中间件）
	router, err := message.NewRouter(message.RouterConfig{}, logger)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create router")
	}

	// 3. 应用中间件（按顺序）
	router.AddMiddleware(wmMiddleware.Recoverer)
	router.AddMiddleware(TraceMiddleware(config.ServiceName))
	if config.EnableMetrics {
		router.AddMiddleware(MetricsMiddleware(config.ServiceName))
	}
	if config.RetryConfig.MaxRetries > 0 {
		retryMiddleware := wmMiddleware.Retry{
			MaxRetries:      config.RetryConfig.MaxRetries,
			InitialInterval: config.RetryConfig.InitialInterval,
			MaxInterval:     config.RetryConfig.MaxInterval,
			Multiplier:      config.RetryConfig.Multiplier,
			Logger:          logger,
		}
		router.AddMiddleware(retryMiddleware.Middleware)
	}
	// 4. 不可重试错误直接确认，放在重试之后（内层）
	router.AddMiddleware(dropNonRetryable(logger))
	c.Router = router

	return c, nil
}

func (c *Client) initRedis(logger watermill.LoggerAdapter) (err error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     c.config.Redis.Addr,
		Password: c.config.Redis.Password,
		DB:       c.config.Redis.DB,
	})
	// 任一步失败都释放连接
	defer func() {
		if err != nil {
			_ = redisClient.Close()
		}
	}()

	if pingErr := redisClient.Ping(context.Background()).Err(); pingErr != nil {
		return errors.Wrap(ErrConnectionFailed, pingErr.Error())
	}

	publisher, err := redisstream.NewPublisher(
		redisstream.PublisherConfig{
			Client: redisClient,
		},
		logger,
	)
	if err != nil {
		return errors.Wrap(err, "failed to create publisher")
	}

	subscriber, err := redisstream.NewSubscriber(
		redisstream.SubscriberConfig{
			Client:        redisClient,
			ConsumerGroup: c.config.ServiceName,
		},
		logger,
	)
	if err != nil {
		_ = publisher.Close()
		return errors.Wrap(err, "failed to create subscriber")
	}

	c.Publisher = publisher
	c.Subscriber = subscriber
	c.redisClient = redisClient
	return nil
}

// Close 关闭客户端
func (c *Client) Close() error {
	if err := c.Router.Close(); err != nil {
		return errors.Wrap(err, "failed to close router")
	}
	if err := c.Publisher.Close(); err != nil {
		return errors.Wrap(err, "failed to close publisher")
	}
	if err := c.Subscriber.Close(); err != nil {
		return errors.Wrap(err, "failed to close subscriber")
	}
	if c.redisClient != nil {
		if err := c.redisClient.Close(); err != nil {
			return errors.Wrap(err, "failed to close redis client")
		}
	}
	return nil
}

// Publish 发布消息，并注入 trace_id
func (c *Client) Publish(ctx context.Context, topic string, payload []byte) error {
	return c.PublishWithMetadata(ctx, topic, payload, nil)
}

// PublishWithMetadata 发布消息并附带额外元数据（如事件序号）
func (c *Client) PublishWithMetadata(ctx context.Context, topic string, payload []byte, metadata map[string]string) error {
	if topic == "" {
		return ErrInvalidTopic
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	for k, v := range metadata {
		msg.Metadata.Set(k, v)
	}
	msg.Metadata.Set(MetadataKeyTopic, topic)
	InjectTraceID(ctx, msg)

	return c.Publisher.Publish(topic, msg)
}

// Subscribe 订阅消息
// 需要调用 Run 启动 Router 后才会开始消费
func (c *Client) Subscribe(topic string, handlerName string, handler message.NoPublishHandlerFunc) {
	c.Router.AddNoPublisherHandler(
		handlerName,
		topic,
		c.Subscriber,
		handler,
	)
}

// Run 启动 Router（阻塞）
func (c *Client) Run(ctx context.Context) error {
	return c.Router.Run(ctx)
}

// Running 返回一个 channel，当 Router 运行时关闭
func (c *Client) Running() chan struct{} {
	return c.Router.Running()
}
