package messaging

import (
	"time"
)

// 消息后端
const (
	BackendGoChannel = "gochannel" // 进程内，默认
	BackendRedis     = "redis"     // Redis Streams
)

// Config 消息中间件配置
type Config struct {
	// 后端类型：gochannel | redis
	Backend string `json:",default=gochannel,options=gochannel|redis"`

	// Redis 配置（Backend=redis 时生效）
	Redis RedisConfig `json:",optional"`

	// 服务名，同时作为 Redis Streams 的消费组
	ServiceName string `json:",default=explore-api"`

	// 中间件配置
	EnableMetrics bool `json:",default=true"`

	// 重试配置
	RetryConfig RetryConfig `json:",optional"`

	// gochannel 输出缓冲
	OutputBuffer int64 `json:",default=64"`
}

// RedisConfig Redis 连接配置
type RedisConfig struct {
	Addr     string `json:",default=localhost:6379"`
	Password string `json:",optional"`
	DB       int    `json:",default=0"`
}

// RetryConfig 重试配置
type RetryConfig struct {
	MaxRetries      int           `json:",default=3"`
	InitialInterval time.Duration `json:",default=100ms"`
	MaxInterval     time.Duration `json:",default=10s"`
	Multiplier      float64       `json:",default=2"` // 退避倍数
}

// DefaultConfig 返回默认配置（进程内 gochannel）
func DefaultConfig() Config {
	return Config{
		Backend: BackendGoChannel,
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		ServiceName:   "explore-api",
		EnableMetrics: true,
		RetryConfig: RetryConfig{
			MaxRetries:      3,
			InitialInterval: 100 * time.Millisecond,
			MaxInterval:     10 * time.Second,
			Multiplier:      2.0,
		},
		OutputBuffer: 64,
	}
}
