package config

import (
	"time"

	"activity-discovery/common/messaging"

	"github.com/zeromicro/go-zero/rest"
)

// Config 探索服务配置
type Config struct {
	rest.RestConf

	// 初始数据
	Seed SeedConfig

	// 领域事件
	Events messaging.Config

	// 派生数据缓存
	FilterCache FilterCacheConfig

	// 最近事件流
	EventFeed EventFeedConfig

	// CORS 跨域配置
	Cors CorsConfig

	// 限流配置
	RateLimit RateLimitConfig
}

// SeedConfig 初始数据配置
type SeedConfig struct {
	CurrentUserID string `json:",default=1"`
	Enabled       bool   `json:",default=true"` // 关闭时活动列表为空
}

// FilterCacheConfig 派生数据缓存配置
type FilterCacheConfig struct {
	Expire time.Duration `json:",default=1m"`
	Limit  int           `json:",default=128"`
}

// EventFeedConfig 最近事件流配置
type EventFeedConfig struct {
	Size int `json:",default=100"`
}

// CorsConfig CORS 跨域配置
type CorsConfig struct {
	AllowOrigins []string `json:",optional"` // 为空时允许所有来源
	AllowMethods []string `json:",optional"`
	AllowHeaders []string `json:",optional"`
}

// RateLimitConfig 限流配置
type RateLimitConfig struct {
	Rate    int `json:",default=200"` // 全局每秒请求数
	Burst   int `json:",default=400"`
	IPRate  int `json:",default=20"` // 单 IP 每秒请求数
	IPBurst int `json:",default=40"`

	// 部署在可信反向代理之后时开启，按 X-Forwarded-For 识别客户端
	TrustProxy bool `json:",default=false"`
}
