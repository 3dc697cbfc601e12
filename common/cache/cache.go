// Package cache 提供派生数据缓存的 Key 与 TTL 工具
//
// 设计原则：
//   - Key 命名规范：{业务}:{模块}:{版本}:{条件}，如 explore:visible:12:"运动"|"篮球"|""
//   - Key 中带数据版本号，数据变化后旧 Key 自然失效
//   - 随机 TTL 防止同一时刻大量过期
//   - 与 go-zero collection.Cache 配合使用
package cache

import (
	"fmt"
	"strconv"
	"time"

	"github.com/zeromicro/go-zero/core/mathx"
)

// ==================== 默认配置 ====================

const (
	// DefaultTTL 默认缓存过期时间（1 分钟）
	DefaultTTL = time.Minute

	// DefaultLimit 默认缓存条目上限
	DefaultLimit = 128

	// DefaultJitter 默认 TTL 抖动系数（±10%）
	DefaultJitter = 0.1
)

// unstable 随机数生成器，用于 TTL 抖动
var unstable = mathx.NewUnstable(DefaultJitter)

// ==================== TTL 工具函数 ====================

// RandomTTL 生成带抖动的 TTL
//
// 示例：
//
//	RandomTTL(time.Minute) => 54s ~ 66s
func RandomTTL(base time.Duration) time.Duration {
	if base <= 0 {
		base = DefaultTTL
	}
	return time.Duration(unstable.AroundDuration(base))
}

// ==================== Key 生成函数 ====================

// VisibleKey 可见活动列表缓存 Key
//
// 格式：explore:visible:{version}:"{category}"|"{sub}"|"{query}"
// 用途：同一数据版本下相同筛选条件复用结果
// 各条件用 strconv.Quote 转义，条件中含 "|" 或引号也不会与其他条件拼出相同 Key
func VisibleKey(version uint64, category, sub, query string) string {
	return fmt.Sprintf("explore:visible:%d:%s|%s|%s", version,
		strconv.Quote(category), strconv.Quote(sub), strconv.Quote(query))
}

// StatsKey 分类统计缓存 Key
//
// 格式：explore:stats:{version}
func StatsKey(version uint64) string {
	return fmt.Sprintf("explore:stats:%d", version)
}

// RateLimitKey 单 IP 限流器缓存 Key
//
// 格式：explore:ratelimit:{ip}
func RateLimitKey(ip string) string {
	return "explore:ratelimit:" + ip
}
