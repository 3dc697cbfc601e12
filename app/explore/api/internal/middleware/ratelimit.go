package middleware

import (
	"net"
	"net/http"
	"strings"
	"time"

	"activity-discovery/common/cache"
	"activity-discovery/common/errorx"
	"activity-discovery/common/response"

	"github.com/zeromicro/go-zero/core/collection"
	"golang.org/x/time/rate"
)

const (
	ipLimiterIdle = 10 * time.Minute
	ipLimiterMax  = 10000
)

// RateLimitMiddleware 令牌桶限流中间件（全局 + 单 IP）
//
// 单 IP 的限流器放在带过期和容量上限的缓存里，长时间不活跃的 IP 自动淘汰
type RateLimitMiddleware struct {
	global     *rate.Limiter
	ipRate     rate.Limit
	ipBurst    int
	trustProxy bool
	limiters   *collection.Cache
}

// NewRateLimitMiddleware 创建限流中间件
// globalRate/globalBurst: 全局每秒请求数和突发容量
// ipRate/ipBurst: 单 IP 每秒请求数和突发容量
// trustProxy: 部署在可信反向代理之后时才使用 X-Forwarded-For / X-Real-IP
func NewRateLimitMiddleware(globalRate float64, globalBurst int, ipRate float64, ipBurst int, trustProxy bool) (*RateLimitMiddleware, error) {
	limiters, err := collection.NewCache(ipLimiterIdle,
		collection.WithLimit(ipLimiterMax),
		collection.WithName("explore-ratelimit"),
	)
	if err != nil {
		return nil, err
	}
	return &RateLimitMiddleware{
		global:     rate.NewLimiter(rate.Limit(globalRate), globalBurst),
		ipRate:     rate.Limit(ipRate),
		ipBurst:    ipBurst,
		trustProxy: trustProxy,
		limiters:   limiters,
	}, nil
}

// Handle 中间件处理函数
func (m *RateLimitMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !m.global.Allow() || !m.limiterFor(clientIP(r, m.trustProxy)).Allow() {
			response.FailWithCode(w, errorx.CodeTooManyRequests)
			return
		}
		next(w, r)
	}
}

func (m *RateLimitMiddleware) limiterFor(ip string) *rate.Limiter {
	val, _ := m.limiters.Take(cache.RateLimitKey(ip), func() (any, error) {
		return rate.NewLimiter(m.ipRate, m.ipBurst), nil
	})
	return val.(*rate.Limiter)
}

// clientIP 获取客户端IP
// 不信任代理时只用连接地址，客户端无法通过伪造请求头绕过单 IP 限流
func clientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			return strings.TrimSpace(first)
		}
		if xri := r.Header.Get("X-Real-IP"); xri != "" {
			return xri
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
