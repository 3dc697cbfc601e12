package middleware

import (
	"net/http"
	"strings"
)

var (
	defaultAllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	defaultAllowHeaders = []string{"Content-Type", "X-Request-ID", "X-Trace-ID", "X-Participant-ID"}
)

// CorsMiddleware CORS 跨域中间件
type CorsMiddleware struct {
	allowOrigins []string
	allowMethods []string
	allowHeaders []string
}

// NewCorsMiddleware 创建 CORS 中间件
// 未配置时允许所有来源，方法和请求头使用默认值
func NewCorsMiddleware(origins, methods, headers []string) *CorsMiddleware {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	if len(methods) == 0 {
		methods = defaultAllowMethods
	}
	if len(headers) == 0 {
		headers = defaultAllowHeaders
	}
	return &CorsMiddleware{
		allowOrigins: origins,
		allowMethods: methods,
		allowHeaders: headers,
	}
}

// Handle 处理 CORS
func (m *CorsMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if origin != "" && m.isOriginAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
		}

		w.Header().Set("Access-Control-Allow-Methods", strings.Join(m.allowMethods, ", "))
		w.Header().Set("Access-Control-Allow-Headers", strings.Join(m.allowHeaders, ", "))
		w.Header().Set("Access-Control-Max-Age", "3600")

		// 预检请求直接返回
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	}
}

// isOriginAllowed 检查来源是否被允许
func (m *CorsMiddleware) isOriginAllowed(origin string) bool {
	for _, allowed := range m.allowOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}
