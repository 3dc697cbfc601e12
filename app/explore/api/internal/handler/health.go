// ============================================================================
// 健康检查与服务信息
// ============================================================================

package handler

import (
	"net/http"
	"runtime"
	"time"

	"activity-discovery/app/explore/api/internal/svc"
	"activity-discovery/common/response"
)

var startTime = time.Now()

// HealthHandler 健康检查接口
// GET /health
func HealthHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, map[string]interface{}{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
			"uptime":    time.Since(startTime).String(),
		})
	}
}

// IndexHandler 服务信息接口
// GET /
func IndexHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, map[string]interface{}{
			"service":    svcCtx.Config.Name,
			"version":    "1.0.0",
			"go_version": runtime.Version(),
			"events":     svcCtx.Config.Events.Backend,
			"endpoints": map[string]string{
				"health":     "GET /health",
				"state":      "GET " + apiPrefix + "/state",
				"activities": apiPrefix + "/activities/*",
				"navigation": apiPrefix + "/navigation/*",
				"profile":    apiPrefix + "/profile/*",
			},
		})
	}
}
