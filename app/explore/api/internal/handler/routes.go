// ============================================================================
// 路由注册
// ============================================================================
//
// 中间件执行顺序：
//   CORS -> RequestID -> RateLimit -> Handler
//
// 路由规范：
//   - 读操作 GET，返回渲染数据
//   - 每个写操作对应一个意图，返回意图处理结果
//
// ============================================================================

package handler

import (
	"net/http"

	"activity-discovery/app/explore/api/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

const apiPrefix = "/api/v1/explore"

// RegisterHandlers 注册所有路由
func RegisterHandlers(server *rest.Server, svcCtx *svc.ServiceContext) {
	// ==================== 全局中间件 ====================
	server.Use(svcCtx.CorsMiddleware.Handle)
	server.Use(svcCtx.RequestIDMiddleware.Handle)
	server.Use(svcCtx.RateLimitMiddleware.Handle)

	server.AddRoutes(PublicRoutes(svcCtx))
	server.AddRoutes(ExploreRoutes(svcCtx), rest.WithPrefix(apiPrefix))
}

// PublicRoutes 健康检查与服务信息
func PublicRoutes(svcCtx *svc.ServiceContext) []rest.Route {
	return []rest.Route{
		{Method: http.MethodGet, Path: "/health", Handler: HealthHandler(svcCtx)},
		{Method: http.MethodGet, Path: "/", Handler: IndexHandler(svcCtx)},
	}
}

// ExploreRoutes 探索业务路由（不含前缀）
func ExploreRoutes(svcCtx *svc.ServiceContext) []rest.Route {
	return []rest.Route{
		// ==================== 渲染数据 ====================
		{Method: http.MethodGet, Path: "/state", Handler: SnapshotHandler(svcCtx)},
		{Method: http.MethodGet, Path: "/stats", Handler: StatsHandler(svcCtx)},
		{Method: http.MethodGet, Path: "/categories", Handler: CategoriesHandler(svcCtx)},
		{Method: http.MethodGet, Path: "/events", Handler: RecentEventsHandler(svcCtx)},

		// ==================== 活动 ====================
		{Method: http.MethodGet, Path: "/activities", Handler: ListActivitiesHandler(svcCtx)},
		{Method: http.MethodPost, Path: "/activities", Handler: CreateActivityHandler(svcCtx)},
		{Method: http.MethodGet, Path: "/activities/:id", Handler: GetActivityHandler(svcCtx)},
		{Method: http.MethodPost, Path: "/activities/:id/join", Handler: JoinActivityHandler(svcCtx)},
		{Method: http.MethodPost, Path: "/activities/:id/favorite", Handler: ToggleFavoriteHandler(svcCtx)},
		{Method: http.MethodPost, Path: "/activities/:id/detail", Handler: OpenDetailHandler(svcCtx)},
		{Method: http.MethodDelete, Path: "/detail", Handler: CloseDetailHandler(svcCtx)},

		// ==================== 导航 ====================
		{Method: http.MethodPost, Path: "/navigation/category", Handler: SelectCategoryHandler(svcCtx)},
		{Method: http.MethodPost, Path: "/navigation/subcategory", Handler: SelectSubcategoryHandler(svcCtx)},
		{Method: http.MethodPost, Path: "/navigation/back", Handler: BackHandler(svcCtx)},
		{Method: http.MethodPost, Path: "/navigation/home", Handler: GoHomeHandler(svcCtx)},
		{Method: http.MethodPost, Path: "/navigation/tab", Handler: SetActiveTabHandler(svcCtx)},
		{Method: http.MethodPost, Path: "/navigation/profile-tab", Handler: SetProfileTabHandler(svcCtx)},
		{Method: http.MethodPut, Path: "/search", Handler: SetSearchQueryHandler(svcCtx)},

		// ==================== 个人资料 ====================
		{Method: http.MethodGet, Path: "/profile", Handler: GetProfileHandler(svcCtx)},
		{Method: http.MethodPut, Path: "/profile/field", Handler: UpdateProfileFieldHandler(svcCtx)},
		{Method: http.MethodPost, Path: "/profile/hobbies", Handler: AddHobbyHandler(svcCtx)},
		{Method: http.MethodDelete, Path: "/profile/hobbies/:tag", Handler: RemoveHobbyHandler(svcCtx)},
		{Method: http.MethodPut, Path: "/profile/avatar", Handler: ReplaceAvatarHandler(svcCtx)},
	}
}
