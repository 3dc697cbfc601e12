package handler

import (
	"net/http"

	"activity-discovery/app/explore/api/internal/logic"
	"activity-discovery/app/explore/api/internal/svc"
	"activity-discovery/app/explore/api/internal/types"
	"activity-discovery/common/errorx"
	"activity-discovery/common/response"

	"github.com/zeromicro/go-zero/rest/httpx"
)

// 完整渲染状态
func SnapshotHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewQueryLogic(r.Context(), svcCtx)
		resp, err := l.Snapshot()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			response.SuccessCtx(r.Context(), w, resp)
		}
	}
}

// 分类统计
func StatsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewQueryLogic(r.Context(), svcCtx)
		resp, err := l.Stats()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			response.SuccessCtx(r.Context(), w, resp)
		}
	}
}

// 分类登记表
func CategoriesHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewQueryLogic(r.Context(), svcCtx)
		resp, err := l.Categories()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			response.SuccessCtx(r.Context(), w, resp)
		}
	}
}

// 最近领域事件
func RecentEventsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.RecentEventsReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, errorx.ErrInvalidParams(err.Error()))
			return
		}

		l := logic.NewQueryLogic(r.Context(), svcCtx)
		resp, err := l.RecentEvents(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			response.SuccessCtx(r.Context(), w, resp)
		}
	}
}
