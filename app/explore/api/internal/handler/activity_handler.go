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

// 活动列表
func ListActivitiesHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ListActivitiesReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, errorx.ErrInvalidParams(err.Error()))
			return
		}

		l := logic.NewActivityLogic(r.Context(), svcCtx)
		resp, err := l.ListActivities(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			response.SuccessCtx(r.Context(), w, resp)
		}
	}
}

// 活动详情
func GetActivityHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ActivityIDReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, errorx.ErrInvalidParams(err.Error()))
			return
		}

		l := logic.NewActivityLogic(r.Context(), svcCtx)
		resp, err := l.GetActivity(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			response.SuccessCtx(r.Context(), w, resp)
		}
	}
}

// 发起活动
func CreateActivityHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.CreateActivityReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, errorx.ErrInvalidParams(err.Error()))
			return
		}

		l := logic.NewActivityLogic(r.Context(), svcCtx)
		resp, err := l.CreateActivity(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			response.SuccessCtx(r.Context(), w, resp)
		}
	}
}

// 加入活动
func JoinActivityHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.JoinActivityReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, errorx.ErrInvalidParams(err.Error()))
			return
		}

		l := logic.NewActivityLogic(r.Context(), svcCtx)
		resp, err := l.JoinActivity(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			response.SuccessCtx(r.Context(), w, resp)
		}
	}
}

// 收藏/取消收藏
func ToggleFavoriteHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ActivityIDReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, errorx.ErrInvalidParams(err.Error()))
			return
		}

		l := logic.NewActivityLogic(r.Context(), svcCtx)
		resp, err := l.ToggleFavorite(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			response.SuccessCtx(r.Context(), w, resp)
		}
	}
}

// 打开活动详情
func OpenDetailHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ActivityIDReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, errorx.ErrInvalidParams(err.Error()))
			return
		}

		l := logic.NewActivityLogic(r.Context(), svcCtx)
		resp, err := l.OpenDetail(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			response.SuccessCtx(r.Context(), w, resp)
		}
	}
}

// 关闭活动详情
func CloseDetailHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewActivityLogic(r.Context(), svcCtx)
		resp, err := l.CloseDetail()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			response.SuccessCtx(r.Context(), w, resp)
		}
	}
}
