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

// 选择分类
func SelectCategoryHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.SelectCategoryReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, errorx.ErrInvalidParams(err.Error()))
			return
		}

		l := logic.NewNavigationLogic(r.Context(), svcCtx)
		resp, err := l.SelectCategory(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			response.SuccessCtx(r.Context(), w, resp)
		}
	}
}

// 选择子分类
func SelectSubcategoryHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.SelectSubcategoryReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, errorx.ErrInvalidParams(err.Error()))
			return
		}

		l := logic.NewNavigationLogic(r.Context(), svcCtx)
		resp, err := l.SelectSubcategory(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			response.SuccessCtx(r.Context(), w, resp)
		}
	}
}

// 返回上一屏
func BackHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewNavigationLogic(r.Context(), svcCtx)
		resp, err := l.Back()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			response.SuccessCtx(r.Context(), w, resp)
		}
	}
}

// 回到首页
func GoHomeHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewNavigationLogic(r.Context(), svcCtx)
		resp, err := l.GoHome()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			response.SuccessCtx(r.Context(), w, resp)
		}
	}
}

// 切换顶部标签页
func SetActiveTabHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.SetTabReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, errorx.ErrInvalidParams(err.Error()))
			return
		}

		l := logic.NewNavigationLogic(r.Context(), svcCtx)
		resp, err := l.SetActiveTab(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			response.SuccessCtx(r.Context(), w, resp)
		}
	}
}

// 切换个人中心标签页
func SetProfileTabHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.SetTabReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, errorx.ErrInvalidParams(err.Error()))
			return
		}

		l := logic.NewNavigationLogic(r.Context(), svcCtx)
		resp, err := l.SetProfileTab(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			response.SuccessCtx(r.Context(), w, resp)
		}
	}
}

// 设置搜索词
func SetSearchQueryHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.SearchReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, errorx.ErrInvalidParams(err.Error()))
			return
		}

		l := logic.NewNavigationLogic(r.Context(), svcCtx)
		resp, err := l.SetSearchQuery(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			response.SuccessCtx(r.Context(), w, resp)
		}
	}
}
