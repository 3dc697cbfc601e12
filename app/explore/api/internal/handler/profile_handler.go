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

// 个人中心
func GetProfileHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewProfileLogic(r.Context(), svcCtx)
		resp, err := l.GetProfile()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			response.SuccessCtx(r.Context(), w, resp)
		}
	}
}

// 修改资料字段
func UpdateProfileFieldHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.UpdateProfileFieldReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, errorx.ErrInvalidParams(err.Error()))
			return
		}

		l := logic.NewProfileLogic(r.Context(), svcCtx)
		resp, err := l.UpdateField(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			response.SuccessCtx(r.Context(), w, resp)
		}
	}
}

// 添加爱好
func AddHobbyHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.AddHobbyReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, errorx.ErrInvalidParams(err.Error()))
			return
		}

		l := logic.NewProfileLogic(r.Context(), svcCtx)
		resp, err := l.AddHobby(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			response.SuccessCtx(r.Context(), w, resp)
		}
	}
}

// 删除爱好
func RemoveHobbyHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.RemoveHobbyReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, errorx.ErrInvalidParams(err.Error()))
			return
		}

		l := logic.NewProfileLogic(r.Context(), svcCtx)
		resp, err := l.RemoveHobby(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			response.SuccessCtx(r.Context(), w, resp)
		}
	}
}

// 替换头像
func ReplaceAvatarHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ReplaceAvatarReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, errorx.ErrInvalidParams(err.Error()))
			return
		}

		l := logic.NewProfileLogic(r.Context(), svcCtx)
		resp, err := l.ReplaceAvatar(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			response.SuccessCtx(r.Context(), w, resp)
		}
	}
}
