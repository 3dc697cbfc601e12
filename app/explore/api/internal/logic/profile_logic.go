package logic

import (
	"context"

	"activity-discovery/app/explore/api/internal/svc"
	"activity-discovery/app/explore/api/internal/types"
	"activity-discovery/app/explore/state"

	"github.com/zeromicro/go-zero/core/logx"
)

// ProfileLogic 个人资料
type ProfileLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewProfileLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ProfileLogic {
	return &ProfileLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// GetProfile 个人中心视图
func (l *ProfileLogic) GetProfile() (*state.ProfileView, error) {
	v, err := l.svcCtx.State.ProfileView()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// 修改后返回最新资料
func (l *ProfileLogic) apply(intent state.Intent) (*state.ProfileView, error) {
	if _, err := dispatch(l.ctx, l.svcCtx, intent); err != nil {
		return nil, err
	}
	return l.GetProfile()
}

// UpdateField 修改资料字段
func (l *ProfileLogic) UpdateField(req *types.UpdateProfileFieldReq) (*state.ProfileView, error) {
	return l.apply(state.UpdateProfileField{Field: req.Field, Value: req.Value})
}

// AddHobby 添加爱好
func (l *ProfileLogic) AddHobby(req *types.AddHobbyReq) (*state.ProfileView, error) {
	return l.apply(state.AddHobby{Tag: req.Tag})
}

// RemoveHobby 删除爱好
func (l *ProfileLogic) RemoveHobby(req *types.RemoveHobbyReq) (*state.ProfileView, error) {
	return l.apply(state.RemoveHobby{Tag: req.Tag})
}

// ReplaceAvatar 替换头像
func (l *ProfileLogic) ReplaceAvatar(req *types.ReplaceAvatarReq) (*state.ProfileView, error) {
	return l.apply(state.ReplaceAvatar{Avatar: req.Avatar})
}
