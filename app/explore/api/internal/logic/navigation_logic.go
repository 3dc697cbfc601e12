package logic

import (
	"context"

	"activity-discovery/app/explore/api/internal/svc"
	"activity-discovery/app/explore/api/internal/types"
	"activity-discovery/app/explore/state"

	"github.com/zeromicro/go-zero/core/logx"
)

// NavigationLogic 导航与搜索
type NavigationLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewNavigationLogic(ctx context.Context, svcCtx *svc.ServiceContext) *NavigationLogic {
	return &NavigationLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *NavigationLogic) submit(intent state.Intent) (*types.IntentResp, error) {
	res, err := dispatch(l.ctx, l.svcCtx, intent)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// SelectCategory 选择分类
func (l *NavigationLogic) SelectCategory(req *types.SelectCategoryReq) (*types.IntentResp, error) {
	return l.submit(state.SelectCategory{Category: req.Category})
}

// SelectSubcategory 选择子分类
func (l *NavigationLogic) SelectSubcategory(req *types.SelectSubcategoryReq) (*types.IntentResp, error) {
	return l.submit(state.SelectSubcategory{SubCategory: req.SubCategory})
}

// Back 返回
func (l *NavigationLogic) Back() (*types.IntentResp, error) {
	return l.submit(state.Back{})
}

// GoHome 回到首页
func (l *NavigationLogic) GoHome() (*types.IntentResp, error) {
	return l.submit(state.GoHome{})
}

// SetActiveTab 切换顶部标签页
func (l *NavigationLogic) SetActiveTab(req *types.SetTabReq) (*types.IntentResp, error) {
	return l.submit(state.SetActiveTab{Tab: req.Tab})
}

// SetProfileTab 切换个人中心标签页
func (l *NavigationLogic) SetProfileTab(req *types.SetTabReq) (*types.IntentResp, error) {
	return l.submit(state.SetProfileTab{Tab: req.Tab})
}

// SetSearchQuery 设置搜索词
func (l *NavigationLogic) SetSearchQuery(req *types.SearchReq) (*types.IntentResp, error) {
	return l.submit(state.SetSearchQuery{Query: req.Query})
}
