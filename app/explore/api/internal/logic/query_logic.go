package logic

import (
	"context"

	"activity-discovery/app/explore/api/internal/svc"
	"activity-discovery/app/explore/api/internal/types"
	"activity-discovery/app/explore/state"

	"github.com/zeromicro/go-zero/core/logx"
)

// QueryLogic 只读查询：完整状态、统计、分类、事件流
type QueryLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewQueryLogic(ctx context.Context, svcCtx *svc.ServiceContext) *QueryLogic {
	return &QueryLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Snapshot 完整渲染状态
func (l *QueryLogic) Snapshot() (*state.View, error) {
	v, err := l.svcCtx.State.Snapshot()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Stats 分类统计
func (l *QueryLogic) Stats() (*types.StatsResp, error) {
	return &types.StatsResp{Stats: l.svcCtx.State.Stats()}, nil
}

// Categories 分类登记表
func (l *QueryLogic) Categories() (*types.CategoriesResp, error) {
	return &types.CategoriesResp{Categories: l.svcCtx.State.Categories()}, nil
}

// RecentEvents 最近领域事件
func (l *QueryLogic) RecentEvents(req *types.RecentEventsReq) (*types.RecentEventsResp, error) {
	return &types.RecentEventsResp{List: l.svcCtx.Feed.Recent(req.Limit)}, nil
}
