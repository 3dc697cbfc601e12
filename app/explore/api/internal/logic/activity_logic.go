package logic

import (
	"context"

	"activity-discovery/app/explore/api/internal/metrics"
	"activity-discovery/app/explore/api/internal/svc"
	"activity-discovery/app/explore/api/internal/types"
	"activity-discovery/app/explore/model"
	"activity-discovery/app/explore/state"
	"activity-discovery/common/ctxdata"

	"github.com/zeromicro/go-zero/core/logx"
)

// ActivityLogic 活动相关逻辑
type ActivityLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewActivityLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ActivityLogic {
	return &ActivityLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// ListActivities 活动列表
func (l *ActivityLogic) ListActivities(req *types.ListActivitiesReq) (*types.ListActivitiesResp, error) {
	var list []state.ActivityView
	if req.Category == "" && req.SubCategory == "" && req.Query == "" {
		// 使用当前导航状态
		list = l.svcCtx.State.VisibleActivities()
	} else {
		list = l.svcCtx.State.Search(state.Filter{
			Category:    req.Category,
			SubCategory: req.SubCategory,
			Query:       req.Query,
		})
	}
	return &types.ListActivitiesResp{List: list, Total: len(list)}, nil
}

// GetActivity 活动详情
func (l *ActivityLogic) GetActivity(req *types.ActivityIDReq) (*state.ActivityView, error) {
	v, err := l.svcCtx.State.Activity(req.ID)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// CreateActivity 发起活动
func (l *ActivityLogic) CreateActivity(req *types.CreateActivityReq) (*types.CreateActivityResp, error) {
	// 1. 转换为草稿，校验在状态容器内完成
	draft := model.Draft{
		Title:           req.Title,
		Category:        model.Category(req.Category),
		SubCategory:     req.SubCategory,
		Time:            req.Time,
		Location:        req.Location,
		Description:     req.Description,
		MaxParticipants: req.MaxParticipants,
	}

	// 2. 提交意图
	res, err := dispatch(l.ctx, l.svcCtx, state.CreateActivity{Draft: draft})
	if err != nil {
		return nil, err
	}

	// 3. 返回新活动
	v, err := l.svcCtx.State.Activity(res.ActivityID)
	if err != nil {
		return nil, err
	}
	metrics.ActivitiesGauge.Inc()

	l.Infof("[Activity] 发起活动: id=%s, category=%s, sub=%s", v.ID, v.Category, v.SubCategory)
	return &types.CreateActivityResp{Result: res, Activity: v}, nil
}

// JoinActivity 加入活动
// 满员或重复加入返回成功，由 outcome 区分
func (l *ActivityLogic) JoinActivity(req *types.JoinActivityReq) (*types.JoinActivityResp, error) {
	pid := req.ParticipantID
	if pid == "" {
		pid = ctxdata.GetParticipantIDFromCtx(l.ctx)
	}

	res, err := dispatch(l.ctx, l.svcCtx, state.JoinActivity{ActivityID: req.ID, ParticipantID: pid})
	if err != nil {
		return nil, err
	}
	if res.Outcome != string(model.JoinJoined) {
		metrics.JoinRejectedTotal.WithLabelValues(res.Outcome).Inc()
		l.Infof("[Activity] 加入未生效: id=%s, participant=%s, outcome=%s", req.ID, pid, res.Outcome)
	}

	v, err := l.svcCtx.State.Activity(req.ID)
	if err != nil {
		return nil, err
	}
	return &types.JoinActivityResp{Result: res, Activity: v}, nil
}

// ToggleFavorite 收藏/取消收藏
func (l *ActivityLogic) ToggleFavorite(req *types.ActivityIDReq) (*types.IntentResp, error) {
	res, err := dispatch(l.ctx, l.svcCtx, state.ToggleFavorite{ActivityID: req.ID})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// OpenDetail 打开活动详情
func (l *ActivityLogic) OpenDetail(req *types.ActivityIDReq) (*types.IntentResp, error) {
	res, err := dispatch(l.ctx, l.svcCtx, state.OpenDetail{ActivityID: req.ID})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// CloseDetail 关闭活动详情
func (l *ActivityLogic) CloseDetail() (*types.IntentResp, error) {
	res, err := dispatch(l.ctx, l.svcCtx, state.CloseDetail{})
	if err != nil {
		return nil, err
	}
	return &res, nil
}
