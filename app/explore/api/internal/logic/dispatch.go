package logic

import (
	"context"

	"activity-discovery/app/explore/api/internal/metrics"
	"activity-discovery/app/explore/api/internal/svc"
	"activity-discovery/app/explore/state"
	"activity-discovery/common/errorx"
)

// dispatch 提交意图并记录指标
func dispatch(ctx context.Context, svcCtx *svc.ServiceContext, intent state.Intent) (state.Result, error) {
	res, err := svcCtx.State.Dispatch(ctx, intent)

	result := metrics.ResultOK
	switch {
	case err != nil:
		result = metrics.ResultRejected
		if errorx.FromError(err).Code == errorx.CodeInternalError {
			result = "error"
		}
	case !res.Changed:
		result = metrics.ResultNoop
	}
	metrics.IntentTotal.WithLabelValues(intent.Name(), result).Inc()

	return res, err
}
