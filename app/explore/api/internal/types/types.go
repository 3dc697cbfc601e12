// 探索服务请求/响应定义

package types

import (
	"activity-discovery/app/explore/model"
	"activity-discovery/app/explore/state"
)

// ==================== 通用 ====================

// ActivityIDReq 路径中的活动ID
type ActivityIDReq struct {
	ID string `path:"id"`
}

// IntentResp 意图处理结果
type IntentResp = state.Result

// ==================== 活动 ====================

// ListActivitiesReq 活动列表
// 三个参数都未传时使用当前导航状态的筛选条件
type ListActivitiesReq struct {
	Category    string `form:"category,optional"`
	SubCategory string `form:"subCategory,optional"`
	Query       string `form:"q,optional"`
}

// ListActivitiesResp 活动列表响应
type ListActivitiesResp struct {
	List  []state.ActivityView `json:"list"`
	Total int                  `json:"total"`
}

// CreateActivityReq 发起活动
// 字段均为 optional，由草稿校验统一给出错误信息
type CreateActivityReq struct {
	Title           string `json:"title,optional"`
	Category        string `json:"category,optional"`
	SubCategory     string `json:"subCategory,optional"`
	Time            string `json:"time,optional"`
	Location        string `json:"location,optional"`
	Description     string `json:"description,optional"`
	MaxParticipants int    `json:"maxParticipants,optional"`
}

// CreateActivityResp 发起活动响应
type CreateActivityResp struct {
	Result   state.Result       `json:"result"`
	Activity state.ActivityView `json:"activity"`
}

// JoinActivityReq 加入活动
// participantId 为空时依次使用 X-Participant-ID 请求头、当前用户
type JoinActivityReq struct {
	ID            string `path:"id"`
	ParticipantID string `json:"participantId,optional"`
}

// JoinActivityResp 加入活动响应
// outcome: joined | full | already_joined
type JoinActivityResp struct {
	Result   state.Result       `json:"result"`
	Activity state.ActivityView `json:"activity"`
}

// ==================== 导航 ====================

// SelectCategoryReq 选择分类
type SelectCategoryReq struct {
	Category string `json:"category"`
}

// SelectSubcategoryReq 选择子分类
type SelectSubcategoryReq struct {
	SubCategory string `json:"subCategory"`
}

// SetTabReq 切换标签页
type SetTabReq struct {
	Tab string `json:"tab"`
}

// SearchReq 设置搜索词（空串表示清除）
type SearchReq struct {
	Query string `json:"query,optional"`
}

// ==================== 派生数据 ====================

// StatsResp 分类统计
type StatsResp struct {
	Stats map[string]int `json:"stats"`
}

// CategoriesResp 分类登记表
type CategoriesResp struct {
	Categories []model.CategoryEntry `json:"categories"`
}

// ==================== 个人资料 ====================

// UpdateProfileFieldReq 修改资料字段
type UpdateProfileFieldReq struct {
	Field string `json:"field"`
	Value string `json:"value,optional"`
}

// AddHobbyReq 添加爱好
type AddHobbyReq struct {
	Tag string `json:"tag,optional"`
}

// RemoveHobbyReq 删除爱好
type RemoveHobbyReq struct {
	Tag string `path:"tag"`
}

// ReplaceAvatarReq 替换头像
type ReplaceAvatarReq struct {
	Avatar string `json:"avatar"`
}

// ==================== 事件流 ====================

// RecentEventsReq 最近事件
type RecentEventsReq struct {
	Limit int `form:"limit,default=20,range=[1:100]"`
}

// EventEntry 事件流中的一条
type EventEntry struct {
	ID         string `json:"id"`
	Seq        uint64 `json:"seq"` // 发布序号，与意图处理顺序一致
	Topic      string `json:"topic"`
	Payload    any    `json:"payload"`
	ReceivedAt int64  `json:"receivedAt"`
}

// RecentEventsResp 最近事件响应
type RecentEventsResp struct {
	List []EventEntry `json:"list"`
}
