package model

import (
	"iter"
	"time"

	"github.com/pkg/errors"
)

// ==================== 错误定义 ====================

var (
	ErrActivityNotFound = errors.New("活动不存在")
)

// ==================== 活动状态 ====================

// Status 活动状态
//
// 状态由人数推导，不单独存储：
//   - open: 未满员
//   - full: 已满员
//   - completed: 保留值，当前没有任何操作会进入该状态
type Status string

const (
	StatusOpen      Status = "open"
	StatusFull      Status = "full"
	StatusCompleted Status = "completed"
)

// StatusText 状态文本映射
var StatusText = map[Status]string{
	StatusOpen:      "报名中",
	StatusFull:      "人数已满",
	StatusCompleted: "已结束",
}

// ==================== Activity 活动模型 ====================

// Activity 活动
type Activity struct {
	ID          string   `json:"id"`
	Category    Category `json:"category"`
	SubCategory string   `json:"subCategory"`
	Title       string   `json:"title"`
	Time        string   `json:"time"` // 展示用字符串，不解析
	Location    string   `json:"location"`
	Description string   `json:"description"`

	// 参与者只保存ID，创建者位于下标 0
	CreatorID      string   `json:"creatorId"`
	ParticipantIDs []string `json:"participantIds"`

	MaxParticipants int   `json:"maxParticipants"`
	CreatedAt       int64 `json:"createdAt"`
}

// Status 根据人数推导状态
func (a *Activity) Status() Status {
	if a.IsFull() {
		return StatusFull
	}
	return StatusOpen
}

// IsFull 是否满员
func (a *Activity) IsFull() bool {
	return len(a.ParticipantIDs) >= a.MaxParticipants
}

// HasParticipant 判断是否已加入
func (a *Activity) HasParticipant(participantID string) bool {
	for _, id := range a.ParticipantIDs {
		if id == participantID {
			return true
		}
	}
	return false
}

// Draft 创建活动的表单输入
//
// 除 Description 外均必填，MaxParticipants 至少为 1。
// 校验在意图分发层完成，ActivityStore 直接信任传入的草稿。
type Draft struct {
	Title           string   `json:"title" validate:"notblank"`
	Category        Category `json:"category" validate:"required"`
	SubCategory     string   `json:"subCategory" validate:"notblank"`
	Time            string   `json:"time" validate:"notblank"`
	Location        string   `json:"location" validate:"notblank"`
	Description     string   `json:"description"`
	MaxParticipants int      `json:"maxParticipants" validate:"gte=1"`
}

// ==================== 报名结果 ====================

// JoinOutcome 加入活动的结果
type JoinOutcome string

const (
	JoinJoined        JoinOutcome = "joined"         // 加入成功
	JoinFull          JoinOutcome = "full"           // 已满员，未修改
	JoinAlreadyJoined JoinOutcome = "already_joined" // 已在列表中，未修改
)

// Accepted 是否实际加入
func (o JoinOutcome) Accepted() bool {
	return o == JoinJoined
}

// ==================== ActivityStore 活动存储 ====================
//
// 功能说明：
//   - 按创建时间倒序保存活动（新活动插到最前）
//   - 只有 Create / Join 两种修改，没有删除和编辑
//   - 每次修改递增 version，供派生数据做缓存失效
//
// 非并发安全，由 state.AppState 串行化访问

// ActivityStore 活动存储
type ActivityStore struct {
	list    []*Activity // 最新在前
	byID    map[string]*Activity
	version uint64
}

// NewActivityStore 创建空的活动存储
func NewActivityStore() *ActivityStore {
	return &ActivityStore{byID: make(map[string]*Activity)}
}

// Seed 加载初始活动（保持传入顺序）
func (s *ActivityStore) Seed(activities []Activity) {
	for i := range activities {
		a := activities[i]
		a.ParticipantIDs = append([]string(nil), a.ParticipantIDs...)
		s.list = append(s.list, &a)
		s.byID[a.ID] = &a
	}
	s.version++
}

// Create 创建活动并插入到最前
//
// 调用方负责：
//  1. 生成唯一 id
//  2. 校验 draft（必填项、人数上限、分类合法）
func (s *ActivityStore) Create(id string, draft Draft, creatorID string, now time.Time) *Activity {
	a := &Activity{
		ID:              id,
		Category:        draft.Category,
		SubCategory:     draft.SubCategory,
		Title:           draft.Title,
		Time:            draft.Time,
		Location:        draft.Location,
		Description:     draft.Description,
		CreatorID:       creatorID,
		ParticipantIDs:  []string{creatorID},
		MaxParticipants: draft.MaxParticipants,
		CreatedAt:       now.UnixMilli(),
	}

	s.list = append([]*Activity{a}, s.list...)
	s.byID[id] = a
	s.version++
	return a
}

// Join 加入活动
//
// 规则：
//  1. 活动不存在：返回 ErrActivityNotFound
//  2. 已在参与者列表中：JoinAlreadyJoined，不修改
//  3. 人数已满：JoinFull，不修改（不是错误）
//  4. 否则追加到列表末尾：JoinJoined
func (s *ActivityStore) Join(activityID, participantID string) (JoinOutcome, error) {
	a, ok := s.byID[activityID]
	if !ok {
		return "", ErrActivityNotFound
	}
	if a.HasParticipant(participantID) {
		return JoinAlreadyJoined, nil
	}
	if len(a.ParticipantIDs) >= a.MaxParticipants {
		return JoinFull, nil
	}

	a.ParticipantIDs = append(a.ParticipantIDs, participantID)
	s.version++
	return JoinJoined, nil
}

// Get 根据ID获取活动
func (s *ActivityStore) Get(id string) (*Activity, bool) {
	a, ok := s.byID[id]
	return a, ok
}

// All 按创建时间倒序遍历（只读）
func (s *ActivityStore) All() iter.Seq[*Activity] {
	return func(yield func(*Activity) bool) {
		for _, a := range s.list {
			if !yield(a) {
				return
			}
		}
	}
}

// Len 活动数量
func (s *ActivityStore) Len() int {
	return len(s.list)
}

// Version 数据版本号，任何修改都会递增
func (s *ActivityStore) Version() uint64 {
	return s.version
}
