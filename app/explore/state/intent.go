package state

import (
	"activity-discovery/app/explore/model"
	"activity-discovery/common/errorx"
	"activity-discovery/common/messaging"
	"activity-discovery/common/utils/validate"
)

// ==================== 意图 ====================
//
// 所有状态修改都通过 AppState.Dispatch 提交一个 Intent。
// Intent 为封闭接口，只能使用本包定义的类型。

// Intent 用户意图
type Intent interface {
	// Name 意图名称，用于日志和指标
	Name() string
	apply(s *AppState) (Result, []event, error)
}

// Result 意图处理结果
type Result struct {
	Intent     string     `json:"intent"`
	Changed    bool       `json:"changed"`
	Outcome    string     `json:"outcome,omitempty"`
	ActivityID string     `json:"activityId,omitempty"`
	Navigation Navigation `json:"navigation"`
}

// 收藏结果
const (
	OutcomeFavorited   = "favorited"
	OutcomeUnfavorited = "unfavorited"
)

type event struct {
	topic   string
	payload any
}

// ==================== 导航类 ====================

// SelectCategory 选择分类（或 "全部"）
type SelectCategory struct {
	Category string `json:"category"`
}

func (SelectCategory) Name() string { return "select_category" }

func (i SelectCategory) apply(s *AppState) (Result, []event, error) {
	if i.Category != model.FilterAll {
		if _, ok := model.ParseCategory(i.Category); !ok {
			return Result{}, nil, errorx.ErrUnknownCategory(i.Category)
		}
	}
	s.nav.SelectCategory(i.Category)
	return Result{Changed: true}, nil, nil
}

// SelectSubcategory 选择子分类（或 "全部"）
// 分类为 "全部" 时，子分类可以属于任意分类
type SelectSubcategory struct {
	SubCategory string `json:"subCategory"`
}

func (SelectSubcategory) Name() string { return "select_subcategory" }

func (i SelectSubcategory) apply(s *AppState) (Result, []event, error) {
	if i.SubCategory != model.FilterAll {
		var known bool
		if s.nav.Category == model.FilterAll {
			known = s.registry.HasAnywhere(i.SubCategory)
		} else {
			known = s.registry.Has(model.Category(s.nav.Category), i.SubCategory)
		}
		if !known {
			return Result{}, nil, errorx.ErrUnknownSubcategory(i.SubCategory)
		}
	}
	s.nav.SelectSubcategory(i.SubCategory)
	return Result{Changed: true}, nil, nil
}

// Back 返回上一屏
type Back struct{}

func (Back) Name() string { return "back" }

func (Back) apply(s *AppState) (Result, []event, error) {
	return Result{Changed: s.nav.Back()}, nil, nil
}

// GoHome 回到首页
type GoHome struct{}

func (GoHome) Name() string { return "go_home" }

func (GoHome) apply(s *AppState) (Result, []event, error) {
	s.nav.GoHome()
	return Result{Changed: true}, nil, nil
}

// SetSearchQuery 设置搜索词
type SetSearchQuery struct {
	Query string `json:"query"`
}

func (SetSearchQuery) Name() string { return "set_search_query" }

func (i SetSearchQuery) apply(s *AppState) (Result, []event, error) {
	changed := s.nav.SearchQuery != i.Query
	s.nav.SetSearchQuery(i.Query)
	return Result{Changed: changed}, nil, nil
}

// SetActiveTab 切换顶部标签页
type SetActiveTab struct {
	Tab string `json:"tab"`
}

func (SetActiveTab) Name() string { return "set_active_tab" }

func (i SetActiveTab) apply(s *AppState) (Result, []event, error) {
	tab, ok := ParseTab(i.Tab)
	if !ok {
		return Result{}, nil, errorx.ErrInvalidTab(i.Tab)
	}
	s.nav.SetTab(tab)
	return Result{Changed: true}, nil, nil
}

// SetProfileTab 切换个人中心子标签页
type SetProfileTab struct {
	Tab string `json:"tab"`
}

func (SetProfileTab) Name() string { return "set_profile_tab" }

func (i SetProfileTab) apply(s *AppState) (Result, []event, error) {
	tab, ok := ParseProfileTab(i.Tab)
	if !ok {
		return Result{}, nil, errorx.ErrInvalidTab(i.Tab)
	}
	changed := s.nav.ProfileTab != tab
	s.nav.SetProfileTab(tab)
	return Result{Changed: changed}, nil, nil
}

// OpenDetail 打开活动详情
type OpenDetail struct {
	ActivityID string `json:"activityId"`
}

func (OpenDetail) Name() string { return "open_detail" }

func (i OpenDetail) apply(s *AppState) (Result, []event, error) {
	if _, ok := s.store.Get(i.ActivityID); !ok {
		return Result{}, nil, errorx.ErrActivityNotFound(i.ActivityID)
	}
	s.nav.OpenDetail(i.ActivityID)
	return Result{Changed: true, ActivityID: i.ActivityID}, nil, nil
}

// CloseDetail 关闭活动详情
type CloseDetail struct{}

func (CloseDetail) Name() string { return "close_detail" }

func (CloseDetail) apply(s *AppState) (Result, []event, error) {
	changed := s.nav.DetailID != ""
	s.nav.CloseDetail()
	return Result{Changed: changed}, nil, nil
}

// ==================== 活动类 ====================

// JoinActivity 加入活动
// ParticipantID 为空时使用当前用户
type JoinActivity struct {
	ActivityID    string `json:"activityId"`
	ParticipantID string `json:"participantId,omitempty"`
}

func (JoinActivity) Name() string { return "join_activity" }

func (i JoinActivity) apply(s *AppState) (Result, []event, error) {
	pid := i.ParticipantID
	if pid == "" {
		pid = s.profile.UserID()
	}

	// 1. 参与者必须已登记，否则渲染时无法解析
	if _, ok := s.participants.Get(pid); !ok {
		return Result{}, nil, errorx.ErrParticipantNotFound(pid)
	}

	// 2. 加入（满员不是错误）
	outcome, err := s.store.Join(i.ActivityID, pid)
	if err != nil {
		return Result{}, nil, errorx.ErrActivityNotFound(i.ActivityID)
	}

	// 3. 在详情页加入后关闭详情
	if s.nav.DetailID == i.ActivityID {
		s.nav.CloseDetail()
	}

	res := Result{Changed: outcome.Accepted(), Outcome: string(outcome), ActivityID: i.ActivityID}
	if !outcome.Accepted() {
		return res, nil, nil
	}

	a, _ := s.store.Get(i.ActivityID)
	return res, []event{{
		topic: messaging.TopicActivityMemberJoined,
		payload: messaging.ActivityMemberJoinedEvent{
			ActivityID:       a.ID,
			UserID:           pid,
			ParticipantCount: len(a.ParticipantIDs),
			MaxParticipants:  a.MaxParticipants,
			JoinedAt:         s.now(),
		},
	}}, nil
}

// ToggleFavorite 收藏/取消收藏
// 任意非空ID均可切换，悬空ID在渲染时被过滤
type ToggleFavorite struct {
	ActivityID string `json:"activityId"`
}

func (ToggleFavorite) Name() string { return "toggle_favorite" }

func (i ToggleFavorite) apply(s *AppState) (Result, []event, error) {
	if i.ActivityID == "" {
		return Result{}, nil, errorx.ErrInvalidParams("活动ID不能为空")
	}
	favorited := s.favorites.Toggle(i.ActivityID)

	outcome := OutcomeUnfavorited
	if favorited {
		outcome = OutcomeFavorited
	}
	return Result{Changed: true, Outcome: outcome, ActivityID: i.ActivityID}, []event{{
		topic: messaging.TopicFavoriteToggled,
		payload: messaging.FavoriteToggledEvent{
			ActivityID: i.ActivityID,
			UserID:     s.profile.UserID(),
			Favorited:  favorited,
			ToggledAt:  s.now(),
		},
	}}, nil
}

// CreateActivity 发起活动
type CreateActivity struct {
	Draft model.Draft `json:"draft"`
}

func (CreateActivity) Name() string { return "create_activity" }

func (i CreateActivity) apply(s *AppState) (Result, []event, error) {
	d := i.Draft

	// 1. 校验草稿
	if err := validate.Struct(d); err != nil {
		return Result{}, nil, errorx.ErrDraftInvalid(err.Error())
	}
	if !d.Category.Valid() {
		return Result{}, nil, errorx.ErrUnknownCategory(string(d.Category))
	}

	// 2. 存储前判断子分类是否已登记
	isNewSub := !s.registry.Has(d.Category, d.SubCategory)

	// 3. 创建
	now := s.now()
	a := s.store.Create(s.ids.Next(), d, s.profile.UserID(), now)

	events := []event{{
		topic: messaging.TopicActivityCreated,
		payload: messaging.ActivityCreatedEvent{
			ActivityID:      a.ID,
			CreatorID:       a.CreatorID,
			Category:        string(a.Category),
			SubCategory:     a.SubCategory,
			Title:           a.Title,
			MaxParticipants: a.MaxParticipants,
			CreatedAt:       now,
		},
	}}

	// 4. 登记新子分类
	if isNewSub && s.registry.AddSubcategory(d.Category, d.SubCategory) {
		events = append(events, event{
			topic: messaging.TopicSubcategoryAdded,
			payload: messaging.SubcategoryAddedEvent{
				Category:    string(d.Category),
				SubCategory: d.SubCategory,
				AddedAt:     now,
			},
		})
	}

	return Result{Changed: true, ActivityID: a.ID}, events, nil
}

// ==================== 个人资料类 ====================

// UpdateProfileField 修改资料字段（name / occupation / gender）
type UpdateProfileField struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func (UpdateProfileField) Name() string { return "update_profile_field" }

func (i UpdateProfileField) apply(s *AppState) (Result, []event, error) {
	if err := s.profile.UpdateField(ProfileField(i.Field), i.Value); err != nil {
		return Result{}, nil, err
	}
	return Result{Changed: true}, s.profileEvent(i.Field), nil
}

// AddHobby 添加爱好
type AddHobby struct {
	Tag string `json:"tag"`
}

func (AddHobby) Name() string { return "add_hobby" }

func (i AddHobby) apply(s *AppState) (Result, []event, error) {
	added, err := s.profile.AddHobby(i.Tag)
	if err != nil || !added {
		return Result{}, nil, err
	}
	return Result{Changed: true}, s.profileEvent(fieldHobbies), nil
}

// RemoveHobby 删除爱好
type RemoveHobby struct {
	Tag string `json:"tag"`
}

func (RemoveHobby) Name() string { return "remove_hobby" }

func (i RemoveHobby) apply(s *AppState) (Result, []event, error) {
	removed, err := s.profile.RemoveHobby(i.Tag)
	if err != nil || !removed {
		return Result{}, nil, err
	}
	return Result{Changed: true}, s.profileEvent(fieldHobbies), nil
}

// ReplaceAvatar 替换头像
type ReplaceAvatar struct {
	Avatar string `json:"avatar"`
}

func (ReplaceAvatar) Name() string { return "replace_avatar" }

func (i ReplaceAvatar) apply(s *AppState) (Result, []event, error) {
	if err := s.profile.ReplaceAvatar(i.Avatar); err != nil {
		return Result{}, nil, err
	}
	return Result{Changed: true}, s.profileEvent(fieldAvatar), nil
}

func (s *AppState) profileEvent(field string) []event {
	return []event{{
		topic: messaging.TopicProfileUpdated,
		payload: messaging.ProfileUpdatedEvent{
			UserID:    s.profile.UserID(),
			Field:     field,
			UpdatedAt: s.now(),
		},
	}}
}
