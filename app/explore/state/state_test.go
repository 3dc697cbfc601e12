package state

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"activity-discovery/app/explore/model"
	"activity-discovery/common/errorx"
	"activity-discovery/common/messaging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==================== 测试辅助 ====================

type recordingSink struct {
	mu     sync.Mutex
	topics []string
	events []any
}

func (r *recordingSink) Publish(_ context.Context, topic string, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.topics = append(r.topics, topic)
	r.events = append(r.events, payload)
}

func (r *recordingSink) Topics() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.topics...)
}

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestState(t *testing.T) (*AppState, *recordingSink) {
	t.Helper()
	sink := &recordingSink{}
	opts := DefaultOptions()
	opts.Clock = func() time.Time { return fixedNow }
	opts.Sink = sink
	s, err := New(opts)
	require.NoError(t, err)
	return s, sink
}

func dispatch(t *testing.T, s *AppState, intent Intent) Result {
	t.Helper()
	res, err := s.Dispatch(context.Background(), intent)
	require.NoError(t, err)
	return res
}

func validDraft(sub string) model.Draft {
	return model.Draft{
		Title:           "周日飞盘局",
		Category:        model.CategoryOutdoor,
		SubCategory:     sub,
		Time:            "2024-03-10 09:00",
		Location:        "世纪公园",
		MaxParticipants: 12,
	}
}

// ==================== 初始化 ====================

func TestNew_UnknownCurrentUser(t *testing.T) {
	opts := DefaultOptions()
	opts.CurrentUserID = "404"
	_, err := New(opts)
	assert.True(t, errorx.Is(err, errorx.CodeParticipantNotFound))
}

func TestSnapshot_Initial(t *testing.T) {
	s, _ := newTestState(t)
	v, err := s.Snapshot()
	require.NoError(t, err)

	assert.Equal(t, ScreenHome, v.Navigation.Screen)
	assert.Len(t, v.Activities, 7)
	assert.Equal(t, "小林", v.CurrentUser.Name)
	assert.Len(t, v.Categories, 5)
	assert.Empty(t, v.Favorites)
	assert.Nil(t, v.Detail)
	assert.Equal(t, 2, v.Profile.CreatedCount)
}

// ==================== 加入活动 ====================

func TestJoin_EndToEndCapacity(t *testing.T) {
	s, sink := newTestState(t)
	s.RegisterParticipant(model.Participant{ID: "5", Name: "小周", Gender: model.GenderMale})

	res := dispatch(t, s, JoinActivity{ActivityID: "a1", ParticipantID: "3"})
	assert.Equal(t, string(model.JoinJoined), res.Outcome)
	a1, err := s.Activity("a1")
	require.NoError(t, err)
	assert.Equal(t, 3, a1.ParticipantCount)

	dispatch(t, s, JoinActivity{ActivityID: "a1", ParticipantID: "4"})
	res = dispatch(t, s, JoinActivity{ActivityID: "a1", ParticipantID: "5"})
	assert.Equal(t, string(model.JoinFull), res.Outcome)
	assert.False(t, res.Changed)

	a1, err = s.Activity("a1")
	require.NoError(t, err)
	assert.Equal(t, 4, a1.ParticipantCount)
	assert.Equal(t, model.StatusFull, a1.Status)
	assert.False(t, a1.Joinable)

	// 只有两次成功加入产生事件
	assert.Equal(t, []string{messaging.TopicActivityMemberJoined, messaging.TopicActivityMemberJoined}, sink.Topics())
}

func TestJoin_AppendsAtEnd(t *testing.T) {
	s, _ := newTestState(t)
	dispatch(t, s, JoinActivity{ActivityID: "a2"})

	a2, err := s.Activity("a2")
	require.NoError(t, err)
	require.Len(t, a2.Participants, 2)
	assert.Equal(t, "悦悦", a2.Participants[0].Name)
	assert.Equal(t, "小林", a2.Participants[1].Name)
	assert.True(t, a2.Joined)
	assert.False(t, a2.Joinable)
}

func TestJoin_AlreadyJoined(t *testing.T) {
	s, sink := newTestState(t)
	res := dispatch(t, s, JoinActivity{ActivityID: "a1"})
	assert.Equal(t, string(model.JoinAlreadyJoined), res.Outcome)
	assert.Empty(t, sink.Topics())
}

func TestJoin_Errors(t *testing.T) {
	s, _ := newTestState(t)

	_, err := s.Dispatch(context.Background(), JoinActivity{ActivityID: "nope"})
	assert.True(t, errorx.Is(err, errorx.CodeActivityNotFound))

	_, err = s.Dispatch(context.Background(), JoinActivity{ActivityID: "a2", ParticipantID: "404"})
	assert.True(t, errorx.Is(err, errorx.CodeParticipantNotFound))
	assert.Equal(t, errorx.CodeParticipantNotFound, errorx.FromError(err).Code)
}

func TestJoin_ClosesDetail(t *testing.T) {
	s, _ := newTestState(t)
	dispatch(t, s, OpenDetail{ActivityID: "a2"})
	v, err := s.Snapshot()
	require.NoError(t, err)
	require.NotNil(t, v.Detail)
	assert.Equal(t, "a2", v.Detail.ID)

	res := dispatch(t, s, JoinActivity{ActivityID: "a2"})
	assert.Empty(t, res.Navigation.DetailID)
}

func TestJoin_ConcurrentNeverExceedsCapacity(t *testing.T) {
	s, _ := newTestState(t)
	for i := 0; i < 50; i++ {
		s.RegisterParticipant(model.Participant{ID: fmt.Sprintf("u%d", i), Name: fmt.Sprintf("用户%d", i)})
	}
	res := dispatch(t, s, CreateActivity{Draft: model.Draft{
		Title: "抢位", Category: model.CategorySports, SubCategory: "网球",
		Time: "明天", Location: "球场", MaxParticipants: 10,
	}})

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		joined int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := s.Dispatch(context.Background(), JoinActivity{ActivityID: res.ActivityID, ParticipantID: fmt.Sprintf("u%d", i)})
			if err == nil && r.Outcome == string(model.JoinJoined) {
				mu.Lock()
				joined++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	a, err := s.Activity(res.ActivityID)
	require.NoError(t, err)
	assert.Equal(t, 10, a.ParticipantCount)
	assert.Equal(t, 9, joined)
}

// ==================== 收藏 ====================

func TestToggleFavorite_RoundTrip(t *testing.T) {
	s, sink := newTestState(t)

	res := dispatch(t, s, ToggleFavorite{ActivityID: "a4"})
	assert.Equal(t, OutcomeFavorited, res.Outcome)
	a4, err := s.Activity("a4")
	require.NoError(t, err)
	assert.True(t, a4.IsFavorite)

	res = dispatch(t, s, ToggleFavorite{ActivityID: "a4"})
	assert.Equal(t, OutcomeUnfavorited, res.Outcome)

	v, err := s.Snapshot()
	require.NoError(t, err)
	assert.Empty(t, v.Favorites)
	assert.Len(t, sink.Topics(), 2)
}

func TestToggleFavorite_DanglingIDFilteredFromProfile(t *testing.T) {
	s, _ := newTestState(t)
	dispatch(t, s, ToggleFavorite{ActivityID: "a2"})
	dispatch(t, s, ToggleFavorite{ActivityID: "ghost"})

	v, err := s.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, []string{"a2", "ghost"}, v.Favorites)
	assert.Equal(t, 1, v.Profile.FavoriteCount)
	require.Len(t, v.Profile.Favorites, 1)
	assert.Equal(t, "a2", v.Profile.Favorites[0].ID)

	_, err = s.Dispatch(context.Background(), ToggleFavorite{})
	assert.True(t, errorx.Is(err, errorx.CodeInvalidParams))
}

// ==================== 创建活动 ====================

func TestCreate_NewSubcategoryRegisteredOnce(t *testing.T) {
	s, sink := newTestState(t)

	first := dispatch(t, s, CreateActivity{Draft: validDraft("桨板")})
	second := dispatch(t, s, CreateActivity{Draft: validDraft("桨板")})
	assert.NotEqual(t, first.ActivityID, second.ActivityID)

	var outdoor []string
	for _, e := range s.Categories() {
		if e.Category == model.CategoryOutdoor {
			outdoor = e.Subcategories
		}
	}
	count := 0
	for _, sub := range outdoor {
		if sub == "桨板" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, "桨板", outdoor[len(outdoor)-1])

	assert.Equal(t, []string{
		messaging.TopicActivityCreated,
		messaging.TopicSubcategoryAdded,
		messaging.TopicActivityCreated,
	}, sink.Topics())
}

func TestCreate_PrependsAndOwnedByCurrentUser(t *testing.T) {
	s, _ := newTestState(t)
	res := dispatch(t, s, CreateActivity{Draft: validDraft("飞盘")})

	list := s.VisibleActivities()
	require.Len(t, list, 8)
	assert.Equal(t, res.ActivityID, list[0].ID)
	assert.Equal(t, "1", list[0].Creator.ID)
	assert.Equal(t, 1, list[0].ParticipantCount)
	assert.Equal(t, fixedNow.UnixMilli(), list[0].CreatedAt)

	p, err := s.ProfileView()
	require.NoError(t, err)
	assert.Equal(t, 3, p.CreatedCount)
	assert.Equal(t, res.ActivityID, p.Created[0].ID)

	assert.Equal(t, 3, s.Stats()["户外"])
}

func TestCreate_InvalidDraftLeavesStateUntouched(t *testing.T) {
	s, sink := newTestState(t)

	cases := map[string]model.Draft{
		"blank title": func() model.Draft { d := validDraft("飞盘"); d.Title = "  "; return d }(),
		"no location": func() model.Draft { d := validDraft("飞盘"); d.Location = ""; return d }(),
		"zero max":    func() model.Draft { d := validDraft("飞盘"); d.MaxParticipants = 0; return d }(),
		"no sub":      validDraft(""),
	}
	for name, d := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := s.Dispatch(context.Background(), CreateActivity{Draft: d})
			assert.True(t, errorx.Is(err, errorx.CodeDraftInvalid), "err=%v", err)
		})
	}

	d := validDraft("飞盘")
	d.Category = "全部"
	_, err := s.Dispatch(context.Background(), CreateActivity{Draft: d})
	assert.True(t, errorx.Is(err, errorx.CodeUnknownCategory))

	assert.Len(t, s.VisibleActivities(), 7)
	assert.Empty(t, sink.Topics())
}

// ==================== 导航 ====================

func TestDispatch_NavigationFlow(t *testing.T) {
	s, _ := newTestState(t)

	res := dispatch(t, s, SelectCategory{Category: "运动"})
	assert.Equal(t, ScreenSubcategory, res.Navigation.Screen)

	v, err := s.Snapshot()
	require.NoError(t, err)
	require.NotEmpty(t, v.Subcategories)
	assert.Equal(t, SubcategoryCount{Name: "羽毛球", Count: 1}, v.Subcategories[0])
	assert.Equal(t, SubcategoryCount{Name: "网球", Count: 0}, v.Subcategories[2])

	res = dispatch(t, s, SelectSubcategory{SubCategory: "篮球"})
	assert.Equal(t, ScreenActivityList, res.Navigation.Screen)
	list := s.VisibleActivities()
	require.Len(t, list, 1)
	assert.Equal(t, "a6", list[0].ID)

	res = dispatch(t, s, Back{})
	assert.True(t, res.Changed)
	assert.Equal(t, ScreenSubcategory, res.Navigation.Screen)

	res = dispatch(t, s, GoHome{})
	assert.Equal(t, ScreenHome, res.Navigation.Screen)
	assert.Equal(t, model.FilterAll, res.Navigation.Category)
}

func TestDispatch_NavigationErrors(t *testing.T) {
	s, _ := newTestState(t)
	ctx := context.Background()

	_, err := s.Dispatch(ctx, SelectCategory{Category: "电竞"})
	assert.True(t, errorx.Is(err, errorx.CodeUnknownCategory))

	dispatch(t, s, SelectCategory{Category: "运动"})
	_, err = s.Dispatch(ctx, SelectSubcategory{SubCategory: "麻将"})
	assert.True(t, errorx.Is(err, errorx.CodeUnknownSubcategory))

	_, err = s.Dispatch(ctx, SetActiveTab{Tab: "settings"})
	assert.True(t, errorx.Is(err, errorx.CodeInvalidTab))

	_, err = s.Dispatch(ctx, SetProfileTab{Tab: "joined"})
	assert.True(t, errorx.Is(err, errorx.CodeInvalidTab))

	_, err = s.Dispatch(ctx, OpenDetail{ActivityID: "nope"})
	assert.True(t, errorx.Is(err, errorx.CodeActivityNotFound))

	_, err = s.Dispatch(ctx, nil)
	assert.True(t, errorx.Is(err, errorx.CodeUnknownIntent))

	// 失败的意图不改变导航
	assert.Equal(t, ScreenSubcategory, s.Navigation().Screen)
}

func TestDispatch_SubcategoryUnderAllMayBelongAnywhere(t *testing.T) {
	s, _ := newTestState(t)
	dispatch(t, s, SelectCategory{Category: model.FilterAll})
	dispatch(t, s, SelectSubcategory{SubCategory: "剧本杀"})

	list := s.VisibleActivities()
	require.Len(t, list, 1)
	assert.Equal(t, "a3", list[0].ID)
}

func TestDispatch_SearchAndTabs(t *testing.T) {
	s, _ := newTestState(t)

	res := dispatch(t, s, SetSearchQuery{Query: "羽毛"})
	assert.True(t, res.Changed)
	assert.Len(t, s.VisibleActivities(), 1)

	res = dispatch(t, s, SetSearchQuery{Query: "羽毛"})
	assert.False(t, res.Changed)

	dispatch(t, s, SelectCategory{Category: "棋牌"})
	dispatch(t, s, SetActiveTab{Tab: string(TabProfile)})
	res = dispatch(t, s, SetProfileTab{Tab: string(ProfileTabCreated)})
	assert.Equal(t, ProfileTabCreated, res.Navigation.ProfileTab)

	res = dispatch(t, s, SetActiveTab{Tab: string(TabExplore)})
	assert.Equal(t, ScreenHome, res.Navigation.Screen)
	assert.Equal(t, model.FilterAll, res.Navigation.Category)
	// 搜索词不随标签页重置
	assert.Equal(t, "羽毛", res.Navigation.SearchQuery)

	assert.Len(t, s.Search(Filter{Query: "篮球"}), 1)
}

// ==================== 个人资料 ====================

func TestProfile_EditsVisibleInEveryActivity(t *testing.T) {
	s, sink := newTestState(t)

	dispatch(t, s, UpdateProfileField{Field: "name", Value: "林林"})
	dispatch(t, s, ReplaceAvatar{Avatar: "data:image/png;base64,AAAA"})

	a1, err := s.Activity("a1")
	require.NoError(t, err)
	assert.Equal(t, "林林", a1.Participants[1].Name)

	a3, err := s.Activity("a3")
	require.NoError(t, err)
	assert.Equal(t, "林林", a3.Creator.Name)
	assert.Equal(t, "data:image/png;base64,AAAA", a3.Creator.Avatar)

	assert.Equal(t, []string{messaging.TopicProfileUpdated, messaging.TopicProfileUpdated}, sink.Topics())
}

func TestProfile_Fields(t *testing.T) {
	s, _ := newTestState(t)
	ctx := context.Background()

	dispatch(t, s, UpdateProfileField{Field: "occupation", Value: "插画师"})
	dispatch(t, s, UpdateProfileField{Field: "gender", Value: "其他"})
	u, err := s.CurrentUser()
	require.NoError(t, err)
	assert.Equal(t, "插画师", u.Occupation)
	assert.Equal(t, model.GenderOther, u.Gender)

	_, err = s.Dispatch(ctx, UpdateProfileField{Field: "gender", Value: "unknown"})
	assert.True(t, errorx.Is(err, errorx.CodeInvalidParams))

	_, err = s.Dispatch(ctx, UpdateProfileField{Field: "age", Value: "30"})
	assert.True(t, errorx.Is(err, errorx.CodeInvalidProfileField))
}

func TestProfile_Hobbies(t *testing.T) {
	s, sink := newTestState(t)

	assert.True(t, dispatch(t, s, AddHobby{Tag: "  潜水 "}).Changed)
	assert.False(t, dispatch(t, s, AddHobby{Tag: "   "}).Changed)
	assert.False(t, dispatch(t, s, AddHobby{Tag: "摄影"}).Changed)

	u, err := s.CurrentUser()
	require.NoError(t, err)
	assert.Equal(t, []string{"摄影", "徒步", "潜水"}, u.Hobbies)

	assert.True(t, dispatch(t, s, RemoveHobby{Tag: "徒步"}).Changed)
	assert.False(t, dispatch(t, s, RemoveHobby{Tag: "徒"}).Changed)

	u, err = s.CurrentUser()
	require.NoError(t, err)
	assert.Equal(t, []string{"摄影", "潜水"}, u.Hobbies)

	// 只有实际修改产生事件
	assert.Len(t, sink.Topics(), 2)
}

func TestSnapshot_IsIndependentCopy(t *testing.T) {
	s, _ := newTestState(t)
	v, err := s.Snapshot()
	require.NoError(t, err)

	v.Activities[0].Participants[0].Name = "篡改"
	v.CurrentUser.Hobbies[0] = "篡改"
	v.Stats["运动"] = 100

	a1, err := s.Activity("a1")
	require.NoError(t, err)
	assert.Equal(t, "阿强", a1.Participants[0].Name)
	u, err := s.CurrentUser()
	require.NoError(t, err)
	assert.Equal(t, "摄影", u.Hobbies[0])
	assert.Equal(t, 2, s.Stats()["运动"])
}
