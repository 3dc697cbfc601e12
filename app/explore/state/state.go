package state

import (
	"context"
	"sync"
	"time"

	"activity-discovery/app/explore/model"
	"activity-discovery/common/errorx"
	"activity-discovery/common/utils/idgen"

	"github.com/pkg/errors"
	"github.com/zeromicro/go-zero/core/logx"
)

// ==================== AppState 应用状态容器 ====================
//
// 持有全部可变状态：分类登记表、活动存储、收藏集合、参与者表、导航状态。
//
// 并发模型：单写者
//   - Dispatch 持写锁，意图严格按到达顺序处理
//   - Snapshot 等读操作持读锁，拿到的视图是独立副本
//   - 领域事件在持锁期间交给 Sink，入队顺序与意图处理顺序一致

// EventSink 领域事件接收方
// Publish 在 Dispatch 持写锁时调用，必须立即返回，且不能回调 AppState
type EventSink interface {
	Publish(ctx context.Context, topic string, payload any)
}

// Options 容器选项
type Options struct {
	CurrentUserID string
	Participants  []model.Participant
	Activities    []model.Activity
	IDGenerator   *idgen.Generator
	Clock         func() time.Time
	Sink          EventSink
	CacheExpire   time.Duration
	CacheLimit    int
}

// DefaultOptions 使用内置种子数据
func DefaultOptions() Options {
	return Options{
		CurrentUserID: model.DefaultCurrentUserID,
		Participants:  model.SeedParticipants(),
		Activities:    model.SeedActivities(),
	}
}

// AppState 应用状态容器
type AppState struct {
	mu sync.RWMutex

	registry     *model.CategoryRegistry
	store        *model.ActivityStore
	favorites    *model.FavoriteSet
	participants *model.ParticipantTable
	profile      *Profile
	nav          Navigation

	deriver *Deriver
	ids     *idgen.Generator
	now     func() time.Time
	sink    EventSink
}

// New 创建应用状态容器
func New(opts Options) (*AppState, error) {
	if opts.CurrentUserID == "" {
		opts.CurrentUserID = model.DefaultCurrentUserID
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.IDGenerator == nil {
		opts.IDGenerator = idgen.NewActivityGenerator().WithClock(opts.Clock)
	}

	participants := model.NewParticipantTable(opts.Participants...)
	if _, ok := participants.Get(opts.CurrentUserID); !ok {
		return nil, errors.Wrapf(errorx.ErrParticipantNotFound(opts.CurrentUserID), "current user")
	}

	deriver, err := NewDeriver(opts.CacheExpire, opts.CacheLimit)
	if err != nil {
		return nil, errors.Wrap(err, "create deriver")
	}

	store := model.NewActivityStore()
	store.Seed(opts.Activities)

	return &AppState{
		registry:     model.NewCategoryRegistry(),
		store:        store,
		favorites:    model.NewFavoriteSet(),
		participants: participants,
		profile:      NewProfile(participants, opts.CurrentUserID),
		nav:          NewNavigation(),
		deriver:      deriver,
		ids:          opts.IDGenerator,
		now:          opts.Clock,
		sink:         opts.Sink,
	}, nil
}

// Dispatch 处理一个意图
//
// 返回的错误均可通过 errorx.FromError 还原为业务错误码；
// 出错时状态保持不变。
func (s *AppState) Dispatch(ctx context.Context, intent Intent) (Result, error) {
	if intent == nil {
		return Result{}, errorx.ErrUnknownIntent("nil")
	}

	s.mu.Lock()
	res, events, err := intent.apply(s)
	res.Intent = intent.Name()
	res.Navigation = s.nav
	if err == nil && s.sink != nil {
		for _, e := range events {
			s.sink.Publish(ctx, e.topic, e.payload)
		}
	}
	s.mu.Unlock()

	if err != nil {
		logx.WithContext(ctx).Infof("[AppState] 意图被拒绝: intent=%s, err=%v", intent.Name(), err)
		return res, errors.Wrapf(err, "dispatch %s", intent.Name())
	}
	return res, nil
}

// RegisterParticipant 登记参与者（种子数据或测试使用，不产生事件）
func (s *AppState) RegisterParticipant(p model.Participant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.participants.Put(p)
}

// ==================== 只读查询 ====================

func (s *AppState) views() viewBuilder {
	return viewBuilder{
		participants: s.participants,
		favorites:    s.favorites,
		userID:       s.profile.UserID(),
	}
}

func (s *AppState) filter() Filter {
	return Filter{
		Category:    s.nav.Category,
		SubCategory: s.nav.SubCategory,
		Query:       s.nav.SearchQuery,
	}
}

// Navigation 当前导航状态
func (s *AppState) Navigation() Navigation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nav
}

// VisibleActivities 当前筛选条件下的活动
func (s *AppState) VisibleActivities() []ActivityView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.views().activities(s.deriver.Visible(s.store, s.filter()))
}

// Search 使用指定条件筛选（不修改导航状态）
func (s *AppState) Search(f Filter) []ActivityView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if f.Category == "" {
		f.Category = model.FilterAll
	}
	if f.SubCategory == "" {
		f.SubCategory = model.FilterAll
	}
	return s.views().activities(s.deriver.Visible(s.store, f))
}

// Activity 单个活动视图
func (s *AppState) Activity(id string) (ActivityView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.store.Get(id)
	if !ok {
		return ActivityView{}, errorx.ErrActivityNotFound(id)
	}
	return s.views().activity(a), nil
}

// Stats 分类统计
func (s *AppState) Stats() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.deriver.Stats(s.store)
}

// Categories 分类登记表快照
func (s *AppState) Categories() []model.CategoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry.Snapshot()
}

// CurrentUser 当前用户资料
func (s *AppState) CurrentUser() (model.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile.Current()
}

// ProfileView 个人中心视图
func (s *AppState) ProfileView() (ProfileView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profileView()
}

func (s *AppState) profileView() (ProfileView, error) {
	user, err := s.profile.Current()
	if err != nil {
		return ProfileView{}, err
	}
	b := s.views()
	favorites := FavoriteActivities(s.store, s.favorites)
	created := CreatedActivities(s.store, user.ID)
	return ProfileView{
		User:          user,
		FavoriteCount: len(favorites),
		CreatedCount:  len(created),
		Favorites:     b.activities(favorites),
		Created:       b.activities(created),
	}, nil
}

// Snapshot 完整渲染状态
func (s *AppState) Snapshot() (View, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, err := s.profileView()
	if err != nil {
		return View{}, err
	}

	b := s.views()
	stats := s.deriver.Stats(s.store)
	v := View{
		Navigation:  s.nav,
		Activities:  b.activities(s.deriver.Visible(s.store, s.filter())),
		Stats:       stats,
		Favorites:   s.favorites.IDs(),
		CurrentUser: profile.User,
		Categories:  s.registry.Snapshot(),
		Profile:     profile,
	}

	if s.nav.Screen == ScreenSubcategory {
		v.Subcategories = SubcategoryCounts(s.registry, stats, model.Category(s.nav.Category))
	}
	if s.nav.DetailID != "" {
		if a, ok := s.store.Get(s.nav.DetailID); ok {
			detail := b.activity(a)
			v.Detail = &detail
		}
	}
	return v, nil
}
