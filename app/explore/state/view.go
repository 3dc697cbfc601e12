package state

import (
	"activity-discovery/app/explore/model"
)

// ==================== 渲染视图 ====================
//
// 视图是只读副本：参与者资料在生成时从参与者表解析，
// 调用方可以随意修改视图而不会影响内部状态。

// ActivityView 活动渲染视图
type ActivityView struct {
	ID          string         `json:"id"`
	Category    model.Category `json:"category"`
	SubCategory string         `json:"subCategory"`
	Title       string         `json:"title"`
	Time        string         `json:"time"`
	Location    string         `json:"location"`
	Description string         `json:"description"`

	Creator          *model.Participant  `json:"creator,omitempty"`
	Participants     []model.Participant `json:"participants"`
	ParticipantCount int                 `json:"participantCount"`
	MaxParticipants  int                 `json:"maxParticipants"`

	Status     model.Status `json:"status"`
	StatusText string       `json:"statusText"`
	CreatedAt  int64        `json:"createdAt"`

	IsFavorite bool `json:"isFavorite"`
	Joined     bool `json:"joined"`   // 当前用户已加入
	Joinable   bool `json:"joinable"` // 未满员且当前用户未加入
}

// SubcategoryCount 子分类选择页的一项
type SubcategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ProfileView 个人中心视图
type ProfileView struct {
	User          model.Participant `json:"user"`
	FavoriteCount int               `json:"favoriteCount"`
	CreatedCount  int               `json:"createdCount"`
	Favorites     []ActivityView    `json:"favorites"`
	Created       []ActivityView    `json:"created"`
}

// View 完整渲染状态
type View struct {
	Navigation    Navigation            `json:"navigation"`
	Activities    []ActivityView        `json:"activities"`
	Stats         map[string]int        `json:"stats"`
	Favorites     []string              `json:"favorites"`
	CurrentUser   model.Participant     `json:"currentUser"`
	Categories    []model.CategoryEntry `json:"categories"`
	Subcategories []SubcategoryCount    `json:"subcategories,omitempty"` // 仅子分类选择页
	Detail        *ActivityView         `json:"detail,omitempty"`
	Profile       ProfileView           `json:"profile"`
}

// viewBuilder 生成视图时共享的上下文
type viewBuilder struct {
	participants *model.ParticipantTable
	favorites    *model.FavoriteSet
	userID       string
}

func (b viewBuilder) activity(a *model.Activity) ActivityView {
	v := ActivityView{
		ID:               a.ID,
		Category:         a.Category,
		SubCategory:      a.SubCategory,
		Title:            a.Title,
		Time:             a.Time,
		Location:         a.Location,
		Description:      a.Description,
		Participants:     b.participants.Resolve(a.ParticipantIDs),
		ParticipantCount: len(a.ParticipantIDs),
		MaxParticipants:  a.MaxParticipants,
		Status:           a.Status(),
		StatusText:       model.StatusText[a.Status()],
		CreatedAt:        a.CreatedAt,
		IsFavorite:       b.favorites.Has(a.ID),
		Joined:           a.HasParticipant(b.userID),
	}
	if creator, ok := b.participants.Get(a.CreatorID); ok {
		c := creator.Clone()
		v.Creator = &c
	}
	v.Joinable = !v.Joined && !a.IsFull()
	return v
}

func (b viewBuilder) activities(list []*model.Activity) []ActivityView {
	views := make([]ActivityView, 0, len(list))
	for _, a := range list {
		views = append(views, b.activity(a))
	}
	return views
}

// SubcategoryCounts 某分类下各子分类的活动数（按登记顺序，含 0）
func SubcategoryCounts(registry *model.CategoryRegistry, stats map[string]int, category model.Category) []SubcategoryCount {
	subs := registry.SubcategoriesOf(category)
	result := make([]SubcategoryCount, 0, len(subs))
	for _, name := range subs {
		result = append(result, SubcategoryCount{
			Name:  name,
			Count: stats[model.StatsKey(category, name)],
		})
	}
	return result
}
