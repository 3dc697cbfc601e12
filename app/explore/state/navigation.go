package state

import "activity-discovery/app/explore/model"

// ==================== 导航状态机 ====================
//
// 状态：
//   Home -> SubcategorySelection(分类) -> ActivityList(分类, 子分类)
//   Home -> ActivityList(全部, 全部)      （选择"全部"时跳过子分类页）
//
// 返回：
//   ActivityList --back--> SubcategorySelection(分类) / Home（分类为"全部"时）
//   SubcategorySelection --back--> Home
//   Home --back--> Home（无操作）
//
// 与之正交的还有顶部标签页 Explore|Profile，以及个人中心内的 Favorites|Created。
// 状态机只做赋值，参数合法性由 AppState 在调用前校验。

// Screen 探索页当前屏幕
type Screen string

const (
	ScreenHome         Screen = "home"
	ScreenSubcategory  Screen = "subcategory-selection"
	ScreenActivityList Screen = "activity-list"
)

// Tab 顶部标签页
type Tab string

const (
	TabExplore Tab = "explore"
	TabProfile Tab = "profile"
)

// ProfileTab 个人中心子标签页
type ProfileTab string

const (
	ProfileTabFavorites ProfileTab = "favorites"
	ProfileTabCreated   ProfileTab = "created"
)

// ParseTab 解析顶部标签页
func ParseTab(s string) (Tab, bool) {
	t := Tab(s)
	return t, t == TabExplore || t == TabProfile
}

// ParseProfileTab 解析个人中心标签页
func ParseProfileTab(s string) (ProfileTab, bool) {
	t := ProfileTab(s)
	return t, t == ProfileTabFavorites || t == ProfileTabCreated
}

// Navigation 导航与筛选状态（全部为瞬时状态，可由用户操作重建）
type Navigation struct {
	Screen      Screen     `json:"screen"`
	Tab         Tab        `json:"tab"`
	ProfileTab  ProfileTab `json:"profileTab"`
	Category    string     `json:"category"`    // 分类名或 "全部"
	SubCategory string     `json:"subCategory"` // 子分类名或 "全部"
	SearchQuery string     `json:"searchQuery"`
	DetailID    string     `json:"detailId,omitempty"` // 详情浮层中的活动
}

// NewNavigation 初始状态：Home + Explore
func NewNavigation() Navigation {
	return Navigation{
		Screen:      ScreenHome,
		Tab:         TabExplore,
		ProfileTab:  ProfileTabFavorites,
		Category:    model.FilterAll,
		SubCategory: model.FilterAll,
	}
}

// SelectCategory 选择分类
func (n *Navigation) SelectCategory(category string) {
	n.Category = category
	n.SubCategory = model.FilterAll
	if category == model.FilterAll {
		n.Screen = ScreenActivityList
		return
	}
	n.Screen = ScreenSubcategory
}

// SelectSubcategory 选择子分类
func (n *Navigation) SelectSubcategory(name string) {
	n.SubCategory = name
	n.Screen = ScreenActivityList
}

// Back 返回上一屏，返回值表示状态是否变化
func (n *Navigation) Back() bool {
	switch n.Screen {
	case ScreenActivityList:
		if n.Category == model.FilterAll {
			n.Screen = ScreenHome
		} else {
			n.Screen = ScreenSubcategory
		}
		return true
	case ScreenSubcategory:
		n.Screen = ScreenHome
		return true
	default:
		return false
	}
}

// GoHome 回到首页并重置分类筛选
func (n *Navigation) GoHome() {
	n.Screen = ScreenHome
	n.Category = model.FilterAll
	n.SubCategory = model.FilterAll
}

// SetTab 切换顶部标签页
// 切回 Explore 时重置到首页
func (n *Navigation) SetTab(tab Tab) {
	n.Tab = tab
	if tab == TabExplore {
		n.GoHome()
	}
}

// SetProfileTab 切换个人中心子标签页
func (n *Navigation) SetProfileTab(tab ProfileTab) {
	n.ProfileTab = tab
}

// SetSearchQuery 设置搜索词
func (n *Navigation) SetSearchQuery(q string) {
	n.SearchQuery = q
}

// OpenDetail 打开活动详情
func (n *Navigation) OpenDetail(activityID string) {
	n.DetailID = activityID
}

// CloseDetail 关闭活动详情
func (n *Navigation) CloseDetail() {
	n.DetailID = ""
}
