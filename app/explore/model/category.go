package model

import "strings"

// Category 活动一级分类（固定枚举）
type Category string

const (
	CategoryBoardGame  Category = "棋牌"
	CategorySports     Category = "运动"
	CategoryOutdoor    Category = "户外"
	CategoryCoffeeChat Category = "CoffeeChat"
	CategoryFamily     Category = "亲子"
)

// FilterAll 分类/子分类筛选中的"全部"哨兵值，不是合法的 Category
const FilterAll = "全部"

// statsKeySep 统计 key 中分类与子分类的分隔符
// 分类名不含该字符，所以 "<分类>" 与 "<分类>-<子分类>" 两类 key 不会冲突
const statsKeySep = "-"

// Categories 全部分类（按展示顺序）
var Categories = []Category{
	CategoryBoardGame,
	CategorySports,
	CategoryOutdoor,
	CategoryCoffeeChat,
	CategoryFamily,
}

// defaultSubcategories 初始子分类列表
var defaultSubcategories = map[Category][]string{
	CategoryBoardGame:  {"麻将", "扑克", "剧本杀", "桌游", "象棋"},
	CategorySports:     {"羽毛球", "篮球", "网球", "游泳", "健身", "乒乓球"},
	CategoryOutdoor:    {"徒步", "露营", "骑行", "飞盘", "登山"},
	CategoryCoffeeChat: {"职场交流", "创业分享", "语言交换", "随心聊"},
	CategoryFamily:     {"游乐园", "手工DIY", "绘本阅读", "郊游", "亲子运动"},
}

// ParseCategory 解析分类名（精确匹配）
func ParseCategory(name string) (Category, bool) {
	c := Category(name)
	return c, c.Valid()
}

// Valid 是否为五个固定分类之一
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// StatsKey 分类统计 key
//
// 格式：
//   - 分类计数：{category}
//   - 子分类计数：{category}-{subCategory}
func StatsKey(category Category, subCategory string) string {
	if subCategory == "" {
		return string(category)
	}
	return string(category) + statsKeySep + subCategory
}

// IsCompositeStatsKey 判断统计 key 是否为 "分类-子分类" 形式
func IsCompositeStatsKey(key string) bool {
	for _, c := range Categories {
		if strings.HasPrefix(key, string(c)+statsKeySep) {
			return true
		}
	}
	return false
}
