package state

import (
	"maps"
	"strings"
	"time"

	"activity-discovery/app/explore/model"
	"activity-discovery/common/cache"

	"github.com/zeromicro/go-zero/core/collection"
)

// ==================== 筛选条件 ====================

// Filter 活动筛选条件
//
// 三个条件之间为 AND：
//  1. 分类为"全部"或与活动分类相等
//  2. 子分类为"全部"或与活动子分类相等
//  3. 搜索词为空，或标题/子分类包含搜索词（不区分大小写，OR）
type Filter struct {
	Category    string
	SubCategory string
	Query       string
}

// Match 判断活动是否满足筛选条件
func (f Filter) Match(a *model.Activity) bool {
	if f.Category != model.FilterAll && string(a.Category) != f.Category {
		return false
	}
	if f.SubCategory != model.FilterAll && a.SubCategory != f.SubCategory {
		return false
	}
	if f.Query == "" {
		return true
	}
	q := strings.ToLower(f.Query)
	return strings.Contains(strings.ToLower(a.Title), q) ||
		strings.Contains(strings.ToLower(a.SubCategory), q)
}

func (f Filter) cacheKey(version uint64) string {
	return cache.VisibleKey(version, f.Category, f.SubCategory, f.Query)
}

// ==================== 纯函数派生 ====================

// VisibleActivities 计算可见活动（保持存储顺序：最新在前）
func VisibleActivities(store *model.ActivityStore, f Filter) []*model.Activity {
	result := make([]*model.Activity, 0)
	for a := range store.All() {
		if f.Match(a) {
			result = append(result, a)
		}
	}
	return result
}

// CategoryStats 分类统计
//
// 同一个 map 中有两类 key：
//   - "{分类}"          该分类下的活动数
//   - "{分类}-{子分类}"  该子分类下的活动数
//
// 分类名为固定枚举且不含 "-"，两类 key 不会冲突
func CategoryStats(store *model.ActivityStore) map[string]int {
	stats := make(map[string]int)
	for a := range store.All() {
		stats[model.StatsKey(a.Category, "")]++
		stats[model.StatsKey(a.Category, a.SubCategory)]++
	}
	return stats
}

// FavoriteActivities 已收藏的活动（悬空ID自动忽略）
func FavoriteActivities(store *model.ActivityStore, favorites *model.FavoriteSet) []*model.Activity {
	result := make([]*model.Activity, 0, favorites.Len())
	for a := range store.All() {
		if favorites.Has(a.ID) {
			result = append(result, a)
		}
	}
	return result
}

// CreatedActivities 某用户发起的活动
func CreatedActivities(store *model.ActivityStore, creatorID string) []*model.Activity {
	result := make([]*model.Activity, 0)
	for a := range store.All() {
		if a.CreatorID == creatorID {
			result = append(result, a)
		}
	}
	return result
}

// ==================== Deriver 带缓存的派生计算 ====================
//
// 缓存策略：
//   - Key 带上存储版本号，任何修改都会使旧 key 失效
//   - 筛选条件相同且数据未变时直接复用结果
//   - 过期时间只用于回收内存，不影响正确性

// Deriver 派生数据计算器
type Deriver struct {
	memo *collection.Cache
}

// NewDeriver 创建派生数据计算器
func NewDeriver(expire time.Duration, limit int) (*Deriver, error) {
	if limit <= 0 {
		limit = cache.DefaultLimit
	}
	c, err := collection.NewCache(cache.RandomTTL(expire),
		collection.WithLimit(limit),
		collection.WithName("explore-derive"),
	)
	if err != nil {
		return nil, err
	}
	return &Deriver{memo: c}, nil
}

// Visible 带缓存的 VisibleActivities
// 返回的切片为共享结果，调用方不得修改
func (d *Deriver) Visible(store *model.ActivityStore, f Filter) []*model.Activity {
	key := f.cacheKey(store.Version())
	if val, ok := d.memo.Get(key); ok {
		return val.([]*model.Activity)
	}
	result := VisibleActivities(store, f)
	d.memo.Set(key, result)
	return result
}

// Stats 带缓存的 CategoryStats（返回副本）
func (d *Deriver) Stats(store *model.ActivityStore) map[string]int {
	key := cache.StatsKey(store.Version())
	if val, ok := d.memo.Get(key); ok {
		return maps.Clone(val.(map[string]int))
	}
	stats := CategoryStats(store)
	d.memo.Set(key, stats)
	return maps.Clone(stats)
}
