package model

import "sort"

// FavoriteSet 收藏集合（活动ID）
//
// 与活动存储的生命周期无关：集合中可能存在悬空ID，
// 与活动列表关联时自然被过滤掉
type FavoriteSet struct {
	ids map[string]struct{}
}

// NewFavoriteSet 创建收藏集合
func NewFavoriteSet() *FavoriteSet {
	return &FavoriteSet{ids: make(map[string]struct{})}
}

// Toggle 切换收藏状态，返回切换后是否已收藏
func (f *FavoriteSet) Toggle(activityID string) bool {
	if _, ok := f.ids[activityID]; ok {
		delete(f.ids, activityID)
		return false
	}
	f.ids[activityID] = struct{}{}
	return true
}

// Has 是否已收藏
func (f *FavoriteSet) Has(activityID string) bool {
	_, ok := f.ids[activityID]
	return ok
}

// Len 收藏数量（含悬空ID）
func (f *FavoriteSet) Len() int {
	return len(f.ids)
}

// IDs 收藏ID列表（排序后的副本）
func (f *FavoriteSet) IDs() []string {
	ids := make([]string, 0, len(f.ids))
	for id := range f.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
