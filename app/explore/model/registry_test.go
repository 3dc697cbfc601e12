package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryRegistry_Defaults(t *testing.T) {
	r := NewCategoryRegistry()

	assert.Equal(t, []string{"职场交流", "创业分享", "语言交换", "随心聊"}, r.SubcategoriesOf(CategoryCoffeeChat))
	assert.Len(t, r.Snapshot(), 5)
	assert.Equal(t, CategoryBoardGame, r.Snapshot()[0].Category)
	assert.Empty(t, r.SubcategoriesOf(Category("不存在")))
}

func TestCategoryRegistry_AddSubcategory(t *testing.T) {
	r := NewCategoryRegistry()

	assert.True(t, r.AddSubcategory(CategorySports, "攀岩"))
	assert.False(t, r.AddSubcategory(CategorySports, "攀岩"))
	assert.False(t, r.AddSubcategory(CategorySports, "羽毛球"))

	subs := r.SubcategoriesOf(CategorySports)
	assert.Equal(t, "攀岩", subs[len(subs)-1])
	assert.Len(t, subs, 7)

	// 大小写敏感
	assert.True(t, r.AddSubcategory(CategoryOutdoor, "Frisbee"))
	assert.True(t, r.AddSubcategory(CategoryOutdoor, "frisbee"))

	// 只影响所属分类
	assert.False(t, r.Has(CategoryFamily, "攀岩"))
	assert.True(t, r.HasAnywhere("攀岩"))
}

func TestCategoryRegistry_SnapshotIsCopy(t *testing.T) {
	r := NewCategoryRegistry()
	subs := r.SubcategoriesOf(CategoryFamily)
	subs[0] = "被改写"

	assert.Equal(t, "游乐园", r.SubcategoriesOf(CategoryFamily)[0])
}

func TestStatsKey_NamespacesDoNotCollide(t *testing.T) {
	r := NewCategoryRegistry()
	for _, c := range Categories {
		assert.NotContains(t, string(c), statsKeySep)
		assert.False(t, IsCompositeStatsKey(StatsKey(c, "")))
		for _, sub := range r.SubcategoriesOf(c) {
			key := StatsKey(c, sub)
			assert.True(t, IsCompositeStatsKey(key))
			assert.False(t, Category(key).Valid())
		}
	}
}
