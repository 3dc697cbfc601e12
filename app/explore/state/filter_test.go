package state

import (
	"testing"
	"time"

	"activity-discovery/app/explore/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allFilter = Filter{Category: model.FilterAll, SubCategory: model.FilterAll}

func seededStore() *model.ActivityStore {
	s := model.NewActivityStore()
	s.Seed(model.SeedActivities())
	return s
}

func ids(list []*model.Activity) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.ID)
	}
	return out
}

func TestVisibleActivities_AllReturnsEverythingNewestFirst(t *testing.T) {
	store := seededStore()
	assert.Equal(t, []string{"a1", "a2", "a3", "a4", "a5", "a6", "a7"}, ids(VisibleActivities(store, allFilter)))

	store.Create("a100", model.Draft{
		Title: "夜跑", Category: model.CategorySports, SubCategory: "跑步",
		Time: "今晚", Location: "滨江", MaxParticipants: 5,
	}, "1", time.Unix(0, 0))

	got := ids(VisibleActivities(store, allFilter))
	require.Len(t, got, 8)
	assert.Equal(t, "a100", got[0])
}

func TestVisibleActivities_CategoryAndSubcategory(t *testing.T) {
	store := seededStore()

	got := VisibleActivities(store, Filter{Category: "运动", SubCategory: model.FilterAll})
	assert.Equal(t, []string{"a1", "a6"}, ids(got))

	got = VisibleActivities(store, Filter{Category: "运动", SubCategory: "篮球"})
	assert.Equal(t, []string{"a6"}, ids(got))

	// 分类为全部时子分类照样生效
	got = VisibleActivities(store, Filter{Category: model.FilterAll, SubCategory: "徒步"})
	assert.Equal(t, []string{"a5"}, ids(got))
}

func TestVisibleActivities_QueryMatchesTitleOrSubcategory(t *testing.T) {
	store := seededStore()
	store.Create("a100", model.Draft{
		Title: "Board Game Night", Category: model.CategoryBoardGame, SubCategory: "桌游",
		Time: "周五", Location: "咖啡馆", MaxParticipants: 6,
	}, "1", time.Unix(0, 0))

	// 标题，不区分大小写
	assert.Equal(t, []string{"a100"}, ids(VisibleActivities(store, Filter{
		Category: model.FilterAll, SubCategory: model.FilterAll, Query: "BOARD game",
	})))

	// 仅子分类命中
	assert.Equal(t, []string{"a2"}, ids(VisibleActivities(store, Filter{
		Category: model.FilterAll, SubCategory: model.FilterAll, Query: "职场",
	})))

	// 搜索与分类同时生效
	assert.Empty(t, VisibleActivities(store, Filter{
		Category: "户外", SubCategory: model.FilterAll, Query: "羽毛球",
	}))
}

func TestVisibleActivities_NoMatchIsEmptyNotNil(t *testing.T) {
	store := seededStore()
	got := VisibleActivities(store, Filter{
		Category: model.FilterAll, SubCategory: model.FilterAll, Query: "不存在的活动xyz",
	})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCategoryStats_Seed(t *testing.T) {
	stats := CategoryStats(seededStore())

	assert.Equal(t, 2, stats["运动"])
	assert.Equal(t, 1, stats["运动-羽毛球"])
	assert.Equal(t, 1, stats["运动-篮球"])
	assert.Equal(t, 2, stats["CoffeeChat"])
	assert.Equal(t, 1, stats["棋牌"])
	assert.Zero(t, stats["运动-网球"])
}

func TestCategoryStats_SingleCreateIsIndependent(t *testing.T) {
	store := model.NewActivityStore()
	store.Create("a1", model.Draft{
		Title: "咖啡", Category: model.CategoryCoffeeChat, SubCategory: "职场交流",
		Time: "周一", Location: "星巴克", MaxParticipants: 3,
	}, "1", time.Unix(0, 0))

	stats := CategoryStats(store)
	assert.Equal(t, map[string]int{"CoffeeChat": 1, "CoffeeChat-职场交流": 1}, stats)
}

func TestFavoriteActivities_SkipsDangling(t *testing.T) {
	store := seededStore()
	favs := model.NewFavoriteSet()
	favs.Toggle("a3")
	favs.Toggle("gone")

	assert.Equal(t, []string{"a3"}, ids(FavoriteActivities(store, favs)))
}

func TestCreatedActivities(t *testing.T) {
	assert.Equal(t, []string{"a3", "a5"}, ids(CreatedActivities(seededStore(), "1")))
}

func TestDeriver_InvalidatesOnMutation(t *testing.T) {
	d, err := NewDeriver(time.Minute, 16)
	require.NoError(t, err)
	store := seededStore()

	first := d.Visible(store, allFilter)
	again := d.Visible(store, allFilter)
	assert.Equal(t, ids(first), ids(again))

	store.Create("a100", model.Draft{
		Title: "新活动", Category: model.CategoryOutdoor, SubCategory: "露营",
		Time: "周末", Location: "郊外", MaxParticipants: 4,
	}, "1", time.Unix(0, 0))

	after := d.Visible(store, allFilter)
	assert.Len(t, after, len(first)+1)
	assert.Equal(t, 2, d.Stats(store)["户外"])
}

func TestDeriver_FiltersWithSeparatorDoNotShareResults(t *testing.T) {
	d, err := NewDeriver(time.Minute, 16)
	require.NoError(t, err)
	store := seededStore()
	store.Create("a100", model.Draft{
		Title: "x|y 局", Category: model.CategoryBoardGame, SubCategory: "桌游",
		Time: "周五晚", Location: "桌游吧", MaxParticipants: 6,
	}, "1", time.Unix(0, 0))

	// 先用一组拼接后会相同的条件填充缓存
	first := d.Visible(store, Filter{Category: model.FilterAll, SubCategory: model.FilterAll + "|x", Query: "y 局"})
	assert.Empty(t, first)

	f := Filter{Category: model.FilterAll, SubCategory: model.FilterAll, Query: "x|y 局"}
	got := d.Visible(store, f)
	assert.Equal(t, ids(VisibleActivities(store, f)), ids(got))
	assert.Equal(t, []string{"a100"}, ids(got))
}

func TestDeriver_StatsReturnsCopy(t *testing.T) {
	d, err := NewDeriver(0, 0)
	require.NoError(t, err)
	store := seededStore()

	stats := d.Stats(store)
	stats["运动"] = 99

	assert.Equal(t, 2, d.Stats(store)["运动"])
}
