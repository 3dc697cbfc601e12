package model

// ==================== 初始数据 ====================
//
// 进程启动时加载的示例用户与活动，刷新即重置（不做持久化）

// DefaultCurrentUserID 默认的当前用户
const DefaultCurrentUserID = "1"

// SeedParticipants 示例用户
func SeedParticipants() []Participant {
	return []Participant{
		{ID: "1", Name: "小林", Gender: GenderFemale, Hobbies: []string{"摄影", "徒步"}, Occupation: "UI设计师", Avatar: "https://picsum.photos/seed/user1/100/100"},
		{ID: "2", Name: "阿强", Gender: GenderMale, Hobbies: []string{"篮球", "编程"}, Occupation: "软件工程师", Avatar: "https://picsum.photos/seed/user2/100/100"},
		{ID: "3", Name: "悦悦", Gender: GenderFemale, Hobbies: []string{"瑜伽", "咖啡"}, Occupation: "市场经理", Avatar: "https://picsum.photos/seed/user3/100/100"},
		{ID: "4", Name: "老王", Gender: GenderMale, Hobbies: []string{"象棋", "喝茶"}, Occupation: "退休教师", Avatar: "https://picsum.photos/seed/user4/100/100"},
	}
}

// SeedActivities 示例活动（最新在前）
func SeedActivities() []Activity {
	return []Activity{
		{
			ID: "a1", Category: CategorySports, SubCategory: "羽毛球",
			Title: "周六下午羽毛球双打，缺2人", Time: "2024-03-02 14:00", Location: "奥体中心羽毛球馆",
			Description: "水平中等，欢迎爱运动的小伙伴加入。",
			CreatorID:   "2", ParticipantIDs: []string{"2", "1"}, MaxParticipants: 4,
		},
		{
			ID: "a2", Category: CategoryCoffeeChat, SubCategory: "职场交流",
			Title: "互联网产品经理经验交流", Time: "2024-03-03 10:30", Location: "星巴克(静安寺店)",
			Description: "聊聊AI时代的产品转型，欢迎同行。",
			CreatorID:   "3", ParticipantIDs: []string{"3"}, MaxParticipants: 3,
		},
		{
			ID: "a3", Category: CategoryBoardGame, SubCategory: "剧本杀",
			Title: "《昆仑》硬核推理本，缺1人", Time: "2024-03-02 18:30", Location: "迷雾剧本杀工作室",
			Description: "已有5人，来个逻辑强的小伙伴。",
			CreatorID:   "1", ParticipantIDs: []string{"1", "2", "4"}, MaxParticipants: 6,
		},
		{
			ID: "a4", Category: CategoryFamily, SubCategory: "手工DIY",
			Title: "周末亲子陶艺体验", Time: "2024-03-03 15:00", Location: "泥好陶艺馆",
			Description: "带小朋友一起体验捏泥巴的乐趣。",
			CreatorID:   "4", ParticipantIDs: []string{"4"}, MaxParticipants: 5,
		},
		{
			ID: "a5", Category: CategoryOutdoor, SubCategory: "徒步",
			Title: "香山赏红叶徒步活动", Time: "2024-03-09 08:30", Location: "香山公园东门集合",
			Description: "春天也要去爬山！呼吸新鲜空气，强度适中。",
			CreatorID:   "1", ParticipantIDs: []string{"1", "3"}, MaxParticipants: 10,
		},
		{
			ID: "a6", Category: CategorySports, SubCategory: "篮球",
			Title: "下午3点半场4V4，缺3人", Time: "2024-03-02 15:30", Location: "洛克公园(世博店)",
			Description: "纯娱乐，不打球霸，欢迎加入。",
			CreatorID:   "2", ParticipantIDs: []string{"2", "4"}, MaxParticipants: 8,
		},
		{
			ID: "a7", Category: CategoryCoffeeChat, SubCategory: "创业分享",
			Title: "独立开发者的小众出海经", Time: "2024-03-05 19:00", Location: "WeWork会议室",
			Description: "分享最近出海产品的经验，欢迎交流。",
			CreatorID:   "3", ParticipantIDs: []string{"3"}, MaxParticipants: 4,
		},
	}
}
