package messaging

import "time"

// ==================== Topic 定义 ====================

const (
	TopicActivityCreated      = "activity.created"
	TopicActivityMemberJoined = "activity.member.joined"
	TopicFavoriteToggled      = "favorite.toggled"
	TopicProfileUpdated       = "profile.updated"
	TopicSubcategoryAdded     = "subcategory.added"
)

// AllTopics 全部探索事件主题（动态流订阅使用）
var AllTopics = []string{
	TopicActivityCreated,
	TopicActivityMemberJoined,
	TopicFavoriteToggled,
	TopicProfileUpdated,
	TopicSubcategoryAdded,
}

// ==================== 事件结构体 ====================

// ActivityCreatedEvent 活动创建事件
type ActivityCreatedEvent struct {
	ActivityID      string    `json:"activity_id"`
	CreatorID       string    `json:"creator_id"`
	Category        string    `json:"category"`
	SubCategory     string    `json:"sub_category"`
	Title           string    `json:"title"`
	MaxParticipants int       `json:"max_participants"`
	CreatedAt       time.Time `json:"created_at"`
}

// ActivityMemberJoinedEvent 用户加入活动事件
type ActivityMemberJoinedEvent struct {
	ActivityID       string    `json:"activity_id"`
	UserID           string    `json:"user_id"`
	ParticipantCount int       `json:"participant_count"`
	MaxParticipants  int       `json:"max_participants"`
	JoinedAt         time.Time `json:"joined_at"`
}

// FavoriteToggledEvent 收藏切换事件
type FavoriteToggledEvent struct {
	ActivityID string    `json:"activity_id"`
	UserID     string    `json:"user_id"`
	Favorited  bool      `json:"favorited"`
	ToggledAt  time.Time `json:"toggled_at"`
}

// ProfileUpdatedEvent 个人资料修改事件
// Field: name | occupation | gender | hobbies | avatar
type ProfileUpdatedEvent struct {
	UserID    string    `json:"user_id"`
	Field     string    `json:"field"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SubcategoryAddedEvent 新子分类事件（创建活动时自动登记）
type SubcategoryAddedEvent struct {
	Category    string    `json:"category"`
	SubCategory string    `json:"sub_category"`
	AddedAt     time.Time `json:"added_at"`
}
