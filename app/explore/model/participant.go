package model

import "github.com/pkg/errors"

// Gender 性别
type Gender string

const (
	GenderMale   Gender = "男"
	GenderFemale Gender = "女"
	GenderOther  Gender = "其他"
)

// Valid 是否为合法性别
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

var ErrParticipantNotFound = errors.New("参与者不存在")

// Participant 参与者（用户资料）
type Participant struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Gender     Gender   `json:"gender"`
	Hobbies    []string `json:"hobbies"`
	Occupation string   `json:"occupation"`
	Avatar     string   `json:"avatar"` // URL 或 data URI
}

// Clone 深拷贝（对外暴露时使用，避免调用方改写表内数据）
func (p *Participant) Clone() Participant {
	c := *p
	c.Hobbies = append([]string{}, p.Hobbies...)
	return c
}

// HasHobby 判断是否已有该爱好
func (p *Participant) HasHobby(tag string) bool {
	for _, h := range p.Hobbies {
		if h == tag {
			return true
		}
	}
	return false
}

// ==================== ParticipantTable 参与者表 ====================
//
// 参与者记录的唯一持有者。活动中只保存参与者ID，
// 渲染时再通过本表解析，因此资料修改会同步体现在所有活动上。

// ParticipantTable 参与者表
type ParticipantTable struct {
	byID  map[string]*Participant
	order []string
}

// NewParticipantTable 创建参与者表
func NewParticipantTable(participants ...Participant) *ParticipantTable {
	t := &ParticipantTable{byID: make(map[string]*Participant, len(participants))}
	for _, p := range participants {
		t.Put(p)
	}
	return t
}

// Put 新增或覆盖参与者
func (t *ParticipantTable) Put(p Participant) *Participant {
	stored := p.Clone()
	if _, exists := t.byID[p.ID]; !exists {
		t.order = append(t.order, p.ID)
	}
	t.byID[p.ID] = &stored
	return &stored
}

// Get 根据ID获取参与者（返回表内记录，可原地修改）
func (t *ParticipantTable) Get(id string) (*Participant, bool) {
	p, ok := t.byID[id]
	return p, ok
}

// MustGet 获取参与者，不存在时返回 ErrParticipantNotFound
func (t *ParticipantTable) MustGet(id string) (*Participant, error) {
	p, ok := t.byID[id]
	if !ok {
		return nil, ErrParticipantNotFound
	}
	return p, nil
}

// Resolve 批量解析参与者（保持顺序，跳过未知ID）
func (t *ParticipantTable) Resolve(ids []string) []Participant {
	result := make([]Participant, 0, len(ids))
	for _, id := range ids {
		if p, ok := t.byID[id]; ok {
			result = append(result, p.Clone())
		}
	}
	return result
}

// All 全部参与者（按注册顺序）
func (t *ParticipantTable) All() []Participant {
	return t.Resolve(t.order)
}

// Len 参与者数量
func (t *ParticipantTable) Len() int {
	return len(t.byID)
}
