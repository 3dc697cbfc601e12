package state

import (
	"slices"
	"strings"

	"activity-discovery/app/explore/model"
	"activity-discovery/common/errorx"
)

// ProfileField 可编辑的资料字段
type ProfileField string

const (
	FieldName       ProfileField = "name"
	FieldOccupation ProfileField = "occupation"
	FieldGender     ProfileField = "gender"
)

// 事件中使用的字段名（非 UpdateField 可编辑字段）
const (
	fieldHobbies = "hobbies"
	fieldAvatar  = "avatar"
)

// Profile 当前用户资料
//
// 直接修改参与者表中的那一条记录，
// 所有引用该用户的活动在下次渲染时即可看到新资料。
type Profile struct {
	table  *model.ParticipantTable
	userID string
}

// NewProfile 创建当前用户资料视图
func NewProfile(table *model.ParticipantTable, userID string) *Profile {
	return &Profile{table: table, userID: userID}
}

// UserID 当前用户ID
func (p *Profile) UserID() string {
	return p.userID
}

// Current 当前用户资料副本
func (p *Profile) Current() (model.Participant, error) {
	rec, err := p.record()
	if err != nil {
		return model.Participant{}, err
	}
	return rec.Clone(), nil
}

func (p *Profile) record() (*model.Participant, error) {
	rec, ok := p.table.Get(p.userID)
	if !ok {
		return nil, errorx.ErrParticipantNotFound(p.userID)
	}
	return rec, nil
}

// UpdateField 修改单个字段
func (p *Profile) UpdateField(field ProfileField, value string) error {
	rec, err := p.record()
	if err != nil {
		return err
	}

	switch field {
	case FieldName:
		rec.Name = value
	case FieldOccupation:
		rec.Occupation = value
	case FieldGender:
		g := model.Gender(value)
		if !g.Valid() {
			return errorx.ErrInvalidParams("性别只能是 男/女/其他")
		}
		rec.Gender = g
	default:
		return errorx.ErrInvalidProfileField(string(field))
	}
	return nil
}

// AddHobby 添加爱好标签
// 去除首尾空白，空串或已存在时忽略，返回是否新增
func (p *Profile) AddHobby(tag string) (bool, error) {
	rec, err := p.record()
	if err != nil {
		return false, err
	}
	tag = strings.TrimSpace(tag)
	if tag == "" || rec.HasHobby(tag) {
		return false, nil
	}
	rec.Hobbies = append(rec.Hobbies, tag)
	return true, nil
}

// RemoveHobby 删除爱好标签（精确匹配），返回是否删除
func (p *Profile) RemoveHobby(tag string) (bool, error) {
	rec, err := p.record()
	if err != nil {
		return false, err
	}
	idx := slices.Index(rec.Hobbies, tag)
	if idx < 0 {
		return false, nil
	}
	rec.Hobbies = slices.Delete(rec.Hobbies, idx, idx+1)
	return true, nil
}

// ReplaceAvatar 替换头像（URL 或 data URI，不做解析）
func (p *Profile) ReplaceAvatar(data string) error {
	rec, err := p.record()
	if err != nil {
		return err
	}
	rec.Avatar = data
	return nil
}
