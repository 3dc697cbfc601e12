package model

// ==================== CategoryRegistry 分类注册表 ====================
//
// 功能说明：
//   - 维护 分类 -> 子分类列表 的映射
//   - 子分类列表有序、同一分类内不重复（大小写敏感的精确匹配）
//   - 只增不删：用户创建活动时输入的新子分类会永久加入列表
//
// 非并发安全，由 state.AppState 串行化访问

// CategoryEntry 注册表快照条目
type CategoryEntry struct {
	Category      Category `json:"category"`
	Subcategories []string `json:"subcategories"`
}

// CategoryRegistry 分类注册表
type CategoryRegistry struct {
	subs map[Category][]string
}

// NewCategoryRegistry 使用默认子分类创建注册表
func NewCategoryRegistry() *CategoryRegistry {
	r := &CategoryRegistry{subs: make(map[Category][]string, len(Categories))}
	for _, c := range Categories {
		r.subs[c] = append([]string(nil), defaultSubcategories[c]...)
	}
	return r
}

// Categories 返回全部分类（按展示顺序）
func (r *CategoryRegistry) Categories() []Category {
	return append([]Category(nil), Categories...)
}

// SubcategoriesOf 获取分类下的子分类列表（返回副本）
func (r *CategoryRegistry) SubcategoriesOf(category Category) []string {
	return append([]string(nil), r.subs[category]...)
}

// Has 判断子分类是否已存在
func (r *CategoryRegistry) Has(category Category, name string) bool {
	for _, s := range r.subs[category] {
		if s == name {
			return true
		}
	}
	return false
}

// HasAnywhere 判断子分类是否存在于任一分类
func (r *CategoryRegistry) HasAnywhere(name string) bool {
	for _, c := range Categories {
		if r.Has(c, name) {
			return true
		}
	}
	return false
}

// AddSubcategory 追加子分类
//
// 已存在时静默忽略，返回值表示注册表是否增长
func (r *CategoryRegistry) AddSubcategory(category Category, name string) bool {
	if !category.Valid() || name == "" || r.Has(category, name) {
		return false
	}
	r.subs[category] = append(r.subs[category], name)
	return true
}

// Snapshot 注册表快照（按分类展示顺序）
func (r *CategoryRegistry) Snapshot() []CategoryEntry {
	entries := make([]CategoryEntry, 0, len(Categories))
	for _, c := range Categories {
		entries = append(entries, CategoryEntry{
			Category:      c,
			Subcategories: r.SubcategoriesOf(c),
		})
	}
	return entries
}
