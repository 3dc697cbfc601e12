// Package idgen 提供会话内唯一的业务ID生成工具
package idgen

import (
	"strconv"
	"sync"
	"time"
)

// ==================== 说明 ====================
// 活动ID生成策略：
//   - 格式: {prefix}{unix毫秒}，如 a1709366400000
//   - 基于创建时间戳生成，保证会话内唯一
//   - 同一毫秒内多次生成时顺延 1ms，保证单调递增
//
// 不做持久化，进程重启后从当前时间重新开始
// ==================== 活动ID生成器 ====================

// ActivityPrefix 活动ID前缀
const ActivityPrefix = "a"

// Generator 基于时间戳的单调ID生成器（并发安全）
type Generator struct {
	mu     sync.Mutex
	prefix string
	last   int64
	now    func() time.Time
}

// NewGenerator 创建ID生成器
func NewGenerator(prefix string) *Generator {
	return &Generator{
		prefix: prefix,
		now:    time.Now,
	}
}

// NewActivityGenerator 创建活动ID生成器
func NewActivityGenerator() *Generator {
	return NewGenerator(ActivityPrefix)
}

// WithClock 替换时钟（测试用）
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.now = now
	return g
}

// Next 生成下一个ID
// 格式: {prefix}{millis}
func (g *Generator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	millis := g.now().UnixMilli()
	if millis <= g.last {
		millis = g.last + 1
	}
	g.last = millis

	return g.prefix + strconv.FormatInt(millis, 10)
}
