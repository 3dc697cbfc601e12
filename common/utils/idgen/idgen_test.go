package idgen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerator_Next_SameMillisecond(t *testing.T) {
	fixed := time.UnixMilli(1709366400000)
	g := NewActivityGenerator().WithClock(func() time.Time { return fixed })

	assert.Equal(t, "a1709366400000", g.Next())
	assert.Equal(t, "a1709366400001", g.Next())
	assert.Equal(t, "a1709366400002", g.Next())
}

func TestGenerator_Next_ClockGoesBack(t *testing.T) {
	ts := time.UnixMilli(2000)
	g := NewGenerator("x").WithClock(func() time.Time { return ts })

	assert.Equal(t, "x2000", g.Next())
	ts = time.UnixMilli(1000)
	assert.Equal(t, "x2001", g.Next())
	ts = time.UnixMilli(5000)
	assert.Equal(t, "x5000", g.Next())
}

func TestGenerator_Next_Unique(t *testing.T) {
	g := NewActivityGenerator()
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := g.Next()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
