package hal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockStep(t *testing.T) {
	now := time.Unix(100, 0)
	c := NewClock(func() time.Time { return now })

	assert.Equal(t, 0.0, c.Step(), "first step")

	now = now.Add(16 * time.Millisecond)
	assert.InDelta(t, 0.016, c.Step(), 1e-12)

	now = now.Add(time.Second)
	assert.InDelta(t, 1.0, c.Step(), 1e-12)

	assert.Equal(t, 0.0, c.Step(), "no time passed")
}

func TestClockBackwards(t *testing.T) {
	now := time.Unix(100, 0)
	c := NewClock(func() time.Time { return now })
	c.Step()

	now = now.Add(-time.Second)
	assert.Equal(t, 0.0, c.Step())

	now = now.Add(500 * time.Millisecond)
	assert.InDelta(t, 0.5, c.Step(), 1e-12)
}
