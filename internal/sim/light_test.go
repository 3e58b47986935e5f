package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinatorCycle(t *testing.T) {
	c := NewCoordinator(Default().Lights)

	t.Run("leader starts green, follower red", func(t *testing.T) {
		ls := c.Lights()
		assert.Equal(t, NorthSouth, ls[0].Axis)
		assert.Equal(t, Green, ls[0].Phase)
		assert.Equal(t, EastWest, ls[1].Axis)
		assert.Equal(t, Red, ls[1].Phase)
	})

	t.Run("green to yellow at 6000ms", func(t *testing.T) {
		c.Advance(5999)
		assert.Equal(t, Green, c.Lights()[0].Phase)
		c.Advance(6000)
		assert.Equal(t, Yellow, c.Lights()[0].Phase)
	})

	t.Run("yellow to red at 8000ms", func(t *testing.T) {
		c.Advance(7999)
		assert.Equal(t, Yellow, c.Lights()[0].Phase)
		c.Advance(8000)
		assert.Equal(t, Red, c.Lights()[0].Phase)
	})

	t.Run("red to green at 16000ms, full period", func(t *testing.T) {
		c.Advance(15999)
		assert.Equal(t, Red, c.Lights()[0].Phase)
		c.Advance(16000)
		assert.Equal(t, Green, c.Lights()[0].Phase)
	})
}

func TestFollowerSlaving(t *testing.T) {
	c := NewCoordinator(Default().Lights)

	t.Run("follower pinned red while leader runs", func(t *testing.T) {
		for now := int64(0); now < 8000; now += 16 {
			c.Advance(now)
			assert.Equal(t, Red, c.Lights()[1].Phase)
		}
	})

	t.Run("follower goes green the step the leader turns red", func(t *testing.T) {
		c.Advance(8000)
		assert.Equal(t, Red, c.Lights()[0].Phase)
		assert.Equal(t, Green, c.Lights()[1].Phase)
		assert.Equal(t, int64(8000), c.follower.phaseStart)
	})

	t.Run("follower runs its own timer from zero", func(t *testing.T) {
		c.Advance(13999)
		assert.Equal(t, Green, c.Lights()[1].Phase)
		c.Advance(14000) // 8000 + green duration
		assert.Equal(t, Yellow, c.Lights()[1].Phase)
		c.Advance(16000) // leader re-greens and pins the follower
		assert.Equal(t, Green, c.Lights()[0].Phase)
		assert.Equal(t, Red, c.Lights()[1].Phase)
	})
}

func TestSingleTransitionPerCall(t *testing.T) {
	c := NewCoordinator(Default().Lights)

	// A huge overshoot crosses every threshold, but a single call
	// still advances the leader exactly one phase.
	c.Advance(20000)
	assert.Equal(t, Yellow, c.Lights()[0].Phase)
	assert.Equal(t, int64(20000), c.leader.phaseStart)
}

func TestMutualExclusion(t *testing.T) {
	// Step sizes that do and do not divide the thresholds, so
	// transitions land both on and between frames.
	for _, step := range []int64{16, 17, 100, 333} {
		c := NewCoordinator(Default().Lights)
		for now := int64(0); now <= 100_000; now += step {
			c.Advance(now)
			ls := c.Lights()
			assert.False(t, ls[0].Phase != Red && ls[1].Phase != Red,
				"both axes non-red at t=%d (step %d): %v / %v", now, step, ls[0].Phase, ls[1].Phase)
			assert.LessOrEqual(t, c.leader.phaseStart, now)
			assert.LessOrEqual(t, c.follower.phaseStart, now)
		}
	}
}

func TestRightOfWay(t *testing.T) {
	c := NewCoordinator(Default().Lights)

	t.Run("leader green grants its axis only", func(t *testing.T) {
		assert.True(t, c.RightOfWay(North))
		assert.True(t, c.RightOfWay(South))
		assert.False(t, c.RightOfWay(East))
		assert.False(t, c.RightOfWay(West))
	})

	t.Run("yellow denies", func(t *testing.T) {
		c.Advance(6000)
		assert.Equal(t, Yellow, c.Lights()[0].Phase)
		assert.False(t, c.RightOfWay(North))
		assert.False(t, c.RightOfWay(East))
	})

	t.Run("follower green grants the other axis", func(t *testing.T) {
		c.Advance(8000)
		assert.True(t, c.RightOfWay(East))
		assert.True(t, c.RightOfWay(West))
		assert.False(t, c.RightOfWay(North))
		assert.False(t, c.RightOfWay(South))
	})
}

func TestDirectionAxis(t *testing.T) {
	assert.Equal(t, NorthSouth, North.Axis())
	assert.Equal(t, NorthSouth, South.Axis())
	assert.Equal(t, EastWest, East.Axis())
	assert.Equal(t, EastWest, West.Axis())
}
