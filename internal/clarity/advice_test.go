package clarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvise_BelowWarn(t *testing.T) {
	a := Advise(0.5)
	assert.True(t, a.Warn)
	assert.False(t, a.Blocked)
	assert.Equal(t, Tips, a.Tips)
}

func TestAdvise_Blocked(t *testing.T) {
	a := Advise(0.3)
	assert.True(t, a.Warn)
	assert.True(t, a.Blocked)
}

func TestAdvise_MinimumScoreIsNotBlocked(t *testing.T) {
	a := Advise(Score(""))
	assert.True(t, a.Warn)
	assert.False(t, a.Blocked)
}

func TestAdvise_Clear(t *testing.T) {
	a := Advise(0.6)
	assert.False(t, a.Warn)
	assert.Empty(t, a.Tips)
}

func TestLevelOf(t *testing.T) {
	assert.Equal(t, LevelLow, LevelOf(0.39))
	assert.Equal(t, LevelFair, LevelOf(0.4))
	assert.Equal(t, LevelFair, LevelOf(0.69))
	assert.Equal(t, LevelGood, LevelOf(0.7))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 90, Percent(0.9))
	assert.Equal(t, 40, Percent(0.4))
	assert.Equal(t, 100, Percent(1.0))
}
