package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEconomyConsume(t *testing.T) {
	e := NewEconomy(2, 5)
	require.True(t, e.TryConsume())
	require.True(t, e.TryConsume())
	require.Equal(t, 0, e.Ammo())
	require.True(t, e.Empty())

	assert.False(t, e.TryConsume(), "empty pool refuses the shot")
	assert.Equal(t, 0, e.Ammo(), "ammo never goes negative")
}

func TestEconomyRewardClampSequence(t *testing.T) {
	e := NewEconomy(4, 5)

	// Two kills rewarding +2 each: 4 -> 6 (clamped to 5) -> 7 (clamped to 5)
	e.Reward(2, 10)
	assert.Equal(t, 5, e.Ammo(), "4+2 clamps to 5")
	e.Reward(2, 10)
	assert.Equal(t, 5, e.Ammo(), "5+2 clamps to 5")
	assert.Equal(t, 20, e.Score())
}

func TestEconomyScoreNeverDecreases(t *testing.T) {
	e := NewEconomy(5, 5)
	e.Reward(0, 30)
	e.Reward(0, -100)
	assert.Equal(t, 30, e.Score())
}

func TestEconomyInitialClamp(t *testing.T) {
	tests := []struct {
		initial, max, want int
	}{
		{9, 5, 5},
		{-1, 5, 0},
		{3, 5, 3},
		{3, -2, 0},
	}
	for _, tt := range tests {
		e := NewEconomy(tt.initial, tt.max)
		assert.Equal(t, tt.want, e.Ammo(), "NewEconomy(%d, %d)", tt.initial, tt.max)
	}
}

func TestEconomyNegativeAmmoRewardFloors(t *testing.T) {
	e := NewEconomy(1, 5)
	e.Reward(-3, 0)
	assert.Equal(t, 0, e.Ammo())
}
