package leveldata

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCollisionData(t *testing.T) {
	data, err := LoadCollisionData(os.DirFS("testdata"), "levels/alpha.tmx")
	require.NoError(t, err)

	assert.Equal(t, 128, data.MapWidth)
	assert.Equal(t, 96, data.MapHeight)

	t.Run("solid runs in box space", func(t *testing.T) {
		assert.Equal(t, []Rect{
			{X: 120, Y: 56, W: 16, H: 16},
			{X: 120, Y: 40, W: 16, H: 16},
			{X: 64, Y: 8, W: 128, H: 16},
		}, data.SolidRects)
	})

	t.Run("obstacles", func(t *testing.T) {
		require.Len(t, data.Obstacles, 2)

		platform := data.Obstacles[0]
		assert.Equal(t, KindPlatform, platform.Kind)
		assert.Equal(t, Rect{X: 48, Y: 76, W: 32, H: 8}, platform.Rect)
		assert.Equal(t, 48.0, platform.MoveX)
		assert.Zero(t, platform.MoveY)
		assert.Equal(t, 2.0, platform.Seconds)
		assert.True(t, platform.Moving())

		block := data.Obstacles[1]
		assert.Equal(t, KindSolid, block.Kind, "kind defaults to solid")
		assert.Equal(t, Rect{X: 8, Y: 88, W: 16, H: 16}, block.Rect)
		assert.False(t, block.Moving())
	})

	t.Run("spawns sorted by index", func(t *testing.T) {
		require.Len(t, data.SpawnPoints, 2)

		assert.Equal(t, SpawnPoint{X: 24, Y: 32, Index: 0, Width: 8, Height: 8, SpeedY: -12}, data.SpawnPoints[0])
		assert.Equal(t, SpawnPoint{X: 64, Y: 56, Index: 1, SpeedX: 30}, data.SpawnPoints[1])
	})
}

func TestSortSpawns(t *testing.T) {
	spawns := []SpawnPoint{
		{X: 10, Index: 2},
		{X: 90, Index: 0},
		{X: 50, Index: 1},
		{X: 20, Index: 1},
	}

	sortSpawns(spawns)

	assert.Equal(t, []SpawnPoint{
		{X: 90, Index: 0},
		{X: 20, Index: 1},
		{X: 50, Index: 1},
		{X: 10, Index: 2},
	}, spawns)
}

func TestLoadCollisionDataErrors(t *testing.T) {
	_, err := LoadCollisionData(os.DirFS("testdata"), "levels/missing.tmx")
	assert.Error(t, err)

	_, err = LoadCollisionData(os.DirFS("testdata"), "broken/bad.tmx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lava")
}

func TestLoadAllLevels(t *testing.T) {
	levels, names, err := LoadAllLevels(os.DirFS("testdata"), "levels")
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha", "beta"}, names)
	require.Contains(t, levels, "beta")
	assert.Equal(t, []Rect{
		{X: 16, Y: 8, W: 32, H: 16},
		{X: 56, Y: 8, W: 16, H: 16},
	}, levels["beta"].SolidRects)

	_, _, err = LoadAllLevels(os.DirFS("testdata"), "empty")
	assert.Error(t, err)
}
