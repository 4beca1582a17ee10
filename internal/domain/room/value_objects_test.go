//go:build unit

package room_test

import (
	"testing"

	"sitsmart/internal/domain/room"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatingStatsAdd(t *testing.T) {
	t.Run("first rating becomes the average", func(t *testing.T) {
		stats, err := room.NewRatingStats().Add(4)
		require.NoError(t, err)
		assert.Equal(t, 4.0, stats.Average())
		assert.Equal(t, 1, stats.Count())
	})

	t.Run("running average over several ratings", func(t *testing.T) {
		stats := room.NewRatingStats()
		for _, r := range []int{5, 3, 4} {
			next, err := stats.Add(r)
			require.NoError(t, err)
			stats = next
		}
		assert.Equal(t, 4.0, stats.Average())
		assert.Equal(t, 3, stats.Count())
	})

	t.Run("average is rounded to one decimal", func(t *testing.T) {
		stats := room.NewRatingStats()
		for _, r := range []int{5, 4, 4} {
			next, err := stats.Add(r)
			require.NoError(t, err)
			stats = next
		}
		assert.Equal(t, 4.3, stats.Average())
	})

	t.Run("out of range rating is rejected", func(t *testing.T) {
		_, err := room.NewRatingStats().Add(0)
		assert.ErrorIs(t, err, room.ErrRatingOutOfRange)
		_, err = room.NewRatingStats().Add(6)
		assert.ErrorIs(t, err, room.ErrRatingOutOfRange)
	})
}

func TestNewType(t *testing.T) {
	for _, valid := range []string{"classroom", "lab", "lecture_hall", "study_room"} {
		typ, err := room.NewType(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, typ.String())
	}

	_, err := room.NewType("gymnasium")
	assert.ErrorIs(t, err, room.ErrInvalidRoomType)
}

func TestNewBuilding(t *testing.T) {
	b, err := room.NewBuilding("ENG", "Engineering Hall")
	require.NoError(t, err)
	assert.Equal(t, "ENG", b.Code())
	assert.Equal(t, "Engineering Hall", b.Name())

	_, err = room.NewBuilding("", "Engineering Hall")
	assert.ErrorIs(t, err, room.ErrInvalidBuilding)
}
