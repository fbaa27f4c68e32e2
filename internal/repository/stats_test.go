package repository

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsRepository_Save(t *testing.T) {
	ctx, st := suite.New(t)

	statsRepo := NewStatsRepository(st.Storage)

	// Given: a tally after a few games
	stats := &entity.Stats{GamesPlayed: 3, HumanWins: 1, ComputerWins: 1, Draws: 1}

	// When: Save is called
	err := statsRepo.Save(ctx, "123", stats)

	// Then: no error should be returned and the record is flat JSON
	require.NoError(t, err)

	raw, err := st.Storage.Get(ctx, "stats:123").Result()
	require.NoError(t, err)
	assert.JSONEq(t, `{"gamesPlayed":3,"humanWins":1,"computerWins":1,"draws":1}`, raw)
}

func TestStatsRepository_Get(t *testing.T) {
	t.Run("Get_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		statsRepo := NewStatsRepository(st.Storage)

		// Given: a stored tally
		stats := &entity.Stats{GamesPlayed: 2, ComputerWins: 1, Draws: 1}
		require.NoError(t, statsRepo.Save(ctx, "123", stats))

		// When: Get is called for the same session
		retrieved, err := statsRepo.Get(ctx, "123")

		// Then: the tally matches
		require.NoError(t, err)
		assert.Equal(t, stats, retrieved)
	})

	t.Run("Get_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		statsRepo := NewStatsRepository(st.Storage)

		// When: Get is called for a session without a record
		retrieved, err := statsRepo.Get(ctx, "9999999")

		// Then: ErrStatsNotFound is returned with zero counters
		require.ErrorIs(t, err, ErrStatsNotFound)
		assert.Equal(t, &entity.Stats{}, retrieved)
	})

	t.Run("Get_Malformed", func(t *testing.T) {
		ctx, st := suite.New(t)

		statsRepo := NewStatsRepository(st.Storage)

		// Given: records that are not a valid tally
		require.NoError(t, st.Storage.Set(ctx, "stats:broken", "{not json", 0).Err())
		require.NoError(t, st.Storage.Set(ctx, "stats:negative", `{"gamesPlayed":-1}`, 0).Err())

		// When: Get is called
		_, errBroken := statsRepo.Get(ctx, "broken")
		negative, errNegative := statsRepo.Get(ctx, "negative")

		// Then: both are reported as malformed
		require.ErrorIs(t, errBroken, ErrMalformedStats)
		require.ErrorIs(t, errNegative, ErrMalformedStats)
		assert.Equal(t, &entity.Stats{}, negative)
	})
}
