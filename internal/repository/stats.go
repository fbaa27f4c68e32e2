package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var (
	ErrStatsNotFound  = errors.New("stats not found")
	ErrMalformedStats = errors.New("malformed stats record")
)

type StatsRepository interface {
	Get(ctx context.Context, sessionID string) (*entity.Stats, error)
	Save(ctx context.Context, sessionID string, stats *entity.Stats) error
}

type dbStats struct {
	client *redis.Client
}

func NewStatsRepository(client *redis.Client) StatsRepository {
	return &dbStats{
		client: client,
	}
}

func statsKey(sessionID string) string {
	return "stats:" + sessionID
}

func (that *dbStats) Get(ctx context.Context, sessionID string) (*entity.Stats, error) {
	response, err := that.client.Get(ctx, statsKey(sessionID)).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.Stats{}, ErrStatsNotFound
	}

	if err != nil {
		return &entity.Stats{}, fmt.Errorf("failed to get stats: %w", err)
	}

	var stats entity.Stats
	if err = json.Unmarshal([]byte(response), &stats); err != nil {
		return &entity.Stats{}, fmt.Errorf("%w: %w", ErrMalformedStats, err)
	}

	if !stats.IsValid() {
		return &entity.Stats{}, fmt.Errorf("%w: negative counter", ErrMalformedStats)
	}

	return &stats, nil
}

func (that *dbStats) Save(ctx context.Context, sessionID string, stats *entity.Stats) error {
	statsJSON, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("could not marshal stats: %w", err)
	}

	if err = that.client.Set(ctx, statsKey(sessionID), statsJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set stats: %w", err)
	}

	return nil
}
