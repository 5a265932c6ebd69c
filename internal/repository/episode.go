package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-gym/internal/entity"
)

var ErrEpisodeNotFound = errors.New("episode not found")

type EpisodeRepository interface {
	CreateOrUpdate(ctx context.Context, episode *entity.Episode) error
	GetByID(ctx context.Context, id string) (*entity.Episode, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbEpisode struct {
	client *redis.Client
}

func NewEpisodeRepository(client *redis.Client) EpisodeRepository {
	return &dbEpisode{
		client: client,
	}
}

func (that *dbEpisode) CreateOrUpdate(ctx context.Context, episode *entity.Episode) error {
	episodeJSON, err := json.Marshal(episode)
	if err != nil {
		return fmt.Errorf("failed to marshal episode: %w", err)
	}

	episodeKey := "episode:" + episode.ID
	if err = that.client.Set(ctx, episodeKey, episodeJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set episode: %w", err)
	}

	return nil
}

func (that *dbEpisode) GetByID(ctx context.Context, id string) (*entity.Episode, error) {
	episodeKey := "episode:" + id

	response, err := that.client.Get(ctx, episodeKey).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrEpisodeNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get episode by ID: %w", err)
	}

	var episode entity.Episode
	if err = json.Unmarshal([]byte(response), &episode); err != nil {
		return nil, fmt.Errorf("failed to unmarshal episode: %w", err)
	}

	return &episode, nil
}

func (that *dbEpisode) DeleteByID(ctx context.Context, id string) error {
	episodeKey := "episode:" + id

	if err := that.client.Del(ctx, episodeKey).Err(); err != nil {
		return fmt.Errorf("failed to delete episode by ID: %w", err)
	}

	return nil
}
