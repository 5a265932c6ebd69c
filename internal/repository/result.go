package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-gym/internal/entity"
)

type ResultRepository interface {
	Create(ctx context.Context, result *entity.EpisodeResult) error
	Stats(ctx context.Context) (*entity.ResultStats, error)
}

type resultRepository struct {
	conn *sql.DB
}

func NewResultRepository(conn *sql.DB) ResultRepository {
	return &resultRepository{
		conn: conn,
	}
}

func (that *resultRepository) Create(ctx context.Context, result *entity.EpisodeResult) error {
	query := `INSERT INTO episode_results (episode_id, outcome, reward, steps) VALUES (?, ?, ?, ?)`

	_, err := that.conn.ExecContext(ctx, query, result.EpisodeID, result.Outcome, result.Reward, result.Steps)
	if err != nil {
		return fmt.Errorf("can't save episode result: %w", err)
	}

	return nil
}

func (that *resultRepository) Stats(ctx context.Context) (*entity.ResultStats, error) {
	query := `SELECT outcome, COUNT(*), AVG(reward), AVG(steps) FROM episode_results GROUP BY outcome`

	rows, err := that.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("can't query episode results: %w", err)
	}
	defer rows.Close()

	stats := &entity.ResultStats{
		Outcomes: make(map[string]entity.OutcomeStats),
	}

	for rows.Next() {
		var outcome string
		var outcomeStats entity.OutcomeStats

		if err = rows.Scan(&outcome, &outcomeStats.Episodes, &outcomeStats.AvgReward, &outcomeStats.AvgSteps); err != nil {
			return nil, fmt.Errorf("can't scan episode results row: %w", err)
		}

		stats.Outcomes[outcome] = outcomeStats
		stats.Episodes += outcomeStats.Episodes
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read episode results rows: %w", err)
	}

	if stats.Episodes > 0 {
		wins := stats.Outcomes[entity.OutcomeAgentWin].Episodes
		stats.WinRate = float64(wins) / float64(stats.Episodes)
	}

	return stats, nil
}
