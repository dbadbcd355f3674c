package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bet-engine/internal/model"
)

// Ensure implementation satisfies interface at compile time
var _ Catalog = (*PostgresCatalog)(nil)

// PostgresCatalog reads events from the shared events table.
type PostgresCatalog struct {
	pool *pgxpool.Pool
}

func NewPostgresCatalog(pool *pgxpool.Pool) *PostgresCatalog {
	return &PostgresCatalog{pool: pool}
}

func (c *PostgresCatalog) EventByID(ctx context.Context, eventID int64) (*model.Event, error) {
	query := `
        SELECT id, name, home_team, away_team, home_odds, draw_odds, away_odds, starts_at, status, result
        FROM events WHERE id = $1`

	ev := &model.Event{}
	err := c.pool.QueryRow(ctx, query, eventID).
		Scan(&ev.ID, &ev.Name, &ev.HomeTeam, &ev.AwayTeam, &ev.HomeOdds, &ev.DrawOdds, &ev.AwayOdds, &ev.StartsAt, &ev.Status, &ev.Result)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return ev, nil
}
