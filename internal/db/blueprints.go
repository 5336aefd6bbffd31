package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/founder-blueprint/internal/types"
)

// GetBlueprintByStartup retrieves a startup's blueprint. Returns nil when
// no blueprint has been generated yet.
func (db *DB) GetBlueprintByStartup(ctx context.Context, startupID uuid.UUID) (*types.Blueprint, error) {
	var bp types.Blueprint
	var raw []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, startup_id, content, generated_at
		 FROM blueprints WHERE startup_id = $1`,
		startupID,
	).Scan(&bp.ID, &bp.StartupID, &raw, &bp.GeneratedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get blueprint: %w", err)
	}
	if err := json.Unmarshal(raw, &bp.Content); err != nil {
		return nil, fmt.Errorf("failed to decode blueprint content: %w", err)
	}
	return &bp, nil
}

// UpsertBlueprint stores a startup's blueprint, replacing any existing one.
// The created flag reports whether this was the startup's first blueprint.
func (db *DB) UpsertBlueprint(ctx context.Context, startupID uuid.UUID, content types.BlueprintContent) (*types.Blueprint, bool, error) {
	raw, err := json.Marshal(content)
	if err != nil {
		return nil, false, fmt.Errorf("failed to encode blueprint content: %w", err)
	}

	var bp types.Blueprint
	err = db.pool.QueryRow(ctx,
		`UPDATE blueprints SET content = $2, generated_at = NOW()
		 WHERE startup_id = $1
		 RETURNING id, startup_id, generated_at`,
		startupID, raw,
	).Scan(&bp.ID, &bp.StartupID, &bp.GeneratedAt)
	if err == nil {
		bp.Content = content
		return &bp, false, nil
	}
	if err != pgx.ErrNoRows {
		return nil, false, fmt.Errorf("failed to update blueprint: %w", err)
	}

	err = db.pool.QueryRow(ctx,
		`INSERT INTO blueprints (startup_id, content)
		 VALUES ($1, $2)
		 RETURNING id, startup_id, generated_at`,
		startupID, raw,
	).Scan(&bp.ID, &bp.StartupID, &bp.GeneratedAt)
	if err != nil {
		return nil, false, fmt.Errorf("failed to insert blueprint: %w", err)
	}
	bp.Content = content
	return &bp, true, nil
}

// UpdateBlueprintContent overwrites the content of an existing blueprint
// without touching generated_at. Used for task completion toggles.
func (db *DB) UpdateBlueprintContent(ctx context.Context, blueprintID uuid.UUID, content types.BlueprintContent) error {
	raw, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to encode blueprint content: %w", err)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE blueprints SET content = $2 WHERE id = $1`,
		blueprintID, raw,
	)
	if err != nil {
		return fmt.Errorf("failed to update blueprint content: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("blueprint not found: %s", blueprintID)
	}
	return nil
}

func insertBlueprint(ctx context.Context, tx pgx.Tx, startupID uuid.UUID, content types.BlueprintContent) (*types.Blueprint, error) {
	raw, err := json.Marshal(content)
	if err != nil {
		return nil, fmt.Errorf("failed to encode blueprint content: %w", err)
	}

	var bp types.Blueprint
	err = tx.QueryRow(ctx,
		`INSERT INTO blueprints (startup_id, content)
		 VALUES ($1, $2)
		 RETURNING id, startup_id, generated_at`,
		startupID, raw,
	).Scan(&bp.ID, &bp.StartupID, &bp.GeneratedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert blueprint: %w", err)
	}
	bp.Content = content
	return &bp, nil
}
