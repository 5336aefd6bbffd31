package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/founder-blueprint/internal/types"
)

const startupColumns = `id, user_id, full_name, startup_name, industry, stage, founder_count,
	domain_purchased, trademark_completed, entity_registered, goals, onboarding_completed,
	created_at, updated_at`

func scanStartup(row pgx.Row) (*types.Startup, error) {
	var s types.Startup
	var goals StringArray
	err := row.Scan(&s.ID, &s.UserID, &s.FullName, &s.StartupName, &s.Industry, &s.Stage,
		&s.FounderCount, &s.DomainPurchased, &s.TrademarkCompleted, &s.EntityRegistered,
		&goals, &s.OnboardingCompleted, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.Goals = goals
	return &s, nil
}

// CreateStartupOnboarding persists a startup, its founding team, and its
// initial blueprint in one transaction. Either everything from the
// onboarding wizard lands, or nothing does.
func (db *DB) CreateStartupOnboarding(
	ctx context.Context,
	startup *types.Startup,
	team []types.FoundingTeamMember,
	content types.BlueprintContent,
) (*types.Startup, []types.FoundingTeamMember, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	err = tx.QueryRow(ctx,
		`INSERT INTO startups (user_id, full_name, startup_name, industry, stage, founder_count,
			domain_purchased, trademark_completed, entity_registered, goals, onboarding_completed)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, TRUE)
		 RETURNING id, created_at, updated_at`,
		startup.UserID, startup.FullName, startup.StartupName, startup.Industry, startup.Stage,
		startup.FounderCount, startup.DomainPurchased, startup.TrademarkCompleted,
		startup.EntityRegistered, StringArray(startup.Goals),
	).Scan(&startup.ID, &startup.CreatedAt, &startup.UpdatedAt)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create startup: %w", err)
	}
	startup.OnboardingCompleted = true

	created, err := insertTeam(ctx, tx, startup.ID, team)
	if err != nil {
		return nil, nil, err
	}

	if _, err := insertBlueprint(ctx, tx, startup.ID, content); err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to commit onboarding: %w", err)
	}
	return startup, created, nil
}

// GetStartup retrieves a startup by ID. Returns nil when not found.
func (db *DB) GetStartup(ctx context.Context, startupID uuid.UUID) (*types.Startup, error) {
	s, err := scanStartup(db.pool.QueryRow(ctx,
		`SELECT `+startupColumns+` FROM startups WHERE id = $1`, startupID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get startup: %w", err)
	}
	return s, nil
}

// StartupFilters holds optional filters for listing a user's startups.
type StartupFilters struct {
	Search string
	Limit  int
	Offset int
}

// ListStartups retrieves startups owned by a user, newest first.
func (db *DB) ListStartups(ctx context.Context, userID uuid.UUID, filters StartupFilters) ([]types.Startup, error) {
	if filters.Limit == 0 {
		filters.Limit = 10
	}

	query := `SELECT ` + startupColumns + ` FROM startups WHERE user_id = $1`
	args := []any{userID}
	argNum := 2

	if filters.Search != "" {
		query += fmt.Sprintf(" AND (startup_name ILIKE $%d OR industry ILIKE $%d OR stage ILIKE $%d)",
			argNum, argNum, argNum)
		args = append(args, "%"+filters.Search+"%")
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argNum, argNum+1)
	args = append(args, filters.Limit, filters.Offset)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list startups: %w", err)
	}
	defer rows.Close()

	var startups []types.Startup
	for rows.Next() {
		s, err := scanStartup(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan startup: %w", err)
		}
		startups = append(startups, *s)
	}
	return startups, nil
}

// StartupUpdate holds optional field updates; nil fields are left unchanged.
type StartupUpdate struct {
	FullName            *string
	StartupName         *string
	Industry            *string
	Stage               *string
	FounderCount        *int
	DomainPurchased     *bool
	TrademarkCompleted  *bool
	EntityRegistered    *bool
	Goals               *[]string
	OnboardingCompleted *bool
}

// buildStartupUpdate assembles the UPDATE statement for the fields set in
// update. Returns an empty query when there is nothing to change.
func buildStartupUpdate(startupID uuid.UUID, update StartupUpdate) (string, []any) {
	sets := []string{}
	args := []any{}
	argNum := 1

	add := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argNum))
		args = append(args, value)
		argNum++
	}

	if update.FullName != nil {
		add("full_name", *update.FullName)
	}
	if update.StartupName != nil {
		add("startup_name", *update.StartupName)
	}
	if update.Industry != nil {
		add("industry", *update.Industry)
	}
	if update.Stage != nil {
		add("stage", *update.Stage)
	}
	if update.FounderCount != nil {
		add("founder_count", *update.FounderCount)
	}
	if update.DomainPurchased != nil {
		add("domain_purchased", *update.DomainPurchased)
	}
	if update.TrademarkCompleted != nil {
		add("trademark_completed", *update.TrademarkCompleted)
	}
	if update.EntityRegistered != nil {
		add("entity_registered", *update.EntityRegistered)
	}
	if update.Goals != nil {
		add("goals", StringArray(*update.Goals))
	}
	if update.OnboardingCompleted != nil {
		add("onboarding_completed", *update.OnboardingCompleted)
	}

	if len(sets) == 0 {
		return "", nil
	}

	query := "UPDATE startups SET "
	for i, set := range sets {
		if i > 0 {
			query += ", "
		}
		query += set
	}
	query += fmt.Sprintf(", updated_at = NOW() WHERE id = $%d", argNum)
	args = append(args, startupID)
	return query, args
}

// UpdateStartup applies a partial update to a startup.
func (db *DB) UpdateStartup(ctx context.Context, startupID uuid.UUID, update StartupUpdate) error {
	query, args := buildStartupUpdate(startupID, update)
	if query == "" {
		return nil
	}

	result, err := db.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update startup: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("startup not found: %s", startupID)
	}
	return nil
}

// ListTeamMembers retrieves a startup's founding team in insertion order.
func (db *DB) ListTeamMembers(ctx context.Context, startupID uuid.UUID) ([]types.FoundingTeamMember, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, startup_id, name, skills, created_at
		 FROM founding_team WHERE startup_id = $1 ORDER BY created_at ASC, id ASC`,
		startupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	defer rows.Close()

	var members []types.FoundingTeamMember
	for rows.Next() {
		var m types.FoundingTeamMember
		var skills StringArray
		if err := rows.Scan(&m.ID, &m.StartupID, &m.Name, &skills, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan team member: %w", err)
		}
		m.Skills = skills
		members = append(members, m)
	}
	return members, nil
}

// ReplaceTeam swaps a startup's entire roster inside one transaction.
// Concurrent readers see either the old roster or the new one, never a
// partial set.
func (db *DB) ReplaceTeam(ctx context.Context, startupID uuid.UUID, team []types.FoundingTeamMember) ([]types.FoundingTeamMember, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.Exec(ctx, `DELETE FROM founding_team WHERE startup_id = $1`, startupID); err != nil {
		return nil, fmt.Errorf("failed to clear team: %w", err)
	}

	created, err := insertTeam(ctx, tx, startupID, team)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit team replacement: %w", err)
	}
	return created, nil
}

func insertTeam(ctx context.Context, tx pgx.Tx, startupID uuid.UUID, team []types.FoundingTeamMember) ([]types.FoundingTeamMember, error) {
	created := make([]types.FoundingTeamMember, 0, len(team))
	for _, member := range team {
		m := member
		m.StartupID = startupID
		err := tx.QueryRow(ctx,
			`INSERT INTO founding_team (startup_id, name, skills)
			 VALUES ($1, $2, $3)
			 RETURNING id, created_at`,
			startupID, m.Name, StringArray(m.Skills),
		).Scan(&m.ID, &m.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to insert team member: %w", err)
		}
		created = append(created, m)
	}
	return created, nil
}
