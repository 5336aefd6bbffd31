//go:build integration

package db

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/founder-blueprint/internal/types"
)

func TestIntegration_UpsertBlueprint(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	startup := createTestStartup(t, db, testRoster("Alice"))

	// Onboarding already wrote the initial blueprint; clear it so the
	// first upsert exercises the insert path.
	_, err := db.pool.Exec(ctx, `DELETE FROM blueprints WHERE startup_id = $1`, startup.ID)
	require.NoError(t, err)

	first := types.BlueprintContent{
		LegalTasks: []types.LegalTask{{ID: "legal-domain", Task: "Purchase domain name", Priority: "high"}},
		NextSteps:  []string{"a", "b", "c"},
	}
	bp, created, err := db.UpsertBlueprint(ctx, startup.ID, first)
	require.NoError(t, err)
	assert.True(t, created, "first upsert inserts")
	assert.Equal(t, startup.ID, bp.StartupID)

	second := first
	second.LegalTasks = []types.LegalTask{{ID: "legal-domain", Task: "Purchase domain name", Priority: "high", Completed: true}}
	bp2, created, err := db.UpsertBlueprint(ctx, startup.ID, second)
	require.NoError(t, err)
	assert.False(t, created, "second upsert updates in place")
	assert.Equal(t, bp.ID, bp2.ID, "blueprint identity is stable across regenerations")

	fetched, err := db.GetBlueprintByStartup(ctx, startup.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.True(t, fetched.Content.LegalTasks[0].Completed)
}

func TestIntegration_GetBlueprintByStartup_NotFound(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()

	bp, err := db.GetBlueprintByStartup(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, bp)
}

func TestIntegration_UpdateBlueprintContent(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	startup := createTestStartup(t, db, testRoster("Alice"))
	bp, err := db.GetBlueprintByStartup(ctx, startup.ID)
	require.NoError(t, err)
	require.NotNil(t, bp)

	toggled := bp.Content
	toggled.LegalTasks[0].Completed = true
	require.NoError(t, db.UpdateBlueprintContent(ctx, bp.ID, toggled))

	after, err := db.GetBlueprintByStartup(ctx, startup.ID)
	require.NoError(t, err)
	assert.True(t, after.Content.LegalTasks[0].Completed)
	// Toggling a task is not a regeneration
	assert.Equal(t, bp.GeneratedAt.UTC(), after.GeneratedAt.UTC())
}

func TestIntegration_UpdateBlueprintContent_NotFound(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()

	err := db.UpdateBlueprintContent(context.Background(), uuid.New(), types.BlueprintContent{})
	assert.Error(t, err)
}
