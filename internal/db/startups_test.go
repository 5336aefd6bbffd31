package db

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func TestBuildStartupUpdate_Empty(t *testing.T) {
	query, args := buildStartupUpdate(uuid.New(), StartupUpdate{})
	assert.Empty(t, query)
	assert.Nil(t, args)
}

func TestBuildStartupUpdate_SingleField(t *testing.T) {
	id := uuid.New()
	query, args := buildStartupUpdate(id, StartupUpdate{StartupName: strPtr("Acme")})

	assert.Equal(t, "UPDATE startups SET startup_name = $1, updated_at = NOW() WHERE id = $2", query)
	assert.Equal(t, []any{"Acme", id}, args)
}

func TestBuildStartupUpdate_MultipleFields(t *testing.T) {
	id := uuid.New()
	query, args := buildStartupUpdate(id, StartupUpdate{
		Stage:           strPtr("growth"),
		FounderCount:    intPtr(3),
		DomainPurchased: boolPtr(true),
		Goals:           &[]string{"raise_funding"},
	})

	// Placeholders number sequentially in declaration order, with the
	// startup ID always last.
	assert.Equal(t,
		"UPDATE startups SET stage = $1, founder_count = $2, domain_purchased = $3, goals = $4, updated_at = NOW() WHERE id = $5",
		query)
	require.Len(t, args, 5)
	assert.Equal(t, "growth", args[0])
	assert.Equal(t, 3, args[1])
	assert.Equal(t, true, args[2])
	assert.Equal(t, StringArray{"raise_funding"}, args[3])
	assert.Equal(t, id, args[4])
}

func TestBuildStartupUpdate_AllFields(t *testing.T) {
	query, args := buildStartupUpdate(uuid.New(), StartupUpdate{
		FullName:            strPtr("Jordan Founder"),
		StartupName:         strPtr("Acme"),
		Industry:            strPtr("saas"),
		Stage:               strPtr("mvp"),
		FounderCount:        intPtr(2),
		DomainPurchased:     boolPtr(true),
		TrademarkCompleted:  boolPtr(false),
		EntityRegistered:    boolPtr(true),
		Goals:               &[]string{"build_mvp", "hire_team"},
		OnboardingCompleted: boolPtr(true),
	})

	assert.Len(t, args, 11)
	for _, column := range []string{
		"full_name", "startup_name", "industry", "stage", "founder_count",
		"domain_purchased", "trademark_completed", "entity_registered",
		"goals", "onboarding_completed",
	} {
		assert.Contains(t, query, column+" = $")
	}
	assert.Contains(t, query, fmt.Sprintf("WHERE id = $%d", len(args)))
}

func TestBuildStartupUpdate_ZeroValuesAreSet(t *testing.T) {
	// A pointer to a zero value is an explicit update, not a skip.
	query, args := buildStartupUpdate(uuid.New(), StartupUpdate{
		FounderCount:    intPtr(0),
		DomainPurchased: boolPtr(false),
	})

	assert.Contains(t, query, "founder_count = $1")
	assert.Contains(t, query, "domain_purchased = $2")
	assert.Equal(t, 0, args[0])
	assert.Equal(t, false, args[1])
}
