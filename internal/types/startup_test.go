package types

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestClosedSets(t *testing.T) {
	t.Run("industries", func(t *testing.T) {
		assert.True(t, IsValidIndustry("saas"))
		assert.True(t, IsValidIndustry("fintech"))
		assert.False(t, IsValidIndustry("SaaS"), "matching is case-sensitive")
		assert.False(t, IsValidIndustry("spacetech"))
	})

	t.Run("stages", func(t *testing.T) {
		for _, stage := range []string{"ideation", "mvp", "growth"} {
			assert.True(t, IsValidStage(stage))
		}
		assert.False(t, IsValidStage("seed"))
	})

	t.Run("goals", func(t *testing.T) {
		assert.True(t, IsValidGoal("build_mvp"))
		assert.True(t, IsValidGoal("hire_team"))
		assert.False(t, IsValidGoal("go_public"))
	})

	t.Run("skills", func(t *testing.T) {
		assert.True(t, IsValidSkill("engineering"))
		assert.False(t, IsValidSkill(""))
	})
}

func TestProfileFromStartup(t *testing.T) {
	startup := &Startup{
		ID:                 uuid.New(),
		StartupName:        "Acme Analytics",
		Industry:           "saas",
		Stage:              "mvp",
		Goals:              []string{"build_mvp", "hire_team"},
		FounderCount:       2,
		DomainPurchased:    true,
		TrademarkCompleted: false,
		EntityRegistered:   true,
	}
	team := []FoundingTeamMember{
		{Name: "Jordan", Skills: []string{"Engineering", "Design"}},
		{Name: "Sam", Skills: []string{"MARKETING"}},
	}

	profile := ProfileFromStartup(startup, team)

	assert.Equal(t, startup.ID.String(), profile.ID)
	assert.Equal(t, "Acme Analytics", profile.StartupName)
	assert.Equal(t, "saas", profile.Industry)
	assert.Equal(t, "mvp", profile.Stage)
	assert.Equal(t, []string{"build_mvp", "hire_team"}, profile.Goals)
	// Team skills flatten across members and lowercase for rule matching
	assert.Equal(t, []string{"engineering", "design", "marketing"}, profile.TeamSkills)
	assert.Equal(t, 2, profile.FounderCount)
	assert.True(t, profile.DomainPurchased)
	assert.False(t, profile.TrademarkCompleted)
	assert.True(t, profile.EntityRegistered)
}

func TestProfileFromStartup_EmptyTeam(t *testing.T) {
	startup := &Startup{ID: uuid.New(), Industry: "fintech", Stage: "ideation"}

	profile := ProfileFromStartup(startup, nil)

	assert.NotNil(t, profile.TeamSkills)
	assert.Empty(t, profile.TeamSkills)
}

func TestAuthRequestValidation(t *testing.T) {
	t.Run("create user", func(t *testing.T) {
		valid := CreateUserRequest{Name: "Jordan", Email: "jordan@example.com", Password: "long-enough-pw"}
		assert.NoError(t, valid.Validate())

		short := valid
		short.Password = "short"
		assert.Error(t, short.Validate())

		badEmail := valid
		badEmail.Email = "not-an-email"
		assert.Error(t, badEmail.Validate())
	})

	t.Run("login", func(t *testing.T) {
		valid := LoginRequest{Email: "jordan@example.com", Password: "anything"}
		assert.NoError(t, valid.Validate())
		assert.Error(t, (&LoginRequest{Email: "jordan@example.com"}).Validate())
	})

	t.Run("update password", func(t *testing.T) {
		valid := UpdatePasswordRequest{CurrentPassword: "old-password", NewPassword: "new-password-123"}
		assert.NoError(t, valid.Validate())
		assert.Error(t, (&UpdatePasswordRequest{CurrentPassword: "old", NewPassword: "short"}).Validate())
	})
}
