// Package types provides type definitions for structured data used throughout the founder-blueprint system.
package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Closed sets for startup profile fields. Handlers validate against these
// on every write; the generators assume already-valid input.
var (
	ValidIndustries = []string{"food", "saas", "consumer", "healthcare", "fintech", "edtech"}
	ValidStages     = []string{"ideation", "mvp", "growth"}
	ValidGoals      = []string{"build_mvp", "validate_demand", "register_entity", "raise_funding", "hire_team"}
	ValidSkills     = []string{"product", "operations", "marketing", "sales", "engineering", "design"}
)

// IsValidIndustry reports whether v is one of the supported industries.
func IsValidIndustry(v string) bool { return contains(ValidIndustries, v) }

// IsValidStage reports whether v is one of the supported stages.
func IsValidStage(v string) bool { return contains(ValidStages, v) }

// IsValidGoal reports whether v is one of the supported founder goals.
func IsValidGoal(v string) bool { return contains(ValidGoals, v) }

// IsValidSkill reports whether v is one of the supported team skills.
func IsValidSkill(v string) bool { return contains(ValidSkills, v) }

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// Startup represents one founder's venture record.
type Startup struct {
	ID                  uuid.UUID `json:"id"`
	UserID              uuid.UUID `json:"userId"`
	FullName            string    `json:"fullName"`
	StartupName         string    `json:"startupName"`
	Industry            string    `json:"industry"`
	Stage               string    `json:"stage"`
	FounderCount        int       `json:"founderCount"`
	DomainPurchased     bool      `json:"domainPurchased"`
	TrademarkCompleted  bool      `json:"trademarkCompleted"`
	EntityRegistered    bool      `json:"entityRegistered"`
	Goals               []string  `json:"goals"` // insertion order preserved
	OnboardingCompleted bool      `json:"onboardingCompleted"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// FoundingTeamMember belongs to exactly one startup. The roster is always
// replaced as a whole set, never patched per member.
type FoundingTeamMember struct {
	ID        uuid.UUID `json:"id"`
	StartupID uuid.UUID `json:"startupId"`
	Name      string    `json:"name"`
	Skills    []string  `json:"skills"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserProfile is the flattened rule-evaluation input shared by the
// blueprint generator, the fallback generator, and the AI prompt builder.
type UserProfile struct {
	ID                 string   `json:"id"`
	StartupName        string   `json:"startupName"`
	Industry           string   `json:"industry"`
	Stage              string   `json:"stage"`
	Goals              []string `json:"goals"`
	TeamSkills         []string `json:"teamSkills"`
	FounderCount       int      `json:"founderCount"`
	DomainPurchased    bool     `json:"domainPurchased"`
	TrademarkCompleted bool     `json:"trademarkCompleted"`
	EntityRegistered   bool     `json:"entityRegistered"`
}

// ProfileFromStartup flattens a startup and its team into rule-engine input.
func ProfileFromStartup(s *Startup, team []FoundingTeamMember) UserProfile {
	skills := make([]string, 0)
	for _, m := range team {
		for _, sk := range m.Skills {
			skills = append(skills, strings.ToLower(sk))
		}
	}
	return UserProfile{
		ID:                 s.ID.String(),
		StartupName:        s.StartupName,
		Industry:           s.Industry,
		Stage:              s.Stage,
		Goals:              s.Goals,
		TeamSkills:         skills,
		FounderCount:       s.FounderCount,
		DomainPurchased:    s.DomainPurchased,
		TrademarkCompleted: s.TrademarkCompleted,
		EntityRegistered:   s.EntityRegistered,
	}
}
