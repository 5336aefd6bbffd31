package types

import (
	"time"

	"github.com/google/uuid"
)

// LegalTask is one generated legal action item. ID is a stable rule-keyed
// slug, not an array index; completion toggles reference it across
// regenerations.
type LegalTask struct {
	ID          string `json:"id"`
	Task        string `json:"task"`
	Priority    string `json:"priority"`
	Completed   bool   `json:"completed"`
	Description string `json:"description"`
}

// TeamRecommendation suggests a role the founding team is missing.
type TeamRecommendation struct {
	Role     string `json:"role"`
	Priority string `json:"priority"`
	Reason   string `json:"reason"`
}

// OperationalMilestone is one milestone derived from a stated goal.
type OperationalMilestone struct {
	Milestone   string `json:"milestone"`
	Priority    string `json:"priority"`
	RelatedGoal string `json:"relatedGoal"`
}

// BlueprintContent is the rule engine's output. It is a value object:
// regenerating with identical input yields structurally identical content.
type BlueprintContent struct {
	LegalTasks            []LegalTask            `json:"legalTasks"`
	TeamRecommendations   []TeamRecommendation   `json:"teamRecommendations"`
	OperationalMilestones []OperationalMilestone `json:"operationalMilestones"`
	IndustryInsights      string                 `json:"industryInsights"`
	NextSteps             []string               `json:"nextSteps"`
}

// Blueprint is the persisted wrapper, one per startup.
type Blueprint struct {
	ID          uuid.UUID        `json:"id"`
	StartupID   uuid.UUID        `json:"startupId"`
	Content     BlueprintContent `json:"content"`
	GeneratedAt time.Time        `json:"generatedAt"`
}
