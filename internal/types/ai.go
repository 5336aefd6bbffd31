package types

// Recommendation priority and category values used by both the AI path and
// the deterministic fallback.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// ContentRecommendation is a single advisory card. Ephemeral: recomputed
// per dashboard view, never persisted.
type ContentRecommendation struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Category       string `json:"category"` // Legal, Product, Fundraising, Hiring, Operations, Growth
	RelevanceScore int    `json:"relevanceScore"`
	Summary        string `json:"summary"`
	Reason         string `json:"reason"`
	Priority       string `json:"priority"`
}

// PersonalizationDetails explains why the recommendations were chosen.
type PersonalizationDetails struct {
	MatchedGoals     []string `json:"matchedGoals"`
	SkillGaps        []string `json:"skillGaps"`
	NextMilestones   []string `json:"nextMilestones"`
	IndustryInsights []string `json:"industryInsights"`
}

// AIRecommendationResponse is the orchestrator's response shape. Both the
// AI path and the fallback path produce it; callers cannot observe failure.
type AIRecommendationResponse struct {
	Recommendations        []ContentRecommendation `json:"recommendations"`
	PersonalizationDetails PersonalizationDetails  `json:"personalizationDetails"`
	CacheHit               bool                    `json:"cacheHit"`
}
