package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/jonathan/founder-blueprint/internal/llm"
	"github.com/jonathan/founder-blueprint/internal/schemas"
	"github.com/jonathan/founder-blueprint/internal/types"
)

// Orchestrator coordinates the AI recommendation path. Every failure point
// degrades to the deterministic fallback; GetRecommendations never returns
// an error and always produces a structurally valid response.
type Orchestrator struct {
	client llm.Client // nil when the LLM is unconfigured
}

// NewOrchestrator creates an orchestrator. A nil client is valid and means
// fallback-only operation.
func NewOrchestrator(client llm.Client) *Orchestrator {
	return &Orchestrator{client: client}
}

// envelope mirrors the JSON contract in the personalization prompt. Items
// are kept loosely typed because the model's output is untrusted and gets
// re-mapped field by field.
type envelope struct {
	Recommendations  []map[string]any `json:"recommendations"`
	SkillGaps        []any            `json:"skillGaps"`
	NextMilestones   []any            `json:"nextMilestones"`
	IndustryInsights []any            `json:"industryInsights"`
}

// GetRecommendations returns personalized recommendations for a profile.
func (o *Orchestrator) GetRecommendations(ctx context.Context, profile types.UserProfile) types.AIRecommendationResponse {
	if o.client == nil {
		log.Printf("[recommend] LLM not configured, using fallback recommendations")
		return Fallback(profile)
	}

	response, err := o.generate(ctx, profile)
	if err != nil {
		log.Printf("[recommend] AI path failed (using fallback): %v", err)
		return Fallback(profile)
	}
	return response
}

func (o *Orchestrator) generate(ctx context.Context, profile types.UserProfile) (types.AIRecommendationResponse, error) {
	prompt := BuildPersonalizationPrompt(profile)

	raw, err := o.client.GenerateJSON(ctx, prompt)
	if err != nil {
		return types.AIRecommendationResponse{}, fmt.Errorf("llm call: %w", err)
	}
	if raw == "" {
		return types.AIRecommendationResponse{}, fmt.Errorf("empty response from model")
	}

	content := llm.CleanJSONBlock(raw)

	if err := schemas.ValidateJSONString(schemas.RecommendationEnvelope, content); err != nil {
		return types.AIRecommendationResponse{}, fmt.Errorf("response envelope: %w", err)
	}

	var parsed envelope
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return types.AIRecommendationResponse{}, fmt.Errorf("parse response: %w", err)
	}

	recommendations := make([]types.ContentRecommendation, 0, len(parsed.Recommendations))
	for idx, item := range parsed.Recommendations {
		recommendations = append(recommendations, mapRecommendation(item, idx))
	}

	return types.AIRecommendationResponse{
		Recommendations: recommendations,
		PersonalizationDetails: types.PersonalizationDetails{
			MatchedGoals:     firstN(profile.Goals, 3),
			SkillGaps:        stringSlice(parsed.SkillGaps),
			NextMilestones:   stringSlice(parsed.NextMilestones),
			IndustryInsights: stringSlice(parsed.IndustryInsights),
		},
		CacheHit: false,
	}, nil
}

// mapRecommendation converts one untrusted LLM item into a well-formed
// recommendation. Field presence and types are never trusted: every field
// has a default and the relevance score is clamped to [0,100].
func mapRecommendation(item map[string]any, idx int) types.ContentRecommendation {
	return types.ContentRecommendation{
		ID:             fmt.Sprintf("rec-%d", idx+1),
		Title:          stringField(item, "title", "Untitled"),
		Category:       stringField(item, "category", "General"),
		RelevanceScore: clampScore(item["relevanceScore"]),
		Summary:        stringField(item, "summary", ""),
		Reason:         stringField(item, "reason", ""),
		Priority:       stringField(item, "priority", types.PriorityMedium),
	}
}

func stringField(item map[string]any, key, fallback string) string {
	if v, ok := item[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func clampScore(v any) int {
	score, ok := numeric(v)
	if !ok {
		return 75
	}
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func numeric(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	default:
		return 0, false
	}
}

func stringSlice(values []any) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
