package recommend

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockClient implements llm.Client for orchestrator tests.
type mockClient struct {
	response string
	err      error
}

func (m *mockClient) GenerateContent(_ context.Context, _ string) (string, error) {
	return m.response, m.err
}

func (m *mockClient) GenerateJSON(_ context.Context, _ string) (string, error) {
	return m.response, m.err
}

func (m *mockClient) Close() error { return nil }

func TestOrchestrator_Unconfigured(t *testing.T) {
	o := NewOrchestrator(nil)
	profile := testProfile()

	resp := o.GetRecommendations(context.Background(), profile)

	assert.Equal(t, Fallback(profile), resp)
}

func TestOrchestrator_LLMErrorFallsBack(t *testing.T) {
	o := NewOrchestrator(&mockClient{err: fmt.Errorf("quota exceeded")})
	profile := testProfile()

	resp := o.GetRecommendations(context.Background(), profile)

	assert.Equal(t, Fallback(profile), resp)
}

func TestOrchestrator_EmptyResponseFallsBack(t *testing.T) {
	o := NewOrchestrator(&mockClient{response: ""})
	profile := testProfile()

	resp := o.GetRecommendations(context.Background(), profile)

	assert.Equal(t, Fallback(profile), resp)
}

func TestOrchestrator_MalformedJSONFallsBack(t *testing.T) {
	o := NewOrchestrator(&mockClient{response: "I recommend you register your entity."})
	profile := testProfile()

	resp := o.GetRecommendations(context.Background(), profile)

	assert.Equal(t, Fallback(profile), resp)
}

func TestOrchestrator_MissingEnvelopeFallsBack(t *testing.T) {
	// Valid JSON but no recommendations array.
	o := NewOrchestrator(&mockClient{response: `{"skillGaps": []}`})
	profile := testProfile()

	resp := o.GetRecommendations(context.Background(), profile)

	assert.Equal(t, Fallback(profile), resp)
}

func TestOrchestrator_ParsesValidResponse(t *testing.T) {
	response := `{
		"recommendations": [
			{
				"title": "Talk to your first 10 customers",
				"category": "Product",
				"relevanceScore": 92,
				"summary": "Interview early adopters.",
				"reason": "You are at ideation stage.",
				"priority": "high"
			}
		],
		"skillGaps": ["Sales"],
		"nextMilestones": ["Close first pilot"],
		"industryInsights": ["SaaS buyers expect free trials"]
	}`
	o := NewOrchestrator(&mockClient{response: response})
	profile := testProfile()

	resp := o.GetRecommendations(context.Background(), profile)

	require.Len(t, resp.Recommendations, 1)
	rec := resp.Recommendations[0]
	assert.Equal(t, "rec-1", rec.ID)
	assert.Equal(t, "Talk to your first 10 customers", rec.Title)
	assert.Equal(t, 92, rec.RelevanceScore)
	assert.Equal(t, "high", rec.Priority)
	assert.Equal(t, []string{"Sales"}, resp.PersonalizationDetails.SkillGaps)
	assert.Equal(t, []string{"build_mvp"}, resp.PersonalizationDetails.MatchedGoals)
	assert.False(t, resp.CacheHit)
}

func TestOrchestrator_StripsCodeFences(t *testing.T) {
	response := "```json\n{\"recommendations\": [{\"title\": \"Do the thing\"}]}\n```"
	o := NewOrchestrator(&mockClient{response: response})

	resp := o.GetRecommendations(context.Background(), testProfile())

	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, "Do the thing", resp.Recommendations[0].Title)
}

func TestOrchestrator_DefensiveItemMapping(t *testing.T) {
	response := `{
		"recommendations": [
			{},
			{"title": "Scored too high", "relevanceScore": 150},
			{"title": "Scored too low", "relevanceScore": -10},
			{"title": "Bad score type", "relevanceScore": "lots"}
		]
	}`
	o := NewOrchestrator(&mockClient{response: response})

	resp := o.GetRecommendations(context.Background(), testProfile())
	require.Len(t, resp.Recommendations, 4)

	empty := resp.Recommendations[0]
	assert.Equal(t, "Untitled", empty.Title)
	assert.Equal(t, "General", empty.Category)
	assert.Equal(t, 75, empty.RelevanceScore)
	assert.Equal(t, "", empty.Summary)
	assert.Equal(t, "", empty.Reason)
	assert.Equal(t, "medium", empty.Priority)

	assert.Equal(t, 100, resp.Recommendations[1].RelevanceScore)
	assert.Equal(t, 0, resp.Recommendations[2].RelevanceScore)
	assert.Equal(t, 75, resp.Recommendations[3].RelevanceScore)

	// Missing detail arrays default to empty, never nil panics.
	assert.Empty(t, resp.PersonalizationDetails.SkillGaps)
	assert.Empty(t, resp.PersonalizationDetails.NextMilestones)
}

func TestBuildPersonalizationPrompt(t *testing.T) {
	profile := testProfile()
	profile.TeamSkills = []string{"engineering", "design"}
	profile.DomainPurchased = true

	prompt := BuildPersonalizationPrompt(profile)

	assert.Contains(t, prompt, "Startup Name: Acme")
	assert.Contains(t, prompt, "Industry: saas")
	assert.Contains(t, prompt, "Team Skills: engineering, design")
	assert.Contains(t, prompt, "Domain Purchased: Yes")
	assert.Contains(t, prompt, "Trademark Search Completed: No")
	assert.Contains(t, prompt, "Return ONLY valid JSON")
}

func TestBuildPersonalizationPrompt_Defaults(t *testing.T) {
	profile := testProfile()
	profile.StartupName = ""
	profile.TeamSkills = nil
	profile.Goals = nil

	prompt := BuildPersonalizationPrompt(profile)

	assert.Contains(t, prompt, "Startup Name: New Startup")
	assert.Contains(t, prompt, "Team Skills: Not specified")
	assert.Contains(t, prompt, "Primary Goals: Not specified")
}
