package recommend

import (
	"fmt"
	"strings"

	"github.com/jonathan/founder-blueprint/internal/types"
)

// promptIndustryContext describes industry-specific challenges for the
// advisor prompt, keyed by lowercase industry.
var promptIndustryContext = map[string]string{
	"food":       "Food industry requires health permits, supplier agreements, and often significant upfront inventory costs",
	"saas":       "SaaS businesses focus on product-market fit, unit economics, and scalable customer acquisition",
	"consumer":   "Consumer products require brand building, distribution channels, and customer feedback loops",
	"healthcare": "Healthcare startups must navigate HIPAA compliance, FDA regulations, and complex insurance systems",
	"fintech":    "Fintech requires banking partnerships, regulatory compliance (licenses), and strong security infrastructure",
	"edtech":     "EdTech must consider FERPA/COPPA compliance, user engagement metrics, and educational outcomes",
}

var promptStageDescriptions = map[string]string{
	"ideation": "Pre-product, validating problem and solution, forming founding team",
	"mvp":      "Building first product version, getting initial users, iterating based on feedback",
	"growth":   "Product-market fit achieved, scaling team and operations, expanding market reach",
}

// BuildPersonalizationPrompt renders the full advisor prompt for a profile,
// including the strict JSON output contract the orchestrator parses against.
func BuildPersonalizationPrompt(profile types.UserProfile) string {
	var sb strings.Builder

	sb.WriteString("You are an expert startup advisor and content recommendation engine for tech founders.\n\n")

	startupName := profile.StartupName
	if startupName == "" {
		startupName = "New Startup"
	}

	sb.WriteString("USER STARTUP PROFILE:\n")
	fmt.Fprintf(&sb, "- Startup Name: %s\n", startupName)
	fmt.Fprintf(&sb, "- Industry: %s (%s)\n", profile.Industry, industryContext(profile.Industry))
	fmt.Fprintf(&sb, "- Stage: %s (%s)\n", profile.Stage, stageDescription(profile.Stage))
	fmt.Fprintf(&sb, "- Founder Team Size: %d\n", profile.FounderCount)
	fmt.Fprintf(&sb, "- Team Skills: %s\n", joinOr(profile.TeamSkills, "Not specified"))
	fmt.Fprintf(&sb, "- Primary Goals: %s\n\n", joinOr(profile.Goals, "Not specified"))

	sb.WriteString("CURRENT PROGRESS:\n")
	fmt.Fprintf(&sb, "- Domain Purchased: %s\n", yesNo(profile.DomainPurchased))
	fmt.Fprintf(&sb, "- Trademark Search Completed: %s\n", yesNo(profile.TrademarkCompleted))
	fmt.Fprintf(&sb, "- Business Entity Registered: %s\n\n", yesNo(profile.EntityRegistered))

	sb.WriteString(`TASK:
Generate 6 highly personalized content recommendations that will help this specific startup achieve their goals. Consider:
1. Their industry-specific challenges and opportunities
2. Their current stage and what comes next
3. Skill gaps in their founding team
4. What they've already completed vs what's still needed
5. Timing - what they need RIGHT NOW (not generic advice)

For each recommendation provide:
- title: Clear, specific title
- category: One of [Legal, Product, Growth, Fundraising, Operations, Hiring]
- relevanceScore: 0-100 (be honest, only recommend truly relevant content)
- summary: 2-sentence description of what this recommendation covers
- reason: Explain WHY this is relevant to their specific situation (mention their industry, stage, or goals)
- priority: "high", "medium", or "low"

Focus on actionable, specific recommendations - not generic startup advice.

RESPONSE FORMAT:
Return ONLY valid JSON with this structure:
{
  "recommendations": [
    {
      "title": "...",
      "category": "...",
      "relevanceScore": 95,
      "summary": "...",
      "reason": "...",
      "priority": "high"
    }
  ],
  "skillGaps": ["specific skill 1", "specific skill 2"],
  "nextMilestones": ["milestone 1", "milestone 2", "milestone 3"],
  "industryInsights": ["insight 1", "insight 2"]
}`)

	return sb.String()
}

func industryContext(industry string) string {
	if ctx, ok := promptIndustryContext[strings.ToLower(industry)]; ok {
		return ctx
	}
	return "Tech startup with unique industry challenges"
}

func stageDescription(stage string) string {
	if desc, ok := promptStageDescriptions[strings.ToLower(stage)]; ok {
		return desc
	}
	return stage
}

func joinOr(values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	return strings.Join(values, ", ")
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
