// Package recommend provides personalized content recommendations: an
// AI-backed orchestrator and a deterministic fallback that shares the same
// response shape.
package recommend

import (
	"fmt"
	"strings"

	"github.com/jonathan/founder-blueprint/internal/types"
)

const maxRecommendations = 6

// industryRecommendations holds the industry-specific fallback entry, keyed
// by lowercase industry. A miss is not an error; the slot is simply skipped.
var industryRecommendations = map[string]types.ContentRecommendation{
	"saas": {
		ID:             "industry-saas",
		Title:          "Master SaaS Metrics and Unit Economics",
		Category:       "Operations",
		RelevanceScore: 85,
		Summary:        "Understand CAC, LTV, churn rate, and MRR to build a sustainable SaaS business model.",
		Reason:         "Essential metrics for SaaS businesses to track growth and profitability.",
		Priority:       types.PriorityHigh,
	},
	"fintech": {
		ID:             "industry-fintech",
		Title:          "Navigate Fintech Compliance Requirements",
		Category:       "Legal",
		RelevanceScore: 90,
		Summary:        "Understand banking regulations, KYC/AML requirements, and necessary licenses for your fintech product.",
		Reason:         "Fintech has strict regulatory requirements that must be addressed early.",
		Priority:       types.PriorityHigh,
	},
	"healthcare": {
		ID:             "industry-healthcare",
		Title:          "Ensure HIPAA Compliance from Day One",
		Category:       "Legal",
		RelevanceScore: 95,
		Summary:        "Implement proper data security, privacy policies, and HIPAA-compliant infrastructure for healthcare data.",
		Reason:         "Healthcare startups must protect patient data and comply with HIPAA regulations.",
		Priority:       types.PriorityHigh,
	},
	"edtech": {
		ID:             "industry-edtech",
		Title:          "Navigate FERPA and COPPA Compliance",
		Category:       "Legal",
		RelevanceScore: 88,
		Summary:        "Understand student privacy laws, parental consent requirements, and data protection for educational platforms.",
		Reason:         "EdTech platforms handling student data must comply with FERPA and COPPA.",
		Priority:       types.PriorityHigh,
	},
	"food": {
		ID:             "industry-food",
		Title:          "Obtain Food Safety Certifications",
		Category:       "Operations",
		RelevanceScore: 90,
		Summary:        "Secure health permits, food handler certifications, and understand FDA labeling requirements.",
		Reason:         "Food businesses require specific permits and safety certifications to operate legally.",
		Priority:       types.PriorityHigh,
	},
	"consumer": {
		ID:             "industry-consumer",
		Title:          "Build a Strong Brand Identity",
		Category:       "Growth",
		RelevanceScore: 82,
		Summary:        "Develop compelling brand story, visual identity, and customer engagement strategy for consumer products.",
		Reason:         "Consumer products succeed through strong branding and emotional connection with customers.",
		Priority:       types.PriorityMedium,
	},
}

// industryFocus feeds the templated personalization insight line.
var industryFocus = map[string]string{
	"saas":       "recurring revenue, product-market fit, and scalable customer acquisition",
	"fintech":    "regulatory compliance, security infrastructure, and banking partnerships",
	"healthcare": "HIPAA compliance, clinical validation, and insurance relationships",
	"edtech":     "student outcomes, engagement metrics, and privacy compliance",
	"food":       "supply chain management, health certifications, and distribution channels",
	"consumer":   "brand building, customer acquisition, and retention strategies",
}

const defaultIndustryFocus = "sustainable growth and customer acquisition"

// Fallback produces deterministic recommendations for a profile. It is pure,
// always succeeds, and caps the list at six entries. The orchestrator uses
// it whenever the AI path is unconfigured or fails.
func Fallback(profile types.UserProfile) types.AIRecommendationResponse {
	recommendations := make([]types.ContentRecommendation, 0, maxRecommendations)

	if !profile.EntityRegistered {
		recommendations = append(recommendations, types.ContentRecommendation{
			ID:             "fallback-1",
			Title:          "Register Your Business Entity",
			Category:       "Legal",
			RelevanceScore: 95,
			Summary:        "Set up your LLC or Corporation to protect personal assets and establish credibility with customers and investors.",
			Reason:         fmt.Sprintf("Essential for %s stage startups before raising funds or signing major contracts.", profile.Stage),
			Priority:       types.PriorityHigh,
		})
	}

	if !profile.TrademarkCompleted {
		recommendations = append(recommendations, types.ContentRecommendation{
			ID:             "fallback-2",
			Title:          "Complete Trademark Search",
			Category:       "Legal",
			RelevanceScore: 85,
			Summary:        "Search USPTO database to ensure your brand name is available and avoid costly rebranding later.",
			Reason:         fmt.Sprintf("Protects your brand identity as you grow in the %s industry.", profile.Industry),
			Priority:       types.PriorityHigh,
		})
	}

	if profile.Stage == "ideation" || profile.Stage == "mvp" {
		recommendations = append(recommendations, types.ContentRecommendation{
			ID:             "fallback-3",
			Title:          "Build Your MVP Fast",
			Category:       "Product",
			RelevanceScore: 90,
			Summary:        "Focus on core features that solve your target customer's main problem. Launch quickly and iterate based on feedback.",
			Reason:         fmt.Sprintf("Critical for %s stage - validate your idea before investing heavily.", profile.Stage),
			Priority:       types.PriorityHigh,
		})
	}

	if containsGoal(profile.Goals, "raise_funding") {
		recommendations = append(recommendations, types.ContentRecommendation{
			ID:             "fallback-4",
			Title:          "Prepare Your Fundraising Materials",
			Category:       "Fundraising",
			RelevanceScore: 88,
			Summary:        "Create a compelling pitch deck, financial model, and SAFE agreement template for investor conversations.",
			Reason:         "You indicated fundraising as a primary goal - start preparing early.",
			Priority:       types.PriorityHigh,
		})
	}

	if containsGoal(profile.Goals, "hire_team") || profile.FounderCount == 1 {
		reason := "Growing your team is a key goal for this stage."
		if profile.FounderCount == 1 {
			reason = "Solo founders face unique challenges - consider finding a co-founder."
		}
		recommendations = append(recommendations, types.ContentRecommendation{
			ID:             "fallback-5",
			Title:          "Build Your Founding Team",
			Category:       "Hiring",
			RelevanceScore: 80,
			Summary:        "Identify skill gaps and recruit co-founders or early employees who complement your strengths.",
			Reason:         reason,
			Priority:       types.PriorityMedium,
		})
	}

	if rec, ok := industryRecommendations[strings.ToLower(profile.Industry)]; ok {
		recommendations = append(recommendations, rec)
	}

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}

	return types.AIRecommendationResponse{
		Recommendations:        recommendations,
		PersonalizationDetails: fallbackPersonalization(profile),
		CacheHit:               false,
	}
}

func fallbackPersonalization(profile types.UserProfile) types.PersonalizationDetails {
	focus, ok := industryFocus[strings.ToLower(profile.Industry)]
	if !ok {
		focus = defaultIndustryFocus
	}

	return types.PersonalizationDetails{
		MatchedGoals: firstN(profile.Goals, 3),
		SkillGaps:    []string{"Product Management", "Growth Marketing"},
		NextMilestones: []string{
			"Complete legal entity registration",
			"Launch MVP to first 10 customers",
			"Establish product-market fit",
		},
		IndustryInsights: []string{
			fmt.Sprintf("%s startups typically focus on %s", profile.Industry, focus),
		},
	}
}

func firstN(values []string, n int) []string {
	if len(values) <= n {
		out := make([]string, len(values))
		copy(out, values)
		return out
	}
	out := make([]string, n)
	copy(out, values[:n])
	return out
}

func containsGoal(goals []string, goal string) bool {
	for _, g := range goals {
		if g == goal {
			return true
		}
	}
	return false
}
