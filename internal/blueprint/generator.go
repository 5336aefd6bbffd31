// Package blueprint provides the deterministic rule engine that maps a
// startup profile and founding team to a personalized blueprint.
package blueprint

import (
	"fmt"
	"strings"

	"github.com/jonathan/founder-blueprint/internal/types"
)

// Stable rule-keyed task IDs. Completion toggles reference these across
// regenerations, so they must never change once shipped.
const (
	TaskDomain            = "legal-domain"
	TaskTrademark         = "legal-trademark"
	TaskEntity            = "legal-entity"
	TaskFoundersAgreement = "legal-founders-agreement"
	TaskCapTable          = "legal-cap-table"
)

// goalMilestones maps each founder goal to exactly one operational milestone.
var goalMilestones = map[string]types.OperationalMilestone{
	"build_mvp":       {Milestone: "Launch MVP to first users", Priority: types.PriorityHigh},
	"validate_demand": {Milestone: "Complete 20 customer discovery interviews", Priority: types.PriorityHigh},
	"register_entity": {Milestone: "Finalize business entity registration", Priority: types.PriorityHigh},
	"raise_funding":   {Milestone: "Prepare pitch deck and financial model", Priority: types.PriorityMedium},
	"hire_team":       {Milestone: "Define hiring plan for first key roles", Priority: types.PriorityMedium},
}

// industryInsights is keyed by lowercase industry name.
var industryInsights = map[string]string{
	"food":       "Food businesses live and die by permits, supplier agreements, and margins. Lock in health certifications early and negotiate supplier terms before scaling inventory.",
	"saas":       "SaaS startups win on product-market fit and unit economics. Track CAC, LTV, and churn from your first paying customer, and invest in a repeatable acquisition channel.",
	"consumer":   "Consumer products succeed through brand and distribution. Build a tight feedback loop with early customers and test channels cheaply before committing spend.",
	"healthcare": "Healthcare startups must treat compliance as a feature. Plan for HIPAA-grade data handling and clinical validation well before your first enterprise conversation.",
	"fintech":    "Fintech requires regulatory groundwork before growth. Map the licenses you need, line up banking partners early, and make security a first-class investment.",
	"edtech":     "EdTech buyers care about outcomes and privacy. Design for FERPA/COPPA compliance and collect evidence of learning impact from your earliest pilots.",
}

const defaultIndustryInsight = "Every industry has its own playbook. Focus on talking to customers weekly, keeping burn low, and building the legal foundation before you scale."

// stageNextSteps holds the stage-specific pair of generic next steps.
// Growth doubles as the default for unrecognized stages.
var stageNextSteps = map[string][2]string{
	"ideation": {
		"Validate your idea with at least 20 customer interviews",
		"Create a simple landing page to gauge real demand",
	},
	"mvp": {
		"Launch your MVP to a small beta group",
		"Set up analytics to track activation and retention",
	},
	"growth": {
		"Double down on your best-performing acquisition channel",
		"Build repeatable sales and onboarding processes",
	},
}

// fillerNextSteps pad the next-steps list when few rules fire, in fixed order.
var fillerNextSteps = [3]string{
	"Network with other founders in your industry",
	"Establish key performance metrics and review them weekly",
	"Build a strong brand presence online",
}

// Generate produces a blueprint for the given profile and founding team.
// It is pure and total: well-formed input always yields a valid blueprint,
// and identical input yields structurally identical output.
func Generate(profile types.UserProfile, team []types.FoundingTeamMember) types.BlueprintContent {
	legalTasks := generateLegalTasks(profile)
	teamRecs := generateTeamRecommendations(profile, team)
	milestones := generateMilestones(profile)

	return types.BlueprintContent{
		LegalTasks:            legalTasks,
		TeamRecommendations:   teamRecs,
		OperationalMilestones: milestones,
		IndustryInsights:      lookupIndustryInsight(profile.Industry),
		NextSteps:             assembleNextSteps(profile, legalTasks, teamRecs, milestones),
	}
}

// Regenerate runs Generate and carries forward completion state for tasks
// whose stable ID survives, so re-running the engine never silently resets
// a founder's progress.
func Regenerate(profile types.UserProfile, team []types.FoundingTeamMember, previous *types.BlueprintContent) types.BlueprintContent {
	content := Generate(profile, team)
	if previous == nil {
		return content
	}

	done := make(map[string]bool, len(previous.LegalTasks))
	for _, t := range previous.LegalTasks {
		if t.Completed {
			done[t.ID] = true
		}
	}
	for i := range content.LegalTasks {
		if done[content.LegalTasks[i].ID] {
			content.LegalTasks[i].Completed = true
		}
	}
	return content
}

func generateLegalTasks(profile types.UserProfile) []types.LegalTask {
	tasks := make([]types.LegalTask, 0, 5)

	if !profile.DomainPurchased {
		tasks = append(tasks, types.LegalTask{
			ID:          TaskDomain,
			Task:        "Purchase domain name",
			Priority:    types.PriorityHigh,
			Description: "Secure your startup's domain before someone else does; it anchors your brand and email identity.",
		})
	}

	if !profile.TrademarkCompleted {
		priority := types.PriorityHigh
		if profile.Stage == "ideation" {
			priority = types.PriorityMedium
		}
		tasks = append(tasks, types.LegalTask{
			ID:          TaskTrademark,
			Task:        "File trademark application",
			Priority:    priority,
			Description: "Run a trademark search and file for your name and logo to avoid a costly rebrand later.",
		})
	}

	if !profile.EntityRegistered {
		tasks = append(tasks, types.LegalTask{
			ID:          TaskEntity,
			Task:        "Register business entity",
			Priority:    types.PriorityHigh,
			Description: "Form your LLC or corporation to protect personal assets and enable contracts and fundraising.",
		})
	}

	tasks = append(tasks, types.LegalTask{
		ID:          TaskFoundersAgreement,
		Task:        "Draft founders agreement",
		Priority:    types.PriorityHigh,
		Description: "Put equity splits, vesting, and decision rights in writing while everyone is still friends.",
	})

	tasks = append(tasks, types.LegalTask{
		ID:          TaskCapTable,
		Task:        "Set up cap table",
		Priority:    types.PriorityHigh,
		Description: "Track ownership from day one so future rounds and option grants stay clean.",
	})

	return tasks
}

// Skill-name synonyms accepted when testing for a capability on the team.
var (
	engineeringSkills = []string{"engineering", "technical", "development", "developer"}
	marketingSkills   = []string{"marketing", "growth", "sales"}
	productSkills     = []string{"product", "product management", "pm"}
)

func generateTeamRecommendations(profile types.UserProfile, team []types.FoundingTeamMember) []types.TeamRecommendation {
	present := make(map[string]bool)
	for _, member := range team {
		for _, skill := range member.Skills {
			present[strings.ToLower(strings.TrimSpace(skill))] = true
		}
	}

	hasAny := func(names []string) bool {
		for _, n := range names {
			if present[n] {
				return true
			}
		}
		return false
	}

	recs := make([]types.TeamRecommendation, 0, 3)
	wantsMVP := containsGoal(profile.Goals, "build_mvp")

	if !hasAny(engineeringSkills) && wantsMVP {
		recs = append(recs, types.TeamRecommendation{
			Role:     "Technical Co-founder or Lead Engineer",
			Priority: types.PriorityHigh,
			Reason:   "You want to build an MVP but no one on the founding team has engineering skills.",
		})
	}

	if !hasAny(marketingSkills) {
		priority := types.PriorityLow
		switch profile.Stage {
		case "growth":
			priority = types.PriorityHigh
		case "mvp":
			priority = types.PriorityMedium
		}
		recs = append(recs, types.TeamRecommendation{
			Role:     "Marketing Lead",
			Priority: priority,
			Reason:   fmt.Sprintf("No marketing or growth skills on the team; at the %s stage this gap limits customer acquisition.", profile.Stage),
		})
	}

	if !hasAny(productSkills) && wantsMVP {
		recs = append(recs, types.TeamRecommendation{
			Role:     "Product Manager",
			Priority: types.PriorityMedium,
			Reason:   "Building an MVP without product skills on the team risks shipping features nobody needs.",
		})
	}

	return recs
}

func generateMilestones(profile types.UserProfile) []types.OperationalMilestone {
	milestones := make([]types.OperationalMilestone, 0, len(profile.Goals))
	for _, goal := range profile.Goals {
		m, ok := goalMilestones[goal]
		if !ok {
			continue
		}
		m.RelatedGoal = goal
		milestones = append(milestones, m)
	}
	return milestones
}

func lookupIndustryInsight(industry string) string {
	if insight, ok := industryInsights[strings.ToLower(industry)]; ok {
		return insight
	}
	return defaultIndustryInsight
}

func assembleNextSteps(
	profile types.UserProfile,
	legalTasks []types.LegalTask,
	teamRecs []types.TeamRecommendation,
	milestones []types.OperationalMilestone,
) []string {
	steps := make([]string, 0, 5)

	for _, t := range legalTasks {
		if t.Priority == types.PriorityHigh {
			steps = append(steps, "Complete critical legal setup: "+t.Task)
			break
		}
	}
	for _, r := range teamRecs {
		if r.Priority == types.PriorityHigh {
			steps = append(steps, "Begin recruiting for: "+r.Role)
			break
		}
	}
	for _, m := range milestones {
		if m.Priority == types.PriorityHigh {
			steps = append(steps, "Focus on: "+m.Milestone)
			break
		}
	}

	pair, ok := stageNextSteps[profile.Stage]
	if !ok {
		pair = stageNextSteps["growth"]
	}
	steps = append(steps, pair[0], pair[1])

	if len(steps) < 3 {
		steps = append(steps, fillerNextSteps[0])
	}
	if len(steps) < 4 {
		steps = append(steps, fillerNextSteps[1])
	}
	if len(steps) < 5 {
		steps = append(steps, fillerNextSteps[2])
	}

	if len(steps) > 5 {
		steps = steps[:5]
	}
	return steps
}

func containsGoal(goals []string, goal string) bool {
	for _, g := range goals {
		if g == goal {
			return true
		}
	}
	return false
}
