package schemas

// RecommendationEnvelope is the schema for the LLM's recommendation
// response. It is intentionally loose: only the envelope structure is
// enforced here, because individual items are re-mapped field by field with
// defaults regardless of what the model returned.
const RecommendationEnvelope = `{
  "type": "object",
  "required": ["recommendations"],
  "properties": {
    "recommendations": {
      "type": "array",
      "items": { "type": "object" }
    },
    "skillGaps":        { "type": "array" },
    "nextMilestones":   { "type": "array" },
    "industryInsights": { "type": "array" }
  }
}`
