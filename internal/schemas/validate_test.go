package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateJSONString_RecommendationEnvelope(t *testing.T) {
	tests := []struct {
		name    string
		content string
		valid   bool
	}{
		{
			name:    "minimal valid envelope",
			content: `{"recommendations": []}`,
			valid:   true,
		},
		{
			name: "full envelope",
			content: `{
				"recommendations": [{"title": "Register Your Business Entity"}],
				"skillGaps": ["Sales"],
				"nextMilestones": ["Ship MVP"],
				"industryInsights": ["SaaS buyers expect free trials"]
			}`,
			valid: true,
		},
		{
			name:    "missing recommendations",
			content: `{"skillGaps": []}`,
			valid:   false,
		},
		{
			name:    "recommendations not an array",
			content: `{"recommendations": "lots"}`,
			valid:   false,
		},
		{
			name:    "items must be objects",
			content: `{"recommendations": ["just a string"]}`,
			valid:   false,
		},
		{
			name:    "root not an object",
			content: `[1, 2, 3]`,
			valid:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSONString(RecommendationEnvelope, tt.content)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateJSONString_ReportsFieldPaths(t *testing.T) {
	err := ValidateJSONString(RecommendationEnvelope, `{"recommendations": "lots"}`)
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok, "expected *ValidationError, got %T", err)
	require.NotEmpty(t, verr.Errors)
	assert.Contains(t, verr.Error(), "recommendations")
}

func TestValidateJSONString_MalformedDocument(t *testing.T) {
	err := ValidateJSONString(RecommendationEnvelope, `{not json`)
	require.Error(t, err)
	assert.IsType(t, &SchemaLoadError{}, err)
}
