package assessment

import (
	"fmt"
	"strings"

	"github.com/interview-pilot/interview-pilot/internal/interview"
	"github.com/interview-pilot/interview-pilot/internal/resume"
)

// ComposeFeedback renders a fixed-structure textual report from the session
// metrics, industry comparisons, skill assessment and project set. It is pure
// formatting: no numeric input is altered or recomputed here.
func ComposeFeedback(metrics *interview.Metrics, comparisons []*ComparisonData, skill *SkillAssessment, projects *resume.Projects) string {
	var b strings.Builder

	b.WriteString("Interview Feedback\n")
	b.WriteString("==================\n\n")

	if metrics != nil {
		fmt.Fprintf(&b, "Overall Rating: %s\n", metrics.OverallRating)
		fmt.Fprintf(&b, "Technical Depth: %d\n", metrics.TechnicalDepth)
		fmt.Fprintf(&b, "Communication: %d\n", metrics.CommunicationScore)
		fmt.Fprintf(&b, "Confidence: %d\n", metrics.ConfidenceLevel)
		fmt.Fprintf(&b, "Average Response Time: %.1fs\n", metrics.AverageResponseTime)
	}

	level := interviewLevel(skill)
	fmt.Fprintf(&b, "Estimated Level: %s\n", level)
	fmt.Fprintf(&b, "Projects Analyzed: %d\n", projects.Len())

	if skill != nil && len(skill.Strengths) > 0 {
		b.WriteString("\nStrengths:\n")
		for _, s := range skill.Strengths {
			fmt.Fprintf(&b, "  - %s\n", s)
		}
	}

	if skill != nil && len(skill.Recommendations) > 0 {
		b.WriteString("\nRecommendations:\n")
		for _, r := range skill.Recommendations {
			fmt.Fprintf(&b, "  - %s\n", r)
		}
	}

	if len(comparisons) > 0 {
		b.WriteString("\nIndustry Comparison:\n")
		for _, c := range comparisons {
			fmt.Fprintf(&b, "  %s: you %d / average %d / top performers %d\n",
				c.Category, c.UserScore, c.IndustryAverage, c.TopPerformers)
		}
	}

	return b.String()
}

func interviewLevel(skill *SkillAssessment) string {
	if skill == nil || skill.Level == "" {
		return LevelJunior
	}
	return skill.Level
}
