// Package interview generates interview questions for extracted projects and
// scores free-text answers against them.
package interview

import (
	"fmt"
	"strings"

	"github.com/interview-pilot/interview-pilot/internal/resume"
)

// Question categories.
const (
	CategoryTechnical      = "technical"
	CategoryBehavioral     = "behavioral"
	CategoryProblemSolving = "problem-solving"
	CategoryArchitecture   = "architecture"
)

// Question is a single interview question tied to a project. Its ID is a
// deterministic slug of the project title plus an ordinal, so regenerating
// questions for the same project yields the same IDs.
type Question struct {
	ID             string   `json:"id"`
	ProjectTitle   string   `json:"projectTitle"`
	QuestionText   string   `json:"questionText"`
	Category       string   `json:"category"`
	ExpectedPoints []string `json:"expectedPoints"`
}

// QuestionID derives the stable identifier for a project question.
func QuestionID(projectTitle string, ordinal int) string {
	return fmt.Sprintf("%s-%d", slug(projectTitle), ordinal)
}

func slug(title string) string {
	return strings.ToLower(strings.Join(strings.Fields(title), "-"))
}

func normalizeCategory(category string) string {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case CategoryBehavioral:
		return CategoryBehavioral
	case CategoryProblemSolving:
		return CategoryProblemSolving
	case CategoryArchitecture:
		return CategoryArchitecture
	default:
		return CategoryTechnical
	}
}

// localQuestions produces the four fixed-template questions for a project,
// one per category, referencing the title and top technologies by name.
func localQuestions(project *resume.Project) []*Question {
	techList := strings.Join(topTechnologies(project, 3), ", ")
	if techList == "" {
		techList = "the technologies used"
	}

	title := project.Title
	return []*Question{
		{
			ID:             QuestionID(title, 1),
			ProjectTitle:   title,
			QuestionText:   fmt.Sprintf("Can you walk me through %s? What problem did it solve and why did you choose %s?", title, techList),
			Category:       CategoryTechnical,
			ExpectedPoints: []string{"Problem statement", "Approach", "Tech choices"},
		},
		{
			ID:             QuestionID(title, 2),
			ProjectTitle:   title,
			QuestionText:   fmt.Sprintf("What were the biggest challenges in %s and how did you overcome them?", title),
			Category:       CategoryProblemSolving,
			ExpectedPoints: []string{"Challenges", "Approach", "Outcome"},
		},
		{
			ID:             QuestionID(title, 3),
			ProjectTitle:   title,
			QuestionText:   fmt.Sprintf("How did you design the architecture for %s? What trade-offs did you consider?", title),
			Category:       CategoryArchitecture,
			ExpectedPoints: []string{"Architecture", "Scaling", "Trade-offs"},
		},
		{
			ID:             QuestionID(title, 4),
			ProjectTitle:   title,
			QuestionText:   fmt.Sprintf("What did you learn from %s and what would you do differently today?", title),
			Category:       CategoryBehavioral,
			ExpectedPoints: []string{"Learnings", "Improvements", "Reflection"},
		},
	}
}

func topTechnologies(project *resume.Project, n int) []string {
	if len(project.Technologies) <= n {
		return project.Technologies
	}
	return project.Technologies[:n]
}
