// Package assessment derives seniority estimates, industry comparisons and
// textual feedback from extracted projects and scored answers.
package assessment

import (
	"sort"
	"strings"

	"github.com/interview-pilot/interview-pilot/internal/resume"
	"github.com/interview-pilot/interview-pilot/internal/vocab"
)

// Skill levels.
const (
	LevelJunior = "Junior"
	LevelMid    = "Mid-Level"
	LevelSenior = "Senior"
	LevelLead   = "Lead"
)

// SkillAssessment is a seniority estimate derived purely from the project
// set. It is recomputed whenever the project set changes.
type SkillAssessment struct {
	Level           string   `json:"level"`
	YearsEstimate   string   `json:"yearsEstimate"`
	Strengths       []string `json:"strengths"`
	Recommendations []string `json:"recommendations"`
}

type tierProfile struct {
	strengths       []string
	recommendations []string
}

var tierProfiles = map[string]tierProfile{
	LevelJunior: {
		strengths: []string{"Eagerness to learn and build"},
		recommendations: []string{
			"Add more substantial technical projects to your resume",
			"Deepen hands-on experience with a core technology stack",
		},
	},
	LevelMid: {
		strengths: []string{"Solid hands-on delivery across multiple projects"},
		recommendations: []string{
			"Take ownership of architecture decisions",
			"Quantify project impact with concrete metrics",
		},
	},
	LevelSenior: {
		strengths: []string{"Breadth across technologies and project complexity"},
		recommendations: []string{
			"Highlight mentoring and cross-team influence",
			"Document trade-off decisions behind major designs",
		},
	},
	LevelLead: {
		strengths: []string{"Deep, broad experience with demonstrated ownership"},
		recommendations: []string{
			"Emphasize organizational and strategic impact",
		},
	},
}

// AssessSkill classifies the project set into a seniority level. An empty set
// returns the fixed minimal-experience assessment.
func AssessSkill(projects *resume.Projects) *SkillAssessment {
	if projects.Len() == 0 {
		return &SkillAssessment{
			Level:         LevelJunior,
			YearsEstimate: "<1 year",
			Strengths:     []string{},
			Recommendations: []string{
				"Add technical projects to your resume",
			},
		}
	}

	techCount := len(projects.DistinctTechnologies())
	avgComplexity := averageComplexity(projects)
	level := classify(techCount, avgComplexity)

	profile := tierProfiles[level]
	strengths := append(frequentTechnologies(projects, 3), profile.strengths...)

	return &SkillAssessment{
		Level:           level,
		YearsEstimate:   yearsBand(projects.Len()),
		Strengths:       strengths,
		Recommendations: append([]string{}, profile.recommendations...),
	}
}

// averageComplexity scores each project from a base of 1, +1 each for a wide
// technology set, a substantial description, recorded achievements and a
// seniority-flavored role.
func averageComplexity(projects *resume.Projects) float64 {
	total := 0
	for _, p := range projects.Items {
		score := 1
		if len(p.Technologies) > 5 {
			score++
		}
		if len(p.Description) > 200 {
			score++
		}
		if len(p.Achievements) > 0 {
			score++
		}
		if p.Role != "" && vocab.HasSeniorityKeyword(p.Role) {
			score++
		}
		total += score
	}
	return float64(total) / float64(projects.Len())
}

func classify(techCount int, avgComplexity float64) string {
	switch {
	case techCount >= 20 && avgComplexity >= 3:
		return LevelLead
	case techCount >= 10 && avgComplexity >= 2.5:
		return LevelSenior
	case techCount >= 5 && avgComplexity >= 1.5:
		return LevelMid
	default:
		return LevelJunior
	}
}

func yearsBand(projectCount int) string {
	switch {
	case projectCount <= 1:
		return "<1 year"
	case projectCount <= 2:
		return "1-2 years"
	case projectCount <= 4:
		return "2-4 years"
	default:
		return "4+ years"
	}
}

// frequentTechnologies returns the n most mentioned technologies across all
// projects, ties broken by first occurrence.
func frequentTechnologies(projects *resume.Projects, n int) []string {
	type entry struct {
		tech  string
		count int
		first int
	}

	counts := make(map[string]*entry)
	order := make([]*entry, 0)
	pos := 0

	for _, p := range projects.Items {
		for _, tech := range p.Technologies {
			tech = strings.ToLower(tech)
			if e, ok := counts[tech]; ok {
				e.count++
			} else {
				e := &entry{tech: tech, count: 1, first: pos}
				counts[tech] = e
				order = append(order, e)
			}
			pos++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		if order[i].count != order[j].count {
			return order[i].count > order[j].count
		}
		return order[i].first < order[j].first
	})

	if len(order) > n {
		order = order[:n]
	}
	techs := make([]string, len(order))
	for i, e := range order {
		techs[i] = e.tech
	}
	return techs
}
