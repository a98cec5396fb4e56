// Package resume turns raw resume text into structured project records using
// a chain of fallback extraction tiers.
package resume

import "strings"

const (
	maxTitleLen       = 100
	maxDescriptionLen = 500
	maxAchievements   = 3
)

// Project is a structured record extracted from free-form resume text. It is
// immutable once produced by the extractor.
type Project struct {
	Title        string   `json:"title" mapstructure:"title"`
	Description  string   `json:"description" mapstructure:"description"`
	Technologies []string `json:"technologies" mapstructure:"technologies"`
	Duration     string   `json:"duration,omitempty" mapstructure:"duration"`
	Role         string   `json:"role,omitempty" mapstructure:"role"`
	Achievements []string `json:"achievements,omitempty" mapstructure:"achievements"`
}

// Projects is an ordered collection of extracted projects.
type Projects struct {
	Items []*Project `json:"items"`
}

func (p *Projects) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Items)
}

func (p *Projects) Titles() []string {
	titles := make([]string, 0, p.Len())
	for _, project := range p.Items {
		titles = append(titles, project.Title)
	}
	return titles
}

func (p *Projects) FindByTitle(title string) *Project {
	for _, project := range p.Items {
		if project.Title == title {
			return project
		}
	}
	return nil
}

// DistinctTechnologies returns the lowercased union of technologies across
// all projects, in first-occurrence order.
func (p *Projects) DistinctTechnologies() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, project := range p.Items {
		for _, tech := range project.Technologies {
			tech = strings.ToLower(tech)
			if _, ok := seen[tech]; ok {
				continue
			}
			seen[tech] = struct{}{}
			out = append(out, tech)
		}
	}
	return out
}

// clampString limits s to at most limit characters. Limits are counted in
// runes so multi-byte text is never cut mid-character.
func clampString(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
