package assessment

import (
	"reflect"
	"strings"
	"testing"

	"github.com/interview-pilot/interview-pilot/internal/resume"
)

func TestAssessSkillEmpty(t *testing.T) {
	t.Parallel()

	got := AssessSkill(&resume.Projects{})

	if got.Level != LevelJunior {
		t.Fatalf("Level = %q, want %q", got.Level, LevelJunior)
	}
	if got.YearsEstimate != "<1 year" {
		t.Fatalf("YearsEstimate = %q", got.YearsEstimate)
	}
	if len(got.Recommendations) == 0 {
		t.Fatal("empty project set must still produce a recommendation")
	}
}

func TestAssessSkillLevels(t *testing.T) {
	t.Parallel()

	simple := func(title string, techs ...string) *resume.Project {
		return &resume.Project{Title: title, Description: "short", Technologies: techs}
	}
	rich := func(title string, techs ...string) *resume.Project {
		return &resume.Project{
			Title:        title,
			Description:  strings.Repeat("d", 220),
			Technologies: techs,
			Achievements: []string{"Reduced costs"},
			Role:         "Senior Engineer",
		}
	}

	tests := []struct {
		name     string
		projects []*resume.Project
		want     string
	}{
		{
			name:     "single simple project is junior",
			projects: []*resume.Project{simple("One", "go")},
			want:     LevelJunior,
		},
		{
			name: "several technologies with some depth is mid",
			projects: []*resume.Project{
				{Title: "One", Description: "short", Technologies: []string{"go", "redis", "kafka"}, Achievements: []string{"Shipped it"}},
				{Title: "Two", Description: "short", Technologies: []string{"react", "node"}, Achievements: []string{"Shipped it"}},
			},
			want: LevelMid,
		},
		{
			name: "broad stack with rich projects is senior",
			projects: []*resume.Project{
				rich("One", "go", "redis", "kafka", "grpc", "postgres", "docker"),
				rich("Two", "react", "node", "typescript", "graphql", "aws", "kubernetes"),
			},
			want: LevelSenior,
		},
		{
			name: "twenty-plus technologies with rich projects is lead",
			projects: []*resume.Project{
				rich("One", "go", "redis", "kafka", "grpc", "postgres", "docker", "aws"),
				rich("Two", "react", "node", "typescript", "graphql", "kubernetes", "python", "django"),
				rich("Three", "java", "spring", "mysql", "jenkins", "azure", "vue", "mongodb"),
			},
			want: LevelLead,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := AssessSkill(&resume.Projects{Items: tt.projects})
			if got.Level != tt.want {
				t.Fatalf("Level = %q, want %q", got.Level, tt.want)
			}
			if len(got.Strengths) == 0 || len(got.Recommendations) == 0 {
				t.Fatalf("assessment missing narrative fields: %+v", got)
			}
		})
	}
}

func TestAssessSkillYearsBand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		count int
		want  string
	}{
		{1, "<1 year"},
		{2, "1-2 years"},
		{3, "2-4 years"},
		{4, "2-4 years"},
		{5, "4+ years"},
	}

	for _, tt := range tests {
		var items []*resume.Project
		for i := 0; i < tt.count; i++ {
			items = append(items, &resume.Project{Title: "P", Technologies: []string{"go"}})
		}
		got := AssessSkill(&resume.Projects{Items: items})
		if got.YearsEstimate != tt.want {
			t.Fatalf("YearsEstimate for %d projects = %q, want %q", tt.count, got.YearsEstimate, tt.want)
		}
	}
}

func TestAssessSkillLeadsWithFrequentTechnologies(t *testing.T) {
	t.Parallel()

	projects := &resume.Projects{Items: []*resume.Project{
		{Title: "One", Technologies: []string{"go", "redis"}},
		{Title: "Two", Technologies: []string{"go", "kafka"}},
		{Title: "Three", Technologies: []string{"go", "redis", "postgres"}},
	}}

	got := AssessSkill(projects)
	if len(got.Strengths) < 3 {
		t.Fatalf("Strengths = %v", got.Strengths)
	}
	if !reflect.DeepEqual(got.Strengths[:3], []string{"go", "redis", "kafka"}) {
		t.Fatalf("leading strengths = %v, want [go redis kafka]", got.Strengths[:3])
	}
}
