package interview

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/interview-pilot/interview-pilot/internal/resume"
)

type stubGenerator struct {
	reply func(prompt string) (string, error)
}

func (g *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	return g.reply(prompt)
}

func (g *stubGenerator) Model() string { return "stub" }

func testProjects(titles ...string) *resume.Projects {
	projects := &resume.Projects{}
	for _, title := range titles {
		projects.Items = append(projects.Items, &resume.Project{
			Title:        title,
			Description:  "A service for " + title,
			Technologies: []string{"go", "redis"},
		})
	}
	return projects
}

func enhancedReply(n int) string {
	var b strings.Builder
	b.WriteString("Here are the questions:\n[")
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, `{"questionText": "Enhanced question %d?", "category": "technical", "expectedPoints": ["a", "b"]}`, i+1)
	}
	b.WriteString("]")
	return b.String()
}

func TestGenerateLocalQuestions(t *testing.T) {
	t.Parallel()

	s := NewSynthesizer(nil, nil)
	questions := s.Generate(context.Background(), testProjects("Chat App", "Fleet Tracker"))

	if len(questions) != 8 {
		t.Fatalf("expected 8 questions, got %d", len(questions))
	}

	wantIDs := []string{
		"chat-app-1", "chat-app-2", "chat-app-3", "chat-app-4",
		"fleet-tracker-1", "fleet-tracker-2", "fleet-tracker-3", "fleet-tracker-4",
	}
	for i, q := range questions {
		if q.ID != wantIDs[i] {
			t.Fatalf("question %d: ID = %q, want %q", i, q.ID, wantIDs[i])
		}
	}

	categories := map[string]bool{}
	for _, q := range questions[:4] {
		categories[q.Category] = true
	}
	for _, c := range []string{CategoryTechnical, CategoryProblemSolving, CategoryArchitecture, CategoryBehavioral} {
		if !categories[c] {
			t.Fatalf("missing category %q in per-project question set", c)
		}
	}
}

func TestGenerateCapsProjects(t *testing.T) {
	t.Parallel()

	s := NewSynthesizer(nil, nil)
	questions := s.Generate(context.Background(), testProjects("A One", "B Two", "C Three", "D Four"))

	if len(questions) != 12 {
		t.Fatalf("expected 12 questions for capped projects, got %d", len(questions))
	}
	for _, q := range questions {
		if q.ProjectTitle == "D Four" {
			t.Fatal("fourth project should not produce questions")
		}
	}
}

func TestGenerateEmpty(t *testing.T) {
	t.Parallel()

	s := NewSynthesizer(nil, nil)
	if questions := s.Generate(context.Background(), &resume.Projects{}); questions != nil {
		t.Fatalf("expected nil for no projects, got %v", questions)
	}
}

func TestGeneratePreservesProjectOrder(t *testing.T) {
	t.Parallel()

	// Later projects answer faster than earlier ones; assembly order must
	// still follow project order.
	gen := &stubGenerator{reply: func(prompt string) (string, error) {
		if strings.Contains(prompt, "Slow Project") {
			time.Sleep(50 * time.Millisecond)
		}
		return enhancedReply(4), nil
	}}

	s := NewSynthesizer(gen, nil, WithWorkers(3))
	questions := s.Generate(context.Background(), testProjects("Slow Project", "Fast Project"))

	if len(questions) != 8 {
		t.Fatalf("expected 8 questions, got %d", len(questions))
	}
	for i, q := range questions[:4] {
		if q.ProjectTitle != "Slow Project" {
			t.Fatalf("question %d: project = %q, want %q", i, q.ProjectTitle, "Slow Project")
		}
	}
	for i, q := range questions[4:] {
		if q.ProjectTitle != "Fast Project" {
			t.Fatalf("question %d: project = %q, want %q", i+4, q.ProjectTitle, "Fast Project")
		}
	}
}

func TestGenerateFallsBackOnGeneratorError(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{reply: func(string) (string, error) {
		return "", errors.New("backend unavailable")
	}}

	s := NewSynthesizer(gen, nil)
	questions := s.Generate(context.Background(), testProjects("Chat App"))

	if len(questions) != 4 {
		t.Fatalf("expected 4 fallback questions, got %d", len(questions))
	}
	if !strings.Contains(questions[0].QuestionText, "Chat App") {
		t.Fatalf("fallback question should reference the project: %q", questions[0].QuestionText)
	}
}

func TestGenerateFallsBackOnShortReply(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{reply: func(string) (string, error) {
		return enhancedReply(2), nil
	}}

	s := NewSynthesizer(gen, nil)
	questions := s.Generate(context.Background(), testProjects("Chat App"))

	if len(questions) != 4 {
		t.Fatalf("expected 4 questions, got %d", len(questions))
	}
	for _, q := range questions {
		if strings.Contains(q.QuestionText, "Enhanced") {
			t.Fatalf("short replies must not be used: %q", q.QuestionText)
		}
	}
}

func TestGenerateAcceptsAlternateKeys(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{reply: func(string) (string, error) {
		var entries []string
		for i := 0; i < 4; i++ {
			entries = append(entries, fmt.Sprintf(
				`{"question": "Alt form %d?", "category": "BEHAVIORAL", "points": ["p1"]}`, i+1))
		}
		return "[" + strings.Join(entries, ",") + "]", nil
	}}

	s := NewSynthesizer(gen, nil)
	questions := s.Generate(context.Background(), testProjects("Chat App"))

	if len(questions) != 4 {
		t.Fatalf("expected 4 questions, got %d", len(questions))
	}
	if questions[0].QuestionText != "Alt form 1?" {
		t.Fatalf("QuestionText = %q", questions[0].QuestionText)
	}
	if questions[0].Category != CategoryBehavioral {
		t.Fatalf("Category = %q, want %q", questions[0].Category, CategoryBehavioral)
	}
	if len(questions[0].ExpectedPoints) != 1 || questions[0].ExpectedPoints[0] != "p1" {
		t.Fatalf("ExpectedPoints = %v", questions[0].ExpectedPoints)
	}
}

func TestNormalizeCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"technical", CategoryTechnical},
		{" Behavioral ", CategoryBehavioral},
		{"PROBLEM-SOLVING", CategoryProblemSolving},
		{"architecture", CategoryArchitecture},
		{"something else", CategoryTechnical},
		{"", CategoryTechnical},
	}

	for _, tt := range tests {
		if got := normalizeCategory(tt.in); got != tt.want {
			t.Fatalf("normalizeCategory(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseQuestionArray(t *testing.T) {
	t.Parallel()

	if _, err := parseQuestionArray("no array here"); err == nil {
		t.Fatal("expected an error for text without a JSON array")
	}

	payloads, err := parseQuestionArray("noise before [{\"questionText\": \"Q?\"}] noise after")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(payloads) != 1 || payloads[0].QuestionText != "Q?" {
		t.Fatalf("unexpected payloads: %+v", payloads)
	}
}
