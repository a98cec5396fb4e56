package resume

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestProjectsHelpers(t *testing.T) {
	t.Parallel()

	projects := &Projects{Items: []*Project{
		{Title: "Chat App", Technologies: []string{"Go", "redis"}},
		{Title: "Fleet Tracker", Technologies: []string{"go", "postgres"}},
	}}

	if projects.Len() != 2 {
		t.Fatalf("Len = %d", projects.Len())
	}
	if got := projects.Titles(); !reflect.DeepEqual(got, []string{"Chat App", "Fleet Tracker"}) {
		t.Fatalf("Titles = %v", got)
	}
	if p := projects.FindByTitle("Fleet Tracker"); p == nil || p.Title != "Fleet Tracker" {
		t.Fatalf("FindByTitle = %v", p)
	}
	if p := projects.FindByTitle("Missing"); p != nil {
		t.Fatalf("FindByTitle for missing title = %v", p)
	}

	want := []string{"go", "redis", "postgres"}
	if got := projects.DistinctTechnologies(); !reflect.DeepEqual(got, want) {
		t.Fatalf("DistinctTechnologies = %v, want %v", got, want)
	}
}

func TestClampStringCountsRunes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{name: "ascii under limit", in: "chat app", limit: 100, want: "chat app"},
		{name: "ascii clamped", in: "chat app", limit: 4, want: "chat"},
		{name: "multibyte clamped on rune boundary", in: strings.Repeat("é", 10), limit: 4, want: strings.Repeat("é", 4)},
		{name: "cyrillic at limit untouched", in: "чат", limit: 3, want: "чат"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := clampString(tt.in, tt.limit)
			if got != tt.want {
				t.Fatalf("clampString(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Fatalf("clampString produced invalid UTF-8: %q", got)
			}
		})
	}
}

func TestProjectsNilSafe(t *testing.T) {
	t.Parallel()

	var projects *Projects
	if projects.Len() != 0 {
		t.Fatal("nil Projects must report zero length")
	}
}
