package resume

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/interview-pilot/interview-pilot/internal/ai"
	"github.com/interview-pilot/interview-pilot/internal/utils"
	"github.com/interview-pilot/interview-pilot/internal/vocab"
)

const (
	inferencePromptLimit  = 3000
	maxInferenceProjects  = 5
	maxPatternProjects    = 4
	maxEmergencyProjects  = 3
	minEmergencyParagraph = 80
	emergencyTitleLimit   = 60
	emergencyDescLimit    = 400
)

// inferenceTier submits the resume to a text-completion backend and parses
// the returned JSON array of projects. Any failure yields zero results.
type inferenceTier struct {
	generator ai.Generator
	logger    *zap.Logger
}

// NewInferenceTier creates the external-inference extraction tier.
func NewInferenceTier(generator ai.Generator, logger *zap.Logger) Tier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &inferenceTier{generator: generator, logger: logger}
}

func (t *inferenceTier) Name() string { return "inference" }

func (t *inferenceTier) Extract(ctx context.Context, text string) ([]*Project, error) {
	if t.generator == nil {
		return nil, nil
	}

	prompt := buildExtractionPrompt(text)
	t.logger.Debug("inference extraction request",
		zap.String("model", t.generator.Model()),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, 200)),
	)

	raw, err := t.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	projects, err := parseProjectArray(raw)
	if err != nil {
		return nil, fmt.Errorf("parse inference response: %w", err)
	}

	kept := make([]*Project, 0, maxInferenceProjects)
	for _, p := range projects {
		if trimLen(p.Title) == 0 || trimLen(p.Description) == 0 {
			continue
		}
		kept = append(kept, sanitize(p))
		if len(kept) == maxInferenceProjects {
			break
		}
	}
	return kept, nil
}

func buildExtractionPrompt(text string) string {
	if utf8.RuneCountInString(text) > inferencePromptLimit {
		text = string([]rune(text)[:inferencePromptLimit])
	}

	var b strings.Builder
	b.WriteString("Extract all technical projects from this resume. Return ONLY a JSON array of project objects with: title, description, technologies[], achievements[].\n\n")
	b.WriteString("Resume:\n")
	b.WriteString(text)
	b.WriteString("\n\nFormat: [{\"title\": \"...\", \"description\": \"...\", \"technologies\": [\"...\", \"...\"], \"achievements\": [\"...\"]}]")
	return b.String()
}

// parseProjectArray finds the first well-formed JSON array literal in raw and
// decodes it. Models wrap replies in prose or code fences, so the array is
// located positionally rather than decoded whole.
func parseProjectArray(raw string) ([]*Project, error) {
	literal, ok := firstArrayLiteral(raw)
	if !ok {
		return nil, fmt.Errorf("no JSON array found in response")
	}

	var entries []map[string]any
	if err := json.Unmarshal([]byte(literal), &entries); err != nil {
		return nil, err
	}

	var projects []*Project
	if err := mapstructure.Decode(entries, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func firstArrayLiteral(raw string) (string, bool) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end <= start {
		return "", false
	}
	return raw[start : end+1], true
}

func sanitize(p *Project) *Project {
	out := &Project{
		Title:       clampString(strings.TrimSpace(p.Title), maxTitleLen),
		Description: clampString(strings.TrimSpace(p.Description), maxDescriptionLen),
		Duration:    strings.TrimSpace(p.Duration),
		Role:        strings.TrimSpace(p.Role),
	}

	seen := make(map[string]struct{})
	for _, tech := range p.Technologies {
		tech = strings.ToLower(strings.TrimSpace(tech))
		if tech == "" {
			continue
		}
		if _, ok := seen[tech]; ok {
			continue
		}
		seen[tech] = struct{}{}
		out.Technologies = append(out.Technologies, tech)
	}

	for _, a := range p.Achievements {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		out.Achievements = append(out.Achievements, a)
		if len(out.Achievements) == maxAchievements {
			break
		}
	}
	return out
}

// patternTier segments the text and turns validated candidate blocks into
// projects. Fully deterministic.
type patternTier struct{}

// NewPatternTier creates the pattern-based extraction tier.
func NewPatternTier() Tier { return &patternTier{} }

func (t *patternTier) Name() string { return "patterns" }

func (t *patternTier) Extract(_ context.Context, text string) ([]*Project, error) {
	var projects []*Project
	for _, block := range SegmentText(text) {
		project := projectFromBlock(block)
		if project == nil || !isValidProject(project) {
			continue
		}
		projects = append(projects, project)
		if len(projects) == maxPatternProjects {
			break
		}
	}
	return projects, nil
}

func projectFromBlock(block string) *Project {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil
	}

	title := vocab.StripMarkers(lines[0])
	description := strings.TrimSpace(strings.Join(lines[1:], " "))
	if description == "" {
		description = title
	}

	return &Project{
		Title:        clampString(title, maxTitleLen),
		Description:  clampString(description, maxDescriptionLen),
		Technologies: vocab.Technologies(description),
		Achievements: achievements(description, minAchievementLen, vocab.HasAchievementVerb),
	}
}

const (
	minAchievementLen          = 15
	minEmergencyAchievementLen = 20
)

func achievements(text string, minLen int, hasVerb func(string) bool) []string {
	var out []string
	for _, sentence := range vocab.SplitSentences(text) {
		sentence = vocab.StripMarkers(sentence)
		if utf8.RuneCountInString(sentence) > minLen && hasVerb(sentence) {
			out = append(out, sentence)
			if len(out) == maxAchievements {
				break
			}
		}
	}
	return out
}

func isValidProject(p *Project) bool {
	if utf8.RuneCountInString(p.Title) < 3 || utf8.RuneCountInString(p.Description) < 10 {
		return false
	}
	if vocab.IsDisqualified(p.Title) || vocab.IsDisqualified(p.Description) {
		return false
	}
	return true
}

// emergencyTier is the last-resort paragraph scan. It runs only when the
// pattern tier produced nothing.
type emergencyTier struct{}

// NewEmergencyTier creates the emergency scan tier.
func NewEmergencyTier() Tier { return &emergencyTier{} }

func (t *emergencyTier) Name() string { return "emergency" }

func (t *emergencyTier) Extract(_ context.Context, text string) ([]*Project, error) {
	var projects []*Project
	for _, para := range splitParagraphs(text) {
		if len(projects) == maxEmergencyProjects {
			break
		}
		if utf8.RuneCountInString(para) <= minEmergencyParagraph {
			continue
		}

		matches := vocab.EmergencyMatches(para)
		if len(matches) < 2 {
			continue
		}

		title := emergencyTitle(para, len(projects)+1)
		if titleTaken(projects, title) {
			continue
		}

		projects = append(projects, &Project{
			Title:        title,
			Description:  clampString(para, emergencyDescLimit),
			Technologies: matches,
			Achievements: achievements(para, minEmergencyAchievementLen, vocab.HasEmergencyVerb),
		})
	}
	return projects, nil
}

func splitParagraphs(text string) []string {
	var paras []string
	for _, para := range strings.Split(normalize(text), "\n\n") {
		para = strings.TrimSpace(para)
		if para != "" {
			paras = append(paras, para)
		}
	}
	return paras
}

func emergencyTitle(para string, ordinal int) string {
	firstLine := strings.TrimSpace(strings.SplitN(para, "\n", 2)[0])
	if utf8.RuneCountInString(firstLine) > 10 {
		return clampString(firstLine, emergencyTitleLimit)
	}
	return fmt.Sprintf("Project %d", ordinal)
}

func titleTaken(projects []*Project, title string) bool {
	for _, p := range projects {
		if p.Title == title {
			return true
		}
	}
	return false
}
