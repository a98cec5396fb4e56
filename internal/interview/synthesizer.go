package interview

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/interview-pilot/interview-pilot/internal/ai"
	"github.com/interview-pilot/interview-pilot/internal/resume"
	"github.com/interview-pilot/interview-pilot/internal/utils"
)

const (
	maxProjectsPerSession = 3
	questionsPerProject   = 4

	defaultWorkers          = 3
	defaultInferenceTimeout = 30 * time.Second
)

// Synthesizer generates interview questions for a set of projects. When a
// generator is configured each project is first sent for enhancement; any
// failure falls back silently to the deterministic local templates.
type Synthesizer struct {
	generator ai.Generator
	logger    *zap.Logger
	workers   int
	timeout   time.Duration
}

// SynthesizerOption customizes a Synthesizer.
type SynthesizerOption func(*Synthesizer)

// WithWorkers bounds the enhancement fan-out. Size it to the inference
// backend rate limit.
func WithWorkers(n int) SynthesizerOption {
	return func(s *Synthesizer) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithTimeout bounds each enhancement call.
func WithTimeout(d time.Duration) SynthesizerOption {
	return func(s *Synthesizer) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// NewSynthesizer creates a question synthesizer. A nil generator disables
// enhancement entirely.
func NewSynthesizer(generator ai.Generator, logger *zap.Logger, opts ...SynthesizerOption) *Synthesizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Synthesizer{
		generator: generator,
		logger:    logger,
		workers:   defaultWorkers,
		timeout:   defaultInferenceTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate returns exactly 4 questions per project for up to the first 3
// projects, in project order regardless of enhancement completion order.
func (s *Synthesizer) Generate(ctx context.Context, projects *resume.Projects) []*Question {
	if projects.Len() == 0 {
		return nil
	}

	items := projects.Items
	if len(items) > maxProjectsPerSession {
		items = items[:maxProjectsPerSession]
	}

	results := make([][]*Question, len(items))

	var wg sync.WaitGroup
	sem := make(chan struct{}, s.workers)
	for i, project := range items {
		wg.Add(1)
		go func(idx int, p *resume.Project) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[idx] = s.questionsFor(ctx, p)
		}(i, project)
	}
	wg.Wait()

	questions := make([]*Question, 0, len(items)*questionsPerProject)
	for _, qs := range results {
		questions = append(questions, qs...)
	}
	return questions
}

func (s *Synthesizer) questionsFor(ctx context.Context, project *resume.Project) []*Question {
	if s.generator == nil {
		return localQuestions(project)
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	enhanced, err := s.enhance(callCtx, project)
	if err != nil {
		s.logger.Warn("question enhancement failed, using local templates",
			zap.String("project", project.Title),
			zap.Error(err),
		)
		return localQuestions(project)
	}

	return enhanced
}

// questionPayload is the loosely-typed shape expected from the inference
// backend. Models are inconsistent about key names, so both question forms
// and both point forms are accepted.
type questionPayload struct {
	QuestionText   string   `mapstructure:"questionText"`
	Question       string   `mapstructure:"question"`
	Category       string   `mapstructure:"category"`
	ExpectedPoints []string `mapstructure:"expectedPoints"`
	Points         []string `mapstructure:"points"`
}

func (s *Synthesizer) enhance(ctx context.Context, project *resume.Project) ([]*Question, error) {
	prompt := buildQuestionPrompt(project)
	s.logger.Debug("question enhancement request",
		zap.String("project", project.Title),
		zap.String("model", s.generator.Model()),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, 200)),
	)

	raw, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	payloads, err := parseQuestionArray(raw)
	if err != nil {
		return nil, fmt.Errorf("parse question response: %w", err)
	}
	if len(payloads) == 0 {
		return nil, fmt.Errorf("empty question array in response")
	}

	questions := make([]*Question, 0, len(payloads))
	for i, payload := range payloads {
		text := strings.TrimSpace(payload.QuestionText)
		if text == "" {
			text = strings.TrimSpace(payload.Question)
		}
		if text == "" {
			continue
		}

		points := payload.ExpectedPoints
		if len(points) == 0 {
			points = payload.Points
		}

		questions = append(questions, &Question{
			ID:             QuestionID(project.Title, i+1),
			ProjectTitle:   project.Title,
			QuestionText:   text,
			Category:       normalizeCategory(payload.Category),
			ExpectedPoints: points,
		})
		if len(questions) == questionsPerProject {
			break
		}
	}

	// The 4-questions-per-project contract holds regardless of what the
	// backend returned; short replies are treated as failures.
	if len(questions) != questionsPerProject {
		return nil, fmt.Errorf("expected %d usable questions, got %d", questionsPerProject, len(questions))
	}
	return questions, nil
}

func buildQuestionPrompt(project *resume.Project) string {
	var b strings.Builder
	b.WriteString("Generate 4 concise interview questions for the following project. Return ONLY a JSON array of objects with keys: questionText, category, expectedPoints.\n")
	fmt.Fprintf(&b, "Project: %s\n", project.Title)
	fmt.Fprintf(&b, "Description: %s\n", project.Description)
	fmt.Fprintf(&b, "Technologies: %s", strings.Join(project.Technologies, ", "))
	return b.String()
}

func parseQuestionArray(raw string) ([]*questionPayload, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end <= start {
		return nil, fmt.Errorf("no JSON array found in response")
	}

	var entries []map[string]any
	if err := json.Unmarshal([]byte(raw[start:end+1]), &entries); err != nil {
		return nil, err
	}

	var payloads []*questionPayload
	if err := mapstructure.Decode(entries, &payloads); err != nil {
		return nil, err
	}
	return payloads, nil
}
