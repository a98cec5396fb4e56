package interview

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/interview-pilot/interview-pilot/internal/ai"
	"github.com/interview-pilot/interview-pilot/internal/resume"
	"github.com/interview-pilot/interview-pilot/internal/vocab"
)

const (
	minScore = 20
	maxScore = 95

	wordCountCap     = 50
	technicalBonus   = 15
	exampleBonus     = 10
	metricBonus      = 10
	baselineScore    = minScore
	baselineConf     = 30
	maxKeywords      = 8
	minKeywordLen    = 3
	maxResponseTime  = 60
	comprehensiveLen = 80
	briefLen         = 40
)

// Complexity bands.
const (
	ComplexityBasic        = "basic"
	ComplexityIntermediate = "intermediate"
	ComplexityAdvanced     = "advanced"
)

// AnswerFeatures are the boolean pattern matches an answer score is built
// from.
type AnswerFeatures struct {
	WordCount         int  `json:"wordCount"`
	HasTechnicalTerms bool `json:"hasTechnicalTerms"`
	HasExamples       bool `json:"hasExamples"`
	HasMetrics        bool `json:"hasMetrics"`
}

// AnswerAnalysis is the structured quality analysis of one answer. It is
// never mutated after creation.
type AnswerAnalysis struct {
	Score                  int            `json:"score"`
	Strengths              []string       `json:"strengths"`
	Weaknesses             []string       `json:"weaknesses"`
	Suggestions            []string       `json:"suggestions"`
	TechnicalAccuracy      int            `json:"technicalAccuracy"`
	CommunicationClarity   int            `json:"communicationClarity"`
	ProblemSolvingApproach int            `json:"problemSolvingApproach"`
	Sentiment              string         `json:"sentiment"`
	Confidence             int            `json:"confidence"`
	Keywords               []string       `json:"keywords"`
	ResponseTime           int            `json:"responseTime"`
	Complexity             string         `json:"complexity"`
	IndustryRelevance      int            `json:"industryRelevance"`
	CodeQuality            *int           `json:"codeQuality,omitempty"`
	Features               AnswerFeatures `json:"features"`
}

// Scorer computes answer analyses. The sentiment classifier is optional; the
// numeric scoring is deterministic and never depends on it.
type Scorer struct {
	classifier ai.SentimentClassifier
	logger     *zap.Logger
}

// NewScorer creates an answer scorer. A nil classifier means every analysis
// carries the neutral default sentiment.
func NewScorer(classifier ai.SentimentClassifier, logger *zap.Logger) *Scorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scorer{classifier: classifier, logger: logger}
}

// Score analyzes one answer against its question and project. It never
// returns an error: empty answers get a fixed baseline and classifier
// failures degrade to neutral sentiment.
func (s *Scorer) Score(ctx context.Context, question *Question, answer string, project *resume.Project) *AnswerAnalysis {
	clean := strings.TrimSpace(answer)
	if clean == "" {
		return baselineAnalysis(question)
	}

	sentiment := s.classify(ctx, clean)
	return analyze(clean, sentiment, question)
}

func (s *Scorer) classify(ctx context.Context, answer string) ai.Sentiment {
	if s.classifier == nil {
		return ai.NeutralSentiment()
	}

	sentiment, err := s.classifier.Classify(ctx, answer)
	if err != nil {
		s.logger.Warn("sentiment classification failed, using neutral default", zap.Error(err))
		return ai.NeutralSentiment()
	}
	return sentiment
}

func baselineAnalysis(question *Question) *AnswerAnalysis {
	a := &AnswerAnalysis{
		Score:       baselineScore,
		Sentiment:   ai.SentimentNeutral,
		Confidence:  baselineConf,
		Complexity:  ComplexityBasic,
		Strengths:   []string{},
		Keywords:    []string{},
		Weaknesses:  []string{"No answer provided"},
		Suggestions: []string{"Provide an answer to be evaluated"},
	}
	a.TechnicalAccuracy = clamp(a.Score + 5)
	a.CommunicationClarity = clamp(a.Score)
	a.ProblemSolvingApproach = clamp(a.Score - 5)
	a.IndustryRelevance = clamp(a.Score + 10)
	if question != nil && question.Category == CategoryTechnical {
		cq := clamp(a.Score + 15)
		a.CodeQuality = &cq
	}
	return a
}

func analyze(answer string, sentiment ai.Sentiment, question *Question) *AnswerAnalysis {
	features := extractFeatures(answer)

	score := features.WordCount
	if score > wordCountCap {
		score = wordCountCap
	}
	if features.HasTechnicalTerms {
		score += technicalBonus
	}
	if features.HasExamples {
		score += exampleBonus
	}
	if features.HasMetrics {
		score += metricBonus
	}
	if score < minScore {
		score = minScore
	}
	if score > maxScore {
		score = maxScore
	}

	strengths := make([]string, 0, 4)
	weaknesses := make([]string, 0, 3)
	suggestions := make([]string, 0, 1)

	if features.WordCount > comprehensiveLen {
		strengths = append(strengths, "Comprehensive detail and elaboration")
	}
	if features.HasTechnicalTerms {
		strengths = append(strengths, "Used relevant technical vocabulary")
	}
	if features.HasExamples {
		strengths = append(strengths, "Provided concrete examples")
	}
	if features.HasMetrics {
		strengths = append(strengths, "Included measurable outcomes")
	}

	if features.WordCount < briefLen {
		weaknesses = append(weaknesses, "Answer is brief; expand with specifics")
	}
	if !features.HasTechnicalTerms && question != nil && question.Category == CategoryTechnical {
		weaknesses = append(weaknesses, "Add more technical depth and terminology")
	}
	if !features.HasExamples {
		weaknesses = append(weaknesses, "Include specific examples or scenarios")
	}
	if !features.HasMetrics {
		suggestions = append(suggestions, "Quantify results or performance if possible")
	}

	responseTime := features.WordCount / 2
	if responseTime > maxResponseTime {
		responseTime = maxResponseTime
	}

	a := &AnswerAnalysis{
		Score:                  score,
		Strengths:              strengths,
		Weaknesses:             weaknesses,
		Suggestions:            suggestions,
		TechnicalAccuracy:      clamp(score + 5),
		CommunicationClarity:   clamp(score),
		ProblemSolvingApproach: clamp(score - 5),
		Sentiment:              sentiment.Label,
		Confidence:             sentiment.Confidence,
		Keywords:               topKeywords(answer, maxKeywords),
		ResponseTime:           responseTime,
		Complexity:             complexityBand(score),
		IndustryRelevance:      clamp(score + 10),
		Features:               features,
	}

	if question != nil && question.Category == CategoryTechnical {
		cq := clamp(score + 15)
		a.CodeQuality = &cq
	}
	return a
}

func extractFeatures(answer string) AnswerFeatures {
	return AnswerFeatures{
		WordCount:         len(strings.Fields(answer)),
		HasTechnicalTerms: vocab.HasTechnicalTerm(answer),
		HasExamples:       vocab.HasExample(answer),
		HasMetrics:        vocab.HasMetric(answer),
	}
}

func complexityBand(score int) string {
	switch {
	case score > 70:
		return ComplexityAdvanced
	case score > 50:
		return ComplexityIntermediate
	default:
		return ComplexityBasic
	}
}

// topKeywords returns the n most frequent non-stopword tokens longer than two
// characters, ties broken by first occurrence.
func topKeywords(answer string, n int) []string {
	type entry struct {
		token string
		count int
		first int
	}

	counts := make(map[string]*entry)
	order := make([]*entry, 0)

	for i, token := range strings.Fields(strings.ToLower(answer)) {
		token = strings.Trim(token, ".,;:!?\"'()[]")
		if len(token) < minKeywordLen || vocab.IsStopword(token) {
			continue
		}
		if e, ok := counts[token]; ok {
			e.count++
			continue
		}
		e := &entry{token: token, count: 1, first: i}
		counts[token] = e
		order = append(order, e)
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
	keywords := make([]string, len(order))
	for i, e := range order {
		keywords[i] = e.token
	}
	return keywords
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
