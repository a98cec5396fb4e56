package interview

import (
	"time"

	"github.com/google/uuid"
)

// Rating bands for a completed session.
const (
	RatingPoor      = "Poor"
	RatingFair      = "Fair"
	RatingGood      = "Good"
	RatingExcellent = "Excellent"
)

// Metrics aggregates every answer analysis recorded during a session.
type Metrics struct {
	SessionID           string  `json:"sessionId"`
	TotalDuration       int     `json:"totalDuration"`
	AverageResponseTime float64 `json:"averageResponseTime"`
	ConfidenceLevel     int     `json:"confidenceLevel"`
	TechnicalDepth      int     `json:"technicalDepth"`
	CommunicationScore  int     `json:"communicationScore"`
	OverallRating       string  `json:"overallRating"`
}

// Session accumulates answer analyses for one interview run.
type Session struct {
	id       string
	started  time.Time
	analyses []*AnswerAnalysis
}

// NewSession starts a new interview session.
func NewSession() *Session {
	return &Session{
		id:      uuid.NewString(),
		started: time.Now(),
	}
}

func (s *Session) ID() string { return s.id }

// Record adds an analysis to the session.
func (s *Session) Record(a *AnswerAnalysis) {
	if a != nil {
		s.analyses = append(s.analyses, a)
	}
}

func (s *Session) Analyses() []*AnswerAnalysis { return s.analyses }

// Metrics folds the recorded analyses into session-level metrics. An empty
// session yields zeroed metrics with a Poor rating.
func (s *Session) Metrics() *Metrics {
	m := &Metrics{
		SessionID:     s.id,
		TotalDuration: int(time.Since(s.started).Seconds()),
		OverallRating: RatingPoor,
	}

	if len(s.analyses) == 0 {
		return m
	}

	var score, response, confidence, accuracy, clarity int
	for _, a := range s.analyses {
		score += a.Score
		response += a.ResponseTime
		confidence += a.Confidence
		accuracy += a.TechnicalAccuracy
		clarity += a.CommunicationClarity
	}

	n := len(s.analyses)
	m.AverageResponseTime = float64(response) / float64(n)
	m.ConfidenceLevel = confidence / n
	m.TechnicalDepth = accuracy / n
	m.CommunicationScore = clarity / n
	m.OverallRating = ratingBand(score / n)

	return m
}

func ratingBand(meanScore int) string {
	switch {
	case meanScore >= 80:
		return RatingExcellent
	case meanScore >= 65:
		return RatingGood
	case meanScore >= 45:
		return RatingFair
	default:
		return RatingPoor
	}
}
