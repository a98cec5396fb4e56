package interview

import "testing"

func TestSessionMetricsEmpty(t *testing.T) {
	t.Parallel()

	s := NewSession()
	if s.ID() == "" {
		t.Fatal("session must carry an ID")
	}

	m := s.Metrics()
	if m.SessionID != s.ID() {
		t.Fatalf("SessionID = %q, want %q", m.SessionID, s.ID())
	}
	if m.OverallRating != RatingPoor {
		t.Fatalf("OverallRating = %q, want %q", m.OverallRating, RatingPoor)
	}
	if m.AverageResponseTime != 0 || m.ConfidenceLevel != 0 {
		t.Fatalf("empty session metrics not zeroed: %+v", m)
	}
}

func TestSessionMetricsAverages(t *testing.T) {
	t.Parallel()

	s := NewSession()
	s.Record(&AnswerAnalysis{
		Score: 80, ResponseTime: 20, Confidence: 60,
		TechnicalAccuracy: 85, CommunicationClarity: 80,
	})
	s.Record(&AnswerAnalysis{
		Score: 60, ResponseTime: 30, Confidence: 40,
		TechnicalAccuracy: 65, CommunicationClarity: 60,
	})
	s.Record(nil)

	if got := len(s.Analyses()); got != 2 {
		t.Fatalf("recorded %d analyses, want 2 (nil dropped)", got)
	}

	m := s.Metrics()
	if m.AverageResponseTime != 25 {
		t.Fatalf("AverageResponseTime = %v, want 25", m.AverageResponseTime)
	}
	if m.ConfidenceLevel != 50 || m.TechnicalDepth != 75 || m.CommunicationScore != 70 {
		t.Fatalf("metrics = %+v", m)
	}
	if m.OverallRating != RatingGood {
		t.Fatalf("OverallRating = %q, want %q (mean score 70)", m.OverallRating, RatingGood)
	}
}

func TestRatingBand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score int
		want  string
	}{
		{95, RatingExcellent},
		{80, RatingExcellent},
		{79, RatingGood},
		{65, RatingGood},
		{64, RatingFair},
		{45, RatingFair},
		{44, RatingPoor},
		{0, RatingPoor},
	}

	for _, tt := range tests {
		if got := ratingBand(tt.score); got != tt.want {
			t.Fatalf("ratingBand(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
