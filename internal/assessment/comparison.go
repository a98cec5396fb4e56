package assessment

// ComparisonData relates a user's score in one dimension to fixed industry
// reference figures.
type ComparisonData struct {
	Category        string `json:"category"`
	UserScore       int    `json:"userScore"`
	IndustryAverage int    `json:"industryAverage"`
	TopPerformers   int    `json:"topPerformers"`
}

// comparisonCategories drive IndustryComparison. The reference figures are
// deterministic per-category constants; the user score is the input score
// shifted by a fixed offset.
var comparisonCategories = []struct {
	name    string
	offset  int
	average int
	top     int
}{
	{name: "Technical Knowledge", offset: 5, average: 62, top: 88},
	{name: "Communication", offset: 0, average: 65, top: 90},
	{name: "Problem Solving", offset: -5, average: 58, top: 85},
	{name: "Overall", offset: 0, average: 60, top: 87},
}

// IndustryComparison returns exactly four comparison records derived from the
// given score, one per scoring dimension. Pure and deterministic.
func IndustryComparison(score int) []*ComparisonData {
	out := make([]*ComparisonData, 0, len(comparisonCategories))
	for _, c := range comparisonCategories {
		out = append(out, &ComparisonData{
			Category:        c.name,
			UserScore:       clampScore(score + c.offset),
			IndustryAverage: c.average,
			TopPerformers:   c.top,
		})
	}
	return out
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
