package assessment

import "testing"

func TestIndustryComparison(t *testing.T) {
	t.Parallel()

	got := IndustryComparison(60)
	if len(got) != 4 {
		t.Fatalf("expected 4 comparison records, got %d", len(got))
	}

	want := []ComparisonData{
		{Category: "Technical Knowledge", UserScore: 65, IndustryAverage: 62, TopPerformers: 88},
		{Category: "Communication", UserScore: 60, IndustryAverage: 65, TopPerformers: 90},
		{Category: "Problem Solving", UserScore: 55, IndustryAverage: 58, TopPerformers: 85},
		{Category: "Overall", UserScore: 60, IndustryAverage: 60, TopPerformers: 87},
	}
	for i, w := range want {
		if *got[i] != w {
			t.Fatalf("record %d = %+v, want %+v", i, *got[i], w)
		}
	}
}

func TestIndustryComparisonClampsUserScore(t *testing.T) {
	t.Parallel()

	for _, c := range IndustryComparison(98) {
		if c.UserScore > 100 {
			t.Fatalf("%s user score %d exceeds 100", c.Category, c.UserScore)
		}
	}
	for _, c := range IndustryComparison(2) {
		if c.UserScore < 0 {
			t.Fatalf("%s user score %d below 0", c.Category, c.UserScore)
		}
	}
}

func TestIndustryComparisonDeterministic(t *testing.T) {
	t.Parallel()

	a := IndustryComparison(73)
	b := IndustryComparison(73)
	for i := range a {
		if *a[i] != *b[i] {
			t.Fatalf("record %d differs between calls: %+v vs %+v", i, *a[i], *b[i])
		}
	}
}
