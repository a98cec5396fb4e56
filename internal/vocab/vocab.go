// Package vocab holds the curated vocabulary and pattern bank used by the
// extraction and scoring pipeline. All data here is static and read-only, so
// it is safe for concurrent use without synchronization.
package vocab

import (
	"regexp"
	"strings"
)

// TechKeywords is the full technology vocabulary scanned against project
// descriptions.
var TechKeywords = []string{
	"react", "node", "python", "java", "javascript", "typescript", "mongodb",
	"sql", "postgres", "mysql", "docker", "kubernetes", "aws", "azure", "gcp",
	"express", "next", "vue", "angular", "django", "flask", "spring", "fastapi",
	"graphql", "rest", "api", "html", "css", "tailwind", "bootstrap", "git",
	"github", "jenkins", "ml", "ai", "tensorflow", "pytorch", "xgboost",
	"pandas", "numpy", "go", "redis", "kafka", "grpc",
}

// achievementVerbs mark a sentence as an achievement when extracting from a
// validated project description.
var achievementVerbs = []string{
	"built", "developed", "created", "implemented", "designed", "optimized",
	"improved", "reduced", "increased", "deployed", "architected",
}

// emergencyVerbs is the wider verb list used by the last-resort paragraph scan.
var emergencyVerbs = append([]string{"achieved", "solved"}, achievementVerbs...)

var (
	techRegex      = wordListRegex(TechKeywords)
	emergencyRegex = regexp.MustCompile(`(?i)\b(react|node|python|java|javascript|typescript|mongodb|sql|docker|api|ml|ai|express|database|backend|frontend|full.?stack)\b`)

	achievementRegex = wordListRegex(achievementVerbs)
	emergencyVerbRe  = wordListRegex(emergencyVerbs)

	// Candidates matching any of these are not genuine projects: academic
	// credentials and generic resume section markers.
	disqualifying = []*regexp.Regexp{
		regexp.MustCompile(`(?i)cgpa|gpa|percentage|grade|university|college|school|degree|b\.?tech|\bb\.?e\b|m\.?tech|phd`),
		regexp.MustCompile(`(?i)\b(skills?|languages?|tools?|frameworks?|certifications?|awards?|hackathon|competition)\b`),
	}

	projectHeadingRegex = regexp.MustCompile(`(?i)(?:^|\n)(?:PROJECTS?|TECHNICAL PROJECTS?|PERSONAL PROJECTS?)\b`)
	sectionHeadingRegex = regexp.MustCompile(`(?i)\n(?:EDUCATION|SKILLS|EXPERIENCE|CERTIFICATIONS)\b`)

	bulletRegex = regexp.MustCompile(`\n\s*[•\-*]\s*|\n\s*\d+\.\s*`)
	markerRegex = regexp.MustCompile(`^[•\-*\d.\s]+`)

	// Answer feature patterns.
	technicalTermRegex = regexp.MustCompile(`(?i)algorithm|architecture|implementation|api|database|performance|latency|scalability|deploy|container|docker|kubernetes|thread|async|lambda|queue|cache|redis|mongodb|postgres|sql|rest|graphql`)
	exampleRegex       = regexp.MustCompile(`(?i)example|instance|case|for example|such as|like when`)
	metricRegex        = regexp.MustCompile(`(?i)\b\d+%|\b\d+\s*x\b|\b\d+\s*ms\b|\b\d+\s+sec(onds)?\b|\bimprov(ed|ement)\b|\breduc(ed|tion)\b`)

	seniorityRoleRegex = regexp.MustCompile(`(?i)\b(senior|lead|principal|architect|manager|head)\b`)

	sentenceSplitRegex = regexp.MustCompile(`[.;!?]`)
)

// stopwords excluded from answer keyword extraction.
var stopwords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(
		"the and for with that this was were are is of to in on at a an it i " +
			"we our us my me as by from be been have has had not but so or if " +
			"then than also very just about into over after before during " +
			"when while which who whom what how all any both each more most " +
			"other some such will would can could should did does do using " +
			"used its they them their there these those you your he she his her") {
		stopwords[w] = struct{}{}
	}
}

func wordListRegex(words []string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b(` + strings.Join(words, "|") + `)\b`)
}

// Technologies returns the deduplicated, lowercased technology keywords found
// in text, in first-occurrence order.
func Technologies(text string) []string {
	return dedupLower(techRegex.FindAllString(text, -1))
}

// EmergencyMatches returns the reduced technology/role vocabulary hits in
// text, lowercased and deduplicated, first-occurrence order.
func EmergencyMatches(text string) []string {
	return dedupLower(emergencyRegex.FindAllString(text, -1))
}

func dedupLower(matches []string) []string {
	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		m = strings.ToLower(m)
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}

// SplitSentences splits text on sentence terminators.
func SplitSentences(text string) []string {
	return sentenceSplitRegex.Split(text, -1)
}

// HasAchievementVerb reports whether s contains one of the core achievement verbs.
func HasAchievementVerb(s string) bool { return achievementRegex.MatchString(s) }

// HasEmergencyVerb reports whether s contains one of the extended achievement verbs.
func HasEmergencyVerb(s string) bool { return emergencyVerbRe.MatchString(s) }

// IsDisqualified reports whether s matches a disqualifying pattern, meaning the
// text belongs to an education or skills section rather than a project.
func IsDisqualified(s string) bool {
	for _, re := range disqualifying {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// ProjectHeadingIndex returns the byte offset of the first project-type
// heading in text, or -1.
func ProjectHeadingIndex(text string) int {
	loc := projectHeadingRegex.FindStringIndex(text)
	if loc == nil {
		return -1
	}
	return loc[0]
}

// NextSectionIndex returns the byte offset of the first known non-project
// section heading at or after offset, or -1.
func NextSectionIndex(text string, offset int) int {
	loc := sectionHeadingRegex.FindStringIndex(text[offset:])
	if loc == nil {
		return -1
	}
	return offset + loc[0]
}

// SplitBullets splits a section span on bullet markers and numbered-list
// boundaries.
func SplitBullets(section string) []string {
	return bulletRegex.Split(section, -1)
}

// StripMarkers removes leading bullet or numbering markers from a line.
func StripMarkers(line string) string {
	return strings.TrimSpace(markerRegex.ReplaceAllString(line, ""))
}

// HasTechnicalTerm reports whether an answer uses technical vocabulary.
func HasTechnicalTerm(s string) bool { return technicalTermRegex.MatchString(s) }

// HasExample reports whether an answer references a concrete example.
func HasExample(s string) bool { return exampleRegex.MatchString(s) }

// HasMetric reports whether an answer quantifies an outcome (percentages,
// multipliers, time units, improvement/reduction language).
func HasMetric(s string) bool { return metricRegex.MatchString(s) }

// HasSeniorityKeyword reports whether a role string signals seniority.
func HasSeniorityKeyword(role string) bool { return seniorityRoleRegex.MatchString(role) }

// IsStopword reports whether the lowercased token is a stopword for keyword
// extraction.
func IsStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}
