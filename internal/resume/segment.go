package resume

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/interview-pilot/interview-pilot/internal/vocab"
)

const (
	minBlockLen  = 30
	minBulletLen = 50
)

// SegmentText splits raw document text into candidate project blocks. Two
// detection strategies run independently and their outputs are concatenated;
// duplicates are not removed here, validity filtering happens downstream.
func SegmentText(text string) []string {
	clean := normalize(text)

	blocks := headingAnchoredBlocks(clean)
	blocks = append(blocks, patternAnchoredBlocks(clean)...)

	kept := make([]string, 0, len(blocks))
	for _, block := range blocks {
		if utf8.RuneCountInString(block) > minBlockLen {
			kept = append(kept, block)
		}
	}
	return kept
}

func normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	for strings.Contains(text, "\n\n\n") {
		text = strings.ReplaceAll(text, "\n\n\n", "\n\n")
	}
	return strings.TrimSpace(text)
}

// headingAnchoredBlocks locates a span introduced by a project-type heading
// and bounded by the next known section heading or end of document, then
// splits it into bullets.
func headingAnchoredBlocks(text string) []string {
	start := vocab.ProjectHeadingIndex(text)
	if start < 0 {
		return nil
	}

	end := vocab.NextSectionIndex(text, start)
	if end < 0 {
		end = len(text)
	}

	var blocks []string
	for _, bullet := range vocab.SplitBullets(text[start:end]) {
		if utf8.RuneCountInString(bullet) > minBulletLen {
			blocks = append(blocks, bullet)
		}
	}
	return blocks
}

// patternAnchoredBlocks scans line by line for a short title-like line
// immediately followed by body text, and for explicit "Title:"/"Project:"
// label forms.
func patternAnchoredBlocks(text string) []string {
	lines := strings.Split(text, "\n")

	var blocks []string
	for i, line := range lines {
		title, ok := titleFromLine(line)
		if !ok {
			continue
		}

		body := collectBody(lines, i+1)
		if body == "" {
			continue
		}

		if utf8.RuneCountInString(title) > 5 && utf8.RuneCountInString(body) > 20 {
			blocks = append(blocks, title+"\n"+body)
		}
	}
	return blocks
}

// titleFromLine accepts an explicit label form or a capitalized 10-80 char
// line with no bullet marker.
func titleFromLine(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return "", false
	}

	lower := strings.ToLower(trimmed)
	for _, label := range []string{"title:", "project:"} {
		if strings.HasPrefix(lower, label) {
			title := strings.TrimSpace(trimmed[len(label):])
			return title, title != ""
		}
	}

	if n := utf8.RuneCountInString(trimmed); n < 10 || n > 80 {
		return "", false
	}
	if isBulleted(trimmed) {
		return "", false
	}

	first := []rune(trimmed)[0]
	if !unicode.IsUpper(first) {
		return "", false
	}

	return trimmed, true
}

// collectBody gathers up to 5 following non-empty, non-bullet lines.
func collectBody(lines []string, from int) string {
	var body []string
	for i := from; i < len(lines) && len(body) < 5; i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || isBulleted(line) {
			break
		}
		body = append(body, line)
	}
	return strings.TrimSpace(strings.Join(body, "\n"))
}

func isBulleted(line string) bool {
	for _, prefix := range []string{"•", "- ", "* "} {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
