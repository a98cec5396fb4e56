package resume

import (
	"context"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/interview-pilot/interview-pilot/internal/logger"
)

// minMeaningfulLen is the minimum number of meaningful characters a resume
// must contain before any extraction tier is attempted.
const minMeaningfulLen = 50

// Tier is a single extraction strategy. Extract returns the projects it could
// produce, possibly none; the orchestrator advances to the next tier on
// emptiness. Tiers report errors for logging only, they never abort the chain.
type Tier interface {
	Name() string
	Extract(ctx context.Context, text string) ([]*Project, error)
}

// Extractor runs extraction tiers in fixed priority order.
type Extractor struct {
	tiers  []Tier
	logger *zap.Logger
}

// NewExtractor builds the extractor chain. When generator is nil the
// inference tier is omitted and extraction is fully deterministic.
func NewExtractor(tiers []Tier, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{tiers: tiers, logger: logger}
}

// Extract turns raw resume text into structured projects. It never returns an
// error: every tier failure is recovered by the next tier, and degenerate
// input short-circuits to an empty set.
func (e *Extractor) Extract(ctx context.Context, text string) *Projects {
	if meaningfulLen(text) < minMeaningfulLen {
		e.logger.Debug("resume too short for extraction", zap.Int("meaningful_chars", meaningfulLen(text)))
		return &Projects{}
	}

	for _, tier := range e.tiers {
		projects, err := tier.Extract(ctx, text)
		if err != nil {
			e.logger.Warn("extraction tier failed",
				logger.Tier(tier.Name()),
				zap.Error(err),
			)
			continue
		}

		if len(projects) == 0 {
			e.logger.Debug("extraction tier produced no projects", logger.Tier(tier.Name()))
			continue
		}

		e.logger.Info("projects extracted",
			logger.Tier(tier.Name()),
			zap.Int("count", len(projects)),
		)
		return &Projects{Items: projects}
	}

	return &Projects{}
}

func meaningfulLen(text string) int {
	count := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			count++
		}
	}
	return count
}

func trimLen(s string) int { return len(strings.TrimSpace(s)) }
