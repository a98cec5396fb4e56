package logger

import (
	"strings"

	"go.uber.org/zap"
)

// Structured field keys shared by everything that logs about an AI backend or
// the extraction pipeline, so a session's entries can be filtered by
// provider, model or tier.
const (
	FieldProvider = "ai_provider"
	FieldModel    = "ai_model"
	FieldTier     = "extraction_tier"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the pairs into zap fields, trimming whitespace and
// dropping entries with an empty key or value.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields attaches the fields to the logger, substituting a no-op logger
// for nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// CommonFields returns the provider/model fields every AI client log entry
// carries. Empty values are dropped.
func CommonFields(provider, model string) []zap.Field {
	return StringFields(
		StringField{Key: FieldProvider, Value: provider},
		StringField{Key: FieldModel, Value: model},
	)
}

// WithCommonFields attaches the common AI fields to the provided logger.
func WithCommonFields(logger *zap.Logger, provider, model string) *zap.Logger {
	fields := CommonFields(provider, model)
	return WithFields(logger, fields...)
}

// Tier tags a log entry with the extraction tier that produced it.
func Tier(name string) zap.Field {
	return zap.String(FieldTier, name)
}
