package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestStringFieldsSkipsEmptyEntries(t *testing.T) {
	t.Parallel()

	fields := StringFields(
		StringField{Key: "  ", Value: "ignored"},
		StringField{Key: "provider", Value: "  "},
		StringField{Key: " model ", Value: " gemini-2.5-flash "},
	)

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}

	if fields[0].Key != "model" {
		t.Fatalf("unexpected key: %q", fields[0].Key)
	}

	if fields[0].String != "gemini-2.5-flash" {
		t.Fatalf("unexpected value: %q", fields[0].String)
	}
}

func TestWithCommonFieldsAttachesProviderAndModel(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	logger := WithCommonFields(zap.New(core), "huggingface", "mistral")

	logger.Info("scored answer")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx[FieldProvider] != "huggingface" {
		t.Fatalf("unexpected provider field: %v", ctx[FieldProvider])
	}
	if ctx[FieldModel] != "mistral" {
		t.Fatalf("unexpected model field: %v", ctx[FieldModel])
	}
}

func TestTierTagsEntries(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.DebugLevel)
	zap.New(core).Debug("extraction tier produced no projects", Tier("patterns"))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()[FieldTier]; got != "patterns" {
		t.Fatalf("unexpected tier field: %v", got)
	}
}

func TestWithCommonFieldsToleratesNilLogger(t *testing.T) {
	t.Parallel()

	logger := WithCommonFields(nil, "gemini", "")
	if logger == nil {
		t.Fatal("expected non-nil logger")
	}

	// Must not panic.
	logger.Info("noop")
}
