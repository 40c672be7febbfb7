// Package pipeline provides the high-level orchestration for SEO content generation.
package pipeline

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jonathan/seo-content-engine/internal/parsing"
	"github.com/jonathan/seo-content-engine/internal/profiles"
	"github.com/jonathan/seo-content-engine/internal/repair"
	"github.com/jonathan/seo-content-engine/internal/types"
	"github.com/jonathan/seo-content-engine/internal/validation"
)

// Step names reported through ProgressEvent
const (
	StepParse    = "parse_sections"
	StepFallback = "existing_meta"
	StepRepair   = "repair"
	StepEvaluate = "evaluate"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// GenerateOptions holds configuration for one generation run
type GenerateOptions struct {
	// Profile maps existing meta and the output update map; nil disables both
	Profile           *profiles.Profile
	SoftTargets       validation.SoftTargets
	PermalinkOverride string
	PowerWord         func() string
	Logger            *slog.Logger
	OnProgress        ProgressCallback
}

// GenerateResult is everything a caller needs to persist a generated product
type GenerateResult struct {
	Record      types.ContentRecord    `json:"record"`
	Report      types.ComplianceReport `json:"report"`
	MetaUpdates map[string]string      `json:"meta_updates,omitempty"`
}

// fallbackFields are read from existing meta when the generator left them out
var fallbackFields = []string{
	types.FieldMetaTitle,
	types.FieldMetaDescription,
	types.FieldAltText,
}

func emitProgress(opts *GenerateOptions, runID uuid.UUID, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			RunID:   runID.String(),
			Content: content,
		})
	}
}

// Generate turns raw generator text into a repaired record and its compliance report.
// Like the engine underneath it, it never fails.
func Generate(product types.ProductDescriptor, raw string, opts GenerateOptions) *GenerateResult {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.SoftTargets == (validation.SoftTargets{}) {
		opts.SoftTargets = validation.DefaultSoftTargets()
	}
	runID := uuid.New()
	logger = logger.With("run_id", runID.String(), "product", product.Name)

	parsed := parsing.ParseSections(raw)
	found := parsing.FoundLabels(raw)
	emitProgress(&opts, runID, StepParse, fmt.Sprintf("Found %d of %d sections", len(found), len(parsing.Sections)), found)
	logger.Debug("parsed sections", "found", found)

	if filled := applyExistingMeta(&parsed, product.ExistingMeta, opts.Profile); len(filled) > 0 {
		emitProgress(&opts, runID, StepFallback, fmt.Sprintf("Filled %d fields from existing meta", len(filled)), filled)
		logger.Debug("filled from existing meta", "fields", filled)
	}

	repaired := repair.ValidateAndRepair(parsed, product.Name, product.StoreURL, &repair.Options{
		Categories:        product.Categories,
		PermalinkOverride: opts.PermalinkOverride,
		PowerWord:         opts.PowerWord,
	})
	emitProgress(&opts, runID, StepRepair, fmt.Sprintf("Primary keyword: %s", repaired.PrimaryKeyword), repaired.Outcomes)

	ctx := validation.Context{
		PrimaryKeyword: repaired.PrimaryKeyword,
		ShortKeyword:   repaired.ShortKeyword,
		StoreURL:       product.StoreURL,
	}
	violations := validation.Evaluate(&repaired.Record, validation.Rules(opts.SoftTargets), ctx)

	report := buildReport(runID, repaired, violations)
	emitProgress(&opts, runID, StepEvaluate, fmt.Sprintf("%d violations", len(report.Violations)), report)

	for _, v := range violations.Warnings() {
		logger.Warn("soft target missed", "field", v.Field, "type", string(v.Type), "details", v.Details)
	}
	for _, v := range violations.Errors() {
		logger.Error("rule still violated after repair", "field", v.Field, "type", string(v.Type), "details", v.Details)
	}
	logger.Info("generation complete",
		"primary_keyword", report.PrimaryKeyword,
		"repaired", report.RepairedFields(),
		"violations", len(report.Violations))

	result := &GenerateResult{
		Record: repaired.Record,
		Report: report,
	}
	if opts.Profile != nil {
		result.MetaUpdates = opts.Profile.MetaUpdates(&result.Record)
	}
	return result
}

// applyExistingMeta fills empty parsed fields from the product's current meta.
// The profile's physical key wins over a logical field name.
func applyExistingMeta(rec *types.ContentRecord, meta map[string]string, profile *profiles.Profile) []string {
	filled := make([]string, 0)
	if len(meta) == 0 {
		return filled
	}
	for _, field := range fallbackFields {
		if rec.Get(field) != "" {
			continue
		}
		value := ""
		if profile != nil {
			value = profile.ExistingValue(meta, field)
		}
		if value == "" {
			value = meta[field]
		}
		if value != "" {
			rec.Set(field, value)
			filled = append(filled, field)
		}
	}
	return filled
}

// buildReport marks passing fields that carry soft violations as warnings
func buildReport(runID uuid.UUID, repaired *repair.Result, violations *types.Violations) types.ComplianceReport {
	report := types.ComplianceReport{
		RunID:          runID,
		PrimaryKeyword: repaired.PrimaryKeyword,
		Fields:         make(map[string]types.FieldOutcome, len(repaired.Outcomes)),
		Violations:     violations.Violations,
	}
	for field, outcome := range repaired.Outcomes {
		report.Fields[field] = outcome
	}

	for _, v := range violations.Warnings() {
		outcome, ok := report.Fields[v.Field]
		if !ok || outcome.Status != types.StatusPass {
			continue
		}
		report.Fields[v.Field] = types.FieldOutcome{Status: types.StatusWarning, Detail: v.Details}
	}
	return report
}
