package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/seo-content-engine/internal/health"
	"github.com/jonathan/seo-content-engine/internal/observability"
	"github.com/jonathan/seo-content-engine/internal/schemas"
	"github.com/jonathan/seo-content-engine/internal/types"
	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Score stored products for SEO completeness",
	Long: "Reads a JSON array of stored products, checks each against the selected SEO plugin profile " +
		"and writes per-product results plus a batch summary.",
	RunE: runHealth,
}

var (
	healthInput   string
	healthProfile string
	healthOutput  string
)

func init() {
	healthCmd.Flags().StringVarP(&healthInput, "in", "i", "", "Path to products JSON array (required)")
	healthCmd.Flags().StringVarP(&healthProfile, "profile", "p", "", "SEO plugin profile (default from config)")
	healthCmd.Flags().StringVarP(&healthOutput, "out", "o", "", "Path to output HealthReport JSON file (required)")

	if err := healthCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	if err := healthCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(healthCmd)
}

func runHealth(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	profile, err := resolveProfile(cfg, healthProfile)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(healthInput)
	if err != nil {
		return fmt.Errorf("failed to read products file: %w", err)
	}
	var products []types.StoredProduct
	if err := json.Unmarshal(content, &products); err != nil {
		return fmt.Errorf("failed to unmarshal products JSON: %w", err)
	}

	thresholds := cfg.Thresholds()
	analyzer := health.NewAnalyzer(profile, thresholds, cfg.Concurrency)
	results := analyzer.AnalyzeBatch(products)

	report := types.HealthReport{
		ID:          uuid.New(),
		Profile:     profile.Name,
		GeneratedAt: time.Now().UTC(),
		Results:     results,
		Summary:     health.Summarize(results, thresholds.TopMissing),
	}

	logger := newLogger(cmd, cfg)
	logger.Info("health check complete",
		"report_id", report.ID.String(),
		"profile", profile.Name,
		"total", report.Summary.Total,
		"critical", report.Summary.Critical,
		"average_score", report.Summary.AverageScore)

	checkSchema(cmd.ErrOrStderr(), schemas.HealthReportSchema, "health report", report)

	if err := writeJSON(healthOutput, report); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if cfg.Verbose {
		observability.NewPrinter(out).PrintHealthSummary(&report.Summary)
	}

	_, _ = fmt.Fprintf(out, "Checked %d products: %d complete, %d need attention, %d critical\n",
		report.Summary.Total, report.Summary.Complete, report.Summary.NeedsAttention, report.Summary.Critical)
	_, _ = fmt.Fprintf(out, "Output: %s\n", healthOutput)
	return nil
}
