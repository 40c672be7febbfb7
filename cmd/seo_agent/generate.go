package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/seo-content-engine/internal/observability"
	"github.com/jonathan/seo-content-engine/internal/pipeline"
	"github.com/jonathan/seo-content-engine/internal/schemas"
	"github.com/jonathan/seo-content-engine/internal/types"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Repair generated copy into a compliant SEO content record",
	Long: "Parses labelled generator output, fills gaps from existing meta, repairs every field " +
		"to the SEO rule set and writes the record, its compliance report and the plugin meta updates as JSON.",
	RunE: runGenerate,
}

var (
	generateName         string
	generateInput        string
	generateCategories   string
	generateStoreURL     string
	generateExistingMeta string
	generatePermalink    string
	generateProfile      string
	generateOutput       string
)

func init() {
	generateCmd.Flags().StringVarP(&generateName, "name", "n", "", "Product name (required)")
	generateCmd.Flags().StringVarP(&generateInput, "in", "i", "", "Path to raw generator output text (required)")
	generateCmd.Flags().StringVarP(&generateCategories, "categories", "c", "", "Comma-separated category names")
	generateCmd.Flags().StringVar(&generateStoreURL, "store-url", "", "Store base URL for category links")
	generateCmd.Flags().StringVar(&generateExistingMeta, "existing-meta", "", "Path to JSON object of the product's current meta")
	generateCmd.Flags().StringVar(&generatePermalink, "permalink", "", "Permalink override")
	generateCmd.Flags().StringVarP(&generateProfile, "profile", "p", "", "SEO plugin profile (default from config)")
	generateCmd.Flags().StringVarP(&generateOutput, "out", "o", "", "Path to output JSON file (required)")

	if err := generateCmd.MarkFlagRequired("name"); err != nil {
		panic(fmt.Sprintf("failed to mark name flag as required: %v", err))
	}
	if err := generateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	if err := generateCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	profile, err := resolveProfile(cfg, generateProfile)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(generateInput)
	if err != nil {
		return fmt.Errorf("failed to read generator output: %w", err)
	}

	product := types.ProductDescriptor{
		Name:       generateName,
		Categories: splitList(generateCategories),
		StoreURL:   cfg.StoreURL,
	}
	if generateStoreURL != "" {
		product.StoreURL = generateStoreURL
	}
	if generateExistingMeta != "" {
		content, err := os.ReadFile(generateExistingMeta)
		if err != nil {
			return fmt.Errorf("failed to read existing meta file: %w", err)
		}
		if err := json.Unmarshal(content, &product.ExistingMeta); err != nil {
			return fmt.Errorf("failed to unmarshal existing meta JSON: %w", err)
		}
	}

	result := pipeline.Generate(product, string(raw), pipeline.GenerateOptions{
		Profile:           &profile,
		SoftTargets:       cfg.SoftTargets(),
		PermalinkOverride: generatePermalink,
		Logger:            newLogger(cmd, cfg),
	})

	checkSchema(cmd.ErrOrStderr(), schemas.ContentRecordSchema, "content record", result.Record)
	checkSchema(cmd.ErrOrStderr(), schemas.ComplianceReportSchema, "compliance report", result.Report)

	if err := writeJSON(generateOutput, result); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if cfg.Verbose {
		printer := observability.NewPrinter(out)
		printer.PrintContentRecord(&result.Record)
		printer.PrintComplianceReport(&result.Report)
	}

	_, _ = fmt.Fprintf(out, "Generated SEO content for %q (keyword %q)\n", product.Name, result.Report.PrimaryKeyword)
	_, _ = fmt.Fprintf(out, "Repaired fields: %d, warnings: %d\n", len(result.Report.RepairedFields()), len(result.Report.Violations))
	_, _ = fmt.Fprintf(out, "Output: %s\n", generateOutput)
	return nil
}
