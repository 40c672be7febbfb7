package main

import (
	"fmt"
	"strings"

	"github.com/jonathan/seo-content-engine/internal/keywords"
	"github.com/spf13/cobra"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Show the keywords and permalink derived from a product name",
	RunE:  runKeywords,
}

var (
	keywordsName       string
	keywordsCategories string
)

func init() {
	keywordsCmd.Flags().StringVarP(&keywordsName, "name", "n", "", "Product name (required)")
	keywordsCmd.Flags().StringVarP(&keywordsCategories, "categories", "c", "", "Comma-separated category names")

	if err := keywordsCmd.MarkFlagRequired("name"); err != nil {
		panic(fmt.Sprintf("failed to mark name flag as required: %v", err))
	}

	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(cmd *cobra.Command, _ []string) error {
	categoryText := strings.Join(splitList(keywordsCategories), " ")

	primary, short := keywords.Resolve(keywordsName)

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Primary:   %s\n", primary)
	_, _ = fmt.Fprintf(out, "Short:     %s\n", short)
	_, _ = fmt.Fprintf(out, "Permalink: %s\n", keywords.CreateOptimalPermalink(primary))
	_, _ = fmt.Fprintln(out, "Secondary:")
	for _, kw := range keywords.GenerateSecondaryKeywords(keywordsName, categoryText) {
		_, _ = fmt.Fprintf(out, "  - %s\n", kw)
	}
	return nil
}
