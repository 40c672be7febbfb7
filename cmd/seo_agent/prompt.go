package main

import (
	"fmt"

	"github.com/jonathan/seo-content-engine/internal/prompts"
	"github.com/jonathan/seo-content-engine/internal/types"
	"github.com/spf13/cobra"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print the generation instructions for a product",
	Long: "Prints the system and user instructions to send to the text generator. " +
		"The section labels match what generate expects to parse.",
	RunE: runPrompt,
}

var (
	promptName       string
	promptCategories string
	promptStoreURL   string
	promptOutput     string
)

func init() {
	promptCmd.Flags().StringVarP(&promptName, "name", "n", "", "Product name (required)")
	promptCmd.Flags().StringVarP(&promptCategories, "categories", "c", "", "Comma-separated category names")
	promptCmd.Flags().StringVar(&promptStoreURL, "store-url", "", "Store base URL for category links")
	promptCmd.Flags().StringVarP(&promptOutput, "out", "o", "", "Write the prompt pair as JSON instead of printing it")

	if err := promptCmd.MarkFlagRequired("name"); err != nil {
		panic(fmt.Sprintf("failed to mark name flag as required: %v", err))
	}

	rootCmd.AddCommand(promptCmd)
}

func runPrompt(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	product := types.ProductDescriptor{
		Name:       promptName,
		Categories: splitList(promptCategories),
		StoreURL:   cfg.StoreURL,
	}
	if promptStoreURL != "" {
		product.StoreURL = promptStoreURL
	}

	prompt, err := prompts.BuildProductPrompt(product, cfg.SoftTargets())
	if err != nil {
		return fmt.Errorf("failed to build prompt: %w", err)
	}

	if promptOutput != "" {
		return writeJSON(promptOutput, prompt)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "%s\n\n%s\n", prompt.System, prompt.User)
	return nil
}
