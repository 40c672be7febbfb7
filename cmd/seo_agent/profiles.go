package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List SEO plugin profiles and their meta keys",
	RunE:  runProfiles,
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}

func runProfiles(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	registry, err := buildRegistry(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, name := range registry.Names() {
		p, err := registry.Get(name)
		if err != nil {
			return err
		}
		marker := " "
		if name == cfg.PluginProfile {
			marker = "*"
		}
		_, _ = fmt.Fprintf(out, "%s %s\n", marker, name)
		_, _ = fmt.Fprintf(out, "    title:         %s\n", orDash(p.TitleKey))
		_, _ = fmt.Fprintf(out, "    description:   %s\n", orDash(p.DescriptionKey))
		_, _ = fmt.Fprintf(out, "    focus keyword: %s\n", orDash(p.FocusKeywordKey))
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
