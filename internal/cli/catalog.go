package cli

import (
	"fmt"
	"text/tabwriter"

	"attentionops/backend/internal/catalog"
	"attentionops/backend/internal/mission"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func OptionsCmd() *cobra.Command {
	var phrasebank string

	cmd := &cobra.Command{
		Use:   "options",
		Short: "List platforms, styles, goals, times and categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bank, err := loadBank(phrasebank)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			section := func(title string, options []mission.Option) {
				fmt.Fprintln(w, color.New(color.Bold).Sprint(title))
				for _, option := range options {
					fmt.Fprintf(w, "  %s\t%s\n", option.Value, option.Label)
				}
			}
			section("PLATFORMS", bank.PlatformOptions())
			section("STYLES", bank.StyleOptions())
			section("GOALS", bank.GoalOptions())
			fmt.Fprintln(w, color.New(color.Bold).Sprint("TIMES"))
			for _, option := range mission.TimeOptionList() {
				fmt.Fprintf(w, "  %d\t%s\n", option.Value, option.Label)
			}
			section("CATEGORIES", mission.CategoryOptions())
			fmt.Fprintf(w, "\nphrase bank %s\n", bank.Version())
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&phrasebank, "phrasebank", "", "YAML phrase bank overlay")
	return cmd
}

func TemplatesCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List mission templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := catalog.NewStaticCatalog()

			var (
				templates []catalog.MissionTemplate
				err       error
			)
			if category != "" {
				templates, err = c.TemplatesByCategory(cmd.Context(), category)
			} else {
				templates, err = c.Templates(cmd.Context())
			}
			if err != nil {
				return fmt.Errorf("failed to list templates: %w", err)
			}
			if len(templates) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No templates found")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TITLE\tCATEGORY\tPLATFORM\tTIME")
			for _, item := range templates {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", item.Title, item.Category, item.Platform, mission.TimeLabel(item.TimeMinutes))
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "filter by category")
	return cmd
}

func PhotosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "photos",
		Short: "List gallery photos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			photos, err := catalog.NewStaticCatalog().Photos(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list photos: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "VETERAN\tBUSINESS\tACCOMPLISHED")
			for _, photo := range photos {
				business := "-"
				if photo.BusinessName != nil {
					business = *photo.BusinessName
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", photo.VeteranName, business, photo.MissionAccomplished)
			}
			return w.Flush()
		},
	}
}
