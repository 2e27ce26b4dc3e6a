package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"attentionops/backend/internal/cli"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "missionctl",
		Short: "Compose Attention Ops missions from the terminal",
		Long: `missionctl runs the mission engine locally: compose missions from the
phrase bank, and browse the options, templates and photos the web app serves.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(cli.GenerateCmd())
	rootCmd.AddCommand(cli.OptionsCmd())
	rootCmd.AddCommand(cli.TemplatesCmd())
	rootCmd.AddCommand(cli.PhotosCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
