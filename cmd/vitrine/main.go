package main

import (
	"os"

	"github.com/spf13/cobra"

	"vitrine/internal/interfaces/cli/migrate"
	"vitrine/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vitrine",
		Short: "Vitrine - storefront theme lifecycle service",
		Long:  `Vitrine manages storefront themes: the shared catalog, per-store installations, merchant-uploaded themes, and live previews.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
