package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/louisbranch/tabletop/internal/cli"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tabletop",
		Short: "Tabletop - dice and character sheet tools for FATE and Blades in the Dark",
		Long: `Tabletop bundles the table-side tools: Blades action rolls, FATE 4dF
rolls, random name generation, and character sheet conversion, validation,
and export.`,
	}

	rootCmd.AddCommand(cli.RollCmd())
	rootCmd.AddCommand(cli.FudgeCmd())
	rootCmd.AddCommand(cli.NameCmd())
	rootCmd.AddCommand(cli.ConvertCmd())
	rootCmd.AddCommand(cli.ValidateCmd())
	rootCmd.AddCommand(cli.ExportCmd())
	rootCmd.AddCommand(cli.ServeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
