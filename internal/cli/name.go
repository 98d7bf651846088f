package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/louisbranch/tabletop/internal/namegen"
)

// NameCmd returns the name generator command
func NameCmd() *cobra.Command {
	var dbPath string
	var kind string
	var origin string
	var count int

	cmd := &cobra.Command{
		Use:   "name",
		Short: "Generate random names from the name database",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := namegen.Open(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			names, err := store.Random(cmd.Context(), namegen.Query{
				Kind:   kind,
				Origin: origin,
				Count:  count,
			})
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&dbPath, "db", "names.db", "Path to the name database")
	cmd.Flags().StringVar(&kind, "kind", "", "Filter by kind (e.g. person, place)")
	cmd.Flags().StringVar(&origin, "origin", "", "Filter by origin")
	cmd.Flags().IntVarP(&count, "count", "c", 1, "Number of names to generate")

	cmd.AddCommand(nameImportCmd(&dbPath))
	cmd.AddCommand(nameAddCmd(&dbPath))

	return cmd
}

func nameImportCmd(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Bulk-load names from a name,kind,origin CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := namegen.Open(*dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open csv: %w", err)
			}
			defer file.Close()

			imported, err := namegen.ImportCSV(cmd.Context(), store, file)
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d names\n", imported)
			return nil
		},
	}
}

func nameAddCmd(dbPath *string) *cobra.Command {
	var kind string
	var origin string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a single name to the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := namegen.Open(*dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Add(cmd.Context(), args[0], kind, origin); err != nil {
				return err
			}
			fmt.Printf("Added %q\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "Name kind (e.g. person, place)")
	cmd.Flags().StringVar(&origin, "origin", "", "Name origin")

	return cmd
}
