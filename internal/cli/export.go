package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/louisbranch/tabletop/internal/blades"
	"github.com/louisbranch/tabletop/internal/fate"
	"github.com/louisbranch/tabletop/internal/sheet"
)

// System display names used in export filenames and PDF headers.
const (
	systemNameFate   = "FATE"
	systemNameBlades = "Blades in the Dark"
)

// ExportCmd returns the sheet export command
func ExportCmd() *cobra.Command {
	var asPDF bool
	var outDir string

	cmd := &cobra.Command{
		Use:   "export <file.char.json>",
		Short: "Re-export a sheet under its canonical filename",
		Long: `Copy a sheet file to "<System> - <character name>.char.json", with the
name sanitized for the filesystem. With --pdf, render a printable PDF
instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read sheet: %w", err)
			}

			doc, err := sheet.ParseImport(data)
			if err != nil {
				return err
			}

			format := sheet.DetectFormat(doc)
			name, _ := doc["name"].(string)

			var system string
			switch format {
			case sheet.FormatFateSingle, sheet.FormatFateGroup:
				system = systemNameFate
			case sheet.FormatBlades:
				system = systemNameBlades
			default:
				return fmt.Errorf("unrecognized sheet format")
			}

			filename := sheet.ExportFilename(system, name)
			if asPDF {
				filename = strings.TrimSuffix(filename, ".char.json") + ".pdf"
			}
			target := filepath.Join(outDir, filename)

			if !asPDF {
				if err := os.WriteFile(target, data, 0o644); err != nil {
					return fmt.Errorf("write export: %w", err)
				}
				fmt.Printf("Wrote %s\n", target)
				return nil
			}

			file, err := os.Create(target)
			if err != nil {
				return fmt.Errorf("create pdf: %w", err)
			}
			defer file.Close()

			switch format {
			case sheet.FormatFateSingle:
				character, err := fate.DeserializeCharacter(data)
				if err != nil {
					return fmt.Errorf("parse sheet: %w", err)
				}
				if err := sheet.WriteFatePDF(file, character); err != nil {
					return err
				}
			case sheet.FormatBlades:
				character, err := blades.DeserializeCharacter(data)
				if err != nil {
					return fmt.Errorf("parse sheet: %w", err)
				}
				if err := sheet.WriteBladesPDF(file, character); err != nil {
					return err
				}
			default:
				return fmt.Errorf("pdf export supports single-sheet documents only")
			}

			fmt.Printf("Wrote %s\n", target)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asPDF, "pdf", false, "Render a printable PDF instead of JSON")
	cmd.Flags().StringVarP(&outDir, "dir", "d", ".", "Output directory")

	return cmd
}
