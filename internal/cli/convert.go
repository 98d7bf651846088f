package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/louisbranch/tabletop/internal/fate"
	"github.com/louisbranch/tabletop/internal/sheet"
)

// ConvertCmd returns the sheet conversion command
func ConvertCmd() *cobra.Command {
	var to string
	var out string

	cmd := &cobra.Command{
		Use:   "convert <file.char.json>",
		Short: "Convert a FATE sheet between the single and group shapes",
		Long: `Convert a single-sheet document into a group tracker character, or a
group character back into a single sheet. Single-only fields survive a
round trip through the group shape via the sheet's passthrough block.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read sheet: %w", err)
			}

			var converted any
			switch to {
			case "group":
				character, err := fate.DeserializeCharacter(data)
				if err != nil {
					return fmt.Errorf("parse single sheet: %w", err)
				}
				converted = fate.ConvertSingleToGroup(character)
			case "single":
				var group fate.GroupCharacter
				if err := json.Unmarshal(data, &group); err != nil {
					return fmt.Errorf("parse group character: %w", err)
				}
				converted = fate.ConvertGroupToSingle(group)
			default:
				return fmt.Errorf("unknown conversion target %q (want group or single)", to)
			}

			output, err := json.MarshalIndent(converted, "", "  ")
			if err != nil {
				return fmt.Errorf("encode result: %w", err)
			}
			output = append(output, '\n')

			if out == "" {
				_, err = cmd.OutOrStdout().Write(output)
				return err
			}
			if err := os.WriteFile(out, output, 0o644); err != nil {
				return fmt.Errorf("write result: %w", err)
			}
			fmt.Printf("Wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "group", "Conversion target: group or single")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")

	return cmd
}

// ValidateCmd returns the import validation command
func ValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file.char.json>",
		Short: "Validate an exported sheet file and report its format",
		Args:  cobra.ExactArgs(1),
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
			if format == sheet.FormatUnknown {
				return fmt.Errorf("unrecognized sheet format")
			}
			fmt.Printf("Valid %s document\n", format)
			return nil
		},
	}
}
