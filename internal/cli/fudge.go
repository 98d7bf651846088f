package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/louisbranch/tabletop/internal/dice"
	"github.com/louisbranch/tabletop/internal/fate"
)

// FudgeCmd returns the FATE roll command
func FudgeCmd() *cobra.Command {
	var rating int
	var invokes int
	var seed int64

	cmd := &cobra.Command{
		Use:   "fudge",
		Short: "Roll 4dF against a FATE skill or approach rating",
		Long: `Roll four Fudge dice, add the rating plus two per invoked aspect,
and print the total with its adjective on the ladder.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			roller := dice.NewRoller(resolveSeed(seed))
			values, err := roller.RollFudgePool(dice.FudgePoolSize)
			if err != nil {
				return err
			}

			total := fate.RollTotal(values, rating, invokes)
			fmt.Printf("Dice: %s\n", formatFudge(values))
			fmt.Printf("Rating: %+d", rating)
			if invokes > 0 {
				fmt.Printf("  Invokes: %d (+%d)", invokes, 2*invokes)
			}
			fmt.Println()
			fmt.Printf("Total: %s\n", colorLadder(total))
			return nil
		},
	}

	cmd.Flags().IntVarP(&rating, "rating", "r", 0, "Skill or approach rating")
	cmd.Flags().IntVarP(&invokes, "invokes", "i", 0, "Aspect invokes spent (+2 each)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Roll seed (0 uses the clock)")

	return cmd
}

func formatFudge(values []int) string {
	parts := make([]string, len(values))
	for i, value := range values {
		switch {
		case value > 0:
			parts[i] = color.New(color.FgGreen).Sprint("+")
		case value < 0:
			parts[i] = color.New(color.FgRed).Sprint("-")
		default:
			parts[i] = "0"
		}
	}
	return strings.Join(parts, " ")
}

func colorLadder(total int) string {
	name := fate.LadderName(total)
	switch {
	case total >= 3:
		return color.New(color.FgGreen).Sprintf("%+d (%s)", total, name)
	case total >= 0:
		return fmt.Sprintf("%+d (%s)", total, name)
	default:
		return color.New(color.FgRed).Sprintf("%+d (%s)", total, name)
	}
}
