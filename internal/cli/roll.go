// Package cli implements the tabletop command-line tools.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/louisbranch/tabletop/internal/blades"
	"github.com/louisbranch/tabletop/internal/dice"
)

// RollCmd returns the Blades action roll command
func RollCmd() *cobra.Command {
	var pool int
	var position string
	var seed int64
	var bonuses []string

	cmd := &cobra.Command{
		Use:   "roll",
		Short: "Roll a Blades in the Dark action pool",
		Long: `Roll a d6 action pool and print the outcome and effect tier.

A pool of 0 rolls two dice and takes the worst; such a roll can never
crit. Bonus dice (--bonus assist|push|bargain) are each usable once per
roll; the first bonus on a zero pool flips it to best-of-pool without
adding a die.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := blades.ParsePosition(position)
			if err != nil {
				return err
			}

			roller := dice.NewRoller(resolveSeed(seed))
			roll, err := blades.NewActionRoll(roller, pool)
			if err != nil {
				return err
			}

			for _, bonus := range bonuses {
				kind, err := blades.ParseBonusKind(bonus)
				if err != nil {
					return err
				}
				if _, err := roll.AddBonus(roller, kind); err != nil {
					return err
				}
			}

			result := roll.Result()
			fmt.Printf("Dice: %s\n", formatDice(result.Values, result.Selected))
			if result.WorstOfTwo {
				fmt.Println("Mode: worst of two (no crit possible)")
			}
			fmt.Printf("Outcome: %s\n", colorOutcome(result.Outcome))
			fmt.Printf("Effect: %s (%s position)\n", blades.EffectFor(result.Outcome, pos), pos)
			return nil
		},
	}

	cmd.Flags().IntVarP(&pool, "pool", "p", 0, "Number of action dice (0 rolls worst of two)")
	cmd.Flags().StringVar(&position, "position", "risky", "Position: controlled, risky, or desperate")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Roll seed (0 uses the clock)")
	cmd.Flags().StringSliceVar(&bonuses, "bonus", nil, "Bonus dice to apply: assist, push, bargain")

	return cmd
}

// resolveSeed turns an unset seed into a clock seed so plain invocations
// stay random while --seed keeps rolls reproducible.
func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

func formatDice(values []int, selected int) string {
	parts := make([]string, len(values))
	marked := false
	for i, value := range values {
		if value == selected && !marked {
			parts[i] = color.New(color.Bold).Sprintf("[%d]", value)
			marked = true
			continue
		}
		parts[i] = fmt.Sprintf("%d", value)
	}
	return strings.Join(parts, " ")
}

func colorOutcome(outcome blades.Outcome) string {
	switch outcome {
	case blades.OutcomeCritical:
		return color.New(color.FgHiGreen, color.Bold).Sprint("Critical")
	case blades.OutcomeSuccess:
		return color.New(color.FgGreen).Sprint("Success")
	case blades.OutcomeMixed:
		return color.New(color.FgYellow).Sprint("Mixed")
	default:
		return color.New(color.FgRed).Sprint("Failure")
	}
}
