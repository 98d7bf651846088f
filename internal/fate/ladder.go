// Package fate implements the FATE ruleset: the adjective ladder, stress
// capacities per rules variant, and the character record with its two
// on-disk shapes (single sheet and group tracker).
package fate

// The adjective ladder, indexed from LadderMin to LadderMax.
var ladderNames = [11]string{
	"Terrible",
	"Poor",
	"Mediocre",
	"Average",
	"Fair",
	"Good",
	"Great",
	"Superb",
	"Fantastic",
	"Epic",
	"Legendary",
}

// LadderMin and LadderMax bound the named ladder. Totals outside the range
// clamp to the nearest endpoint.
const (
	LadderMin = -2
	LadderMax = 8
)

// LadderName returns the adjective for a roll total, clamped to the ladder.
func LadderName(total int) string {
	if total < LadderMin {
		total = LadderMin
	}
	if total > LadderMax {
		total = LadderMax
	}
	return ladderNames[total-LadderMin]
}

// RollTotal computes the total for a FATE roll: the sum of the Fudge dice
// plus the skill or approach rating plus two per invoke spent.
func RollTotal(dice []int, rating, invokes int) int {
	total := rating + 2*invokes
	for _, die := range dice {
		total += die
	}
	return total
}
