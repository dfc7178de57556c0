package brackets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/praiaclube/beachtennis-system/models"
)

const knockoutPrefix = "Mata-mata"

var (
	ErrNotEnoughQualifiers = errors.New("at least two qualified pairs are required")
	ErrFieldNotPowerOfTwo  = errors.New("qualified pair count must be a power of two")
	ErrRoundUnfinished     = errors.New("current knockout round has unfinished matches")
)

// IsKnockoutRound reports whether a match belongs to the elimination phase.
func IsKnockoutRound(roundName string) bool {
	return strings.HasPrefix(roundName, knockoutPrefix)
}

// KnockoutRoundName names the elimination round played by count pairs.
func KnockoutRoundName(count int) string {
	labels := map[int]string{
		2:  "Final",
		4:  "Semifinais",
		8:  "Quartas de final",
		16: "Oitavas de final",
		32: "16 avos de final",
	}
	if label, ok := labels[count]; ok {
		return fmt.Sprintf("%s - %s", knockoutPrefix, label)
	}
	return fmt.Sprintf("%s (%d duplas)", knockoutPrefix, count)
}

// FirstKnockoutRound seeds the opening elimination round from the group
// qualifiers, in seeding order: 1v2, 3v4, ... The field must be an even
// power of two so every later round pairs cleanly.
func FirstKnockoutRound(qualifiers []int) ([]Fixture, error) {
	return buildRound(qualifiers)
}

// NextKnockoutRound pairs the winners of the latest knockout round. All of
// that round's matches must have a winner recorded.
func NextKnockoutRound(currentRound []models.Match) ([]Fixture, error) {
	winners := make([]int, 0, len(currentRound))
	for _, m := range currentRound {
		if m.WinnerID == nil {
			return nil, ErrRoundUnfinished
		}
		winners = append(winners, *m.WinnerID)
	}
	return buildRound(winners)
}

func buildRound(pairIDs []int) ([]Fixture, error) {
	n := len(pairIDs)
	if n < 2 {
		return nil, ErrNotEnoughQualifiers
	}
	if n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrFieldNotPowerOfTwo, n)
	}
	roundName := KnockoutRoundName(n)
	fixtures := make([]Fixture, 0, n/2)
	for i := 0; i < n; i += 2 {
		fixtures = append(fixtures, Fixture{
			RoundName: roundName,
			PairOneID: pairIDs[i],
			PairTwoID: pairIDs[i+1],
		})
	}
	return fixtures, nil
}
