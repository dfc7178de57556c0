package brackets

import (
	"sort"

	"github.com/praiaclube/beachtennis-system/models"
)

// Fixture is a match still to be created: two pairs and the round it
// belongs to.
type Fixture struct {
	RoundName string
	PairOneID int
	PairTwoID int
}

// GroupRoundRobin generates the group-phase fixtures: inside each group
// every pair meets every other pair exactly once, the group label doubling
// as the round name. Fixtures that already exist (either orientation, same
// round) are skipped, so regenerating after adding a late pair only fills
// the holes.
func GroupRoundRobin(entries []models.TournamentPair, existing []models.Match) []Fixture {
	groups := make(map[string][]int)
	for _, entry := range entries {
		if entry.GroupLabel == nil || *entry.GroupLabel == "" {
			continue
		}
		groups[*entry.GroupLabel] = append(groups[*entry.GroupLabel], entry.PairID)
	}

	labels := make([]string, 0, len(groups))
	for label := range groups {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	seen := fixtureSet(existing)
	fixtures := make([]Fixture, 0)
	for _, label := range labels {
		pairIDs := groups[label]
		if len(pairIDs) < 2 {
			continue
		}
		for i := 0; i < len(pairIDs)-1; i++ {
			for j := i + 1; j < len(pairIDs); j++ {
				if seen.has(label, pairIDs[i], pairIDs[j]) {
					continue
				}
				fixtures = append(fixtures, Fixture{
					RoundName: label,
					PairOneID: pairIDs[i],
					PairTwoID: pairIDs[j],
				})
			}
		}
	}
	return fixtures
}

type fixtureKey struct {
	round string
	lo    int
	hi    int
}

type fixtures map[fixtureKey]struct{}

func fixtureSet(matches []models.Match) fixtures {
	set := make(fixtures, len(matches))
	for _, m := range matches {
		set[newFixtureKey(m.RoundName, m.PairOneID, m.PairTwoID)] = struct{}{}
	}
	return set
}

func (f fixtures) has(round string, one, two int) bool {
	_, ok := f[newFixtureKey(round, one, two)]
	return ok
}

func newFixtureKey(round string, one, two int) fixtureKey {
	if one > two {
		one, two = two, one
	}
	return fixtureKey{round: round, lo: one, hi: two}
}
