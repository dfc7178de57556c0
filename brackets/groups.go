package brackets

import (
	"fmt"

	"github.com/praiaclube/beachtennis-system/models"
)

// GroupAssignment labels one enrolled pair.
type GroupAssignment struct {
	EnrollmentID int
	PairID       int
	GroupLabel   string
}

var groupLetters = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// AssignGroups splits enrolled pairs into groups of groupSize, labelled
// Grupo A, Grupo B, ... in the order the entries come in. Entries past the
// alphabet are left unassigned, which for this club is never a real limit.
func AssignGroups(entries []models.TournamentPair, groupSize int) []GroupAssignment {
	if groupSize < 2 {
		groupSize = 2
	}
	assignments := make([]GroupAssignment, 0, len(entries))
	for idx, entry := range entries {
		letter := idx / groupSize
		if letter >= len(groupLetters) {
			break
		}
		assignments = append(assignments, GroupAssignment{
			EnrollmentID: entry.ID,
			PairID:       entry.PairID,
			GroupLabel:   fmt.Sprintf("Grupo %c", groupLetters[letter]),
		})
	}
	return assignments
}
