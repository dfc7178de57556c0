package scoring

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidPointToken      = errors.New("point sequence accepts only 15, 30, 40 or GAME")
	ErrIncompleteSet          = errors.New("set has no determinable winner")
	ErrTieBreakConfigMismatch = errors.New("tie-break score does not match the tournament configuration")
	ErrTooManySets            = errors.New("match has more sets than the tournament allows")
	ErrNoSets                 = errors.New("match needs at least one set")
)

// pointValues encodes the tie-break ladder. The values only matter relative
// to each other: they are the tertiary ranking criterion after wins and sets.
var pointValues = map[string]int{
	"15":   1,
	"30":   2,
	"40":   3,
	"GAME": 4,
}

// NormalizePointSequence uppercases and trims the raw tokens, dropping
// blanks. An unknown token fails the whole sequence.
func NormalizePointSequence(values []string) ([]string, error) {
	normalized := make([]string, 0, len(values))
	for _, value := range values {
		candidate := strings.ToUpper(strings.TrimSpace(value))
		if candidate == "" {
			continue
		}
		if _, ok := pointValues[candidate]; !ok {
			return nil, fmt.Errorf("%w: got %q", ErrInvalidPointToken, value)
		}
		normalized = append(normalized, candidate)
	}
	return normalized, nil
}

// AccumulatedPoints sums the ladder values of an already-normalized
// sequence. Unknown tokens count zero so stored data never panics a read.
func AccumulatedPoints(sequence []string) int {
	total := 0
	for _, token := range sequence {
		total += pointValues[strings.ToUpper(token)]
	}
	return total
}
