package scoring

import (
	"fmt"

	"github.com/praiaclube/beachtennis-system/models"
)

// TieBreakConfig is the per-tournament tie-break rule set.
type TieBreakConfig struct {
	Enabled bool
	// Target is the points a tie-break is played to: 7 or 10.
	Target int
	// Margin is the minimum lead to close the tie-break. 2 is the standard
	// rule; 1 means sudden death (first to Target wins outright).
	Margin int
}

// ValidTieBreakTarget reports whether target is one of the supported
// tie-break formats.
func ValidTieBreakTarget(target int) bool {
	return target == 7 || target == 10
}

// CheckSet validates a single set against the completion rule and the
// tournament tie-break configuration.
//
// A set is complete when the leader reaches 6 games with a lead of two or
// more, wins 7-5, or wins 7-6 through a tie-break. Equal games, a 6-5
// lead, or anything past 7 games is not a finished set.
func CheckSet(set models.SetScore, cfg TieBreakConfig) error {
	one, two := set.PairOneGames, set.PairTwoGames
	if one < 0 || two < 0 {
		return fmt.Errorf("%w: negative game count", ErrIncompleteSet)
	}
	hi, lo := one, two
	if two > one {
		hi, lo = two, one
	}

	switch {
	case hi == lo:
		return fmt.Errorf("%w: %d-%d", ErrIncompleteSet, one, two)
	case hi == 6 && lo <= 4:
		// regular set
	case hi == 7 && lo == 5:
		// extended set
	case hi == 7 && lo == 6:
		if !cfg.Enabled {
			return fmt.Errorf("%w: 7-6 requires a tie-break but the tournament disables them", ErrTieBreakConfigMismatch)
		}
		if !set.TieBreakPlayed {
			return fmt.Errorf("%w: 7-6 set recorded without tie-break points", ErrTieBreakConfigMismatch)
		}
	default:
		return fmt.Errorf("%w: %d-%d", ErrIncompleteSet, one, two)
	}

	if set.TieBreakPlayed {
		if hi != 7 || lo != 6 {
			return fmt.Errorf("%w: tie-break recorded on a %d-%d set", ErrTieBreakConfigMismatch, one, two)
		}
		return checkTieBreakPoints(set, cfg)
	}
	return nil
}

func checkTieBreakPoints(set models.SetScore, cfg TieBreakConfig) error {
	if set.PairOneTieBreakPoints == nil || set.PairTwoTieBreakPoints == nil {
		return fmt.Errorf("%w: tie-break points missing for one side", ErrTieBreakConfigMismatch)
	}
	one, two := *set.PairOneTieBreakPoints, *set.PairTwoTieBreakPoints
	if one == two {
		return fmt.Errorf("%w: tie-break cannot end level at %d-%d", ErrTieBreakConfigMismatch, one, two)
	}

	winnerPts, loserPts := one, two
	tieBreakWinnerIsOne := one > two
	if !tieBreakWinnerIsOne {
		winnerPts, loserPts = two, one
	}
	// The side that took the tie-break must be the side that took the set.
	if tieBreakWinnerIsOne != (set.PairOneGames > set.PairTwoGames) {
		return fmt.Errorf("%w: tie-break winner does not match set winner", ErrTieBreakConfigMismatch)
	}

	if winnerPts < cfg.Target {
		return fmt.Errorf("%w: winner reached %d of %d points", ErrTieBreakConfigMismatch, winnerPts, cfg.Target)
	}
	margin := winnerPts - loserPts
	if cfg.Margin <= 1 {
		// Sudden death: first to the target closes it, any margin.
		if winnerPts != cfg.Target {
			return fmt.Errorf("%w: sudden-death tie-break ends at exactly %d points", ErrTieBreakConfigMismatch, cfg.Target)
		}
		return nil
	}
	if margin < cfg.Margin {
		return fmt.Errorf("%w: winner must lead by %d, got %d", ErrTieBreakConfigMismatch, cfg.Margin, margin)
	}
	if winnerPts > cfg.Target && margin != cfg.Margin {
		return fmt.Errorf("%w: past %d points the tie-break closes on a lead of exactly %d", ErrTieBreakConfigMismatch, cfg.Target, cfg.Margin)
	}
	return nil
}

// MatchResult is the validated outcome of a full score submission.
type MatchResult struct {
	PairOneSets    int
	PairTwoSets    int
	PairOneWon     bool
	TieBreakPlayed bool
}

// ValidateResult checks every set and derives the match outcome. maxSets
// caps the submission; a submission whose set wins end level has no winner
// and is rejected.
func ValidateResult(sets []models.SetScore, cfg TieBreakConfig, maxSets int) (MatchResult, error) {
	var result MatchResult
	if len(sets) == 0 {
		return result, ErrNoSets
	}
	if maxSets > 0 && len(sets) > maxSets {
		return result, fmt.Errorf("%w: %d sets, max %d", ErrTooManySets, len(sets), maxSets)
	}
	for i, set := range sets {
		if err := CheckSet(set, cfg); err != nil {
			return result, fmt.Errorf("set %d: %w", i+1, err)
		}
		if set.PairOneGames > set.PairTwoGames {
			result.PairOneSets++
		} else {
			result.PairTwoSets++
		}
		if set.TieBreakPlayed {
			result.TieBreakPlayed = true
		}
	}
	if result.PairOneSets == result.PairTwoSets {
		return result, fmt.Errorf("%w: sets level at %d-%d", ErrIncompleteSet, result.PairOneSets, result.PairTwoSets)
	}
	result.PairOneWon = result.PairOneSets > result.PairTwoSets
	return result, nil
}
