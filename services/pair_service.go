package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/praiaclube/beachtennis-system/models"
	"github.com/praiaclube/beachtennis-system/repositories"
)

var (
	ErrPairInUse = errors.New("pair cannot be deleted while enrollments or matches reference it")
)

type PairService interface {
	FormPair(ctx context.Context, input FormPairInput) (*models.Pair, error)
	GetPairByID(ctx context.Context, id int) (*models.Pair, error)
	ListPairs(ctx context.Context, filter repositories.ListPairsFilter) ([]models.Pair, error)
	UpdatePair(ctx context.Context, id int, input UpdatePairInput) (*models.Pair, error)
	DeletePair(ctx context.Context, id int) error
	RandomizePairs(participants []models.Participant, division models.Division) ([]ProposedPair, []models.Participant, error)
}

type FormPairInput struct {
	PlayerOneID int             `json:"player_one_id"`
	PlayerTwoID int             `json:"player_two_id"`
	Division    models.Division `json:"division"`
	CategoryID  int             `json:"category_id"`
	Name        string          `json:"name"`
}

type UpdatePairInput struct {
	Name       string `json:"name"`
	CategoryID int    `json:"category_id"`
}

// ProposedPair is a randomization result that has not been persisted yet.
// The caller decides which proposals to turn into real pairs.
type ProposedPair struct {
	PlayerOne models.Participant `json:"player_one"`
	PlayerTwo models.Participant `json:"player_two"`
	Name      string             `json:"name"`
}

type pairService struct {
	pairRepo        repositories.PairRepository
	participantRepo repositories.ParticipantRepository
}

func NewPairService(pairRepo repositories.PairRepository, participantRepo repositories.ParticipantRepository) PairService {
	return &pairService{
		pairRepo:        pairRepo,
		participantRepo: participantRepo,
	}
}

// genderFitsDivision reports whether two players can form a pair in the
// given division. Flex ("X") players count for either side of a mixed pair.
func genderFitsDivision(a, b models.Gender, division models.Division) bool {
	switch division {
	case models.DivisionMale:
		return a != models.GenderFemale && b != models.GenderFemale
	case models.DivisionFemale:
		return a != models.GenderMale && b != models.GenderMale
	case models.DivisionMixed:
		maleSide := func(g models.Gender) bool { return g != models.GenderFemale }
		femaleSide := func(g models.Gender) bool { return g != models.GenderMale }
		return (maleSide(a) && femaleSide(b)) || (maleSide(b) && femaleSide(a))
	default:
		return false
	}
}

func pairName(one, two models.Participant) string {
	return one.FullName + " / " + two.FullName
}

func (s *pairService) FormPair(ctx context.Context, input FormPairInput) (*models.Pair, error) {
	if input.PlayerOneID == input.PlayerTwoID {
		return nil, ErrDuplicateParticipant
	}
	if !input.Division.Valid() {
		return nil, ErrInvalidDivision
	}

	players, err := s.participantRepo.GetByIDs(ctx, []int{input.PlayerOneID, input.PlayerTwoID})
	if err != nil {
		return nil, fmt.Errorf("failed to load pair players: %w", err)
	}
	if len(players) != 2 {
		return nil, ErrParticipantNotFound
	}

	one, two := players[0], players[1]
	if one.ID != input.PlayerOneID {
		one, two = two, one
	}

	if !genderFitsDivision(one.Gender, two.Gender, input.Division) {
		return nil, ErrInvalidCombination
	}

	categoryID := input.CategoryID
	if categoryID == 0 {
		categoryID = one.CategoryID
	}
	if one.CategoryID != categoryID || two.CategoryID != categoryID {
		return nil, ErrPairCategoryMismatch
	}

	// Stored low-id-first to satisfy the table constraint.
	if one.ID > two.ID {
		one, two = two, one
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = pairName(one, two)
	}

	pair := &models.Pair{
		Name:        name,
		PlayerOneID: one.ID,
		PlayerTwoID: two.ID,
		CategoryID:  categoryID,
		Division:    input.Division,
	}

	if err := s.pairRepo.Create(ctx, nil, pair); err != nil {
		switch {
		case errors.Is(err, repositories.ErrPairAlreadyExists):
			return nil, ErrPairAlreadyExists
		case errors.Is(err, repositories.ErrPairInvalidPlayer):
			return nil, ErrParticipantNotFound
		case errors.Is(err, repositories.ErrPairInvalidCategory):
			return nil, ErrCategoryNotFound
		default:
			return nil, fmt.Errorf("failed to create pair: %w", err)
		}
	}

	pair.PlayerOne = &one
	pair.PlayerTwo = &two
	return pair, nil
}

func (s *pairService) GetPairByID(ctx context.Context, id int) (*models.Pair, error) {
	pair, err := s.pairRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPairNotFound) {
			return nil, ErrPairNotFound
		}
		return nil, fmt.Errorf("failed to get pair by id %d: %w", id, err)
	}
	return pair, nil
}

func (s *pairService) ListPairs(ctx context.Context, filter repositories.ListPairsFilter) ([]models.Pair, error) {
	if filter.Division != nil && !filter.Division.Valid() {
		return nil, ErrInvalidDivision
	}
	pairs, err := s.pairRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list pairs: %w", err)
	}
	return pairs, nil
}

func (s *pairService) UpdatePair(ctx context.Context, id int, input UpdatePairInput) (*models.Pair, error) {
	pair, err := s.GetPairByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		pair.Name = name
	}
	if input.CategoryID != 0 {
		pair.CategoryID = input.CategoryID
	}

	if err := s.pairRepo.Update(ctx, pair); err != nil {
		switch {
		case errors.Is(err, repositories.ErrPairNotFound):
			return nil, ErrPairNotFound
		case errors.Is(err, repositories.ErrPairInvalidCategory):
			return nil, ErrCategoryNotFound
		default:
			return nil, fmt.Errorf("failed to update pair %d: %w", id, err)
		}
	}
	return pair, nil
}

func (s *pairService) DeletePair(ctx context.Context, id int) error {
	if err := s.pairRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repositories.ErrPairNotFound):
			return ErrPairNotFound
		case errors.Is(err, repositories.ErrPairInUse):
			return ErrPairInUse
		default:
			return fmt.Errorf("failed to delete pair %d: %w", id, err)
		}
	}
	return nil
}

// RandomizePairs shuffles the participants and matches them under the
// division's gender rules. Anyone left without a partner comes back in
// the leftover slice; an odd or unbalanced draw is not an error, the
// unmatched player simply waits for the next one.
func (s *pairService) RandomizePairs(participants []models.Participant, division models.Division) ([]ProposedPair, []models.Participant, error) {
	return randomizePairs(participants, division)
}

func randomizePairs(participants []models.Participant, division models.Division) ([]ProposedPair, []models.Participant, error) {
	if !division.Valid() {
		return nil, nil, ErrInvalidDivision
	}

	for _, p := range participants {
		if !genderEligible(p.Gender, division) {
			return nil, nil, ErrInvalidCombination
		}
	}

	if division != models.DivisionMixed {
		pool := shuffled(participants)
		pairs := make([]ProposedPair, 0, len(pool)/2)
		for len(pool) >= 2 {
			pairs = append(pairs, propose(pool[0], pool[1]))
			pool = pool[2:]
		}
		return pairs, pool, nil
	}

	var males, females, flex []models.Participant
	for _, p := range participants {
		switch p.Gender {
		case models.GenderMale:
			males = append(males, p)
		case models.GenderFemale:
			females = append(females, p)
		default:
			flex = append(flex, p)
		}
	}
	males, females, flex = shuffled(males), shuffled(females), shuffled(flex)

	pairs := make([]ProposedPair, 0, len(participants)/2)
	for len(males) > 0 && len(females) > 0 {
		pairs = append(pairs, propose(males[0], females[0]))
		males, females = males[1:], females[1:]
	}
	for len(males) > 0 && len(flex) > 0 {
		pairs = append(pairs, propose(males[0], flex[0]))
		males, flex = males[1:], flex[1:]
	}
	for len(females) > 0 && len(flex) > 0 {
		pairs = append(pairs, propose(females[0], flex[0]))
		females, flex = females[1:], flex[1:]
	}
	for len(flex) >= 2 {
		pairs = append(pairs, propose(flex[0], flex[1]))
		flex = flex[2:]
	}

	leftover := make([]models.Participant, 0)
	leftover = append(leftover, males...)
	leftover = append(leftover, females...)
	leftover = append(leftover, flex...)
	return pairs, leftover, nil
}

func genderEligible(g models.Gender, division models.Division) bool {
	switch division {
	case models.DivisionMale:
		return g != models.GenderFemale
	case models.DivisionFemale:
		return g != models.GenderMale
	default:
		return g.Valid()
	}
}

func propose(a, b models.Participant) ProposedPair {
	if a.ID > b.ID {
		a, b = b, a
	}
	return ProposedPair{PlayerOne: a, PlayerTwo: b, Name: pairName(a, b)}
}

func shuffled(in []models.Participant) []models.Participant {
	out := make([]models.Participant, len(in))
	copy(out, in)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
