package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/praiaclube/beachtennis-system/brackets"
	"github.com/praiaclube/beachtennis-system/models"
	"github.com/praiaclube/beachtennis-system/repositories"
	"github.com/praiaclube/beachtennis-system/scoring"
)

var (
	ErrTournamentNameRequired = errors.New("tournament name is required")
	ErrNoGroupsAssigned       = errors.New("no groups assigned yet")
	ErrKnockoutAlreadyFinal   = errors.New("the final has already been generated")
)

type TournamentService interface {
	CreateTournament(ctx context.Context, input TournamentInput) (*models.Tournament, error)
	GetTournamentByID(ctx context.Context, id int) (*models.Tournament, error)
	GetTournamentView(ctx context.Context, id int) (*TournamentView, error)
	ListTournaments(ctx context.Context, filter repositories.ListTournamentsFilter) ([]models.Tournament, error)
	UpdateTournament(ctx context.Context, id int, input TournamentInput) (*models.Tournament, error)
	DeleteTournament(ctx context.Context, id int) error

	AddParticipants(ctx context.Context, tournamentID int, participantIDs []int) error
	ListEnrolledParticipants(ctx context.Context, tournamentID int) ([]models.Participant, error)
	ManualPair(ctx context.Context, tournamentID int, input ManualPairInput) (*models.TournamentPair, error)
	AutoPair(ctx context.Context, tournamentID int) ([]models.TournamentPair, []models.Participant, error)

	AssignGroups(ctx context.Context, tournamentID, groupSize int) ([]models.TournamentPair, error)
	GenerateGroupMatches(ctx context.Context, tournamentID int) ([]models.Match, error)
	AdvanceKnockout(ctx context.Context, tournamentID, qualifiersPerGroup int) ([]models.Match, error)

	Standings(ctx context.Context, tournamentID int, groupLabel string) ([]models.StandingsRow, error)
}

type TournamentInput struct {
	Name            string          `json:"name"`
	CategoryID      *int            `json:"category_id"`
	Division        models.Division `json:"division"`
	Location        *string         `json:"location"`
	StartDate       time.Time       `json:"start_date"`
	EndDate         *time.Time      `json:"end_date"`
	MaxSets         int             `json:"max_sets"`
	TieBreakEnabled bool            `json:"tie_break_enabled"`
	TieBreakPoints  int             `json:"tie_break_points"`
	TieBreakMargin  int             `json:"tie_break_margin"`
	Notes           *string         `json:"notes"`
}

type ManualPairInput struct {
	PlayerOneID int    `json:"player_one_id"`
	PlayerTwoID int    `json:"player_two_id"`
	Name        string `json:"name"`
}

// TournamentView is the tournament detail payload: configuration,
// enrolled pairs, matches and the current standings in one response.
type TournamentView struct {
	Tournament *models.Tournament      `json:"tournament"`
	Entries    []models.TournamentPair `json:"entries"`
	Matches    []models.Match          `json:"matches"`
	Standings  []models.StandingsRow   `json:"standings"`
}

type tournamentService struct {
	db              *sql.DB
	tournamentRepo  repositories.TournamentRepository
	pairRepo        repositories.PairRepository
	participantRepo repositories.ParticipantRepository
	matchRepo       repositories.MatchRepository
}

func NewTournamentService(
	db *sql.DB,
	tournamentRepo repositories.TournamentRepository,
	pairRepo repositories.PairRepository,
	participantRepo repositories.ParticipantRepository,
	matchRepo repositories.MatchRepository,
) TournamentService {
	return &tournamentService{
		db:              db,
		tournamentRepo:  tournamentRepo,
		pairRepo:        pairRepo,
		participantRepo: participantRepo,
		matchRepo:       matchRepo,
	}
}

func (s *tournamentService) validateInput(input *TournamentInput) error {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return ErrTournamentNameRequired
	}
	if !input.Division.Valid() {
		return ErrInvalidDivision
	}
	if input.StartDate.IsZero() {
		return ErrValidationFailed
	}
	if input.EndDate != nil && input.EndDate.Before(input.StartDate) {
		return ErrTournamentInvalidDateRange
	}
	if input.MaxSets == 0 {
		input.MaxSets = 3
	}
	if input.MaxSets != 1 && input.MaxSets != 3 && input.MaxSets != 5 {
		return ErrTournamentInvalidMaxSets
	}
	if input.TieBreakPoints == 0 {
		input.TieBreakPoints = 7
	}
	if input.TieBreakMargin == 0 {
		input.TieBreakMargin = 2
	}
	if !scoring.ValidTieBreakTarget(input.TieBreakPoints) || input.TieBreakMargin < 1 || input.TieBreakMargin > 2 {
		return ErrTournamentInvalidTieBreak
	}
	return nil
}

func (s *tournamentService) CreateTournament(ctx context.Context, input TournamentInput) (*models.Tournament, error) {
	if err := s.validateInput(&input); err != nil {
		return nil, err
	}

	tournament := &models.Tournament{
		Name:            input.Name,
		CategoryID:      input.CategoryID,
		Division:        input.Division,
		Location:        input.Location,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		MaxSets:         input.MaxSets,
		TieBreakEnabled: input.TieBreakEnabled,
		TieBreakPoints:  input.TieBreakPoints,
		TieBreakMargin:  input.TieBreakMargin,
		Notes:           input.Notes,
	}

	if err := s.tournamentRepo.Create(ctx, tournament); err != nil {
		if errors.Is(err, repositories.ErrTournamentInvalidCategory) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to create tournament: %w", err)
	}
	return tournament, nil
}

func (s *tournamentService) GetTournamentByID(ctx context.Context, id int) (*models.Tournament, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament by id %d: %w", id, err)
	}
	return tournament, nil
}

func (s *tournamentService) GetTournamentView(ctx context.Context, id int) (*TournamentView, error) {
	tournament, err := s.GetTournamentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	entries, err := s.tournamentRepo.ListEntries(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournament entries: %w", err)
	}
	matches, err := s.matchRepo.ListByTournament(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournament matches: %w", err)
	}
	return &TournamentView{
		Tournament: tournament,
		Entries:    entries,
		Matches:    matches,
		Standings:  scoring.ComputeStandings(entries, matches),
	}, nil
}

func (s *tournamentService) ListTournaments(ctx context.Context, filter repositories.ListTournamentsFilter) ([]models.Tournament, error) {
	tournaments, err := s.tournamentRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	return tournaments, nil
}

func (s *tournamentService) UpdateTournament(ctx context.Context, id int, input TournamentInput) (*models.Tournament, error) {
	if err := s.validateInput(&input); err != nil {
		return nil, err
	}

	tournament := &models.Tournament{
		ID:              id,
		Name:            input.Name,
		CategoryID:      input.CategoryID,
		Division:        input.Division,
		Location:        input.Location,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		MaxSets:         input.MaxSets,
		TieBreakEnabled: input.TieBreakEnabled,
		TieBreakPoints:  input.TieBreakPoints,
		TieBreakMargin:  input.TieBreakMargin,
		Notes:           input.Notes,
	}

	if err := s.tournamentRepo.Update(ctx, tournament); err != nil {
		switch {
		case errors.Is(err, repositories.ErrTournamentNotFound):
			return nil, ErrTournamentNotFound
		case errors.Is(err, repositories.ErrTournamentInvalidCategory):
			return nil, ErrCategoryNotFound
		default:
			return nil, fmt.Errorf("failed to update tournament %d: %w", id, err)
		}
	}
	return tournament, nil
}

func (s *tournamentService) DeleteTournament(ctx context.Context, id int) error {
	if err := s.tournamentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return ErrTournamentNotFound
		}
		return fmt.Errorf("failed to delete tournament %d: %w", id, err)
	}
	return nil
}

func (s *tournamentService) AddParticipants(ctx context.Context, tournamentID int, participantIDs []int) error {
	tournament, err := s.GetTournamentByID(ctx, tournamentID)
	if err != nil {
		return err
	}

	participants, err := s.participantRepo.GetByIDs(ctx, participantIDs)
	if err != nil {
		return fmt.Errorf("failed to load participants: %w", err)
	}
	if len(participants) != len(participantIDs) {
		return ErrParticipantNotFound
	}

	for _, p := range participants {
		if !genderEligible(p.Gender, tournament.Division) {
			return ErrInvalidCombination
		}
	}

	for _, p := range participants {
		tp := &models.TournamentParticipant{TournamentID: tournamentID, ParticipantID: p.ID}
		if err := s.tournamentRepo.EnrollParticipant(ctx, tp); err != nil {
			switch {
			case errors.Is(err, repositories.ErrParticipantAlreadyEnrolled):
				return ErrParticipantAlreadyEnrolled
			case errors.Is(err, repositories.ErrEnrollmentInvalidReference):
				return ErrParticipantNotFound
			default:
				return fmt.Errorf("failed to enroll participant %d: %w", p.ID, err)
			}
		}
	}
	return nil
}

func (s *tournamentService) ListEnrolledParticipants(ctx context.Context, tournamentID int) ([]models.Participant, error) {
	if _, err := s.GetTournamentByID(ctx, tournamentID); err != nil {
		return nil, err
	}
	participants, err := s.tournamentRepo.ListParticipants(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list enrolled participants: %w", err)
	}
	return participants, nil
}

// unpairedParticipants returns the enrolled participants that are not yet
// covered by an enrolled pair, preserving enrollment order.
func (s *tournamentService) unpairedParticipants(ctx context.Context, tournamentID int) ([]models.Participant, []models.TournamentPair, error) {
	participants, err := s.tournamentRepo.ListParticipants(ctx, tournamentID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list enrolled participants: %w", err)
	}
	entries, err := s.tournamentRepo.ListEntries(ctx, tournamentID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list tournament entries: %w", err)
	}

	paired := make(map[int]bool)
	for _, entry := range entries {
		if entry.Pair != nil {
			paired[entry.Pair.PlayerOneID] = true
			paired[entry.Pair.PlayerTwoID] = true
		}
	}

	unpaired := make([]models.Participant, 0, len(participants))
	for _, p := range participants {
		if !paired[p.ID] {
			unpaired = append(unpaired, p)
		}
	}
	return unpaired, entries, nil
}

func (s *tournamentService) ManualPair(ctx context.Context, tournamentID int, input ManualPairInput) (*models.TournamentPair, error) {
	if input.PlayerOneID == input.PlayerTwoID {
		return nil, ErrDuplicateParticipant
	}

	tournament, err := s.GetTournamentByID(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	unpaired, _, err := s.unpairedParticipants(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	byID := make(map[int]models.Participant, len(unpaired))
	for _, p := range unpaired {
		byID[p.ID] = p
	}
	one, okOne := byID[input.PlayerOneID]
	two, okTwo := byID[input.PlayerTwoID]
	if !okOne || !okTwo {
		enrolled, listErr := s.tournamentRepo.ListParticipants(ctx, tournamentID)
		if listErr != nil {
			return nil, fmt.Errorf("failed to list enrolled participants: %w", listErr)
		}
		for _, p := range enrolled {
			if p.ID == input.PlayerOneID || p.ID == input.PlayerTwoID {
				return nil, ErrPlayerAlreadyPaired
			}
		}
		return nil, ErrParticipantNotFound
	}

	if !genderFitsDivision(one.Gender, two.Gender, tournament.Division) {
		return nil, ErrInvalidCombination
	}

	if one.ID > two.ID {
		one, two = two, one
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = pairName(one, two)
	}

	categoryID := one.CategoryID
	if tournament.CategoryID != nil {
		categoryID = *tournament.CategoryID
	}

	pair := &models.Pair{
		Name:        name,
		PlayerOneID: one.ID,
		PlayerTwoID: two.ID,
		CategoryID:  categoryID,
		Division:    tournament.Division,
	}

	entry, err := s.createAndEnrollPairs(ctx, tournamentID, []*models.Pair{pair})
	if err != nil {
		return nil, err
	}
	entry[0].Pair = pair
	return &entry[0], nil
}

func (s *tournamentService) AutoPair(ctx context.Context, tournamentID int) ([]models.TournamentPair, []models.Participant, error) {
	tournament, err := s.GetTournamentByID(ctx, tournamentID)
	if err != nil {
		return nil, nil, err
	}

	unpaired, _, err := s.unpairedParticipants(ctx, tournamentID)
	if err != nil {
		return nil, nil, err
	}

	proposals, leftover, err := randomizePairs(unpaired, tournament.Division)
	if err != nil {
		return nil, nil, err
	}

	categoryID := 0
	if tournament.CategoryID != nil {
		categoryID = *tournament.CategoryID
	}

	pairs := make([]*models.Pair, 0, len(proposals))
	for _, proposal := range proposals {
		pairCategory := categoryID
		if pairCategory == 0 {
			pairCategory = proposal.PlayerOne.CategoryID
		}
		pairs = append(pairs, &models.Pair{
			Name:        proposal.Name,
			PlayerOneID: proposal.PlayerOne.ID,
			PlayerTwoID: proposal.PlayerTwo.ID,
			CategoryID:  pairCategory,
			Division:    tournament.Division,
		})
	}

	entries, err := s.createAndEnrollPairs(ctx, tournamentID, pairs)
	if err != nil {
		return nil, nil, err
	}
	for i := range entries {
		entries[i].Pair = pairs[i]
	}
	return entries, leftover, nil
}

// createAndEnrollPairs persists pairs and their enrollments atomically.
func (s *tournamentService) createAndEnrollPairs(ctx context.Context, tournamentID int, pairs []*models.Pair) ([]models.TournamentPair, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	entries := make([]models.TournamentPair, 0, len(pairs))
	for _, pair := range pairs {
		if err := s.pairRepo.Create(ctx, tx, pair); err != nil {
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
		entry := models.TournamentPair{
			TournamentID: tournamentID,
			PairID:       pair.ID,
			Stage:        models.StageGroup,
		}
		if err := s.tournamentRepo.EnrollPair(ctx, tx, &entry); err != nil {
			if errors.Is(err, repositories.ErrPairAlreadyEnrolled) {
				return nil, ErrPairAlreadyEnrolled
			}
			return nil, fmt.Errorf("failed to enroll pair %d: %w", pair.ID, err)
		}
		entries = append(entries, entry)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit pair enrollment: %w", err)
	}
	return entries, nil
}

func (s *tournamentService) AssignGroups(ctx context.Context, tournamentID, groupSize int) ([]models.TournamentPair, error) {
	if _, err := s.GetTournamentByID(ctx, tournamentID); err != nil {
		return nil, err
	}
	entries, err := s.tournamentRepo.ListEntries(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournament entries: %w", err)
	}

	assignments := brackets.AssignGroups(entries, groupSize)
	labels := make(map[int]string, len(assignments))
	for _, a := range assignments {
		labels[a.EnrollmentID] = a.GroupLabel
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for i := range entries {
		label, ok := labels[entries[i].ID]
		if !ok {
			continue
		}
		entries[i].GroupLabel = &label
		entries[i].Stage = models.StageGroup
		entries[i].IsEliminated = false
		if err := s.tournamentRepo.UpdateEntry(ctx, tx, &entries[i]); err != nil {
			return nil, fmt.Errorf("failed to assign group for entry %d: %w", entries[i].ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit group assignment: %w", err)
	}
	return entries, nil
}

func (s *tournamentService) GenerateGroupMatches(ctx context.Context, tournamentID int) ([]models.Match, error) {
	if _, err := s.GetTournamentByID(ctx, tournamentID); err != nil {
		return nil, err
	}
	entries, err := s.tournamentRepo.ListEntries(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournament entries: %w", err)
	}
	existing, err := s.matchRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournament matches: %w", err)
	}

	fixtures := brackets.GroupRoundRobin(entries, existing)
	if len(fixtures) == 0 {
		hasGroups := false
		for _, entry := range entries {
			if entry.GroupLabel != nil && *entry.GroupLabel != "" {
				hasGroups = true
				break
			}
		}
		if !hasGroups {
			return nil, ErrNoGroupsAssigned
		}
		return []models.Match{}, nil
	}

	return s.createFixtures(ctx, tournamentID, fixtures)
}

func (s *tournamentService) AdvanceKnockout(ctx context.Context, tournamentID, qualifiersPerGroup int) ([]models.Match, error) {
	if _, err := s.GetTournamentByID(ctx, tournamentID); err != nil {
		return nil, err
	}
	entries, err := s.tournamentRepo.ListEntries(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournament entries: %w", err)
	}
	matches, err := s.matchRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournament matches: %w", err)
	}

	currentRound := latestKnockoutRound(matches)
	var fixtures []brackets.Fixture
	var qualified []int

	if len(currentRound) == 0 {
		if qualifiersPerGroup < 1 {
			qualifiersPerGroup = 2
		}
		qualified = seedFromGroups(entries, matches, qualifiersPerGroup)
		fixtures, err = brackets.FirstKnockoutRound(qualified)
	} else {
		if len(currentRound) == 1 {
			return nil, ErrKnockoutAlreadyFinal
		}
		fixtures, err = brackets.NextKnockoutRound(currentRound)
		for _, m := range currentRound {
			if m.WinnerID != nil {
				qualified = append(qualified, *m.WinnerID)
			}
		}
	}
	if err != nil {
		return nil, err
	}

	created, err := s.createFixtures(ctx, tournamentID, fixtures)
	if err != nil {
		return nil, err
	}
	if err := s.markKnockoutEntries(ctx, entries, qualified); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *tournamentService) Standings(ctx context.Context, tournamentID int, groupLabel string) ([]models.StandingsRow, error) {
	if _, err := s.GetTournamentByID(ctx, tournamentID); err != nil {
		return nil, err
	}
	entries, err := s.tournamentRepo.ListEntries(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournament entries: %w", err)
	}
	matches, err := s.matchRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournament matches: %w", err)
	}

	if groupLabel != "" {
		entries = filterEntriesByGroup(entries, groupLabel)
		matches = filterMatchesByRound(matches, groupLabel)
	}
	return scoring.ComputeStandings(entries, matches), nil
}

func (s *tournamentService) createFixtures(ctx context.Context, tournamentID int, fixtures []brackets.Fixture) ([]models.Match, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	created := make([]models.Match, 0, len(fixtures))
	for _, fixture := range fixtures {
		match := models.Match{
			TournamentID: tournamentID,
			RoundName:    fixture.RoundName,
			PairOneID:    fixture.PairOneID,
			PairTwoID:    fixture.PairTwoID,
		}
		if err := s.matchRepo.Create(ctx, tx, &match); err != nil {
			return nil, fmt.Errorf("failed to create match %d vs %d: %w", fixture.PairOneID, fixture.PairTwoID, err)
		}
		created = append(created, match)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit fixtures: %w", err)
	}
	return created, nil
}

// markKnockoutEntries moves survivors into the knockout stage and flags
// everyone else as eliminated.
func (s *tournamentService) markKnockoutEntries(ctx context.Context, entries []models.TournamentPair, qualified []int) error {
	alive := make(map[int]bool, len(qualified))
	for _, pairID := range qualified {
		alive[pairID] = true
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for i := range entries {
		entry := &entries[i]
		survived := alive[entry.PairID]
		if survived {
			entry.Stage = models.StageKnockout
			entry.IsEliminated = false
		} else {
			entry.IsEliminated = true
		}
		if err := s.tournamentRepo.UpdateEntry(ctx, tx, entry); err != nil {
			return fmt.Errorf("failed to update entry %d: %w", entry.ID, err)
		}
	}
	return tx.Commit()
}

// latestKnockoutRound returns the matches of the most recently created
// elimination round, or nil when the knockout phase has not started.
func latestKnockoutRound(matches []models.Match) []models.Match {
	var roundName string
	var maxID int
	for _, m := range matches {
		if brackets.IsKnockoutRound(m.RoundName) && m.ID > maxID {
			maxID = m.ID
			roundName = m.RoundName
		}
	}
	if roundName == "" {
		return nil
	}
	round := make([]models.Match, 0)
	for _, m := range matches {
		if m.RoundName == roundName {
			round = append(round, m)
		}
	}
	return round
}

// seedFromGroups picks the top pairs of every group by group standings.
// With two qualifiers per group, adjacent groups are cross-seeded so that
// group mates cannot meet before the later rounds: A1xB2, A2xB1. Undersized
// groups qualify fewer pairs; any other shape falls back to listing
// qualifiers group by group.
func seedFromGroups(entries []models.TournamentPair, matches []models.Match, qualifiersPerGroup int) []int {
	labels := make([]string, 0)
	seen := make(map[string]bool)
	for _, entry := range entries {
		if entry.GroupLabel == nil || *entry.GroupLabel == "" {
			continue
		}
		if !seen[*entry.GroupLabel] {
			seen[*entry.GroupLabel] = true
			labels = append(labels, *entry.GroupLabel)
		}
	}

	qualifiers := make([][]int, 0, len(labels))
	for _, label := range labels {
		groupEntries := filterEntriesByGroup(entries, label)
		groupMatches := filterMatchesByRound(matches, label)
		rows := scoring.ComputeStandings(groupEntries, groupMatches)

		take := qualifiersPerGroup
		if take > len(rows) {
			take = len(rows)
		}
		group := make([]int, 0, take)
		for _, row := range rows[:take] {
			group = append(group, row.PairID)
		}
		qualifiers = append(qualifiers, group)
	}

	crossSeedable := len(labels)%2 == 0
	for _, group := range qualifiers {
		if len(group) != 2 {
			crossSeedable = false
		}
	}

	seeds := make([]int, 0)
	if crossSeedable {
		for g := 0; g+1 < len(qualifiers); g += 2 {
			a, b := qualifiers[g], qualifiers[g+1]
			seeds = append(seeds, a[0], b[1], a[1], b[0])
		}
	} else {
		for _, group := range qualifiers {
			seeds = append(seeds, group...)
		}
	}
	return seeds
}

func filterEntriesByGroup(entries []models.TournamentPair, label string) []models.TournamentPair {
	filtered := make([]models.TournamentPair, 0, len(entries))
	for _, entry := range entries {
		if entry.GroupLabel != nil && *entry.GroupLabel == label {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

func filterMatchesByRound(matches []models.Match, roundName string) []models.Match {
	filtered := make([]models.Match, 0, len(matches))
	for _, m := range matches {
		if m.RoundName == roundName {
			filtered = append(filtered, m)
		}
	}
	return filtered
}
