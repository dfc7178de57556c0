package services

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/praiaclube/beachtennis-system/models"
	"github.com/praiaclube/beachtennis-system/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDriver backs the *sql.DB the quick service opens transactions on.
// The fake repositories ignore the executor, so begin and commit are no-ops.
type stubDriver struct{}

func (stubDriver) Open(string) (driver.Conn, error) { return stubConn{}, nil }

type stubConn struct{}

func (stubConn) Prepare(string) (driver.Stmt, error) { return nil, errors.New("not supported") }
func (stubConn) Close() error                        { return nil }
func (stubConn) Begin() (driver.Tx, error)           { return stubTx{}, nil }

type stubTx struct{}

func (stubTx) Commit() error   { return nil }
func (stubTx) Rollback() error { return nil }

func init() {
	sql.Register("quickstub", stubDriver{})
}

func stubDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("quickstub", "")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

type fakeQuickRepo struct {
	tournaments map[string]*models.QuickTournament
	nextID      int
}

func newFakeQuickRepo() *fakeQuickRepo {
	return &fakeQuickRepo{tournaments: make(map[string]*models.QuickTournament), nextID: 1}
}

func (r *fakeQuickRepo) id() int {
	id := r.nextID
	r.nextID++
	return id
}

func (r *fakeQuickRepo) byID(id int) *models.QuickTournament {
	for _, qt := range r.tournaments {
		if qt.ID == id {
			return qt
		}
	}
	return nil
}

func (r *fakeQuickRepo) Create(_ context.Context, qt *models.QuickTournament) error {
	qt.ID = r.id()
	qt.CreatedAt = time.Now()
	r.tournaments[qt.PublicID] = qt
	return nil
}

func (r *fakeQuickRepo) GetByPublicID(_ context.Context, publicID string) (*models.QuickTournament, error) {
	qt, ok := r.tournaments[publicID]
	if !ok {
		return nil, repositories.ErrQuickTournamentNotFound
	}
	return qt, nil
}

func (r *fakeQuickRepo) List(_ context.Context, _, _ int) ([]models.QuickTournament, error) {
	out := make([]models.QuickTournament, 0, len(r.tournaments))
	for _, qt := range r.tournaments {
		out = append(out, *qt)
	}
	return out, nil
}

func (r *fakeQuickRepo) UpdatePairingMode(_ context.Context, _ repositories.SQLExecutor, id int, mode models.PairingMode) error {
	if qt := r.byID(id); qt != nil {
		qt.PairingMode = mode
	}
	return nil
}

func (r *fakeQuickRepo) Finish(_ context.Context, id int, championID, runnerUpID, thirdPlaceID *int, finishedAt time.Time) error {
	qt := r.byID(id)
	if qt == nil {
		return repositories.ErrQuickTournamentNotFound
	}
	qt.ChampionID = championID
	qt.RunnerUpID = runnerUpID
	qt.ThirdPlaceID = thirdPlaceID
	qt.FinishedAt = &finishedAt
	return nil
}

func (r *fakeQuickRepo) Delete(_ context.Context, id int) error {
	for publicID, qt := range r.tournaments {
		if qt.ID == id {
			delete(r.tournaments, publicID)
			return nil
		}
	}
	return repositories.ErrQuickTournamentNotFound
}

// AddPlayer only assigns the ID, like the real repository's INSERT; the
// service keeps the aggregate itself.
func (r *fakeQuickRepo) AddPlayer(_ context.Context, player *models.QuickPlayer) error {
	player.ID = r.id()
	return nil
}

func (r *fakeQuickRepo) CreatePair(_ context.Context, _ repositories.SQLExecutor, pair *models.QuickPair) error {
	pair.ID = r.id()
	if qt := r.byID(pair.QuickTournamentID); qt != nil {
		qt.Pairs = append(qt.Pairs, *pair)
	}
	return nil
}

func (r *fakeQuickRepo) CreateMatch(_ context.Context, match *models.QuickMatch) error {
	match.ID = r.id()
	if qt := r.byID(match.QuickTournamentID); qt != nil {
		qt.Matches = append(qt.Matches, *match)
	}
	return nil
}

func (r *fakeQuickRepo) SaveMatchResult(_ context.Context, match *models.QuickMatch) error {
	qt := r.byID(match.QuickTournamentID)
	if qt == nil {
		return repositories.ErrQuickTournamentNotFound
	}
	for i := range qt.Matches {
		if qt.Matches[i].ID == match.ID {
			qt.Matches[i] = *match
			return nil
		}
	}
	return repositories.ErrQuickMatchNotFound
}

func TestQuickCreate(t *testing.T) {
	ctx := context.Background()
	svc := NewQuickService(stubDB(t), newFakeQuickRepo())

	t.Run("splits pasted names line by line", func(t *testing.T) {
		qt, err := svc.Create(ctx, CreateQuickInput{
			Name:        "Sábado na areia",
			PlayerNames: "Ana\n  Bruno  \n\nCarla\nDiego\n",
		})
		require.NoError(t, err)
		require.Len(t, qt.Players, 4)
		assert.Equal(t, "Bruno", qt.Players[1].Name)
		assert.NotEmpty(t, qt.PublicID)
		assert.Equal(t, models.PairingUndecided, qt.PairingMode)
	})

	t.Run("requires a name", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateQuickInput{PlayerNames: "Ana\nBruno"})
		assert.ErrorIs(t, err, ErrQuickNameRequired)
	})

	t.Run("requires at least two players", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateQuickInput{Name: "Solo", PlayerNames: "Ana\n"})
		assert.ErrorIs(t, err, ErrQuickNotEnoughPlayers)
	})
}

func quickFixture(t *testing.T, repo *fakeQuickRepo) *models.QuickTournament {
	t.Helper()
	qt := &models.QuickTournament{PublicID: "test-public-id", Name: "Noite rápida", PairingMode: models.PairingManual}
	require.NoError(t, repo.Create(context.Background(), qt))
	for _, pairName := range []string{"Ana / Bruno", "Carla / Diego"} {
		require.NoError(t, repo.CreatePair(context.Background(), nil, &models.QuickPair{
			QuickTournamentID: qt.ID,
			Name:              pairName,
		}))
	}
	return qt
}

func TestQuickRecordMatch(t *testing.T) {
	ctx := context.Background()

	t.Run("winner is the higher score", func(t *testing.T) {
		repo := newFakeQuickRepo()
		qt := quickFixture(t, repo)
		svc := NewQuickService(stubDB(t), repo)

		match, err := svc.RecordMatch(ctx, qt.PublicID, QuickMatchInput{
			PairOneID:    qt.Pairs[0].ID,
			PairTwoID:    qt.Pairs[1].ID,
			PairOneGames: 6,
			PairTwoGames: 2,
		})
		require.NoError(t, err)
		require.NotNil(t, match.WinnerID)
		assert.Equal(t, qt.Pairs[0].ID, *match.WinnerID)
	})

	t.Run("a draw has no winner", func(t *testing.T) {
		repo := newFakeQuickRepo()
		qt := quickFixture(t, repo)
		svc := NewQuickService(stubDB(t), repo)

		match, err := svc.RecordMatch(ctx, qt.PublicID, QuickMatchInput{
			PairOneID:    qt.Pairs[0].ID,
			PairTwoID:    qt.Pairs[1].ID,
			PairOneGames: 4,
			PairTwoGames: 4,
		})
		require.NoError(t, err)
		assert.Nil(t, match.WinnerID)
	})

	t.Run("unknown pair is rejected", func(t *testing.T) {
		repo := newFakeQuickRepo()
		qt := quickFixture(t, repo)
		svc := NewQuickService(stubDB(t), repo)

		_, err := svc.RecordMatch(ctx, qt.PublicID, QuickMatchInput{
			PairOneID: qt.Pairs[0].ID,
			PairTwoID: 999,
		})
		assert.ErrorIs(t, err, ErrQuickPairNotFound)
	})
}

func TestQuickFinalize(t *testing.T) {
	ctx := context.Background()

	t.Run("freezes the podium from standings", func(t *testing.T) {
		repo := newFakeQuickRepo()
		qt := quickFixture(t, repo)
		svc := NewQuickService(stubDB(t), repo)

		_, err := svc.RecordMatch(ctx, qt.PublicID, QuickMatchInput{
			PairOneID:    qt.Pairs[0].ID,
			PairTwoID:    qt.Pairs[1].ID,
			PairOneGames: 6,
			PairTwoGames: 1,
		})
		require.NoError(t, err)

		finished, err := svc.Finalize(ctx, qt.PublicID)
		require.NoError(t, err)
		require.NotNil(t, finished.ChampionID)
		assert.Equal(t, qt.Pairs[0].ID, *finished.ChampionID)
		require.NotNil(t, finished.RunnerUpID)
		assert.Equal(t, qt.Pairs[1].ID, *finished.RunnerUpID)
		assert.Nil(t, finished.ThirdPlaceID)
		assert.NotNil(t, finished.FinishedAt)
	})

	t.Run("rejects a tournament without matches", func(t *testing.T) {
		repo := newFakeQuickRepo()
		qt := quickFixture(t, repo)
		svc := NewQuickService(stubDB(t), repo)

		_, err := svc.Finalize(ctx, qt.PublicID)
		assert.ErrorIs(t, err, ErrQuickNoMatchesToFinalize)
	})

	t.Run("finished tournaments reject further changes", func(t *testing.T) {
		repo := newFakeQuickRepo()
		qt := quickFixture(t, repo)
		svc := NewQuickService(stubDB(t), repo)

		_, err := svc.RecordMatch(ctx, qt.PublicID, QuickMatchInput{
			PairOneID:    qt.Pairs[0].ID,
			PairTwoID:    qt.Pairs[1].ID,
			PairOneGames: 6,
		})
		require.NoError(t, err)
		_, err = svc.Finalize(ctx, qt.PublicID)
		require.NoError(t, err)

		_, err = svc.RecordMatch(ctx, qt.PublicID, QuickMatchInput{
			PairOneID:    qt.Pairs[0].ID,
			PairTwoID:    qt.Pairs[1].ID,
			PairOneGames: 6,
		})
		assert.ErrorIs(t, err, ErrQuickTournamentFinished)
	})
}

func TestQuickManualPair(t *testing.T) {
	ctx := context.Background()
	repo := newFakeQuickRepo()
	svc := NewQuickService(stubDB(t), repo)

	qt, err := svc.Create(ctx, CreateQuickInput{Name: "Dupla escolhida", PlayerNames: "Ana\nBruno\nCarla"})
	require.NoError(t, err)

	t.Run("pairs two players and settles the pairing mode", func(t *testing.T) {
		pair, err := svc.ManualPair(ctx, qt.PublicID, qt.Players[0].ID, qt.Players[1].ID)
		require.NoError(t, err)
		assert.Equal(t, "Ana / Bruno", pair.Name)
		assert.Equal(t, models.PairingManual, qt.PairingMode)
	})

	t.Run("rejects a player pairing with themselves", func(t *testing.T) {
		_, err := svc.ManualPair(ctx, qt.PublicID, qt.Players[2].ID, qt.Players[2].ID)
		assert.ErrorIs(t, err, ErrDuplicateParticipant)
	})

	t.Run("rejects an already paired player", func(t *testing.T) {
		_, err := svc.ManualPair(ctx, qt.PublicID, qt.Players[0].ID, qt.Players[2].ID)
		assert.ErrorIs(t, err, ErrPlayerAlreadyPaired)
	})

	t.Run("rejects unknown players", func(t *testing.T) {
		_, err := svc.ManualPair(ctx, qt.PublicID, qt.Players[2].ID, 9999)
		assert.ErrorIs(t, err, ErrParticipantNotFound)
	})
}

func TestQuickRandomizePairs(t *testing.T) {
	ctx := context.Background()

	t.Run("pairs an even pool with nobody left over", func(t *testing.T) {
		repo := newFakeQuickRepo()
		svc := NewQuickService(stubDB(t), repo)
		qt, err := svc.Create(ctx, CreateQuickInput{Name: "Sorteio", PlayerNames: "Ana\nBea\nCid\nDan"})
		require.NoError(t, err)

		pairs, leftover, err := svc.RandomizePairs(ctx, qt.PublicID)
		require.NoError(t, err)
		require.Len(t, pairs, 2)
		assert.Empty(t, leftover)
		assert.Equal(t, models.PairingRandom, qt.PairingMode)

		seen := make(map[int]bool)
		for _, pair := range pairs {
			assert.False(t, seen[pair.PlayerOneID])
			assert.False(t, seen[pair.PlayerTwoID])
			seen[pair.PlayerOneID] = true
			seen[pair.PlayerTwoID] = true
		}
		assert.Len(t, seen, 4)
	})

	t.Run("odd pool leaves one player unpaired", func(t *testing.T) {
		repo := newFakeQuickRepo()
		svc := NewQuickService(stubDB(t), repo)
		qt, err := svc.Create(ctx, CreateQuickInput{Name: "Sorteio", PlayerNames: "Ana\nBea\nCid\nDan\nEva"})
		require.NoError(t, err)

		pairs, leftover, err := svc.RandomizePairs(ctx, qt.PublicID)
		require.NoError(t, err)
		assert.Len(t, pairs, 2)
		assert.Len(t, leftover, 1)
	})

	t.Run("skips players already paired by hand", func(t *testing.T) {
		repo := newFakeQuickRepo()
		svc := NewQuickService(stubDB(t), repo)
		qt, err := svc.Create(ctx, CreateQuickInput{Name: "Sorteio", PlayerNames: "Ana\nBea\nCid\nDan"})
		require.NoError(t, err)

		_, err = svc.ManualPair(ctx, qt.PublicID, qt.Players[0].ID, qt.Players[1].ID)
		require.NoError(t, err)

		pairs, leftover, err := svc.RandomizePairs(ctx, qt.PublicID)
		require.NoError(t, err)
		require.Len(t, pairs, 1)
		assert.Empty(t, leftover)
		drawn := map[int]bool{pairs[0].PlayerOneID: true, pairs[0].PlayerTwoID: true}
		assert.False(t, drawn[qt.Players[0].ID])
		assert.False(t, drawn[qt.Players[1].ID])
	})

	t.Run("refuses after the tournament is finished", func(t *testing.T) {
		repo := newFakeQuickRepo()
		svc := NewQuickService(stubDB(t), repo)
		qt := quickFixture(t, repo)
		require.NoError(t, repo.Finish(ctx, qt.ID, nil, nil, nil, time.Now()))

		_, _, err := svc.RandomizePairs(ctx, qt.PublicID)
		assert.ErrorIs(t, err, ErrQuickTournamentFinished)
	})
}
