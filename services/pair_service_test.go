package services

import (
	"context"
	"testing"

	"github.com/praiaclube/beachtennis-system/models"
	"github.com/praiaclube/beachtennis-system/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePairRepo struct {
	pairs  map[int]*models.Pair
	nextID int
}

func newFakePairRepo() *fakePairRepo {
	return &fakePairRepo{pairs: make(map[int]*models.Pair), nextID: 1}
}

func (r *fakePairRepo) Create(_ context.Context, _ repositories.SQLExecutor, pair *models.Pair) error {
	for _, existing := range r.pairs {
		if existing.PlayerOneID == pair.PlayerOneID && existing.PlayerTwoID == pair.PlayerTwoID &&
			existing.CategoryID == pair.CategoryID && existing.Division == pair.Division {
			return repositories.ErrPairAlreadyExists
		}
	}
	pair.ID = r.nextID
	r.nextID++
	copied := *pair
	r.pairs[pair.ID] = &copied
	return nil
}

func (r *fakePairRepo) GetByID(_ context.Context, id int) (*models.Pair, error) {
	pair, ok := r.pairs[id]
	if !ok {
		return nil, repositories.ErrPairNotFound
	}
	copied := *pair
	return &copied, nil
}

func (r *fakePairRepo) List(_ context.Context, _ repositories.ListPairsFilter) ([]models.Pair, error) {
	out := make([]models.Pair, 0, len(r.pairs))
	for _, pair := range r.pairs {
		out = append(out, *pair)
	}
	return out, nil
}

func (r *fakePairRepo) Update(_ context.Context, pair *models.Pair) error {
	if _, ok := r.pairs[pair.ID]; !ok {
		return repositories.ErrPairNotFound
	}
	copied := *pair
	r.pairs[pair.ID] = &copied
	return nil
}

func (r *fakePairRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.pairs[id]; !ok {
		return repositories.ErrPairNotFound
	}
	delete(r.pairs, id)
	return nil
}

type fakeParticipantRepo struct {
	participants map[int]models.Participant
}

func newFakeParticipantRepo(participants ...models.Participant) *fakeParticipantRepo {
	repo := &fakeParticipantRepo{participants: make(map[int]models.Participant)}
	for _, p := range participants {
		repo.participants[p.ID] = p
	}
	return repo
}

func (r *fakeParticipantRepo) Create(_ context.Context, participant *models.Participant) error {
	r.participants[participant.ID] = *participant
	return nil
}

func (r *fakeParticipantRepo) GetByID(_ context.Context, id int) (*models.Participant, error) {
	p, ok := r.participants[id]
	if !ok {
		return nil, repositories.ErrParticipantNotFound
	}
	return &p, nil
}

func (r *fakeParticipantRepo) GetByIDs(_ context.Context, ids []int) ([]models.Participant, error) {
	out := make([]models.Participant, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.participants[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeParticipantRepo) List(_ context.Context, _ repositories.ListParticipantsFilter) ([]models.Participant, error) {
	out := make([]models.Participant, 0, len(r.participants))
	for _, p := range r.participants {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeParticipantRepo) Update(_ context.Context, participant *models.Participant) error {
	r.participants[participant.ID] = *participant
	return nil
}

func (r *fakeParticipantRepo) Delete(_ context.Context, id int) error {
	delete(r.participants, id)
	return nil
}

func player(id int, name string, gender models.Gender, categoryID int) models.Participant {
	return models.Participant{ID: id, FullName: name, Gender: gender, CategoryID: categoryID}
}

func TestFormPair(t *testing.T) {
	ctx := context.Background()

	ana := player(1, "Ana", models.GenderFemale, 1)
	bruno := player(2, "Bruno", models.GenderMale, 1)
	carla := player(3, "Carla", models.GenderFemale, 1)
	diego := player(4, "Diego", models.GenderMale, 1)
	flexa := player(5, "Alex", models.GenderFlex, 1)
	otherCat := player(6, "Rita", models.GenderFemale, 2)

	newService := func() PairService {
		return NewPairService(newFakePairRepo(), newFakeParticipantRepo(ana, bruno, carla, diego, flexa, otherCat))
	}

	t.Run("mixed pair with male and female", func(t *testing.T) {
		svc := newService()
		pair, err := svc.FormPair(ctx, FormPairInput{PlayerOneID: 2, PlayerTwoID: 1, Division: models.DivisionMixed})
		require.NoError(t, err)
		assert.Equal(t, 1, pair.PlayerOneID, "stored low id first")
		assert.Equal(t, 2, pair.PlayerTwoID)
		assert.Equal(t, "Ana / Bruno", pair.Name)
	})

	t.Run("flex fills either side of mixed", func(t *testing.T) {
		svc := newService()
		_, err := svc.FormPair(ctx, FormPairInput{PlayerOneID: 5, PlayerTwoID: 1, Division: models.DivisionMixed})
		assert.NoError(t, err)

		_, err = svc.FormPair(ctx, FormPairInput{PlayerOneID: 5, PlayerTwoID: 2, Division: models.DivisionMixed})
		assert.NoError(t, err)
	})

	t.Run("two women cannot play mixed", func(t *testing.T) {
		svc := newService()
		_, err := svc.FormPair(ctx, FormPairInput{PlayerOneID: 1, PlayerTwoID: 3, Division: models.DivisionMixed})
		assert.ErrorIs(t, err, ErrInvalidCombination)
	})

	t.Run("woman cannot enter the male division", func(t *testing.T) {
		svc := newService()
		_, err := svc.FormPair(ctx, FormPairInput{PlayerOneID: 1, PlayerTwoID: 2, Division: models.DivisionMale})
		assert.ErrorIs(t, err, ErrInvalidCombination)
	})

	t.Run("two men form a male pair", func(t *testing.T) {
		svc := newService()
		pair, err := svc.FormPair(ctx, FormPairInput{PlayerOneID: 2, PlayerTwoID: 4, Division: models.DivisionMale})
		require.NoError(t, err)
		assert.Equal(t, models.DivisionMale, pair.Division)
	})

	t.Run("same player twice is rejected", func(t *testing.T) {
		svc := newService()
		_, err := svc.FormPair(ctx, FormPairInput{PlayerOneID: 1, PlayerTwoID: 1, Division: models.DivisionFemale})
		assert.ErrorIs(t, err, ErrDuplicateParticipant)
	})

	t.Run("category mismatch is rejected", func(t *testing.T) {
		svc := newService()
		_, err := svc.FormPair(ctx, FormPairInput{PlayerOneID: 1, PlayerTwoID: 6, Division: models.DivisionFemale})
		assert.ErrorIs(t, err, ErrPairCategoryMismatch)
	})

	t.Run("category defaults to the first player's", func(t *testing.T) {
		svc := newService()
		pair, err := svc.FormPair(ctx, FormPairInput{PlayerOneID: 1, PlayerTwoID: 3, Division: models.DivisionFemale})
		require.NoError(t, err)
		assert.Equal(t, 1, pair.CategoryID)
	})

	t.Run("duplicate pair is a conflict", func(t *testing.T) {
		svc := newService()
		_, err := svc.FormPair(ctx, FormPairInput{PlayerOneID: 1, PlayerTwoID: 3, Division: models.DivisionFemale})
		require.NoError(t, err)
		_, err = svc.FormPair(ctx, FormPairInput{PlayerOneID: 3, PlayerTwoID: 1, Division: models.DivisionFemale})
		assert.ErrorIs(t, err, ErrPairAlreadyExists)
	})

	t.Run("same duo may enter another division", func(t *testing.T) {
		svc := newService()
		_, err := svc.FormPair(ctx, FormPairInput{PlayerOneID: 1, PlayerTwoID: 5, Division: models.DivisionMixed})
		require.NoError(t, err)
		pair, err := svc.FormPair(ctx, FormPairInput{PlayerOneID: 1, PlayerTwoID: 5, Division: models.DivisionFemale})
		require.NoError(t, err)
		assert.Equal(t, models.DivisionFemale, pair.Division)
	})

	t.Run("custom name wins over the generated one", func(t *testing.T) {
		svc := newService()
		pair, err := svc.FormPair(ctx, FormPairInput{PlayerOneID: 1, PlayerTwoID: 3, Division: models.DivisionFemale, Name: "As Campeãs"})
		require.NoError(t, err)
		assert.Equal(t, "As Campeãs", pair.Name)
	})
}

func TestRandomizePairs(t *testing.T) {
	t.Run("even non-mixed pool pairs everyone", func(t *testing.T) {
		pool := []models.Participant{
			player(1, "A", models.GenderMale, 1),
			player(2, "B", models.GenderMale, 1),
			player(3, "C", models.GenderMale, 1),
			player(4, "D", models.GenderFlex, 1),
		}
		pairs, leftover, err := randomizePairs(pool, models.DivisionMale)
		require.NoError(t, err)
		assert.Len(t, pairs, 2)
		assert.Empty(t, leftover)
	})

	t.Run("odd pool leaves one player waiting", func(t *testing.T) {
		pool := []models.Participant{
			player(1, "A", models.GenderFemale, 1),
			player(2, "B", models.GenderFemale, 1),
			player(3, "C", models.GenderFemale, 1),
		}
		pairs, leftover, err := randomizePairs(pool, models.DivisionFemale)
		require.NoError(t, err)
		assert.Len(t, pairs, 1)
		assert.Len(t, leftover, 1)
	})

	t.Run("mixed matches across genders with flex filling gaps", func(t *testing.T) {
		pool := []models.Participant{
			player(1, "M1", models.GenderMale, 1),
			player(2, "M2", models.GenderMale, 1),
			player(3, "M3", models.GenderMale, 1),
			player(4, "F1", models.GenderFemale, 1),
			player(5, "X1", models.GenderFlex, 1),
			player(6, "X2", models.GenderFlex, 1),
		}
		pairs, leftover, err := randomizePairs(pool, models.DivisionMixed)
		require.NoError(t, err)
		assert.Len(t, pairs, 3)
		assert.Empty(t, leftover)

		for _, pair := range pairs {
			assert.True(t, genderFitsDivision(pair.PlayerOne.Gender, pair.PlayerTwo.Gender, models.DivisionMixed),
				"pair %s violates mixed rules", pair.Name)
		}
	})

	t.Run("surplus same-gender players become leftover, not an error", func(t *testing.T) {
		pool := []models.Participant{
			player(1, "M1", models.GenderMale, 1),
			player(2, "M2", models.GenderMale, 1),
			player(3, "M3", models.GenderMale, 1),
			player(4, "F1", models.GenderFemale, 1),
		}
		pairs, leftover, err := randomizePairs(pool, models.DivisionMixed)
		require.NoError(t, err)
		assert.Len(t, pairs, 1)
		assert.Len(t, leftover, 2)
	})

	t.Run("ineligible gender fails the whole draw", func(t *testing.T) {
		pool := []models.Participant{
			player(1, "M1", models.GenderMale, 1),
			player(2, "F1", models.GenderFemale, 1),
		}
		_, _, err := randomizePairs(pool, models.DivisionMale)
		assert.ErrorIs(t, err, ErrInvalidCombination)
	})

	t.Run("invalid division is rejected", func(t *testing.T) {
		_, _, err := randomizePairs(nil, models.Division("junior"))
		assert.ErrorIs(t, err, ErrInvalidDivision)
	})
}
