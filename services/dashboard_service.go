package services

import (
	"context"
	"fmt"

	"github.com/praiaclube/beachtennis-system/models"
	"github.com/praiaclube/beachtennis-system/repositories"
	"golang.org/x/sync/errgroup"
)

const (
	dashboardPneuLimit     = 20
	dashboardChampionLimit = 20
)

type DashboardService interface {
	Summary(ctx context.Context) (*models.DashboardSummary, error)
}

type dashboardService struct {
	dashboardRepo repositories.DashboardRepository
}

func NewDashboardService(dashboardRepo repositories.DashboardRepository) DashboardService {
	return &dashboardService{dashboardRepo: dashboardRepo}
}

// Summary fans the independent widget reads out under an errgroup; the
// first failure cancels the rest.
func (s *dashboardService) Summary(ctx context.Context) (*models.DashboardSummary, error) {
	summary := &models.DashboardSummary{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.dashboardRepo.CountParticipants(ctx)
		summary.ParticipantCount = n
		return err
	})
	g.Go(func() error {
		n, err := s.dashboardRepo.CountPairs(ctx)
		summary.PairCount = n
		return err
	})
	g.Go(func() error {
		n, err := s.dashboardRepo.CountTournaments(ctx)
		summary.TournamentCount = n
		return err
	})
	g.Go(func() error {
		pneus, err := s.dashboardRepo.PneuMatches(ctx, dashboardPneuLimit)
		summary.PneuMatches = pneus
		return err
	})
	g.Go(func() error {
		wall, err := s.dashboardRepo.ChampionWall(ctx, dashboardChampionLimit)
		summary.ChampionWall = wall
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build dashboard summary: %w", err)
	}
	if summary.PneuMatches == nil {
		summary.PneuMatches = []models.PneuMatch{}
	}
	if summary.ChampionWall == nil {
		summary.ChampionWall = []models.ChampionWallEntry{}
	}
	return summary, nil
}
