package teams

import (
	"github.com/preston-bernstein/nba-draft-efficiency/internal/domain/teams"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/efficiency"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/pipeline"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/ranking"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/store"
)

// Store defines the contract for reading the latest pipeline run.
type Store interface {
	Latest() (store.Run, bool)
}

// Service answers team aggregates and breakdowns from the latest run in a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) result() (pipeline.Result, error) {
	run, ok := s.store.Latest()
	if !ok {
		return pipeline.Result{}, ranking.ErrNoData
	}
	return run.Result, nil
}

// Teams returns every aggregate, or only qualified ones, sorted by team name.
func (s *Service) Teams(qualifiedOnly bool) ([]teams.Aggregate, error) {
	res, err := s.result()
	if err != nil {
		return nil, err
	}
	if qualifiedOnly {
		return res.Qualified, nil
	}
	return res.Teams.All, nil
}

// Top returns up to n qualified teams ordered by the given metric.
func (s *Service) Top(by ranking.TeamOrder, n int) ([]teams.Aggregate, error) {
	res, err := s.result()
	if err != nil {
		return nil, err
	}
	return res.View().TopTeams(by, n)
}

// TeamByName returns a single aggregate if present.
func (s *Service) TeamByName(name string) (teams.Aggregate, bool, error) {
	res, err := s.result()
	if err != nil {
		return teams.Aggregate{}, false, err
	}
	agg, ok := res.Teams.ByName(name)
	return agg, ok, nil
}

// Positions returns the per-draft-category breakdown.
func (s *Service) Positions() ([]efficiency.PositionSummary, error) {
	res, err := s.result()
	if err != nil {
		return nil, err
	}
	return res.Positions, nil
}

// Rounds returns the per-round draft value ratio breakdown.
func (s *Service) Rounds() ([]efficiency.RoundSummary, error) {
	res, err := s.result()
	if err != nil {
		return nil, err
	}
	return res.Rounds, nil
}

// Drafting returns up to n team draft value ratio rollups ordered by mean or total ratio.
func (s *Service) Drafting(by ranking.RatioOrder, n int) ([]efficiency.TeamRatioSummary, error) {
	res, err := s.result()
	if err != nil {
		return nil, err
	}
	return res.View().TopDrafting(by, n)
}

// League returns averages over qualified teams.
func (s *Service) League() (efficiency.LeagueAverages, error) {
	res, err := s.result()
	if err != nil {
		return efficiency.LeagueAverages{}, err
	}
	return res.League, nil
}

// Insights returns the headline findings of the latest run.
func (s *Service) Insights() (ranking.Insights, error) {
	res, err := s.result()
	if err != nil {
		return ranking.Insights{}, err
	}
	return res.View().Insights()
}
