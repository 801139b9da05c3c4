package players

import (
	"github.com/preston-bernstein/nba-draft-efficiency/internal/domain/players"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/ranking"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/store"
)

// Store defines the contract for reading the latest pipeline run.
type Store interface {
	Latest() (store.Run, bool)
}

// Service answers player rankings from the latest run in a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) view() (ranking.View, error) {
	run, ok := s.store.Latest()
	if !ok {
		return ranking.View{}, ranking.ErrNoData
	}
	return run.Result.View(), nil
}

// Top returns up to n players ordered by the given metric.
func (s *Service) Top(by ranking.PlayerOrder, n int) ([]players.Evaluated, error) {
	v, err := s.view()
	if err != nil {
		return nil, err
	}
	return v.TopPlayers(by, n)
}

// Steals returns late picks with a top-quintile draft value ratio.
func (s *Service) Steals() ([]players.Evaluated, error) {
	v, err := s.view()
	if err != nil {
		return nil, err
	}
	return v.Steals()
}

// Busts returns top-ten picks with a bottom-quintile draft value ratio.
func (s *Service) Busts() ([]players.Evaluated, error) {
	v, err := s.view()
	if err != nil {
		return nil, err
	}
	return v.Busts()
}

// SecondRound returns the best second-round picks by value score.
func (s *Service) SecondRound(n int) ([]players.Evaluated, error) {
	v, err := s.view()
	if err != nil {
		return nil, err
	}
	return v.SecondRound(n)
}

// Thresholds returns the steal and bust cutoffs of the latest run.
func (s *Service) Thresholds() (ranking.Thresholds, error) {
	v, err := s.view()
	if err != nil {
		return ranking.Thresholds{}, err
	}
	return v.Thresholds(), nil
}
